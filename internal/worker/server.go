package worker

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
)

// NewServer creates a new Asynq server for processing tasks
func NewServer(redisURL string, concurrency int) (*asynq.Server, error) {
	opt, err := ParseRedisURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if concurrency <= 0 {
		concurrency = 2
	}

	return asynq.NewServer(
		opt,
		asynq.Config{
			Concurrency: concurrency,
			Logger:      slogAdapter{},
		},
	), nil
}

// NewMux registers the task handlers behind the Sentry and tracing middleware.
func NewMux(warmer *Warmer) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.Use(SentryMiddleware)
	mux.Use(OTelMiddleware)
	mux.HandleFunc(TypeWarmPopular, warmer.HandleWarmPopular)
	return mux
}

// slogAdapter routes asynq's internal logging through slog.
type slogAdapter struct{}

func (slogAdapter) Debug(args ...interface{}) { slog.Debug(fmt.Sprint(args...), "component", "asynq") }
func (slogAdapter) Info(args ...interface{})  { slog.Info(fmt.Sprint(args...), "component", "asynq") }
func (slogAdapter) Warn(args ...interface{})  { slog.Warn(fmt.Sprint(args...), "component", "asynq") }
func (slogAdapter) Error(args ...interface{}) { slog.Error(fmt.Sprint(args...), "component", "asynq") }
func (slogAdapter) Fatal(args ...interface{}) {
	slog.Error(fmt.Sprint(args...), "component", "asynq")
	os.Exit(1)
}
