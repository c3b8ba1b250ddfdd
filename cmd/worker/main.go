package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/cravebuster/cravebuster/internal/cache"
	"github.com/cravebuster/cravebuster/internal/config"
	"github.com/cravebuster/cravebuster/internal/logger"
	"github.com/cravebuster/cravebuster/internal/metrics"
	"github.com/cravebuster/cravebuster/internal/sentry"
	"github.com/cravebuster/cravebuster/internal/services/completion"
	"github.com/cravebuster/cravebuster/internal/services/recipe"
	"github.com/cravebuster/cravebuster/internal/telemetry"
	"github.com/cravebuster/cravebuster/internal/worker"
)

const concurrency = 2

func main() {
	defer sentry.Recover()

	ctx := context.Background()

	cfg := config.MustLoad()

	slog.SetDefault(logger.New(cfg.Env))

	shutdownTelemetry, err := telemetry.InitTelemetry(ctx, cfg.ServiceName+"-worker", cfg.ServiceVersion, cfg.Env,
		cfg.OtelExporterOTLPEndpoint, telemetry.ParseHeaders(cfg.OtelExporterOTLPHeaders))
	if err != nil {
		slog.Warn("Failed to init telemetry", "error", err)
	} else {
		defer shutdownTelemetry(ctx)
	}

	if err := sentry.Init(cfg.SentryDSN, cfg.Env, cfg.ServiceName+"-worker", cfg.ServiceVersion); err != nil {
		slog.Warn("Failed to init Sentry", "error", err)
	} else if cfg.SentryDSN != "" {
		defer sentry.Flush(2 * time.Second)
	}

	if err := metrics.Init(); err != nil {
		slog.Warn("Failed to init business metrics", "error", err)
	}

	if cfg.RedisURL == "" {
		slog.Error("REDIS_URL is required for the worker")
		os.Exit(1)
	}

	rdb, err := cache.NewRedisClient(cfg.RedisURL)
	if err != nil {
		slog.Error("Invalid REDIS_URL", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	warmMetrics, err := worker.NewWarmMetrics()
	if err != nil {
		slog.Warn("Failed to init worker metrics", "error", err)
	}

	client := completion.NewProvider(cfg.Generation, cfg.Keys)
	popular := recipe.NewGenerator(recipe.PopularVariant(), client,
		recipe.WithCache(cache.NewRecipeCache(rdb), cfg.Generation.CacheTTL))
	warmer := worker.NewWarmer(popular, warmMetrics, worker.DefaultWarmParallelism)

	srv, err := worker.NewServer(cfg.RedisURL, concurrency)
	if err != nil {
		slog.Error("Failed to create worker", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting worker", "provider", cfg.Generation.Provider, "concurrency", concurrency)

	if err := srv.Start(worker.NewMux(warmer)); err != nil {
		slog.Error("Worker failed", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down worker...")
	srv.Shutdown()
}
