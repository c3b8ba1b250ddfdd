package worker

import (
	"crypto/tls"
	"fmt"
	"net/url"
	"strings"

	"github.com/hibiken/asynq"
)

// ParseRedisURL parses a Redis URL and returns asynq.RedisClientOpt
func ParseRedisURL(redisURL string) (asynq.RedisClientOpt, error) {
	// Handle plain host:port format
	if !strings.HasPrefix(redisURL, "redis://") && !strings.HasPrefix(redisURL, "rediss://") {
		return asynq.RedisClientOpt{Addr: redisURL}, nil
	}

	u, err := url.Parse(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	opt := asynq.RedisClientOpt{
		Addr: u.Host,
	}

	if u.User != nil {
		opt.Username = u.User.Username()
		if password, ok := u.User.Password(); ok {
			opt.Password = password
		}
	}

	if db := strings.TrimPrefix(u.Path, "/"); db != "" {
		var n int
		if _, err := fmt.Sscanf(db, "%d", &n); err != nil {
			return asynq.RedisClientOpt{}, fmt.Errorf("invalid redis database %q", db)
		}
		opt.DB = n
	}

	if u.Scheme == "rediss" {
		opt.TLSConfig = &tls.Config{ServerName: u.Hostname()}
	}

	return opt, nil
}

// NewClient creates an Asynq client for enqueueing warm-up tasks.
func NewClient(redisURL string) (*asynq.Client, error) {
	opt, err := ParseRedisURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return asynq.NewClient(opt), nil
}
