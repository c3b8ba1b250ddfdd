package cache

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
)

// RecipeCache provides Redis-backed caching for AI-generated recipes.
// Cache failures are logged and treated as misses so generation never
// depends on Redis being up.
type RecipeCache struct {
	client *redis.Client
	prefix string
}

// NewRecipeCache creates a new recipe cache with the given Redis client.
func NewRecipeCache(client *redis.Client) *RecipeCache {
	return &RecipeCache{
		client: client,
		prefix: "recipe:",
	}
}

// NewRedisClient parses a redis:// URL and returns a client for it with
// OpenTelemetry tracing and metrics attached.
func NewRedisClient(redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := redisotel.InstrumentTracing(client); err != nil {
		return nil, fmt.Errorf("instrument redis tracing: %w", err)
	}
	if err := redisotel.InstrumentMetrics(client); err != nil {
		return nil, fmt.Errorf("instrument redis metrics: %w", err)
	}
	return client, nil
}

// Key builds the cache key for a rendered prompt of the given variant.
func Key(variant, prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("%s:%x", variant, hash)
}

func (c *RecipeCache) makeKey(key string) string {
	return c.prefix + key
}

// Get retrieves a cached recipe. A miss returns nil, nil.
func (c *RecipeCache) Get(ctx context.Context, key string) ([]byte, error) {
	if c.client == nil {
		return nil, nil
	}

	data, err := c.client.Get(ctx, c.makeKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		slog.Warn("Redis cache get failed", "error", err)
		return nil, nil
	}
	return data, nil
}

// Set stores a recipe. Errors are logged and swallowed.
func (c *RecipeCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Set(ctx, c.makeKey(key), value, ttl).Err(); err != nil {
		slog.Warn("Redis cache set failed", "error", err)
	}
	return nil
}

// Delete removes a cached recipe.
func (c *RecipeCache) Delete(ctx context.Context, key string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, c.makeKey(key)).Err()
}

// Ping checks the Redis connection.
func (c *RecipeCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}
