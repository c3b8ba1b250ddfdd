package recipe

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/cravebuster/cravebuster/internal/cache"
	"github.com/cravebuster/cravebuster/internal/errors"
	"github.com/cravebuster/cravebuster/internal/logger"
	"github.com/cravebuster/cravebuster/internal/metrics"
	"github.com/cravebuster/cravebuster/internal/sentry"
	"github.com/cravebuster/cravebuster/internal/services/completion"
)

var tracer = otel.Tracer("cravebuster/recipe")

// Source tells where a recipe came from.
type Source string

const (
	SourceAI       Source = "ai"
	SourceCache    Source = "cache"
	SourceFallback Source = "fallback"
)

// Result is a generated recipe plus its provenance. Cause holds the
// provider, parse or configuration error that forced a fallback.
type Result[Rec any] struct {
	Recipe Rec
	Source Source
	Cause  error
}

// Degraded reports whether the recipe is fallback output.
func (r Result[Rec]) Degraded() bool {
	return r.Source == SourceFallback
}

type generatorConfig struct {
	cache    cache.Cache
	cacheTTL time.Duration
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*generatorConfig)

// WithCache stores AI results in c and serves repeated prompts from it.
func WithCache(c cache.Cache, ttl time.Duration) GeneratorOption {
	return func(cfg *generatorConfig) {
		cfg.cache = c
		cfg.cacheTTL = ttl
	}
}

// Generator runs the request/response flow for one variant: validate, prompt
// the completion client, parse, and fall back to the local template on failure.
type Generator[Req, Rec any] struct {
	variant Variant[Req, Rec]
	client  completion.Client
	cfg     generatorConfig
}

func NewGenerator[Req, Rec any](variant Variant[Req, Rec], client completion.Client, opts ...GeneratorOption) *Generator[Req, Rec] {
	g := &Generator[Req, Rec]{variant: variant, client: client}
	for _, opt := range opts {
		opt(&g.cfg)
	}
	return g
}

// Variant returns the variant name.
func (g *Generator[Req, Rec]) Variant() string {
	return g.variant.Name
}

// Validate checks req without generating anything.
func (g *Generator[Req, Rec]) Validate(ctx context.Context, req Req) error {
	if err := g.variant.Validate(req); err != nil {
		metrics.ValidationFailures.Add(ctx, 1, metric.WithAttributes(attribute.String("variant", g.variant.Name)))
		return err
	}
	return nil
}

// Generate returns a recipe for req. Only validation failures and a broken
// fallback are returned as errors; every other failure yields the fallback
// recipe with Result.Cause set.
func (g *Generator[Req, Rec]) Generate(ctx context.Context, req Req) (Result[Rec], error) {
	ctx, span := tracer.Start(ctx, "recipe.Generate", trace.WithAttributes(attribute.String("variant", g.variant.Name)))
	defer span.End()

	if err := g.Validate(ctx, req); err != nil {
		span.SetStatus(codes.Error, "invalid request")
		return Result[Rec]{}, err
	}

	prompt := g.variant.BuildPrompt(req)
	key := cache.Key(g.variant.Name, prompt)

	if rec, ok := g.lookup(ctx, key); ok {
		g.count(ctx, SourceCache)
		span.SetAttributes(attribute.String("source", string(SourceCache)))
		return Result[Rec]{Recipe: rec, Source: SourceCache}, nil
	}

	rec, err := g.complete(ctx, prompt)
	if err == nil {
		g.store(ctx, key, rec)
		g.count(ctx, SourceAI)
		span.SetAttributes(attribute.String("source", string(SourceAI)))
		return Result[Rec]{Recipe: rec, Source: SourceAI}, nil
	}

	reason := completion.Kind(err)
	slog.Warn("AI generation failed, using fallback",
		"variant", g.variant.Name,
		"reason", reason,
		"error", err,
		logger.WithTraceContext(ctx))
	metrics.RecipeFallbacksTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("variant", g.variant.Name),
		attribute.String("reason", reason),
	))
	span.RecordError(err)

	rec, ferr := g.fallback(req)
	if ferr != nil {
		span.SetStatus(codes.Error, ferr.Error())
		sentry.CaptureError(ctx, ferr, map[string]string{"variant": g.variant.Name})
		return Result[Rec]{}, ferr
	}

	g.count(ctx, SourceFallback)
	span.SetAttributes(attribute.String("source", string(SourceFallback)))
	return Result[Rec]{Recipe: rec, Source: SourceFallback, Cause: err}, nil
}

func (g *Generator[Req, Rec]) complete(ctx context.Context, prompt string) (Rec, error) {
	var zero Rec

	start := time.Now()
	raw, err := g.client.Complete(ctx, g.variant.SystemPrompt, prompt)
	metrics.AIGenerationDuration.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("variant", g.variant.Name)))
	if err != nil {
		return zero, err
	}

	rec, err := g.variant.Parse(raw)
	if err != nil {
		return zero, err
	}
	return rec, nil
}

func (g *Generator[Req, Rec]) fallback(req Req) (rec Rec, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewFallbackError("Failed to generate recipe", "FALLBACK_FAILED", fmt.Errorf("panic: %v", r))
		}
	}()
	return g.variant.Fallback(req), nil
}

func (g *Generator[Req, Rec]) lookup(ctx context.Context, key string) (Rec, bool) {
	var rec Rec
	if g.cfg.cache == nil {
		return rec, false
	}
	data, err := g.cfg.cache.Get(ctx, key)
	if err != nil || data == nil {
		return rec, false
	}
	if err := json.Unmarshal(data, &rec); err != nil {
		slog.Warn("Discarding unreadable cached recipe", "variant", g.variant.Name, "error", err)
		_ = g.cfg.cache.Delete(ctx, key)
		return rec, false
	}
	metrics.RecipeCacheHitsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("variant", g.variant.Name)))
	return rec, true
}

func (g *Generator[Req, Rec]) store(ctx context.Context, key string, rec Rec) {
	if g.cfg.cache == nil {
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		slog.Warn("Failed to encode recipe for cache", "variant", g.variant.Name, "error", err)
		return
	}
	if err := g.cfg.cache.Set(ctx, key, data, g.cfg.cacheTTL); err != nil {
		slog.Warn("Failed to cache recipe", "variant", g.variant.Name, "error", err)
	}
}

func (g *Generator[Req, Rec]) count(ctx context.Context, source Source) {
	metrics.RecipeGenerationsTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("variant", g.variant.Name),
		attribute.String("source", string(source)),
	))
}
