package worker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/cravebuster/cravebuster/internal/catalog"
	apperrors "github.com/cravebuster/cravebuster/internal/errors"
	"github.com/cravebuster/cravebuster/internal/metrics"
	"github.com/cravebuster/cravebuster/internal/services/recipe"
)

// DefaultWarmParallelism bounds concurrent completions per warm-up task.
const DefaultWarmParallelism = 4

// PopularGenerator produces popular recipes; *recipe.Generator satisfies it.
type PopularGenerator interface {
	Generate(ctx context.Context, req recipe.PopularRecipeRequest) (recipe.Result[recipe.PopularRecipe], error)
}

// WarmSummary counts the outcome of one warm-up run by recipe source.
type WarmSummary struct {
	AI       int
	Cache    int
	Fallback int
	Failed   int
}

// Total is the number of dishes the run handled.
func (s WarmSummary) Total() int {
	return s.AI + s.Cache + s.Fallback + s.Failed
}

// Warmer pre-generates popular recipes so later searches hit the cache.
type Warmer struct {
	gen         PopularGenerator
	metrics     *WarmMetrics
	parallelism int
}

func NewWarmer(gen PopularGenerator, warmMetrics *WarmMetrics, parallelism int) *Warmer {
	if parallelism <= 0 {
		parallelism = DefaultWarmParallelism
	}
	return &Warmer{
		gen:         gen,
		metrics:     warmMetrics,
		parallelism: parallelism,
	}
}

func (w *Warmer) HandleWarmPopular(ctx context.Context, t *asynq.Task) error {
	start := time.Now()

	var payload WarmPopularPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		w.metrics.RecordRun(ctx, "invalid", WarmSummary{}, time.Since(start))
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	summary, err := w.Warm(ctx, payload)
	status := "success"
	if err != nil {
		status = "failed"
	}
	w.metrics.RecordRun(ctx, status, summary, time.Since(start))

	slog.Info("Warm-up finished",
		"ai", summary.AI,
		"cache", summary.Cache,
		"fallback", summary.Fallback,
		"failed", summary.Failed,
		"duration", time.Since(start))
	return err
}

// Warm generates every dish in payload. Fallback output counts as done; only
// a broken fallback generator fails the run.
func (w *Warmer) Warm(ctx context.Context, payload WarmPopularPayload) (WarmSummary, error) {
	dishes := normalizeDishes(payload.Dishes)
	if len(dishes) == 0 {
		dishes = catalog.TrendingSuggestions()
	}

	slog.Info("Warming popular recipes", "dishes", len(dishes), "cuisine", payload.Cuisine)

	var (
		mu      sync.Mutex
		summary WarmSummary
	)
	funcs := make([]ParallelFunc, len(dishes))
	for i, dish := range dishes {
		funcs[i] = func(ctx context.Context) error {
			res, err := w.gen.Generate(ctx, recipe.PopularRecipeRequest{DishName: dish, Cuisine: payload.Cuisine})

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed++
				metrics.RecipeWarmupsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "failed")))
				if apperrors.IsValidation(err) {
					slog.Warn("Skipping invalid dish", "dish", dish, "error", err)
					return nil
				}
				return fmt.Errorf("warm %q: %w", dish, err)
			}

			switch res.Source {
			case recipe.SourceAI:
				summary.AI++
			case recipe.SourceCache:
				summary.Cache++
			case recipe.SourceFallback:
				summary.Fallback++
				slog.Warn("Warm-up got fallback recipe", "dish", dish, "error", res.Cause)
			}
			metrics.RecipeWarmupsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", string(res.Source))))
			return nil
		}
	}

	result := RunParallel(ctx, w.parallelism, funcs)
	return summary, errors.Join(result.Errors...)
}

// normalizeDishes trims names and drops blanks and case-insensitive duplicates.
func normalizeDishes(dishes []string) []string {
	seen := make(map[string]bool, len(dishes))
	out := make([]string, 0, len(dishes))
	for _, d := range dishes {
		d = strings.TrimSpace(d)
		key := strings.ToLower(d)
		if d == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d)
	}
	return out
}
