package metrics

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

var (
	meter = otel.Meter("cravebuster/business")

	// Instruments start as no-ops so packages and tests can record before Init runs.
	noopMeter = noop.NewMeterProvider().Meter("cravebuster/noop")

	// Recipe metrics
	RecipeGenerationsTotal metric.Int64Counter       = mustCounter(noopMeter, "noop")
	RecipeFallbacksTotal   metric.Int64Counter       = mustCounter(noopMeter, "noop")
	RecipeCacheHitsTotal   metric.Int64Counter       = mustCounter(noopMeter, "noop")
	RecipeWarmupsTotal     metric.Int64Counter       = mustCounter(noopMeter, "noop")
	ValidationFailures     metric.Int64Counter       = mustCounter(noopMeter, "noop")
	AIGenerationDuration   metric.Float64Histogram   = mustHistogram(noopMeter, "noop")
	ExternalAPICallsTotal  metric.Int64Counter       = mustCounter(noopMeter, "noop")
	ExternalAPIDuration    metric.Float64Histogram   = mustHistogram(noopMeter, "noop")
	ProviderFallbackTotal  metric.Int64Counter       = mustCounter(noopMeter, "noop")
	StateSubscribers       metric.Int64UpDownCounter = mustUpDown(noopMeter, "noop")
)

func Init() error {
	var err error

	RecipeGenerationsTotal, err = meter.Int64Counter(
		"recipe.generations.total",
		metric.WithDescription("Total number of recipe generations by variant and source"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	RecipeFallbacksTotal, err = meter.Int64Counter(
		"recipe.fallbacks.total",
		metric.WithDescription("Recipes served from the local fallback generator"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	RecipeCacheHitsTotal, err = meter.Int64Counter(
		"recipe.cache.hits.total",
		metric.WithDescription("Recipes served from the recipe cache"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	RecipeWarmupsTotal, err = meter.Int64Counter(
		"recipe.warmups.total",
		metric.WithDescription("Popular recipes generated by the warm-up worker"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	ValidationFailures, err = meter.Int64Counter(
		"recipe.validation.failures.total",
		metric.WithDescription("Requests rejected before generation"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	// AI metrics
	AIGenerationDuration, err = meter.Float64Histogram(
		"ai.generation.duration",
		metric.WithDescription("Duration of AI recipe generation"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2, 5, 10, 30, 60),
	)
	if err != nil {
		return err
	}

	// External API metrics
	ExternalAPICallsTotal, err = meter.Int64Counter(
		"external.api.calls.total",
		metric.WithDescription("Total number of external API calls"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	ExternalAPIDuration, err = meter.Float64Histogram(
		"external.api.duration",
		metric.WithDescription("Duration of external API calls"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2, 5, 10, 30),
	)
	if err != nil {
		return err
	}

	// Provider fallback metrics
	ProviderFallbackTotal, err = meter.Int64Counter(
		"provider.fallback.total",
		metric.WithDescription("Total number of provider fallback events"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	StateSubscribers, err = meter.Int64UpDownCounter(
		"recipe.state.subscribers",
		metric.WithDescription("Open recipe state subscriptions"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return err
	}

	return nil
}

func mustCounter(m metric.Meter, name string) metric.Int64Counter {
	c, _ := m.Int64Counter(name)
	return c
}

func mustHistogram(m metric.Meter, name string) metric.Float64Histogram {
	h, _ := m.Float64Histogram(name)
	return h
}

func mustUpDown(m metric.Meter, name string) metric.Int64UpDownCounter {
	c, _ := m.Int64UpDownCounter(name)
	return c
}
