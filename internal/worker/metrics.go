package worker

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("cravebuster/worker")

// WarmMetrics records one data point per warm-up run.
type WarmMetrics struct {
	runs     metric.Int64Counter
	duration metric.Float64Histogram
	dishes   metric.Int64Histogram
}

func NewWarmMetrics() (*WarmMetrics, error) {
	runs, err := meter.Int64Counter(
		"warmup.runs.total",
		metric.WithDescription("Warm-up tasks processed, by status"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram(
		"warmup.run.duration",
		metric.WithDescription("Wall time of a warm-up task"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 30, 60, 120, 300),
	)
	if err != nil {
		return nil, err
	}

	dishes, err := meter.Int64Histogram(
		"warmup.run.dishes",
		metric.WithDescription("Dishes handled per warm-up task"),
		metric.WithUnit("1"),
		metric.WithExplicitBucketBoundaries(1, 5, 10, 20, 50),
	)
	if err != nil {
		return nil, err
	}

	return &WarmMetrics{runs: runs, duration: duration, dishes: dishes}, nil
}

// RecordRun is a no-op on a nil receiver.
func (m *WarmMetrics) RecordRun(ctx context.Context, status string, summary WarmSummary, elapsed time.Duration) {
	if m == nil {
		return
	}
	statusAttr := metric.WithAttributes(attribute.String("status", status))
	m.runs.Add(ctx, 1, statusAttr)
	m.duration.Record(ctx, elapsed.Seconds(), statusAttr)
	if n := summary.Total(); n > 0 {
		m.dishes.Record(ctx, int64(n))
	}
}
