package completion

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	apperrors "github.com/cravebuster/cravebuster/internal/errors"
	"github.com/cravebuster/cravebuster/internal/metrics"
)

// FallbackProvider implements Client by trying Primary and, on a retryable
// failure, Secondary.
type FallbackProvider struct {
	Primary   Client
	Secondary Client
}

// NewFallbackProvider creates a new fallback provider
func NewFallbackProvider(primary, secondary Client) *FallbackProvider {
	return &FallbackProvider{
		Primary:   primary,
		Secondary: secondary,
	}
}

// Complete tries the primary provider first, falls back to secondary on retryable errors
func (f *FallbackProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	content, err := f.Primary.Complete(ctx, systemPrompt, userPrompt)
	if err == nil {
		return content, nil
	}

	if !IsRetryableError(err) {
		slog.Info("Primary provider failed with non-retryable error, not attempting fallback",
			"error_type", Kind(err),
			"error", err.Error())
		return "", err
	}

	slog.Info("Primary provider failed with retryable error, attempting fallback",
		"error_type", Kind(err),
		"error", err.Error())

	metrics.ProviderFallbackTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("from_provider", providerName(f.Primary)),
		attribute.String("to_provider", providerName(f.Secondary)),
		attribute.String("reason", Kind(err)),
	))

	content, fallbackErr := f.Secondary.Complete(ctx, systemPrompt, userPrompt)
	if fallbackErr == nil {
		slog.Info("Fallback provider succeeded", "primary_error_type", Kind(err))
		return content, nil
	}

	slog.Error("Both primary and secondary providers failed",
		"primary_error_type", Kind(err),
		"primary_error", err.Error(),
		"fallback_error_type", Kind(fallbackErr),
		"fallback_error", fallbackErr.Error())

	status := 0
	var appErr *apperrors.AppError
	if errors.As(fallbackErr, &appErr) {
		status = appErr.StatusCode
	}
	return "", apperrors.NewProviderError(
		"both primary and secondary providers failed",
		"PROVIDER_FALLBACK_FAILED",
		status,
		errors.Join(err, fallbackErr),
	)
}

func providerName(c Client) string {
	if p, ok := c.(*ChatProvider); ok {
		return string(p.Kind())
	}
	return "custom"
}
