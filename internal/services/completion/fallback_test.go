package completion

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/cravebuster/cravebuster/internal/errors"
)

type MockClient struct {
	mock.Mock
}

func (m *MockClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

func TestFallbackProvider_PrimarySucceeds(t *testing.T) {
	primary, secondary := new(MockClient), new(MockClient)
	primary.On("Complete", mock.Anything, "sys", "user").Return("ok", nil)

	got, err := NewFallbackProvider(primary, secondary).Complete(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	secondary.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestFallbackProvider_RetryableFallsBack(t *testing.T) {
	primary, secondary := new(MockClient), new(MockClient)
	primary.On("Complete", mock.Anything, "sys", "user").
		Return("", apperrors.NewConfigurationError("Groq API key is not configured", "NO_API_KEY"))
	secondary.On("Complete", mock.Anything, "sys", "user").Return("from secondary", nil)

	got, err := NewFallbackProvider(primary, secondary).Complete(context.Background(), "sys", "user")
	require.NoError(t, err)
	assert.Equal(t, "from secondary", got)
	secondary.AssertNumberOfCalls(t, "Complete", 1)
}

func TestFallbackProvider_NonRetryableReturnsOriginal(t *testing.T) {
	primary, secondary := new(MockClient), new(MockClient)
	authErr := apperrors.NewProviderError(apperrors.APIMessages["INVALID_API_KEY"], "INVALID_API_KEY", 401, nil)
	primary.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", authErr)

	_, err := NewFallbackProvider(primary, secondary).Complete(context.Background(), "sys", "user")
	assert.Same(t, authErr, err)
	secondary.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestFallbackProvider_BothFail(t *testing.T) {
	primary, secondary := new(MockClient), new(MockClient)
	primary.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", apperrors.NewProviderError("down", "SERVER_ERROR", 503, nil))
	secondary.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", apperrors.NewProviderError("limited", "RATE_LIMIT", 429, nil))

	_, err := NewFallbackProvider(primary, secondary).Complete(context.Background(), "sys", "user")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PROVIDER_FALLBACK_FAILED", appErr.Code())
	assert.Equal(t, 429, appErr.StatusCode)
}
