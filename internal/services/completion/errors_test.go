package completion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	apperrors "github.com/cravebuster/cravebuster/internal/errors"
)

func TestClassifyError_RateLimit(t *testing.T) {
	testCases := []error{
		errors.New("rate limit exceeded"),
		errors.New("Too Many Requests"),
		&openai.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "slow down"},
	}

	for _, tc := range testCases {
		appErr := ClassifyError(tc, "groq")
		if appErr.Code() != "RATE_LIMIT" {
			t.Errorf("Expected RATE_LIMIT for '%v', got %s", tc, appErr.Code())
		}
		if appErr.Message != "Rate limit exceeded. Please try again later." {
			t.Errorf("Unexpected message %q", appErr.Message)
		}
		if !appErr.IsRetryable() {
			t.Errorf("Expected rate limit to be retryable for '%v'", tc)
		}
	}
}

func TestClassifyError_StatusCodes(t *testing.T) {
	testCases := []struct {
		err  error
		want string
	}{
		{&openai.APIError{HTTPStatusCode: 401}, "INVALID_API_KEY"},
		{&openai.APIError{HTTPStatusCode: 403}, "INVALID_API_KEY"},
		{&openai.APIError{HTTPStatusCode: 500}, "SERVER_ERROR"},
		{&openai.RequestError{HTTPStatusCode: 502, Err: errors.New("bad gateway")}, "SERVER_ERROR"},
		{&openai.APIError{HTTPStatusCode: 404}, "CLIENT_ERROR"},
		{errors.New("dial tcp: connection refused"), "NETWORK_ERROR"},
	}

	for _, tc := range testCases {
		got := ClassifyError(tc.err, "groq")
		if got.Code() != tc.want {
			t.Errorf("ClassifyError(%v) = %s, want %s", tc.err, got.Code(), tc.want)
		}
	}
}

func TestClassifyError_PassesAppErrorsThrough(t *testing.T) {
	orig := apperrors.NewConfigurationError("no key", "NO_API_KEY")
	if got := ClassifyError(fmt.Errorf("wrapped: %w", orig), "groq"); got != orig {
		t.Errorf("Expected the original AppError, got %v", got)
	}
	if ClassifyError(nil, "groq") != nil {
		t.Error("Expected nil for nil error")
	}
}

func TestIsRetryableError(t *testing.T) {
	if IsRetryableError(nil) {
		t.Error("nil must not be retryable")
	}
	if IsRetryableError(ClassifyError(context.Canceled, "groq")) {
		t.Error("cancelled requests must not be retried on another provider")
	}
	if !IsRetryableError(errors.New("connection reset by peer")) {
		t.Error("network failures should be retryable")
	}
	if IsRetryableError(apperrors.NewParseError("bad", "INVALID_JSON", nil)) {
		t.Error("parse errors are not a provider problem")
	}
}

func TestKind(t *testing.T) {
	if Kind(errors.New("plain")) != "unknown" {
		t.Error("plain errors are unknown")
	}
	if Kind(ClassifyError(&openai.APIError{HTTPStatusCode: 503}, "groq")) != "server_error" {
		t.Error("expected server_error")
	}
}
