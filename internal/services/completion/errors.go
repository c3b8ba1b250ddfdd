package completion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	apperrors "github.com/cravebuster/cravebuster/internal/errors"
)

// ErrNoResponse is wrapped when the provider answers without any content.
var ErrNoResponse = errors.New("no response from AI service")

// ClassifyError turns a failed completion call into a provider AppError whose
// ErrorCode is one of RATE_LIMIT, INVALID_API_KEY, SERVER_ERROR, CLIENT_ERROR,
// NETWORK_ERROR or GENERIC_ERROR. Errors that are already AppErrors pass through.
func ClassifyError(err error, provider string) *apperrors.AppError {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	status := statusCode(err)
	msg := strings.ToLower(err.Error())

	var code string
	switch {
	case status == http.StatusTooManyRequests || containsAny(msg, "rate limit", "too many requests"):
		code = "RATE_LIMIT"
		status = http.StatusTooManyRequests
	case status == http.StatusUnauthorized || status == http.StatusForbidden || containsAny(msg, "invalid api key", "unauthorized"):
		code = "INVALID_API_KEY"
	case status >= 500:
		code = "SERVER_ERROR"
	case status >= 400:
		code = "CLIENT_ERROR"
	case status == 0:
		code = "NETWORK_ERROR"
	default:
		code = "GENERIC_ERROR"
	}

	return apperrors.NewProviderError(messageFor(code), code, status, fmt.Errorf("%s: %w", provider, err))
}

// Kind returns a short classification label for metrics and logs.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		return "unknown"
	}
	switch appErr.Type {
	case apperrors.ErrorTypeConfiguration:
		return "unconfigured"
	case apperrors.ErrorTypeParse:
		return "parse"
	case apperrors.ErrorTypeRateLimit:
		return "rate_limit"
	}
	switch appErr.ErrorCode {
	case "RATE_LIMIT":
		return "rate_limit"
	case "INVALID_API_KEY":
		return "auth"
	case "SERVER_ERROR":
		return "server_error"
	case "CLIENT_ERROR":
		return "client_error"
	case "NETWORK_ERROR":
		return "network"
	case "EMPTY_RESPONSE":
		return "empty_response"
	}
	return "unknown"
}

// IsRetryableError reports whether another provider may succeed where this one failed.
func IsRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.IsRetryable()
	}
	return ClassifyError(err, "").IsRetryable()
}

func statusCode(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	return 0
}

func messageFor(code string) string {
	if msg, ok := apperrors.APIMessages[code]; ok {
		return msg
	}
	return apperrors.APIMessages["GENERIC_ERROR"]
}

func containsAny(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
