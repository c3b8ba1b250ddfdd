package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType defines the category of the error
type ErrorType string

const (
	ErrorTypeValidation    ErrorType = "VALIDATION_ERROR"
	ErrorTypeConfiguration ErrorType = "CONFIGURATION_ERROR"
	ErrorTypeProvider      ErrorType = "PROVIDER_ERROR"
	ErrorTypeParse         ErrorType = "PARSE_ERROR"
	ErrorTypeFallback      ErrorType = "FALLBACK_ERROR"
	ErrorTypeRateLimit     ErrorType = "RATE_LIMIT_ERROR"
	ErrorTypeInternal      ErrorType = "INTERNAL_ERROR"
)

// User-facing messages shown by the mobile client for provider failures.
var APIMessages = map[string]string{
	"NO_API_KEY":      "API key not configured. Please set up your Groq API key.",
	"INVALID_API_KEY": "Invalid API key. Please check your Groq API key.",
	"RATE_LIMIT":      "Rate limit exceeded. Please try again later.",
	"NETWORK_ERROR":   "Network error. Please check your internet connection.",
	"GENERIC_ERROR":   "Something went wrong. Please try again.",
}

// AppError represents a structured error for the application
type AppError struct {
	Type          ErrorType `json:"type"`
	Message       string    `json:"message"`
	StatusCode    int       `json:"statusCode"`
	ErrorCode     string    `json:"errorCode"`
	IsOperational bool      `json:"isOperational"`
	Recovery      string    `json:"recoverySuggestion,omitempty"`
	Err           error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Code returns the application-specific error code
func (e *AppError) Code() string {
	return e.ErrorCode
}

// RecoverySuggestion returns the suggestion on how to recover from the error
func (e *AppError) RecoverySuggestion() string {
	return e.Recovery
}

// IsRetryable reports whether another provider (or a later attempt) may succeed.
func (e *AppError) IsRetryable() bool {
	switch e.Type {
	case ErrorTypeRateLimit, ErrorTypeConfiguration:
		return true
	case ErrorTypeProvider:
		// 0 means the request never got a response (network failure)
		return e.StatusCode == 0 || e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
	default:
		return false
	}
}

// NewValidationError creates a new validation error (422)
func NewValidationError(message string, errorCode string, suggestion string) *AppError {
	return &AppError{
		Type:          ErrorTypeValidation,
		Message:       message,
		StatusCode:    http.StatusUnprocessableEntity,
		ErrorCode:     errorCode,
		IsOperational: true,
		Recovery:      suggestion,
	}
}

// NewConfigurationError reports a provider that cannot be called, usually a missing credential.
func NewConfigurationError(message string, errorCode string) *AppError {
	return &AppError{
		Type:          ErrorTypeConfiguration,
		Message:       message,
		StatusCode:    http.StatusServiceUnavailable,
		ErrorCode:     errorCode,
		IsOperational: true,
		Recovery:      "Set the provider API key in the environment or config.yaml.",
	}
}

// NewProviderError wraps a failed completion call. statusCode is the upstream
// HTTP status, or 0 when no response was received.
func NewProviderError(message string, errorCode string, statusCode int, err error) *AppError {
	return &AppError{
		Type:          ErrorTypeProvider,
		Message:       message,
		StatusCode:    statusCode,
		ErrorCode:     errorCode,
		IsOperational: true,
		Recovery:      "Wait for the AI service to become available and try again.",
		Err:           err,
	}
}

// NewParseError reports a model reply that did not contain a usable recipe.
func NewParseError(message string, errorCode string, err error) *AppError {
	return &AppError{
		Type:          ErrorTypeParse,
		Message:       message,
		StatusCode:    http.StatusBadGateway,
		ErrorCode:     errorCode,
		IsOperational: true,
		Err:           err,
	}
}

// NewFallbackError reports a failure of the local fallback generator.
func NewFallbackError(message string, errorCode string, err error) *AppError {
	return &AppError{
		Type:          ErrorTypeFallback,
		Message:       message,
		StatusCode:    http.StatusInternalServerError,
		ErrorCode:     errorCode,
		IsOperational: false,
		Err:           err,
	}
}

// TypeOf returns the ErrorType of the first AppError in err's chain,
// or ErrorTypeInternal when there is none.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

func IsValidation(err error) bool { return err != nil && TypeOf(err) == ErrorTypeValidation }

func IsFallback(err error) bool { return err != nil && TypeOf(err) == ErrorTypeFallback }

// AsAppError returns the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
