package sentry

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_EmptyDSNIsNoop(t *testing.T) {
	assert.NoError(t, Init("", "test", "cravebuster", "1.0.0"))
}

func TestCaptureError_WithoutClient(t *testing.T) {
	assert.NotPanics(t, func() {
		CaptureError(context.Background(), errors.New("fallback exploded"), map[string]string{"variant": "popular"})
		CaptureError(context.Background(), nil, nil)
	})
}

func TestHTTPMiddleware_RecoversPanics(t *testing.T) {
	handler := HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recipes", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHTTPMiddleware_PassesThrough(t *testing.T) {
	handler := HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/recipes", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestHTTPMiddleware_KeepsFlusher(t *testing.T) {
	var flushable bool
	handler := HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, flushable = w.(http.Flusher)
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/recipes/events", nil))
	assert.True(t, flushable)
}

func TestHTTPMiddleware_PanicAfterWrite(t *testing.T) {
	handler := HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		panic("late boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
