package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTelemetry_NoEndpoint(t *testing.T) {
	shutdown, err := InitTelemetry(context.Background(), "test-service", "v1.0.0", "test", "", nil)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))
}

func TestResolveEndpoint(t *testing.T) {
	tests := []struct {
		raw  string
		want endpoint
	}{
		{
			raw:  "https://otlp.example.com",
			want: endpoint{host: "otlp.example.com", tracePath: "/v1/traces", logPath: "/v1/logs", metricPath: "/v1/metrics"},
		},
		{
			raw:  "http://localhost:4318",
			want: endpoint{host: "localhost:4318", insecure: true, tracePath: "/v1/traces", logPath: "/v1/logs", metricPath: "/v1/metrics"},
		},
		{
			raw:  "https://collector.example.com/otlp/",
			want: endpoint{host: "collector.example.com", tracePath: "/otlp/v1/traces", logPath: "/otlp/v1/logs", metricPath: "/otlp/v1/metrics"},
		},
		{
			raw:  "https://collector.example.com/api/v1/traces",
			want: endpoint{host: "collector.example.com", tracePath: "/api/v1/traces", logPath: "/api/v1/logs", metricPath: "/api/v1/metrics"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveEndpoint(tt.raw))
		})
	}
}

func TestParseHeaders(t *testing.T) {
	got := ParseHeaders("Authorization=Bearer abc, x-team = kitchen,broken,=empty")
	assert.Equal(t, map[string]string{
		"Authorization": "Bearer abc",
		"x-team":        "kitchen",
	}, got)
	assert.Empty(t, ParseHeaders(""))
}

func TestTracer(t *testing.T) {
	assert.NotNil(t, Tracer("test-tracer"))
}
