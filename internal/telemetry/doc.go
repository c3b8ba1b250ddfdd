// Package telemetry provides OpenTelemetry initialization and helpers
// for the cravebuster server and warm-up worker.
//
// Traces, logs and metrics are exported over OTLP/HTTP to the collector
// named by OTEL_EXPORTER_OTLP_ENDPOINT. Without an endpoint the global
// providers stay no-ops.
package telemetry
