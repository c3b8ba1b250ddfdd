// Package httpclient builds the outbound HTTP clients used for completion
// providers. Requests are traced with otelhttp and tagged with the upstream
// provider and model taken from the request context.
package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTransport is the base transport used by the instrumented client.
var DefaultTransport = http.DefaultTransport

// Upstream identifies the completion provider a request is sent to.
type Upstream struct {
	Provider string
	Model    string
}

type upstreamKey struct{}

// WithUpstream tags outbound requests made with ctx.
func WithUpstream(ctx context.Context, u Upstream) context.Context {
	return context.WithValue(ctx, upstreamKey{}, u)
}

// UpstreamFrom returns the tag stored by WithUpstream.
func UpstreamFrom(ctx context.Context) (Upstream, bool) {
	u, ok := ctx.Value(upstreamKey{}).(Upstream)
	return u, ok && u.Provider != ""
}

type upstreamTransport struct {
	base http.RoundTripper
}

func (t *upstreamTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	span := trace.SpanFromContext(req.Context())
	if u, ok := UpstreamFrom(req.Context()); ok {
		span.SetAttributes(attribute.String("gen_ai.system", u.Provider))
		if u.Model != "" {
			span.SetAttributes(attribute.String("gen_ai.request.model", u.Model))
		}
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	// 429s are expected under load and handled by the provider chain.
	if resp.StatusCode >= 400 && resp.StatusCode != http.StatusTooManyRequests {
		span.SetStatus(codes.Error, fmt.Sprintf("upstream answered %d", resp.StatusCode))
	}
	return resp, nil
}

func spanName(_ string, r *http.Request) string {
	if u, ok := UpstreamFrom(r.Context()); ok {
		return fmt.Sprintf("%s chat %s", u.Provider, r.URL.Path)
	}
	return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
}

// InstrumentedClient has no client-side timeout; completion calls are
// bounded by their context.
var InstrumentedClient = NewInstrumentedClient(0)

// NewInstrumentedClient returns a traced client. A zero timeout means no limit.
func NewInstrumentedClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(&upstreamTransport{base: DefaultTransport},
			otelhttp.WithSpanNameFormatter(spanName)),
		Timeout: timeout,
	}
}
