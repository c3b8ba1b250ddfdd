package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/log/global"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationScope = "github.com/cravebuster/cravebuster"

// New returns the service logger: JSON in production, debug-level text
// everywhere else. Every record is also forwarded to the global OTel
// LoggerProvider, which is a no-op until telemetry is initialised.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter is New with an explicit destination for the local handler.
func NewWithWriter(env string, w io.Writer) *slog.Logger {
	var local slog.Handler
	if env == "production" {
		local = slog.NewJSONHandler(w, nil)
	} else {
		local = slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
	return slog.New(&bridgeHandler{local: local})
}

// WithTraceContext returns a "trace" group with trace_id and span_id, or an
// empty attr when ctx carries no valid span.
func WithTraceContext(ctx context.Context) slog.Attr {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return slog.Attr{}
	}
	return slog.Group("trace",
		slog.String("trace_id", sc.TraceID().String()),
		slog.String("span_id", sc.SpanID().String()),
	)
}

// bridgeHandler writes to local and emits the same record to OTel. Attrs
// bound with With/WithGroup are kept here as well, since the local handler
// does not expose them.
type bridgeHandler struct {
	local  slog.Handler
	attrs  []log.KeyValue
	groups []string
}

func (h *bridgeHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return h.local.Enabled(ctx, l)
}

func (h *bridgeHandler) Handle(ctx context.Context, r slog.Record) error {
	if err := h.local.Handle(ctx, r); err != nil {
		return err
	}

	var rec log.Record
	rec.SetTimestamp(r.Time)
	rec.SetBody(log.StringValue(r.Message))
	rec.SetSeverity(severity(r.Level))
	rec.SetSeverityText(r.Level.String())
	rec.AddAttributes(h.attrs...)

	var own []log.KeyValue
	r.Attrs(func(a slog.Attr) bool {
		if kv, ok := toKeyValue(a); ok {
			own = append(own, kv)
		}
		return true
	})
	rec.AddAttributes(h.nest(own)...)

	global.GetLoggerProvider().Logger(instrumentationScope).Emit(ctx, rec)
	return nil
}

func (h *bridgeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var kvs []log.KeyValue
	for _, a := range attrs {
		if kv, ok := toKeyValue(a); ok {
			kvs = append(kvs, kv)
		}
	}
	return &bridgeHandler{
		local:  h.local.WithAttrs(attrs),
		attrs:  append(append([]log.KeyValue(nil), h.attrs...), h.nest(kvs)...),
		groups: h.groups,
	}
}

func (h *bridgeHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &bridgeHandler{
		local:  h.local.WithGroup(name),
		attrs:  h.attrs,
		groups: append(append([]string(nil), h.groups...), name),
	}
}

// nest wraps kvs in the open groups, innermost last.
func (h *bridgeHandler) nest(kvs []log.KeyValue) []log.KeyValue {
	if len(kvs) == 0 {
		return nil
	}
	for i := len(h.groups) - 1; i >= 0; i-- {
		kvs = []log.KeyValue{log.Map(h.groups[i], kvs...)}
	}
	return kvs
}

func severity(l slog.Level) log.Severity {
	switch {
	case l >= slog.LevelError:
		return log.SeverityError
	case l >= slog.LevelWarn:
		return log.SeverityWarn
	case l >= slog.LevelInfo:
		return log.SeverityInfo
	default:
		return log.SeverityDebug
	}
}

// toKeyValue drops empty attrs the same way slog handlers do.
func toKeyValue(a slog.Attr) (log.KeyValue, bool) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return log.KeyValue{}, false
	}
	if a.Value.Kind() == slog.KindGroup && len(a.Value.Group()) == 0 {
		return log.KeyValue{}, false
	}
	return log.KeyValue{Key: a.Key, Value: toOTelValue(a.Value)}, true
}

func toOTelValue(v slog.Value) log.Value {
	switch v.Kind() {
	case slog.KindString:
		return log.StringValue(v.String())
	case slog.KindInt64:
		return log.Int64Value(v.Int64())
	case slog.KindUint64:
		return log.Int64Value(int64(v.Uint64()))
	case slog.KindBool:
		return log.BoolValue(v.Bool())
	case slog.KindFloat64:
		return log.Float64Value(v.Float64())
	case slog.KindDuration:
		return log.Int64Value(v.Duration().Milliseconds())
	case slog.KindTime:
		return log.StringValue(v.Time().UTC().Format("2006-01-02T15:04:05.000Z07:00"))
	case slog.KindGroup:
		var kvs []log.KeyValue
		for _, a := range v.Group() {
			if kv, ok := toKeyValue(a); ok {
				kvs = append(kvs, kv)
			}
		}
		return log.MapValue(kvs...)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return log.StringValue(err.Error())
		}
		return log.StringValue(v.String())
	default:
		return log.StringValue(v.String())
	}
}
