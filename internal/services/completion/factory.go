package completion

import (
	"log/slog"

	"github.com/cravebuster/cravebuster/internal/config"
	"github.com/cravebuster/cravebuster/internal/httpclient"
)

// NewProvider creates the completion client described by cfg.
// It can optionally wrap the provider in a fallback wrapper if enabled.
// Missing credentials are logged, never fatal: calls to an unconfigured
// provider fail with a configuration error and callers degrade per call.
func NewProvider(cfg config.GenerationConfig, keys config.ProviderKeys) Client {
	var opts []Option
	if cfg.RequestTimeout > 0 {
		opts = append(opts, WithHTTPClient(httpclient.NewInstrumentedClient(cfg.RequestTimeout)))
	}

	primaryKind := ProviderType(cfg.Provider)
	primary := NewChatProvider(primaryKind, keys.For(cfg.Provider), append(opts, WithModel(cfg.Model))...)
	warnIfUnconfigured(primary)

	if !cfg.FallbackEnabled {
		return primary
	}

	// The configured model belongs to the primary provider; the secondary keeps its own default.
	secondary := NewChatProvider(ProviderType(cfg.FallbackProvider), keys.For(cfg.FallbackProvider), opts...)
	warnIfUnconfigured(secondary)

	return NewFallbackProvider(primary, secondary)
}

func warnIfUnconfigured(p *ChatProvider) {
	if !p.Configured() {
		slog.Warn("Completion provider API key not configured. AI features will use fallback recipes.",
			"provider", string(p.Kind()))
	}
}
