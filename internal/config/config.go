package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultProvider = "groq"
	DefaultModel    = "llama-3.3-70b-versatile"
)

var knownProviders = map[string]bool{
	"groq":     true,
	"openai":   true,
	"cerebras": true,
}

type Config struct {
	Env            string
	ServiceName    string
	ServiceVersion string

	RedisURL string

	OtelExporterOTLPEndpoint string
	OtelExporterOTLPHeaders  string
	SentryDSN                string

	Port               string
	CORSAllowedOrigins []string

	Keys       ProviderKeys
	Generation GenerationConfig
}

// ProviderKeys holds the completion provider credentials. Any of them may be
// empty; a provider without a key degrades to fallback recipes per call.
type ProviderKeys struct {
	Groq     string
	OpenAI   string
	Cerebras string
}

// For returns the credential for the named provider.
func (k ProviderKeys) For(provider string) string {
	switch provider {
	case "groq":
		return k.Groq
	case "openai":
		return k.OpenAI
	case "cerebras":
		return k.Cerebras
	}
	return ""
}

type GenerationConfig struct {
	Provider         string `yaml:"provider"`
	Model            string `yaml:"model"`
	FallbackEnabled  bool   `yaml:"fallback_enabled"`
	FallbackProvider string `yaml:"fallback_provider"`
	SurfaceDegraded  bool   `yaml:"surface_degraded"`
	CacheTTLRaw      string `yaml:"cache_ttl"`
	TimeoutRaw       string `yaml:"request_timeout"`

	// Parsed from the raw fields by Load.
	CacheTTL       time.Duration `yaml:"-"`
	RequestTimeout time.Duration `yaml:"-"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:                      os.Getenv("ENV"),
		ServiceName:              os.Getenv("SERVICE_NAME"),
		ServiceVersion:           os.Getenv("SERVICE_VERSION"),
		RedisURL:                 os.Getenv("REDIS_URL"),
		OtelExporterOTLPEndpoint: os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		OtelExporterOTLPHeaders:  os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"),
		SentryDSN:                os.Getenv("SENTRY_DSN"),
		Port:                     os.Getenv("PORT"),
		CORSAllowedOrigins:       splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Keys: ProviderKeys{
			Groq:     os.Getenv("GROQ_API_KEY"),
			OpenAI:   os.Getenv("OPENAI_API_KEY"),
			Cerebras: os.Getenv("CEREBRAS_API_KEY"),
		},
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}
	if err := cfg.LoadFromYAML(path); err != nil {
		return nil, fmt.Errorf("failed to load YAML config: %w", err)
	}

	// Environment wins over the YAML file for the generation switches
	if v := os.Getenv("GENERATION_PROVIDER"); v != "" {
		cfg.Generation.Provider = v
	}
	if v := os.Getenv("GENERATION_MODEL"); v != "" {
		cfg.Generation.Model = v
	}
	if v := os.Getenv("SURFACE_DEGRADED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("SURFACE_DEGRADED: %w", err)
		}
		cfg.Generation.SurfaceDegraded = b
	}

	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "cravebuster"
	}
	if cfg.ServiceVersion == "" {
		cfg.ServiceVersion = "1.0.0"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	cfg.SetGenerationDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

func (c *Config) LoadFromYAML(path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File not found is not an error
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var yamlConfig struct {
		Generation GenerationConfig `yaml:"generation"`
	}

	if err := yaml.Unmarshal(data, &yamlConfig); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	g := yamlConfig.Generation
	if g.Provider != "" {
		c.Generation.Provider = g.Provider
	}
	if g.Model != "" {
		c.Generation.Model = g.Model
	}
	if g.FallbackEnabled {
		c.Generation.FallbackEnabled = true
	}
	if g.FallbackProvider != "" {
		c.Generation.FallbackProvider = g.FallbackProvider
	}
	if g.SurfaceDegraded {
		c.Generation.SurfaceDegraded = true
	}
	if g.CacheTTLRaw != "" {
		c.Generation.CacheTTLRaw = g.CacheTTLRaw
	}
	if g.TimeoutRaw != "" {
		c.Generation.TimeoutRaw = g.TimeoutRaw
	}

	return nil
}

// SetGenerationDefaults fills the generation settings that neither the
// environment nor the YAML file provided.
func (c *Config) SetGenerationDefaults() {
	if c.Generation.Provider == "" {
		c.Generation.Provider = DefaultProvider
	}
	if c.Generation.Model == "" && c.Generation.Provider == DefaultProvider {
		c.Generation.Model = DefaultModel
	}
	if c.Generation.FallbackEnabled && c.Generation.FallbackProvider == "" {
		c.Generation.FallbackProvider = "openai"
	}
	if c.Generation.CacheTTLRaw == "" {
		c.Generation.CacheTTLRaw = "24h"
	}
}

func (c *Config) validate() error {
	g := &c.Generation
	if !knownProviders[g.Provider] {
		return fmt.Errorf("unknown generation provider %q", g.Provider)
	}
	if g.FallbackEnabled {
		if !knownProviders[g.FallbackProvider] {
			return fmt.Errorf("unknown fallback provider %q", g.FallbackProvider)
		}
		if g.FallbackProvider == g.Provider {
			return fmt.Errorf("fallback provider must differ from provider %q", g.Provider)
		}
	}

	ttl, err := time.ParseDuration(g.CacheTTLRaw)
	if err != nil {
		return fmt.Errorf("invalid generation.cache_ttl: %w", err)
	}
	g.CacheTTL = ttl

	if g.TimeoutRaw != "" {
		timeout, err := time.ParseDuration(g.TimeoutRaw)
		if err != nil {
			return fmt.Errorf("invalid generation.request_timeout: %w", err)
		}
		g.RequestTimeout = timeout
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
