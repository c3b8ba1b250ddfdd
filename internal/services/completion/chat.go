package completion

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	apperrors "github.com/cravebuster/cravebuster/internal/errors"
	"github.com/cravebuster/cravebuster/internal/httpclient"
	"github.com/cravebuster/cravebuster/internal/metrics"
)

// ChatProvider calls an OpenAI-compatible chat-completion endpoint.
// The underlying client is built on first use, so a provider without a
// credential can be constructed and only fails when called.
type ChatProvider struct {
	kind       ProviderType
	name       string
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client

	once   sync.Once
	client *openai.Client
}

// Option configures a ChatProvider.
type Option func(*ChatProvider)

// WithModel overrides the provider's default model.
func WithModel(model string) Option {
	return func(p *ChatProvider) {
		if model != "" {
			p.model = model
		}
	}
}

// WithBaseURL points the provider at another OpenAI-compatible endpoint.
func WithBaseURL(baseURL string) Option {
	return func(p *ChatProvider) {
		if baseURL != "" {
			p.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the instrumented HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(p *ChatProvider) {
		if c != nil {
			p.httpClient = c
		}
	}
}

// NewChatProvider creates a provider of the given type. Unknown types use the Groq endpoint.
func NewChatProvider(kind ProviderType, apiKey string, opts ...Option) *ChatProvider {
	spec, ok := providerSpecs[kind]
	if !ok {
		kind = ProviderGroq
		spec = providerSpecs[ProviderGroq]
	}
	p := &ChatProvider{
		kind:       kind,
		name:       spec.displayName,
		apiKey:     apiKey,
		model:      spec.model,
		baseURL:    spec.baseURL,
		httpClient: httpclient.InstrumentedClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func NewGroqProvider(apiKey string, opts ...Option) *ChatProvider {
	return NewChatProvider(ProviderGroq, apiKey, opts...)
}

func NewCerebrasProvider(apiKey string, opts ...Option) *ChatProvider {
	return NewChatProvider(ProviderCerebras, apiKey, opts...)
}

func NewOpenAIProvider(apiKey string, opts ...Option) *ChatProvider {
	return NewChatProvider(ProviderOpenAI, apiKey, opts...)
}

// Kind returns the provider type.
func (p *ChatProvider) Kind() ProviderType { return p.kind }

// Model returns the model identifier sent with every request.
func (p *ChatProvider) Model() string { return p.model }

// Configured reports whether the provider has a credential.
func (p *ChatProvider) Configured() bool { return p.apiKey != "" }

func (p *ChatProvider) chatClient() *openai.Client {
	p.once.Do(func() {
		cfg := openai.DefaultConfig(p.apiKey)
		cfg.BaseURL = p.baseURL
		cfg.HTTPClient = p.httpClient
		p.client = openai.NewClientWithConfig(cfg)
	})
	return p.client
}

// Complete sends the system and user prompts and returns the first choice's content.
func (p *ChatProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if !p.Configured() {
		return "", apperrors.NewConfigurationError(
			fmt.Sprintf("%s API key is not configured", p.name),
			"NO_API_KEY",
		)
	}

	startTime := time.Now()
	status := "success"
	defer func() {
		attrs := metric.WithAttributes(
			attribute.String("provider", string(p.kind)),
			attribute.String("status", status),
		)
		metrics.ExternalAPIDuration.Record(ctx, time.Since(startTime).Seconds(), attrs)
		metrics.ExternalAPICallsTotal.Add(ctx, 1, attrs)
	}()

	resp, err := p.chatClient().CreateChatCompletion(httpclient.WithUpstream(ctx, httpclient.Upstream{Provider: string(p.kind), Model: p.model}), openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		status = "error"
		return "", ClassifyError(err, string(p.kind))
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		status = "empty"
		return "", apperrors.NewProviderError("No response from AI service", "EMPTY_RESPONSE", http.StatusOK, ErrNoResponse)
	}

	return resp.Choices[0].Message.Content, nil
}
