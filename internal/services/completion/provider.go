package completion

import "context"

// ProviderType represents the type of completion provider
type ProviderType string

const (
	ProviderGroq     ProviderType = "groq"
	ProviderCerebras ProviderType = "cerebras"
	ProviderOpenAI   ProviderType = "openai"
)

// Client sends one system+user message pair to a chat-completion endpoint
// and returns the text of the first choice.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type providerSpec struct {
	displayName string
	baseURL     string
	model       string
}

// OpenAI-compatible endpoints. Groq is the default provider.
var providerSpecs = map[ProviderType]providerSpec{
	ProviderGroq:     {displayName: "Groq", baseURL: "https://api.groq.com/openai/v1", model: "llama-3.3-70b-versatile"},
	ProviderCerebras: {displayName: "Cerebras", baseURL: "https://api.cerebras.ai/v1", model: "gpt-oss-120b"},
	ProviderOpenAI:   {displayName: "OpenAI", baseURL: "https://api.openai.com/v1", model: "gpt-4o-mini"},
}
