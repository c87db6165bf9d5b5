package types

import "strings"

// Provider identifies one of the supported LLM backends.
type Provider string

// Provider constants define the supported backends. Ollama and LM Studio are
// local inference servers; the rest are cloud APIs.
const (
	ProviderOllama     Provider = "ollama"
	ProviderOpenAI     Provider = "openai"
	ProviderGroq       Provider = "groq"
	ProviderDeepSeek   Provider = "deepseek"
	ProviderQwen       Provider = "qwen"
	ProviderOpenRouter Provider = "openrouter"
	ProviderLMStudio   Provider = "lmstudio"
)

// AllProviders returns the supported providers in a stable order.
func AllProviders() []Provider {
	return []Provider{
		ProviderOllama,
		ProviderOpenAI,
		ProviderGroq,
		ProviderDeepSeek,
		ProviderQwen,
		ProviderOpenRouter,
		ProviderLMStudio,
	}
}

// ParseProvider returns the Provider for s and whether it is supported.
func ParseProvider(s string) (Provider, bool) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllProviders() {
		if p == known {
			return p, true
		}
	}
	return "", false
}

// IsLocal reports whether the provider is a local inference server that
// requires no API credential.
func (p Provider) IsLocal() bool {
	return p == ProviderOllama || p == ProviderLMStudio
}

// CredentialEnvVar returns the environment variable consulted when no
// explicit API key is supplied, e.g. OPENAI_API_KEY.
func (p Provider) CredentialEnvVar() string {
	return strings.ToUpper(string(p)) + "_API_KEY"
}

// ModelConfig selects which backend serves a single request. It is built
// per-request from user settings or environment fallback and never persisted.
type ModelConfig struct {
	Provider Provider `json:"provider" validate:"required"`
	Model    string   `json:"model,omitempty"`
	APIKey   string   `json:"apiKey,omitempty"`
}
