package dispatch

import (
	"context"
	"log"
	"time"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

// Default endpoints for each backend. Options.Endpoints overrides these,
// which is how tests point clients at httptest servers.
const (
	defaultOllamaBaseURL      = "http://localhost:11434"
	defaultLMStudioEndpoint   = "http://localhost:1234/v1/chat/completions"
	defaultOpenAIEndpoint     = "https://api.openai.com/v1/chat/completions"
	defaultGroqEndpoint       = "https://api.groq.com/openai/v1/chat/completions"
	defaultDeepSeekEndpoint   = "https://api.deepseek.com/chat/completions"
	defaultOpenRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"
	defaultQwenEndpoint       = "https://dashscope.aliyuncs.com/api/v1/services/aigc/text-generation/generation"
)

// defaultModels maps each provider to the model used when the caller
// supplies none.
var defaultModels = map[types.Provider]string{
	types.ProviderOllama:     "llama3.1",
	types.ProviderOpenAI:     "gpt-4o-mini",
	types.ProviderGroq:       "llama-3.1-8b-instant",
	types.ProviderDeepSeek:   "deepseek-chat",
	types.ProviderQwen:       "qwen-turbo",
	types.ProviderOpenRouter: "meta-llama/llama-3.1-8b-instruct:free",
	types.ProviderLMStudio:   "local-model",
}

// ProviderClient is the capability one backend implementation exposes. One
// implementation exists per provider, registered in the dispatcher's table;
// the table is closed, so an unknown provider can never reach a client.
type ProviderClient interface {
	Provider() types.Provider
	RequiresKey() bool
	Generate(ctx context.Context, req Request, model, apiKey string) (string, error)
}

// Options configures a Dispatcher. Keys is the read-only credential table
// loaded once at process start; Endpoints overrides provider URLs.
type Options struct {
	Keys      map[types.Provider]string
	Policy    DeploymentPolicy
	Endpoints map[types.Provider]string
}

// Dispatcher routes generation requests to the configured provider clients.
// It holds no per-request state and is safe for concurrent use.
type Dispatcher struct {
	clients map[types.Provider]ProviderClient
	keys    map[types.Provider]string
	policy  DeploymentPolicy
}

// New builds a Dispatcher with one client per supported provider.
func New(opts Options) *Dispatcher {
	endpoint := func(p types.Provider, def string) string {
		if u, ok := opts.Endpoints[p]; ok && u != "" {
			return u
		}
		return def
	}

	clients := map[types.Provider]ProviderClient{
		types.ProviderOllama:     newOllamaClient(endpoint(types.ProviderOllama, defaultOllamaBaseURL)),
		types.ProviderLMStudio:   newChatClient(types.ProviderLMStudio, endpoint(types.ProviderLMStudio, defaultLMStudioEndpoint), lmstudioTimeout, false),
		types.ProviderOpenAI:     newChatClient(types.ProviderOpenAI, endpoint(types.ProviderOpenAI, defaultOpenAIEndpoint), cloudTimeout, true),
		types.ProviderGroq:       newChatClient(types.ProviderGroq, endpoint(types.ProviderGroq, defaultGroqEndpoint), cloudTimeout, true),
		types.ProviderDeepSeek:   newChatClient(types.ProviderDeepSeek, endpoint(types.ProviderDeepSeek, defaultDeepSeekEndpoint), cloudTimeout, true),
		types.ProviderOpenRouter: newChatClient(types.ProviderOpenRouter, endpoint(types.ProviderOpenRouter, defaultOpenRouterEndpoint), cloudTimeout, true),
		types.ProviderQwen:       newQwenClient(endpoint(types.ProviderQwen, defaultQwenEndpoint)),
	}

	keys := make(map[types.Provider]string, len(opts.Keys))
	for p, k := range opts.Keys {
		keys[p] = k
	}

	policy := opts.Policy
	if policy.AutoSubstituteLocalProvider && len(policy.SubstitutionPriority) == 0 {
		policy.SubstitutionPriority = DefaultSubstitutionPriority()
	}

	return &Dispatcher{clients: clients, keys: keys, policy: policy}
}

// Dispatch sends the request to the provider named by cfg and returns the
// cleaned text response. It validates the provider, resolves credentials,
// applies the two documented substitutions, and strips a single outer code
// fence from the result. Transport failures surface as *TransportError.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request, cfg types.ModelConfig) (string, error) {
	if req.Empty() {
		return "", &EmptyInputError{Field: "prompt"}
	}

	provider, ok := types.ParseProvider(string(cfg.Provider))
	if !ok {
		return "", &UnsupportedProviderError{Requested: string(cfg.Provider)}
	}

	// Hosted deployments have no local inference server; requests for it are
	// served by the first credentialed cloud provider instead.
	if provider == types.ProviderOllama && d.policy.AutoSubstituteLocalProvider {
		if sub, ok := d.firstCredentialed(); ok {
			log.Printf("dispatch: hosted mode, substituting %s for ollama", sub)
			provider = sub
			cfg.Model = ""
			cfg.APIKey = ""
		}
	}

	client := d.clients[provider]
	apiKey := d.resolveKey(provider, cfg)

	if client.RequiresKey() && apiKey == "" {
		// Groq is the free-tier default in UI flows; with the flag on, a
		// credential-less groq request runs locally instead of failing.
		if provider == types.ProviderGroq && d.policy.AllowFallbackToLocal {
			log.Printf("dispatch: no groq credential, falling back to ollama")
			provider = types.ProviderOllama
			client = d.clients[provider]
			cfg.Model = ""
		} else {
			return "", &MissingCredentialError{Provider: provider}
		}
	}

	model := cfg.Model
	if model == "" {
		model = defaultModels[provider]
	}

	start := time.Now()
	text, err := client.Generate(ctx, req, model, apiKey)
	if err != nil {
		return "", err
	}
	log.Printf("dispatch: %s/%s responded in %v", provider, model, time.Since(start))

	return StripCodeFence(text), nil
}

// resolveKey resolves the credential for a provider: explicit key on the
// request config first, then the table loaded from <PROVIDER>_API_KEY.
func (d *Dispatcher) resolveKey(provider types.Provider, cfg types.ModelConfig) string {
	if cfg.APIKey != "" {
		return cfg.APIKey
	}
	return d.keys[provider]
}

// firstCredentialed walks the substitution priority and returns the first
// provider with a configured credential.
func (d *Dispatcher) firstCredentialed() (types.Provider, bool) {
	for _, p := range d.policy.SubstitutionPriority {
		if d.keys[p] != "" && d.clients[p] != nil {
			return p, true
		}
	}
	return "", false
}

// HasCredential reports whether a credential is configured for the provider.
// Local providers always report true.
func (d *Dispatcher) HasCredential(p types.Provider) bool {
	if p.IsLocal() {
		return true
	}
	return d.keys[p] != ""
}

// DefaultModel returns the model used for a provider when the caller does
// not name one.
func DefaultModel(p types.Provider) string {
	return defaultModels[p]
}
