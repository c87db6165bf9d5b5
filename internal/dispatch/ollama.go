package dispatch

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

const (
	ollamaGenerateTimeout = 180 * time.Second
	ollamaPullTimeout     = 5 * time.Minute
	ollamaRegistryTimeout = 10 * time.Second
)

// ollamaClient talks to a local Ollama server. Before generating it checks
// the model registry and pulls the model on demand if absent; registry and
// pull failures are non-fatal, the generate call carries its own diagnostic
// if the model truly is unavailable.
type ollamaClient struct {
	baseURL string
	client  *http.Client
}

type ollamaTagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}

func newOllamaClient(baseURL string) *ollamaClient {
	return &ollamaClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

func (c *ollamaClient) Provider() types.Provider { return types.ProviderOllama }

func (c *ollamaClient) RequiresKey() bool { return false }

func (c *ollamaClient) Generate(ctx context.Context, req Request, model, _ string) (string, error) {
	c.ensureModel(ctx, model)

	body := ollamaGenerateRequest{
		Model:  model,
		Prompt: req.AsPrompt(),
		Stream: false,
	}
	var resp ollamaGenerateResponse
	if err := postJSON(ctx, c.client, types.ProviderOllama, c.baseURL+"/api/generate", nil, ollamaGenerateTimeout, body, &resp); err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Response), nil
}

// ensureModel pulls the requested model if the local registry does not have
// it. Best effort only: a connection failure here must not block generation.
func (c *ollamaClient) ensureModel(ctx context.Context, model string) {
	if c.hasModel(ctx, model) {
		return
	}

	log.Printf("ollama: model %s not in local registry, pulling", model)
	pullCtx, cancel := context.WithTimeout(ctx, ollamaPullTimeout)
	defer cancel()

	body := map[string]any{"name": model, "stream": false}
	var out map[string]any
	if err := postJSON(pullCtx, c.client, types.ProviderOllama, c.baseURL+"/api/pull", nil, ollamaPullTimeout, body, &out); err != nil {
		log.Printf("ollama: pull of %s failed, proceeding to generate: %v", model, err)
	}
}

func (c *ollamaClient) hasModel(ctx context.Context, model string) bool {
	ctx, cancel := context.WithTimeout(ctx, ollamaRegistryTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return false
	}

	var tags ollamaTagsResponse
	if err := decodeJSON(resp, &tags); err != nil {
		return false
	}
	for _, m := range tags.Models {
		if m.Name == model || strings.TrimSuffix(m.Name, ":latest") == model {
			return true
		}
	}
	return false
}
