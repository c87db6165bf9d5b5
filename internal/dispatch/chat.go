package dispatch

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

const (
	cloudTimeout    = 30 * time.Second
	lmstudioTimeout = 120 * time.Second
)

// chatClient speaks the OpenAI-compatible chat-completions wire format. Five
// of the supported backends share it, differing only in endpoint, timeout
// and whether a bearer token is required.
type chatClient struct {
	provider    types.Provider
	endpoint    string
	timeout     time.Duration
	requiresKey bool
	client      *http.Client
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func newChatClient(provider types.Provider, endpoint string, timeout time.Duration, requiresKey bool) *chatClient {
	return &chatClient{
		provider:    provider,
		endpoint:    endpoint,
		timeout:     timeout,
		requiresKey: requiresKey,
		client:      &http.Client{},
	}
}

func (c *chatClient) Provider() types.Provider { return c.provider }

func (c *chatClient) RequiresKey() bool { return c.requiresKey }

func (c *chatClient) Generate(ctx context.Context, req Request, model, apiKey string) (string, error) {
	body := chatRequest{
		Model:       model,
		Messages:    req.AsMessages(),
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}

	headers := map[string]string{}
	if apiKey != "" {
		headers["Authorization"] = "Bearer " + apiKey
	}

	var resp chatResponse
	if err := postJSON(ctx, c.client, c.provider, c.endpoint, headers, c.timeout, body, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", &TransportError{Provider: c.provider, StatusCode: http.StatusOK, Message: "empty choices in response"}
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
