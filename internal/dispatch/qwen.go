package dispatch

import (
	"context"
	"net/http"
	"strings"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

// qwenClient talks to the DashScope text-generation API. Unlike the other
// cloud backends it does not use the OpenAI envelope: messages go inside an
// input object and the text comes back under output.text.
type qwenClient struct {
	endpoint string
	client   *http.Client
}

type qwenRequest struct {
	Model string `json:"model"`
	Input struct {
		Messages []Message `json:"messages"`
	} `json:"input"`
	Parameters struct {
		MaxTokens    int     `json:"max_tokens,omitempty"`
		Temperature  float64 `json:"temperature,omitempty"`
		ResultFormat string  `json:"result_format"`
	} `json:"parameters"`
}

type qwenResponse struct {
	Output struct {
		Text string `json:"text"`
	} `json:"output"`
}

func newQwenClient(endpoint string) *qwenClient {
	return &qwenClient{endpoint: endpoint, client: &http.Client{}}
}

func (c *qwenClient) Provider() types.Provider { return types.ProviderQwen }

func (c *qwenClient) RequiresKey() bool { return true }

func (c *qwenClient) Generate(ctx context.Context, req Request, model, apiKey string) (string, error) {
	var body qwenRequest
	body.Model = model
	body.Input.Messages = req.AsMessages()
	body.Parameters.MaxTokens = req.MaxTokens
	body.Parameters.Temperature = req.Temperature
	body.Parameters.ResultFormat = "text"

	headers := map[string]string{"Authorization": "Bearer " + apiKey}

	var resp qwenResponse
	if err := postJSON(ctx, c.client, types.ProviderQwen, c.endpoint, headers, cloudTimeout, body, &resp); err != nil {
		return "", err
	}
	if resp.Output.Text == "" {
		return "", &TransportError{Provider: types.ProviderQwen, StatusCode: http.StatusOK, Message: "empty output in response"}
	}
	return strings.TrimSpace(resp.Output.Text), nil
}
