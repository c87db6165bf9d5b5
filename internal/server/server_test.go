package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/config"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

// newOllamaStub serves the minimal Ollama API surface with the given
// generate reply.
func newOllamaStub(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			json.NewEncoder(w).Encode(map[string]any{
				"models": []map[string]any{{"name": "llama3.1:latest"}},
			})
		case "/api/generate":
			json.NewEncoder(w).Encode(map[string]string{"response": reply})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, config.Config{})
	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	_, err := New(config.Config{Port: -1})
	assert.Error(t, err)
}

func TestCheck_ReturnsSuggestions(t *testing.T) {
	reply := `[{"original":"Teh","suggested":"The","index":0,"endIndex":3,"confidence":0.95}]`
	ollama := newOllamaStub(t, reply)
	s := newTestServer(t, config.Config{OllamaBaseURL: ollama.URL})

	rec := doJSON(t, s, http.MethodPost, "/api/check", types.CheckRequest{
		Text:     "Teh cat sat.",
		Provider: "ollama",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp types.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Suggestions, 1)
	assert.Equal(t, "The", resp.Suggestions[0].Suggested)
	assert.EqualValues(t, 1, resp.Metadata["totalSuggestions"])
}

func TestCheck_MissingText(t *testing.T) {
	s := newTestServer(t, config.Config{})
	rec := doJSON(t, s, http.MethodPost, "/api/check", map[string]string{"provider": "ollama"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "text is required")
}

func TestCheck_MalformedBody(t *testing.T) {
	s := newTestServer(t, config.Config{})
	req := httptest.NewRequest(http.MethodPost, "/api/check", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheck_UnsupportedProviderIs400(t *testing.T) {
	s := newTestServer(t, config.Config{})
	rec := doJSON(t, s, http.MethodPost, "/api/check", types.CheckRequest{
		Text:     "Some text.",
		Provider: "bedrock",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unsupported provider")
}

func TestCheck_MissingCredentialIs400(t *testing.T) {
	s := newTestServer(t, config.Config{})
	rec := doJSON(t, s, http.MethodPost, "/api/check", types.CheckRequest{
		Text:     "Some text.",
		Provider: "openai",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "OPENAI_API_KEY")
}

func TestCheck_DefaultsToGroq(t *testing.T) {
	// With no provider in the request and no groq credential, the error
	// names groq.
	s := newTestServer(t, config.Config{})
	rec := doJSON(t, s, http.MethodPost, "/api/check", types.CheckRequest{Text: "Some text."})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "groq")
}

func TestCheck_TransportFailureIs502(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(failing.Close)

	s := newTestServer(t, config.Config{OllamaBaseURL: failing.URL})
	rec := doJSON(t, s, http.MethodPost, "/api/check", types.CheckRequest{
		Text:     "Some text.",
		Provider: "ollama",
	})
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestHumanize(t *testing.T) {
	ollama := newOllamaStub(t, "A natural rewrite.")
	s := newTestServer(t, config.Config{OllamaBaseURL: ollama.URL})

	rec := doJSON(t, s, http.MethodPost, "/api/humanize", types.HumanizeRequest{
		Text:     "Utilize leveraged synergies.",
		Provider: "ollama",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "A natural rewrite.", resp.Text)
	assert.Equal(t, "ollama", resp.Provider)
}

func TestChat(t *testing.T) {
	ollama := newOllamaStub(t, "Hello back.")
	s := newTestServer(t, config.Config{OllamaBaseURL: ollama.URL})

	rec := doJSON(t, s, http.MethodPost, "/api/chat", types.ChatRequest{
		Messages: []types.ChatMessage{{Role: "user", Content: "Hello"}},
		Provider: "ollama",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hello back.", resp.Text)
}

func TestChat_EmptyMessages(t *testing.T) {
	s := newTestServer(t, config.Config{})
	rec := doJSON(t, s, http.MethodPost, "/api/chat", types.ChatRequest{Provider: "ollama"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat_BadRole(t *testing.T) {
	s := newTestServer(t, config.Config{})
	rec := doJSON(t, s, http.MethodPost, "/api/chat", types.ChatRequest{
		Messages: []types.ChatMessage{{Role: "robot", Content: "Hello"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestModels(t *testing.T) {
	ollama := newOllamaStub(t, "")
	cfg := config.Config{
		OllamaBaseURL: ollama.URL,
		APIKeys:       map[types.Provider]string{types.ProviderGroq: "gsk-test"},
	}
	s := newTestServer(t, cfg)

	rec := doJSON(t, s, http.MethodGet, "/api/models", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Models []types.ModelInfo `json:"models"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Models, len(types.AllProviders()))

	byProvider := map[types.Provider]types.ModelInfo{}
	for _, m := range resp.Models {
		byProvider[m.Provider] = m
	}
	assert.True(t, byProvider[types.ProviderOllama].Available)
	assert.True(t, byProvider[types.ProviderOllama].Local)
	assert.True(t, byProvider[types.ProviderGroq].Available)
	assert.False(t, byProvider[types.ProviderOpenAI].Available)
	assert.NotEmpty(t, byProvider[types.ProviderGroq].Model)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, config.Config{})
	req := httptest.NewRequest(http.MethodOptions, "/api/check", nil)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
