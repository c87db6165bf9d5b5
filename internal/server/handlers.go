package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/dispatch"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/pipeline"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

// ChatResponse is the response body for /api/chat and /api/humanize.
type ChatResponse struct {
	Text     string `json:"text"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// modelConfigFrom builds a per-request ModelConfig, defaulting to groq, the
// free-tier provider in UI flows.
func modelConfigFrom(provider, model, apiKey string) types.ModelConfig {
	if provider == "" {
		provider = string(types.ProviderGroq)
	}
	return types.ModelConfig{
		Provider: types.Provider(provider),
		Model:    model,
		APIKey:   apiKey,
	}
}

// handleCheck runs the grammar suggestion pipeline.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	s.handleSuggestionMode(w, r, pipeline.ModeGrammar)
}

// handleEnhance runs the style/readability suggestion pipeline.
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	s.handleSuggestionMode(w, r, pipeline.ModeEnhance)
}

func (s *Server) handleSuggestionMode(w http.ResponseWriter, r *http.Request, mode string) {
	var req types.CheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	resp, err := s.pipeline.Check(r.Context(), pipeline.Options{
		Text:     req.Text,
		Mode:     mode,
		Strategy: req.Strategy,
		Model:    modelConfigFrom(req.Provider, req.Model, req.APIKey),
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleHumanize rewrites text to read more naturally and returns plain text.
func (s *Server) handleHumanize(w http.ResponseWriter, r *http.Request) {
	var req types.HumanizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "text is required")
		return
	}

	cfg := modelConfigFrom(req.Provider, req.Model, req.APIKey)
	text, err := s.pipeline.Generate(r.Context(), dispatch.Request{
		Prompt:      fmt.Sprintf(pipeline.HumanizePrompt, req.Text),
		MaxTokens:   2048,
		Temperature: 0.7,
	}, cfg)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ChatResponse{Text: text, Provider: string(cfg.Provider), Model: cfg.Model})
}

// handleChat forwards a message list to the chosen provider and returns the
// sanitized reply.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "messages are required")
		return
	}

	messages := make([]dispatch.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, dispatch.Message{Role: m.Role, Content: m.Content})
	}

	cfg := modelConfigFrom(req.Provider, req.Model, req.APIKey)
	text, err := s.pipeline.Generate(r.Context(), dispatch.Request{
		Messages:    messages,
		MaxTokens:   2048,
		Temperature: 0.7,
	}, cfg)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ChatResponse{Text: text, Provider: string(cfg.Provider), Model: cfg.Model})
}
