package types

import "github.com/go-playground/validator/v10"

// CheckRequest is the request body for POST /api/check and /api/enhance.
type CheckRequest struct {
	Text     string `json:"text" validate:"required"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"apiKey,omitempty"`
	Strategy string `json:"strategy,omitempty"`
}

// ChatMessage is a single role-tagged message in a chat request.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest is the request body for POST /api/chat.
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	Provider string        `json:"provider,omitempty"`
	Model    string        `json:"model,omitempty"`
	APIKey   string        `json:"apiKey,omitempty"`
}

// HumanizeRequest is the request body for POST /api/humanize.
type HumanizeRequest struct {
	Text     string `json:"text" validate:"required"`
	Provider string `json:"provider,omitempty"`
	Model    string `json:"model,omitempty"`
	APIKey   string `json:"apiKey,omitempty"`
}

// Validate validates the CheckRequest using the validator.
func (r *CheckRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the HumanizeRequest using the validator.
func (r *HumanizeRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
