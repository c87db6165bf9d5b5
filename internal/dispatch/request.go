// Package dispatch normalizes calls to the supported LLM backends behind one
// entry point: per-provider authentication, request shaping and response
// unwrapping. It is stateless; one blocking round trip per call, no retries.
package dispatch

import "strings"

// Message is a single role-tagged chat message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request carries either a plain prompt or a structured message list, plus
// generation parameters shared across providers.
type Request struct {
	Prompt      string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// Empty reports whether the request carries no usable input.
func (r Request) Empty() bool {
	if strings.TrimSpace(r.Prompt) != "" {
		return false
	}
	for _, m := range r.Messages {
		if strings.TrimSpace(m.Content) != "" {
			return false
		}
	}
	return true
}

// AsMessages returns the request as a message list, wrapping a bare prompt
// in a single user message.
func (r Request) AsMessages() []Message {
	if len(r.Messages) > 0 {
		return r.Messages
	}
	return []Message{{Role: "user", Content: r.Prompt}}
}

// AsPrompt flattens the request to a single prompt string for backends that
// only accept plain text.
func (r Request) AsPrompt() string {
	if len(r.Messages) == 0 {
		return r.Prompt
	}
	var b strings.Builder
	for i, m := range r.Messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if m.Role != "" && m.Role != "user" {
			b.WriteString(strings.ToUpper(m.Role[:1]) + m.Role[1:] + ": ")
		}
		b.WriteString(m.Content)
	}
	return b.String()
}
