package pipeline

import (
	"encoding/json"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/dispatch"
)

// suggestionEnvelope matches the object form some models emit instead of a
// bare array.
type suggestionEnvelope struct {
	Suggestions []json.RawMessage `json:"suggestions"`
}

// ExtractCandidates pulls raw candidate objects out of a model response.
// It tolerates an outer code fence, a bare JSON array, or an object with a
// suggestions key. Anything else yields an empty batch; malformed responses
// are a no-suggestions result, not an error.
func ExtractCandidates(raw string) []json.RawMessage {
	text := dispatch.StripCodeFence(raw)
	if text == "" {
		return nil
	}

	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(text), &arr); err == nil {
		return arr
	}

	var env suggestionEnvelope
	if err := json.Unmarshal([]byte(text), &env); err == nil {
		return env.Suggestions
	}

	return nil
}
