// Package format assembles the final API payload returned to the frontend.
package format

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/schemas"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/suggest"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

// Metadata carries the caller-supplied context for a response. Extra entries
// are merged into the metadata block but can never shadow computed keys.
type Metadata struct {
	Mode           string
	Strategy       string
	ProcessingTime time.Duration
	Extra          map[string]any
}

// Build wraps a processed suggestion set into the API response shape and
// validates the assembled payload against the closed response schema before
// returning it. Pure assembly, no side effects.
func Build(result suggest.Result, originalText string, meta Metadata) (types.APIResponse, error) {
	md := map[string]any{
		"totalSuggestions": len(result.Suggestions),
		"textLength":       len([]rune(originalText)),
		"wordCount":        len(strings.Fields(originalText)),
		"processingTime":   meta.ProcessingTime.Milliseconds(),
		"mode":             meta.Mode,
		"strategy":         meta.Strategy,
	}
	for k, v := range meta.Extra {
		if _, reserved := md[k]; reserved {
			continue
		}
		md[k] = v
	}

	suggestions := result.Suggestions
	if suggestions == nil {
		suggestions = []types.Suggestion{}
	}

	resp := types.APIResponse{
		Suggestions:  suggestions,
		WritingScore: result.Score,
		Metadata:     md,
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return types.APIResponse{}, fmt.Errorf("failed to marshal response: %w", err)
	}
	if err := schemas.ValidateResponse(raw); err != nil {
		return types.APIResponse{}, err
	}
	return resp, nil
}
