package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/suggest"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

func sampleResult() suggest.Result {
	return suggest.Result{
		Suggestions: []types.Suggestion{
			{
				Original:   "Teh",
				Suggested:  "The",
				Index:      0,
				EndIndex:   3,
				Category:   types.CategorySpelling,
				Severity:   types.SeverityMedium,
				Confidence: 0.95,
				RuleID:     "spell.teh",
				Source:     types.SourceAI,
			},
		},
		Score: 85,
	}
}

func TestBuild_AssemblesMetadata(t *testing.T) {
	resp, err := Build(sampleResult(), "Teh cat sat.", Metadata{
		Mode:           "grammar",
		Strategy:       "single-model",
		ProcessingTime: 340 * time.Millisecond,
	})
	require.NoError(t, err)

	assert.Equal(t, 85, resp.WritingScore)
	assert.Len(t, resp.Suggestions, 1)
	assert.Equal(t, 1, resp.Metadata["totalSuggestions"])
	assert.Equal(t, 12, resp.Metadata["textLength"])
	assert.Equal(t, 3, resp.Metadata["wordCount"])
	assert.Equal(t, int64(340), resp.Metadata["processingTime"])
	assert.Equal(t, "grammar", resp.Metadata["mode"])
	assert.Equal(t, "single-model", resp.Metadata["strategy"])
}

func TestBuild_TextLengthCountsRunes(t *testing.T) {
	resp, err := Build(suggest.Result{Score: 100}, "héllo wörld", Metadata{Mode: "grammar", Strategy: "single-model"})
	require.NoError(t, err)
	assert.Equal(t, 11, resp.Metadata["textLength"])
}

func TestBuild_ExtrasMerged(t *testing.T) {
	resp, err := Build(sampleResult(), "Teh cat sat.", Metadata{
		Mode:     "grammar",
		Strategy: "single-model",
		Extra:    map[string]any{"provider": "groq", "model": "llama-3.1-8b-instant"},
	})
	require.NoError(t, err)
	assert.Equal(t, "groq", resp.Metadata["provider"])
	assert.Equal(t, "llama-3.1-8b-instant", resp.Metadata["model"])
}

func TestBuild_ExtrasCannotShadowComputedKeys(t *testing.T) {
	resp, err := Build(sampleResult(), "Teh cat sat.", Metadata{
		Mode:     "grammar",
		Strategy: "single-model",
		Extra:    map[string]any{"totalSuggestions": 999, "wordCount": -1},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Metadata["totalSuggestions"])
	assert.Equal(t, 3, resp.Metadata["wordCount"])
}

func TestBuild_NilSuggestionsBecomeEmptySlice(t *testing.T) {
	resp, err := Build(suggest.Result{Score: 100}, "Fine text.", Metadata{Mode: "grammar", Strategy: "single-model"})
	require.NoError(t, err)
	require.NotNil(t, resp.Suggestions)
	assert.Empty(t, resp.Suggestions)
}

func TestBuild_InvalidPayloadRejected(t *testing.T) {
	// A score outside 0-100 violates the response schema.
	_, err := Build(suggest.Result{Score: 150}, "Fine text.", Metadata{Mode: "grammar", Strategy: "single-model"})
	assert.Error(t, err)
}
