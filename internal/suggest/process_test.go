package suggest

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

// rawFrom marshals a fully-formed suggestion whose offsets match text.
func rawFrom(t *testing.T, text string, index, endIndex int, suggested string, confidence float64) json.RawMessage {
	t.Helper()
	runes := []rune(text)
	require.LessOrEqual(t, endIndex, len(runes))
	s := types.Suggestion{
		Original:    string(runes[index:endIndex]),
		Suggested:   suggested,
		Explanation: "test edit",
		Index:       index,
		EndIndex:    endIndex,
		Category:    types.CategoryGrammar,
		Severity:    types.SeverityMedium,
		Confidence:  confidence,
		RuleID:      "test.rule",
		Source:      types.SourceAI,
	}
	raw, err := json.Marshal(s)
	require.NoError(t, err)
	return raw
}

func TestProcess_AcceptsValidCandidate(t *testing.T) {
	text := "Teh cat sat."
	result := Process([]json.RawMessage{rawFrom(t, text, 0, 3, "The", 0.95)}, text)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, 0, result.Suggestions[0].Index)
	assert.Equal(t, "Teh", result.Suggestions[0].Original)
	assert.Empty(t, result.Rejections)
}

func TestProcess_DropsPositionMismatch(t *testing.T) {
	text := "Teh cat sat."
	bad := json.RawMessage(`{"original":"Teh","suggested":"The","index":1,"endIndex":4,"confidence":0.95}`)
	result := Process([]json.RawMessage{bad}, text)
	assert.Empty(t, result.Suggestions)
	require.Len(t, result.Rejections, 1)
	assert.Equal(t, RejectionPosition, result.Rejections[0].Kind)
	assert.Equal(t, 1, result.Dropped())
}

func TestProcess_Deduplicates(t *testing.T) {
	text := "Teh cat sat."
	dup := rawFrom(t, text, 0, 3, "The", 0.9)
	result := Process([]json.RawMessage{dup, dup, dup}, text)
	assert.Len(t, result.Suggestions, 1)
}

func TestProcess_DedupKeepsDistinctReplacements(t *testing.T) {
	// Same span, different replacement: not duplicates, resolved as overlap.
	text := "Teh cat sat."
	a := rawFrom(t, text, 0, 3, "The", 0.9)
	b := rawFrom(t, text, 0, 3, "Th", 0.5)
	result := Process([]json.RawMessage{a, b}, text)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, "The", result.Suggestions[0].Suggested)
}

func TestProcess_OverlapHigherConfidenceWins(t *testing.T) {
	text := "Teh cat sat."
	high := rawFrom(t, text, 0, 3, "The", 0.9)
	low := rawFrom(t, text, 1, 5, "x", 0.6)
	result := Process([]json.RawMessage{high, low}, text)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, 0.9, result.Suggestions[0].Confidence)
}

func TestProcess_OverlapLaterHigherConfidenceEvicts(t *testing.T) {
	text := "Teh cat sat."
	low := rawFrom(t, text, 0, 3, "The", 0.4)
	high := rawFrom(t, text, 1, 5, "x", 0.9)
	result := Process([]json.RawMessage{low, high}, text)
	require.Len(t, result.Suggestions, 1)
	assert.Equal(t, 0.9, result.Suggestions[0].Confidence)
}

func TestProcess_OverlapTieKeepsIncumbent(t *testing.T) {
	text := "Teh cat sat."
	first := rawFrom(t, text, 0, 3, "The", 0.7)
	second := rawFrom(t, text, 1, 5, "x", 0.7)
	result := Process([]json.RawMessage{second, first}, text)
	require.Len(t, result.Suggestions, 1)
	// The sweep runs in index order, so the suggestion at index 0 is the
	// incumbent and survives the tie regardless of candidate order.
	assert.Equal(t, 0, result.Suggestions[0].Index)
}

func TestProcess_AdjacentRangesDoNotOverlap(t *testing.T) {
	text := "Teh cat sat."
	a := rawFrom(t, text, 0, 3, "The", 0.9)
	b := rawFrom(t, text, 3, 7, "x", 0.1)
	result := Process([]json.RawMessage{a, b}, text)
	assert.Len(t, result.Suggestions, 2)
}

func TestProcess_Invariants(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog and keeps on running far away."
	candidates := []json.RawMessage{
		rawFrom(t, text, 4, 9, "fast", 0.8),
		rawFrom(t, text, 0, 3, "A", 0.5),
		rawFrom(t, text, 10, 15, "tan", 0.9),
		rawFrom(t, text, 8, 12, "x", 0.2), // overlaps two others, lower confidence
		rawFrom(t, text, 20, 25, "hops", 0.6),
		rawFrom(t, text, 20, 25, "hops", 0.6), // duplicate
	}
	result := Process(candidates, text)
	runes := []rune(text)

	for i, s := range result.Suggestions {
		// Position invariant.
		assert.Equal(t, s.Original, string(runes[s.Index:s.EndIndex]))
		// Sort invariant.
		if i > 0 {
			assert.GreaterOrEqual(t, s.Index, result.Suggestions[i-1].Index)
		}
		// No-overlap invariant.
		for j, other := range result.Suggestions {
			if i == j {
				continue
			}
			assert.True(t, s.EndIndex <= other.Index || other.EndIndex <= s.Index,
				"suggestions %d and %d overlap", i, j)
		}
	}

	// Dedup invariant.
	seen := map[[2]int]map[string]bool{}
	for _, s := range result.Suggestions {
		key := [2]int{s.Index, s.EndIndex}
		if seen[key] == nil {
			seen[key] = map[string]bool{}
		}
		assert.False(t, seen[key][s.Suggested], "duplicate triple at [%d,%d)", s.Index, s.EndIndex)
		seen[key][s.Suggested] = true
	}
}

func TestProcess_EmptyCandidateList(t *testing.T) {
	result := Process(nil, "Some valid text.")
	assert.Empty(t, result.Suggestions)
	assert.Equal(t, 100, result.Score)
}

func TestProcess_EmptyTextScoresZero(t *testing.T) {
	result := Process(nil, "")
	assert.Empty(t, result.Suggestions)
	assert.Equal(t, 0, result.Score)
}

func TestProcess_MixedValidAndInvalid(t *testing.T) {
	text := "Teh cat sat."
	good := rawFrom(t, text, 0, 3, "The", 0.95)
	bad := json.RawMessage(`{"original":"dog","suggested":"cat","index":4,"endIndex":7,"confidence":0.9}`)
	garbage := json.RawMessage(`"just a string"`)
	result := Process([]json.RawMessage{good, bad, garbage}, text)
	assert.Len(t, result.Suggestions, 1)
	assert.Equal(t, 2, result.Dropped())
}
