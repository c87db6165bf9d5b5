package suggest

import (
	"math"
	"strings"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

// Score computes the aggregate 0-100 writing score for a processed
// suggestion set. Severity-weighted error density per 100 words drives the
// base score, which is then scaled by the mean confidence of the surviving
// suggestions.
//
// Empty text scores 0 by convention: absence of text is not perfect writing.
// Non-empty text with zero suggestions scores 100.
func Score(suggestions []types.Suggestion, originalText string) int {
	words := len(strings.Fields(originalText))
	if words == 0 {
		return 0
	}
	if len(suggestions) == 0 {
		return 100
	}

	var weighted, confSum float64
	for _, s := range suggestions {
		weighted += types.SeverityWeight(s.Severity)
		confSum += s.Confidence
	}

	per100 := weighted / float64(words) * 100
	base := 100 - 10*per100
	if base < 0 {
		base = 0
	}

	meanConfidence := confSum / float64(len(suggestions))
	return int(math.Round(base * meanConfidence))
}
