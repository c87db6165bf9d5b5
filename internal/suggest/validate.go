package suggest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

var validate = validator.New()

// rawCandidate mirrors the suggestion wire shape with pointer fields so
// missing keys are distinguishable from zero values.
type rawCandidate struct {
	Original      *string  `json:"original"`
	Suggested     *string  `json:"suggested"`
	Explanation   *string  `json:"explanation"`
	Index         *int     `json:"index"`
	EndIndex      *int     `json:"endIndex"`
	Category      *string  `json:"category"`
	Severity      *string  `json:"severity"`
	Confidence    *float64 `json:"confidence"`
	SentenceIndex *int     `json:"sentenceIndex"`
	RuleID        *string  `json:"ruleId"`
	Source        *string  `json:"source"`
}

// ValidateCandidate runs two-phase validation of a raw candidate against the
// source text: closed-schema shape first, then positional cross-checking.
// On failure it returns a Rejection describing the first problem found; it
// never returns an error, so callers can aggregate failures across a batch.
//
// Positional fields, types and the confidence range are strict. Enum
// categorization is cosmetic and is coerced instead of rejected: unknown
// category becomes style, unknown severity becomes medium, unknown source
// becomes unknown. Overlong explanations are truncated.
func ValidateCandidate(raw json.RawMessage, originalText string) (types.Suggestion, *Rejection) {
	var cand rawCandidate
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cand); err != nil {
		return types.Suggestion{}, schemaRejection("", "malformed candidate: "+err.Error())
	}

	// Presence of the safety-critical fields.
	switch {
	case cand.Original == nil:
		return types.Suggestion{}, schemaRejection("original", "field is required")
	case cand.Suggested == nil:
		return types.Suggestion{}, schemaRejection("suggested", "field is required")
	case cand.Index == nil:
		return types.Suggestion{}, schemaRejection("index", "field is required")
	case cand.EndIndex == nil:
		return types.Suggestion{}, schemaRejection("endIndex", "field is required")
	case cand.Confidence == nil:
		return types.Suggestion{}, schemaRejection("confidence", "field is required")
	}

	if *cand.Original == "" {
		return types.Suggestion{}, schemaRejection("original", "must be non-empty")
	}
	if *cand.Index < 0 {
		return types.Suggestion{}, schemaRejection("index", fmt.Sprintf("must be >= 0, got %d", *cand.Index))
	}
	if *cand.EndIndex <= *cand.Index {
		return types.Suggestion{}, schemaRejection("endIndex", fmt.Sprintf("must be > index (%d), got %d", *cand.Index, *cand.EndIndex))
	}
	if *cand.Confidence < 0 || *cand.Confidence > 1 {
		return types.Suggestion{}, schemaRejection("confidence", fmt.Sprintf("must be in [0, 1], got %g", *cand.Confidence))
	}

	s := types.Suggestion{
		Original:   *cand.Original,
		Suggested:  *cand.Suggested,
		Index:      *cand.Index,
		EndIndex:   *cand.EndIndex,
		Confidence: *cand.Confidence,
		Category:   coerceCategory(cand.Category),
		Severity:   coerceSeverity(cand.Severity),
		Source:     coerceSource(cand.Source),
	}
	if cand.Explanation != nil {
		s.Explanation = truncateRunes(*cand.Explanation, types.MaxExplanationLen)
	}
	if cand.SentenceIndex != nil && *cand.SentenceIndex >= 0 {
		s.SentenceIndex = *cand.SentenceIndex
	}
	if cand.RuleID != nil && *cand.RuleID != "" {
		s.RuleID = *cand.RuleID
	} else {
		s.RuleID = "ai." + uuid.New().String()[:8]
	}

	if err := validate.Struct(&s); err != nil {
		return types.Suggestion{}, structRejection(err)
	}

	// Phase two: positional validation against the source text. This is the
	// safety net for hallucinated offsets; an accepted suggestion must be
	// applicable to the source verbatim.
	runes := []rune(originalText)
	if s.EndIndex > len(runes) {
		return types.Suggestion{}, positionRejection("endIndex",
			fmt.Sprintf("<= %d", len(runes)), fmt.Sprintf("%d", s.EndIndex),
			"endIndex exceeds text length")
	}
	actual := string(runes[s.Index:s.EndIndex])
	if actual != s.Original {
		return types.Suggestion{}, positionRejection("original", s.Original, actual,
			fmt.Sprintf("text at [%d, %d) does not match claimed original", s.Index, s.EndIndex))
	}

	return s, nil
}

func structRejection(err error) *Rejection {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return schemaRejection(strings.ToLower(fe.Field()),
			fmt.Sprintf("failed %q constraint", fe.Tag()))
	}
	return schemaRejection("", err.Error())
}

func coerceCategory(s *string) types.Category {
	if s != nil {
		if c, ok := types.ParseCategory(*s); ok {
			return c
		}
	}
	return types.CategoryStyle
}

func coerceSeverity(s *string) types.Severity {
	if s != nil {
		if sev, ok := types.ParseSeverity(*s); ok {
			return sev
		}
	}
	return types.SeverityMedium
}

func coerceSource(s *string) types.Source {
	if s != nil {
		if src, ok := types.ParseSource(*s); ok {
			return src
		}
	}
	return types.SourceUnknown
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
