// Package types provides type definitions for structured data used throughout the grammar checker system.
package types

// Category classifies what kind of writing issue a suggestion addresses.
type Category string

// Category constants define the allowed suggestion categories.
const (
	CategoryGrammar     Category = "grammar"
	CategorySpelling    Category = "spelling"
	CategoryPunctuation Category = "punctuation"
	CategoryStyle       Category = "style"
	CategoryTone        Category = "tone"
	CategoryReadability Category = "readability"
)

// Severity indicates how strongly a suggestion should be surfaced to the user.
type Severity string

// Severity constants define the allowed severity levels.
const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Source tags where a suggestion came from.
type Source string

// Source constants define suggestion provenance values. SourceUnknown is the
// coercion target for values outside the documented set; it never appears in
// well-formed model output.
const (
	SourceAI      Source = "ai"
	SourceRule    Source = "rb"
	SourceMerged  Source = "merged"
	SourceUnknown Source = "unknown"
)

// MaxExplanationLen is the cap on explanation length, in characters.
const MaxExplanationLen = 160

// Suggestion is a single proposed edit to a span of the original text.
// Index and EndIndex are 0-based character (code point) offsets into the
// source text; EndIndex is exclusive. The substring of the source text at
// [Index, EndIndex) must equal Original for the suggestion to be valid.
type Suggestion struct {
	Original      string   `json:"original" validate:"required"`
	Suggested     string   `json:"suggested"`
	Explanation   string   `json:"explanation" validate:"max=160"`
	Index         int      `json:"index" validate:"min=0"`
	EndIndex      int      `json:"endIndex" validate:"gtfield=Index"`
	Category      Category `json:"category" validate:"oneof=grammar spelling punctuation style tone readability"`
	Severity      Severity `json:"severity" validate:"oneof=low medium high"`
	Confidence    float64  `json:"confidence" validate:"min=0,max=1"`
	SentenceIndex int      `json:"sentenceIndex" validate:"min=0"`
	RuleID        string   `json:"ruleId"`
	Source        Source   `json:"source" validate:"oneof=ai rb merged unknown"`
}

// ParseCategory returns the Category for s and whether it is one of the
// allowed values.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryGrammar, CategorySpelling, CategoryPunctuation, CategoryStyle, CategoryTone, CategoryReadability:
		return Category(s), true
	}
	return "", false
}

// ParseSeverity returns the Severity for s and whether it is one of the
// allowed values.
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(s) {
	case SeverityLow, SeverityMedium, SeverityHigh:
		return Severity(s), true
	}
	return "", false
}

// ParseSource returns the Source for s and whether it is one of the
// documented provenance values.
func ParseSource(s string) (Source, bool) {
	switch Source(s) {
	case SourceAI, SourceRule, SourceMerged:
		return Source(s), true
	}
	return "", false
}

// SeverityWeight returns the error-density weight for a severity level.
func SeverityWeight(s Severity) float64 {
	switch s {
	case SeverityLow:
		return 0.5
	case SeverityHigh:
		return 2.0
	default:
		return 1.0
	}
}
