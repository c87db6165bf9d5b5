// Package suggest validates raw model-emitted edit suggestions against the
// source text and post-processes the survivors into a safe, ordered,
// non-overlapping set.
package suggest

import "fmt"

// RejectionKind distinguishes the two validation phases a candidate can fail.
type RejectionKind string

// Rejection kinds.
const (
	RejectionSchema   RejectionKind = "schema"
	RejectionPosition RejectionKind = "position"
)

// Rejection explains why a candidate suggestion was dropped. It is returned
// as data rather than an error so a batch can be filtered without aborting.
type Rejection struct {
	Kind     RejectionKind `json:"kind"`
	Field    string        `json:"field,omitempty"`
	Expected string        `json:"expected,omitempty"`
	Actual   string        `json:"actual,omitempty"`
	Message  string        `json:"message"`
}

func (r Rejection) String() string {
	if r.Field != "" {
		return fmt.Sprintf("%s rejection at %s: %s", r.Kind, r.Field, r.Message)
	}
	return fmt.Sprintf("%s rejection: %s", r.Kind, r.Message)
}

func schemaRejection(field, message string) *Rejection {
	return &Rejection{Kind: RejectionSchema, Field: field, Message: message}
}

func positionRejection(field, expected, actual, message string) *Rejection {
	return &Rejection{Kind: RejectionPosition, Field: field, Expected: expected, Actual: actual, Message: message}
}
