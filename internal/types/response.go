package types

// APIResponse is the payload returned to the client for suggestion requests.
// Metadata is an open map so callers can attach extras, but the top level is
// closed: the formatter validates the assembled payload against a schema that
// forbids any key other than these three.
type APIResponse struct {
	Suggestions  []Suggestion   `json:"suggestions"`
	WritingScore int            `json:"writingScore"`
	Metadata     map[string]any `json:"metadata"`
}

// ModelInfo describes one provider's availability, exposed via GET /api/models.
type ModelInfo struct {
	Provider  Provider `json:"provider"`
	Model     string   `json:"model"`
	Local     bool     `json:"local"`
	Available bool     `json:"available"`
}
