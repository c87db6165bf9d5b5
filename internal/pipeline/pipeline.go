// Package pipeline orchestrates one suggestion request end to end: sanitize
// the input, dispatch to the chosen model backend, extract candidate edits
// from the raw response, post-process them into a validated suggestion set
// and format the final payload.
package pipeline

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/dispatch"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/format"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/sanitize"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/suggest"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

// Modes select the prompt used for suggestion generation.
const (
	ModeGrammar = "grammar"
	ModeEnhance = "enhance"
)

// DefaultStrategy is recorded in response metadata when the caller does not
// name one.
const DefaultStrategy = "single-model"

// Options configures one pipeline run.
type Options struct {
	Text     string
	Mode     string
	Strategy string
	Model    types.ModelConfig
	Extra    map[string]any
}

// Pipeline wires the dispatcher into the post-processing chain. Stateless
// across requests.
type Pipeline struct {
	dispatcher *dispatch.Dispatcher
}

// New creates a Pipeline backed by the given dispatcher.
func New(d *dispatch.Dispatcher) *Pipeline {
	return &Pipeline{dispatcher: d}
}

// Check runs the full suggestion pipeline for one text. Dispatch-level
// failures (provider, credential, transport) propagate as errors; candidate
// level failures are filtered and only logged. A run that yields zero valid
// suggestions is a valid result, not an error.
func (p *Pipeline) Check(ctx context.Context, opts Options) (types.APIResponse, error) {
	text := sanitize.Clean(opts.Text)
	if text == "" {
		return types.APIResponse{}, &dispatch.EmptyInputError{Field: "text"}
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeGrammar
	}
	strategy := opts.Strategy
	if strategy == "" {
		strategy = DefaultStrategy
	}

	start := time.Now()
	raw, err := p.dispatcher.Dispatch(ctx, dispatch.Request{
		Prompt:      buildPrompt(mode, text),
		MaxTokens:   2048,
		Temperature: 0.2,
	}, opts.Model)
	if err != nil {
		return types.APIResponse{}, err
	}

	candidates := ExtractCandidates(raw)
	result := suggest.Process(candidates, text)
	if n := result.Dropped(); n > 0 {
		log.Printf("pipeline: dropped %d of %d candidates (%s)", n, len(candidates), mode)
	}

	extra := map[string]any{
		"provider": string(opts.Model.Provider),
		"model":    opts.Model.Model,
	}
	for k, v := range opts.Extra {
		extra[k] = v
	}

	return format.Build(result, text, format.Metadata{
		Mode:           mode,
		Strategy:       strategy,
		ProcessingTime: time.Since(start),
		Extra:          extra,
	})
}

// ProcessCandidates runs post-processing and formatting over candidates that
// were sourced elsewhere, skipping dispatch. The HTTP layer uses this when a
// client submits pre-generated candidates alongside the text.
func (p *Pipeline) ProcessCandidates(candidates []json.RawMessage, text string, meta format.Metadata) (types.APIResponse, error) {
	clean := sanitize.Clean(text)
	if clean == "" {
		return types.APIResponse{}, &dispatch.EmptyInputError{Field: "text"}
	}
	result := suggest.Process(candidates, clean)
	return format.Build(result, clean, meta)
}

// Generate is the plain-text path used by the humanize and chat surfaces:
// dispatch the request and sanitize the model output, no suggestion
// processing.
func (p *Pipeline) Generate(ctx context.Context, req dispatch.Request, cfg types.ModelConfig) (string, error) {
	raw, err := p.dispatcher.Dispatch(ctx, req, cfg)
	if err != nil {
		return "", err
	}
	return sanitize.Clean(raw), nil
}
