package dispatch

import (
	"fmt"
	"strings"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

// UnsupportedProviderError indicates an unknown provider name. The message
// enumerates the valid set so the client can correct the request.
type UnsupportedProviderError struct {
	Requested string
}

func (e *UnsupportedProviderError) Error() string {
	names := make([]string, 0, len(types.AllProviders()))
	for _, p := range types.AllProviders() {
		names = append(names, string(p))
	}
	return fmt.Sprintf("unsupported provider %q (supported: %s)", e.Requested, strings.Join(names, ", "))
}

// MissingCredentialError indicates a cloud provider was requested without a
// resolvable API key. No substitution happens outside the two documented
// exceptions; the error names the environment variable to set.
type MissingCredentialError struct {
	Provider types.Provider
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("no API key for provider %q: set %s or supply apiKey in the request",
		e.Provider, e.Provider.CredentialEnvVar())
}

// TransportError wraps a network, timeout or HTTP-status failure talking to
// a provider. It is fatal for the call and is never retried here; callers
// own retry policy.
type TransportError struct {
	Provider   types.Provider
	Timeout    bool
	StatusCode int
	Message    string
	Cause      error
}

func (e *TransportError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "provider %s: %s", e.Provider, e.Message)
	if e.Timeout {
		b.WriteString(" (timeout)")
	}
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// EmptyInputError indicates empty or whitespace-only input where text is
// required. It is raised before any provider call is made.
type EmptyInputError struct {
	Field string
}

func (e *EmptyInputError) Error() string {
	if e.Field == "" {
		return "input is empty"
	}
	return fmt.Sprintf("%s is empty", e.Field)
}
