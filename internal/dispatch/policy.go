package dispatch

import "github.com/bhadmusolaide/grammar-checker-sub000/internal/types"

// DeploymentPolicy makes deployment-driven provider substitution explicit
// instead of reading ambient environment state inside dispatch logic.
//
// When AutoSubstituteLocalProvider is set (hosted deployments with no local
// inference server), requests for the local provider are transparently served
// by the first provider in SubstitutionPriority that has a credential
// configured. This is the only silent substitution besides the groq fallback,
// which is likewise opt-in.
type DeploymentPolicy struct {
	AutoSubstituteLocalProvider bool
	SubstitutionPriority        []types.Provider

	// AllowFallbackToLocal preserves a legacy behavior: groq is the free-tier
	// default in UI flows, so a groq request with no credential falls back to
	// the local provider instead of failing. Off by default.
	AllowFallbackToLocal bool
}

// DefaultSubstitutionPriority is the order in which cloud providers are tried
// when substituting for the local provider in hosted mode.
func DefaultSubstitutionPriority() []types.Provider {
	return []types.Provider{
		types.ProviderGroq,
		types.ProviderOpenAI,
		types.ProviderOpenRouter,
		types.ProviderDeepSeek,
		types.ProviderQwen,
	}
}
