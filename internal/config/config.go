// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/dispatch"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

// DeploymentModeHosted marks deployments with no local inference server;
// requests for the local provider get substituted by a cloud provider.
const DeploymentModeHosted = "hosted"

// Config is the process-wide configuration. It is loaded once at startup and
// treated as read-only afterwards; API keys never leave this struct except
// into the dispatcher's credential table.
type Config struct {
	Port              int
	DeploymentMode    string
	AllowGroqFallback bool
	OllamaBaseURL     string
	LMStudioBaseURL   string
	APIKeys           map[types.Provider]string
}

// Load reads configuration from the environment. Credentials come from
// <PROVIDER>_API_KEY variables; everything else has a sensible default.
func Load() Config {
	cfg := Config{
		Port:              8080,
		DeploymentMode:    strings.ToLower(os.Getenv("DEPLOYMENT_MODE")),
		AllowGroqFallback: boolEnv("ALLOW_GROQ_FALLBACK"),
		OllamaBaseURL:     os.Getenv("OLLAMA_BASE_URL"),
		LMStudioBaseURL:   os.Getenv("LMSTUDIO_BASE_URL"),
		APIKeys:           make(map[types.Provider]string),
	}

	if port := os.Getenv("PORT"); port != "" {
		if n, err := strconv.Atoi(port); err == nil {
			cfg.Port = n
		}
	}

	for _, p := range types.AllProviders() {
		if p.IsLocal() {
			continue
		}
		if key := os.Getenv(p.CredentialEnvVar()); key != "" {
			cfg.APIKeys[p] = key
		}
	}

	return cfg
}

// Validate checks that the configuration has usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config error: port %d out of range", c.Port)
	}
	if c.DeploymentMode != "" && c.DeploymentMode != DeploymentModeHosted && c.DeploymentMode != "local" {
		return fmt.Errorf("config error: unknown deployment mode %q", c.DeploymentMode)
	}
	if c.DeploymentMode == DeploymentModeHosted && len(c.APIKeys) == 0 {
		return fmt.Errorf("config error: hosted mode requires at least one cloud API key")
	}
	return nil
}

// Hosted reports whether the process runs in the hosted deployment mode.
func (c Config) Hosted() bool {
	return c.DeploymentMode == DeploymentModeHosted
}

// DispatcherOptions translates the config into dispatcher options, including
// the explicit deployment policy.
func (c Config) DispatcherOptions() dispatch.Options {
	endpoints := make(map[types.Provider]string)
	if c.OllamaBaseURL != "" {
		endpoints[types.ProviderOllama] = c.OllamaBaseURL
	}
	if c.LMStudioBaseURL != "" {
		endpoints[types.ProviderLMStudio] = strings.TrimRight(c.LMStudioBaseURL, "/") + "/v1/chat/completions"
	}

	return dispatch.Options{
		Keys:      c.APIKeys,
		Endpoints: endpoints,
		Policy: dispatch.DeploymentPolicy{
			AutoSubstituteLocalProvider: c.Hosted(),
			SubstitutionPriority:        dispatch.DefaultSubstitutionPriority(),
			AllowFallbackToLocal:        c.AllowGroqFallback,
		},
	}
}

func boolEnv(name string) bool {
	switch strings.ToLower(os.Getenv(name)) {
	case "1", "true", "yes":
		return true
	}
	return false
}
