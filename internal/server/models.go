package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bhadmusolaide/grammar-checker-sub000/internal/dispatch"
	"github.com/bhadmusolaide/grammar-checker-sub000/internal/types"
)

const probeTimeout = 2 * time.Second

// handleModels reports availability for every supported provider. Local
// servers are probed over HTTP; cloud providers count as available when a
// credential is configured. Probes run concurrently, one goroutine each.
func (s *Server) handleModels(w http.ResponseWriter, r *http.Request) {
	providers := types.AllProviders()
	infos := make([]types.ModelInfo, len(providers))

	g, ctx := errgroup.WithContext(r.Context())
	for i, p := range providers {
		i, p := i, p
		g.Go(func() error {
			infos[i] = types.ModelInfo{
				Provider:  p,
				Model:     dispatch.DefaultModel(p),
				Local:     p.IsLocal(),
				Available: s.providerAvailable(ctx, p),
			}
			return nil
		})
	}
	_ = g.Wait() // probes never return errors, unavailability is data

	s.jsonResponse(w, http.StatusOK, map[string]any{"models": infos})
}

func (s *Server) providerAvailable(ctx context.Context, p types.Provider) bool {
	if !p.IsLocal() {
		return s.dispatcher.HasCredential(p)
	}

	var url string
	switch p {
	case types.ProviderOllama:
		url = strings.TrimRight(s.ollamaBaseURL(), "/") + "/api/tags"
	case types.ProviderLMStudio:
		url = strings.TrimRight(s.lmstudioBaseURL(), "/") + "/v1/models"
	}

	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (s *Server) ollamaBaseURL() string {
	if s.cfg.OllamaBaseURL != "" {
		return s.cfg.OllamaBaseURL
	}
	return "http://localhost:11434"
}

func (s *Server) lmstudioBaseURL() string {
	if s.cfg.LMStudioBaseURL != "" {
		return s.cfg.LMStudioBaseURL
	}
	return "http://localhost:1234"
}
