package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
)

type readyzResponse struct {
	Ready    bool   `json:"ready"`
	Template string `json:"template,omitempty"`
	Links    int    `json:"links"`
	Rules    int    `json:"rules"`
}

// Readyz reports whether the page can be served. It does not contact the
// upstream: template availability is checked on every page request anyway.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := readyzResponse{
			Ready: d.Profile != nil && d.Rewriter != nil && d.Fetcher != nil,
		}
		if d.Profile != nil {
			resp.Links = len(d.Profile.Links)
		}
		if d.Rewriter != nil {
			resp.Rules = len(d.Rewriter.Rules())
		}
		if d.Fetcher != nil {
			resp.Template = d.Fetcher.URL()
		}

		status := http.StatusOK
		if !resp.Ready {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
