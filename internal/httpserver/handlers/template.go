package handlers

import (
	"errors"
	"net/http"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
	"github.com/MrSnakeDoc/linkhub/internal/upstream"
	"github.com/MrSnakeDoc/linkhub/internal/utils"
)

// Template fetches the upstream template and streams it back through the
// page rewriter. Upstream failures are not retried and have no fallback
// page: the client gets an empty 502.
func Template(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := d.Fetcher.Fetch(r.Context())
		if err != nil {
			fields := []logger.Field{
				logger.String("url", d.Fetcher.URL()),
				logger.Error(err),
			}
			var statusErr *upstream.StatusError
			if errors.As(err, &statusErr) {
				fields = append(fields, logger.Int("upstream_status", statusErr.StatusCode))
			}
			d.Logger.Error("failed to fetch template", fields...)
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		defer utils.Close(body)

		w.Header().Set("Content-Type", upstream.ContentType)
		w.WriteHeader(http.StatusOK)

		// Headers are gone by now; a failure here can only truncate the page.
		if err := d.Rewriter.Transform(w, body); err != nil {
			d.Logger.Warn("template stream interrupted",
				logger.String("url", d.Fetcher.URL()),
				logger.Error(err))
		}
	}
}
