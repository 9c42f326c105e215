package handlers

import (
	"net/http"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/logger"
)

// Links serves the link collection as pretty-printed JSON. The body is
// encoded once; the collection never changes while the process runs.
func Links(d deps.Deps) http.HandlerFunc {
	body, encodeErr := d.Profile.LinksJSON()
	if encodeErr != nil {
		d.Logger.Error("failed to encode links", logger.Error(encodeErr))
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if encodeErr != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(body); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}
