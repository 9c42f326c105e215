package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/handlers"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/mw"
)

func init() { Register("healthz", registerHealthz) }

func registerHealthz(r chi.Router, d deps.Deps) {
	r.With(mw.AllowOnlyCIDRS(d.AllowedCIDRS, d.TrustProxy, d.Logger)).Get("/healthz", handlers.Healthz(d))
}
