package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/linkhub/internal/httpserver/deps"
	"github.com/MrSnakeDoc/linkhub/internal/httpserver/handlers"
)

func init() { Register("page", registerPage) }

// registerPage mounts the catch-all; chi prefers the exact infra routes.
func registerPage(r chi.Router, d deps.Deps) {
	r.Get("/*", handlers.Page(d))
}
