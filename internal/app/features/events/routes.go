// internal/app/features/events/routes.go
package events

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts all Event routes under the base path (typically "/api/events"
// from bootstrap). Reads are public; mutations require a bearer token.
func Routes(h *Handler, requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)

	r.Group(func(pr chi.Router) {
		pr.Use(requireAuth)

		pr.Post("/", h.HandleCreate)
		pr.Patch("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
		pr.Post("/{id}/join", h.HandleJoin)
	})

	return r
}
