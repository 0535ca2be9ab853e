// internal/app/features/tips/routes.go
package tips

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts all Tip routes under the base path (typically "/api/tips"
// from bootstrap). Reads are public; mutations require a bearer token.
// Upvoting is open to any authenticated principal, not just the author.
func Routes(h *Handler, requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)

	r.Group(func(pr chi.Router) {
		pr.Use(requireAuth)

		pr.Post("/", h.HandleCreate)
		pr.Patch("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
		pr.Patch("/{id}/upvote", h.HandleUpvote)
	})

	return r
}
