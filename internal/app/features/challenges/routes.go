// internal/app/features/challenges/routes.go
package challenges

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts all Challenge routes under the base path (typically
// "/api/challenges" from bootstrap). Reads are public; every mutation sits
// behind the bearer-token middleware.
func Routes(h *Handler, requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)

	r.Group(func(pr chi.Router) {
		pr.Use(requireAuth)

		pr.Post("/", h.HandleCreate)
		pr.Patch("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)
		pr.Post("/join/{id}", h.HandleJoin)
	})

	return r
}
