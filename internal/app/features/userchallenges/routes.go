// internal/app/features/userchallenges/routes.go
package userchallenges

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the membership routes under the base path (typically
// "/api/user-challenges" from bootstrap). Everything here is scoped to the
// authenticated principal, so the whole subtree requires a bearer token.
func Routes(h *Handler, requireAuth func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Use(requireAuth)

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeGet)
	r.Patch("/{id}", h.HandleUpdate)

	return r
}
