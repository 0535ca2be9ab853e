// internal/app/features/userchallenges/list.go
package userchallenges

import (
	"context"
	"net/http"

	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /api/user-challenges.
//
// Returns the principal's memberships newest-join-first, each with the live
// challenge embedded under "challenge". The response is always scoped to the
// token's email; there is no way to list someone else's memberships.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.Principal(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	out, err := h.Query.ListForEmail(ctx, principal)
	if err != nil {
		h.Log.Error("list user challenges failed", zap.Error(err), zap.String("email", principal))
		respond.Internal(w, "Failed to fetch user challenges")
		return
	}

	respond.JSON(w, http.StatusOK, out)
}
