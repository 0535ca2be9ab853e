// internal/app/features/userchallenges/get.go
package userchallenges

import (
	"context"
	"errors"
	"net/http"

	memberchallenges "github.com/dalemusser/ecotrack/internal/app/store/queries/memberchallenges"
	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeGet handles GET /api/user-challenges/{id}. The id and the principal
// are matched together, so another user's membership row is a 404.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid user challenge ID")
		return
	}

	principal, ok := auth.Principal(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	uc, err := h.Query.GetForEmail(ctx, principal, oid)
	if err != nil {
		if errors.Is(err, memberchallenges.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "User challenge not found")
			return
		}
		h.Log.Error("get user challenge failed", zap.Error(err),
			zap.String("user_challenge_id", idHex), zap.String("email", principal))
		respond.Internal(w, "Failed to fetch user challenge")
		return
	}

	respond.JSON(w, http.StatusOK, uc)
}
