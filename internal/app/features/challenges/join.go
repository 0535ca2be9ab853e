// internal/app/features/challenges/join.go
package challenges

import (
	"context"
	"errors"
	"net/http"

	userchallengestore "github.com/dalemusser/ecotrack/internal/app/store/userchallenges"
	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleJoin handles POST /api/challenges/join/{id}.
//
// The membership store owns the whole sequence (existence check, insert
// against the unique index, counter increment); this handler only maps its
// errors onto status codes. Joining twice is a 400, not a silent success.
func (h *Handler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid challenge ID")
		return
	}

	principal, ok := auth.Principal(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	uc, err := h.Members.Join(ctx, principal, oid)
	if err != nil {
		switch {
		case errors.Is(err, userchallengestore.ErrChallengeNotFound):
			respond.Error(w, http.StatusNotFound, "Challenge not found")
		case errors.Is(err, userchallengestore.ErrAlreadyJoined):
			respond.Error(w, http.StatusBadRequest, "Already joined this challenge")
		default:
			h.Log.Error("join challenge failed", zap.Error(err),
				zap.String("challenge_id", idHex), zap.String("email", principal))
			respond.Internal(w, "Failed to join challenge")
		}
		return
	}

	respond.JSON(w, http.StatusCreated, map[string]any{
		"success":         true,
		"userChallengeId": uc.ID.Hex(),
		"message":         "Joined challenge successfully",
	})
}
