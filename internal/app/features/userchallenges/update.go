// internal/app/features/userchallenges/update.go
package userchallenges

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

// updateRequest is the accepted body for PATCH /api/user-challenges/{id}.
// Only progress tracking is patchable; the row's identity fields are fixed at
// join time.
type updateRequest struct {
	Status   *string `json:"status"`
	Progress *int    `json:"progress"`
}

// HandleUpdate handles PATCH /api/user-challenges/{id}.
//
// Ownership lives in the store predicate ({_id, email}), so a row belonging
// to another principal comes back NotFound, never Forbidden.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	var req updateRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Progress != nil && *req.Progress < 0 {
		respond.Error(w, http.StatusBadRequest, "Progress cannot be negative")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Members.UpdateProgress(ctx, principal, oid, userchallengestore.ProgressPatch{
		Status:   req.Status,
		Progress: req.Progress,
	})
	if err != nil {
		if errors.Is(err, userchallengestore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "User challenge not found")
			return
		}
		h.Log.Error("update user challenge failed", zap.Error(err),
			zap.String("user_challenge_id", idHex), zap.String("email", principal))
		respond.Internal(w, "Failed to update user challenge")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "User challenge updated successfully",
	})
}
