// internal/app/features/challenges/delete.go
package challenges

import (
	"context"
	"errors"
	"net/http"

	challengestore "github.com/dalemusser/ecotrack/internal/app/store/challenges"
	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/authz"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/dalemusser/ecotrack/internal/app/system/txn"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /api/challenges/{id}.
//
// The challenge and every user_challenges row referencing it go together, in
// one transaction where available, so membership lists never point at a
// challenge that no longer exists.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	ch, err := h.Challenges.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, challengestore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Challenge not found")
			return
		}
		h.Log.Error("get challenge failed", zap.Error(err), zap.String("challenge_id", idHex))
		respond.Internal(w, "Failed to delete challenge")
		return
	}
	if !authz.CanMutate(principal, ch.CreatedBy) {
		respond.Error(w, http.StatusForbidden, "Not authorized to delete this challenge")
		return
	}

	var removedMemberships int64
	err = txn.WithTransaction(ctx, h.Client, func(ctx context.Context) error {
		if err := h.Challenges.Delete(ctx, oid); err != nil {
			return err
		}
		n, err := h.Members.DeleteByChallenge(ctx, oid)
		removedMemberships = n
		return err
	})
	if err != nil {
		if errors.Is(err, challengestore.ErrNotFound) {
			// Lost a race with another delete.
			respond.Error(w, http.StatusNotFound, "Challenge not found")
			return
		}
		h.Log.Error("delete challenge failed", zap.Error(err), zap.String("challenge_id", idHex))
		respond.Internal(w, "Failed to delete challenge")
		return
	}

	h.Log.Info("challenge deleted",
		zap.String("challenge_id", idHex),
		zap.Int64("memberships_removed", removedMemberships))

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Challenge deleted successfully",
	})
}
