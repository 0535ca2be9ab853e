// internal/app/features/tips/upvote.go
package tips

import (
	"context"
	"errors"
	"net/http"

	tipstore "github.com/dalemusser/ecotrack/internal/app/store/tips"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleUpvote handles PATCH /api/tips/{id}/upvote. Any authenticated
// principal may upvote; there is no per-user dedup and no ownership check.
func (h *Handler) HandleUpvote(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid tip ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Tips.Upvote(ctx, oid); err != nil {
		if errors.Is(err, tipstore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Tip not found")
			return
		}
		h.Log.Error("upvote tip failed", zap.Error(err), zap.String("tip_id", idHex))
		respond.Internal(w, "Failed to upvote tip")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Tip upvoted successfully",
	})
}
