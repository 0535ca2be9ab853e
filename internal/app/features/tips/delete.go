// internal/app/features/tips/delete.go
package tips

import (
	"context"
	"errors"
	"net/http"

	tipstore "github.com/dalemusser/ecotrack/internal/app/store/tips"
	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/authz"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /api/tips/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid tip ID")
		return
	}

	principal, ok := auth.Principal(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	tip, err := h.Tips.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, tipstore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Tip not found")
			return
		}
		h.Log.Error("get tip failed", zap.Error(err), zap.String("tip_id", idHex))
		respond.Internal(w, "Failed to delete tip")
		return
	}
	if !authz.CanMutate(principal, tip.Author) {
		respond.Error(w, http.StatusForbidden, "Not authorized to delete this tip")
		return
	}

	if err := h.Tips.Delete(ctx, oid); err != nil {
		if errors.Is(err, tipstore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Tip not found")
			return
		}
		h.Log.Error("delete tip failed", zap.Error(err), zap.String("tip_id", idHex))
		respond.Internal(w, "Failed to delete tip")
		return
	}

	h.Log.Info("tip deleted", zap.String("tip_id", idHex))

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Tip deleted successfully",
	})
}
