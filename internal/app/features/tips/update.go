// internal/app/features/tips/update.go
package tips

import (
	"context"
	"errors"
	"net/http"

	tipstore "github.com/dalemusser/ecotrack/internal/app/store/tips"
	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/authz"
	"github.com/dalemusser/ecotrack/internal/app/system/htmlsanitize"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleUpdate handles PATCH /api/tips/{id}. Check order: 400, 404, 403.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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
		respond.Internal(w, "Failed to update tip")
		return
	}
	if !authz.CanMutate(principal, tip.Author) {
		respond.Error(w, http.StatusForbidden, "Not authorized to update this tip")
		return
	}

	var req updateRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Content != nil {
		clean := htmlsanitize.Sanitize(*req.Content)
		req.Content = &clean
	}

	err = h.Tips.Update(ctx, oid, tipstore.UpdateFields{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	})
	if err != nil {
		if errors.Is(err, tipstore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Tip not found")
			return
		}
		h.Log.Error("update tip failed", zap.Error(err), zap.String("tip_id", idHex))
		respond.Internal(w, "Failed to update tip")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Tip updated successfully",
	})
}
