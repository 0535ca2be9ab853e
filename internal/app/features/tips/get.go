// internal/app/features/tips/get.go
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

// ServeGet handles GET /api/tips/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid tip ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	tip, err := h.Tips.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, tipstore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Tip not found")
			return
		}
		h.Log.Error("get tip failed", zap.Error(err), zap.String("tip_id", idHex))
		respond.Internal(w, "Failed to fetch tip")
		return
	}

	respond.JSON(w, http.StatusOK, tip)
}
