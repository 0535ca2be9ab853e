// internal/app/features/challenges/get.go
package challenges

import (
	"context"
	"errors"
	"net/http"

	challengestore "github.com/dalemusser/ecotrack/internal/app/store/challenges"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeGet handles GET /api/challenges/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid challenge ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ch, err := h.Challenges.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, challengestore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Challenge not found")
			return
		}
		h.Log.Error("get challenge failed", zap.Error(err), zap.String("challenge_id", idHex))
		respond.Internal(w, "Failed to fetch challenge")
		return
	}

	respond.JSON(w, http.StatusOK, ch)
}
