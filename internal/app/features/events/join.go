// internal/app/features/events/join.go
package events

import (
	"context"
	"errors"
	"net/http"

	eventstore "github.com/dalemusser/ecotrack/internal/app/store/events"
	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleJoin handles POST /api/events/{id}/join.
//
// The capacity check is inside the store's conditional update, so two
// requests racing for the last slot cannot both get a 200.
func (h *Handler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	principal, ok := auth.Principal(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Events.Join(ctx, oid); err != nil {
		switch {
		case errors.Is(err, eventstore.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, eventstore.ErrFull):
			respond.Error(w, http.StatusBadRequest, "Event is full")
		default:
			h.Log.Error("join event failed", zap.Error(err),
				zap.String("event_id", idHex), zap.String("email", principal))
			respond.Internal(w, "Failed to join event")
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Joined event successfully",
	})
}
