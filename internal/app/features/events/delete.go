// internal/app/features/events/delete.go
package events

import (
	"context"
	"errors"
	"net/http"

	eventstore "github.com/dalemusser/ecotrack/internal/app/store/events"
	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/authz"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete handles DELETE /api/events/{id}. Events have no dependent
// collection, so no cascade is needed.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	e, err := h.Events.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, eventstore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Event not found")
			return
		}
		h.Log.Error("get event failed", zap.Error(err), zap.String("event_id", idHex))
		respond.Internal(w, "Failed to delete event")
		return
	}
	if !authz.CanMutate(principal, e.Organizer) {
		respond.Error(w, http.StatusForbidden, "Not authorized to delete this event")
		return
	}

	if err := h.Events.Delete(ctx, oid); err != nil {
		if errors.Is(err, eventstore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Event not found")
			return
		}
		h.Log.Error("delete event failed", zap.Error(err), zap.String("event_id", idHex))
		respond.Internal(w, "Failed to delete event")
		return
	}

	h.Log.Info("event deleted", zap.String("event_id", idHex))

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Event deleted successfully",
	})
}
