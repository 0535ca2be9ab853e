// internal/app/features/events/get.go
package events

import (
	"context"
	"errors"
	"net/http"

	eventstore "github.com/dalemusser/ecotrack/internal/app/store/events"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ServeGet handles GET /api/events/{id}.
func (h *Handler) ServeGet(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	e, err := h.Events.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, eventstore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Event not found")
			return
		}
		h.Log.Error("get event failed", zap.Error(err), zap.String("event_id", idHex))
		respond.Internal(w, "Failed to fetch event")
		return
	}

	respond.JSON(w, http.StatusOK, e)
}
