// internal/app/features/events/update.go
package events

import (
	"context"
	"errors"
	"net/http"

	eventstore "github.com/dalemusser/ecotrack/internal/app/store/events"
	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/authz"
	"github.com/dalemusser/ecotrack/internal/app/system/htmlsanitize"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleUpdate handles PATCH /api/events/{id}. Same check order as the
// challenge patch: 400, 404, then 403. Lowering maxParticipants below the
// live attendee count is rejected.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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
		respond.Internal(w, "Failed to update event")
		return
	}
	if !authz.CanMutate(principal, e.Organizer) {
		respond.Error(w, http.StatusForbidden, "Not authorized to update this event")
		return
	}

	var req updateRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MaxParticipants != nil && *req.MaxParticipants < 0 {
		respond.Error(w, http.StatusBadRequest, "maxParticipants cannot be negative")
		return
	}
	if req.Description != nil {
		clean := htmlsanitize.Sanitize(*req.Description)
		req.Description = &clean
	}

	err = h.Events.Update(ctx, oid, eventstore.UpdateFields{
		Title:           req.Title,
		Description:     req.Description,
		Date:            req.Date,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		switch {
		case errors.Is(err, eventstore.ErrNotFound):
			respond.Error(w, http.StatusNotFound, "Event not found")
		case errors.Is(err, eventstore.ErrCapacityBelowCurrent):
			respond.Error(w, http.StatusBadRequest, "maxParticipants cannot be less than current participants")
		default:
			h.Log.Error("update event failed", zap.Error(err), zap.String("event_id", idHex))
			respond.Internal(w, "Failed to update event")
		}
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Event updated successfully",
	})
}
