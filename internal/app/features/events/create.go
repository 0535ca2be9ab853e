// internal/app/features/events/create.go
package events

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/htmlsanitize"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/dalemusser/ecotrack/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate handles POST /api/events. Organizer comes from the verified
// token; the body cannot set it.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.Principal(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Title) == "" || req.Date.IsZero() {
		respond.Error(w, http.StatusBadRequest, "Title and date are required")
		return
	}
	if req.MaxParticipants < 0 {
		respond.Error(w, http.StatusBadRequest, "maxParticipants cannot be negative")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	e, err := h.Events.Create(ctx, models.Event{
		Title:           strings.TrimSpace(req.Title),
		Description:     htmlsanitize.Sanitize(req.Description),
		Date:            req.Date.UTC(),
		Location:        req.Location,
		Organizer:       principal,
		MaxParticipants: req.MaxParticipants,
	})
	if err != nil {
		h.Log.Error("create event failed", zap.Error(err), zap.String("organizer", principal))
		respond.Internal(w, "Failed to create event")
		return
	}

	h.Log.Info("event created",
		zap.String("event_id", e.ID.Hex()),
		zap.String("organizer", principal))

	respond.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"eventId": e.ID.Hex(),
		"message": "Event created successfully",
	})
}
