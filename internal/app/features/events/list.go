// internal/app/features/events/list.go
package events

import (
	"context"
	"net/http"

	eventstore "github.com/dalemusser/ecotrack/internal/app/store/events"
	"github.com/dalemusser/ecotrack/internal/app/system/paging"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /api/events.
//
// Query params: upcoming=true / past=true (partition by date vs now), search
// (title/description/location), limit, after. Response is the raw array,
// soonest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page, ok := paging.Parse(r)
	if !ok {
		respond.Error(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	q := r.URL.Query()
	out, err := h.Events.List(ctx, eventstore.ListFilter{
		Upcoming: q.Get("upcoming") == "true",
		Past:     q.Get("past") == "true",
		Search:   q.Get("search"),
	}, page)
	if err != nil {
		h.Log.Error("list events failed", zap.Error(err))
		respond.Internal(w, "Failed to fetch events")
		return
	}

	respond.JSON(w, http.StatusOK, out)
}
