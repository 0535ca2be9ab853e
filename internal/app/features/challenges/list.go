// internal/app/features/challenges/list.go
package challenges

import (
	"context"
	"net/http"

	challengestore "github.com/dalemusser/ecotrack/internal/app/store/challenges"
	"github.com/dalemusser/ecotrack/internal/app/system/paging"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /api/challenges.
//
// Query params: category (exact), search (case-insensitive substring on
// title/description), status=active|past, limit, after.
// The response is the raw JSON array, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page, ok := paging.Parse(r)
	if !ok {
		respond.Error(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	q := r.URL.Query()
	out, err := h.Challenges.List(ctx, challengestore.ListFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Status:   q.Get("status"),
	}, page)
	if err != nil {
		h.Log.Error("list challenges failed", zap.Error(err))
		respond.Internal(w, "Failed to fetch challenges")
		return
	}

	respond.JSON(w, http.StatusOK, out)
}
