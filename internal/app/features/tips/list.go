// internal/app/features/tips/list.go
package tips

import (
	"context"
	"net/http"

	tipstore "github.com/dalemusser/ecotrack/internal/app/store/tips"
	"github.com/dalemusser/ecotrack/internal/app/system/paging"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// ServeList handles GET /api/tips.
//
// Query params: category (exact), search (title/content), limit, after.
// Response is the raw array, most-upvoted first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page, ok := paging.Parse(r)
	if !ok {
		respond.Error(w, http.StatusBadRequest, "Invalid pagination parameters")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	q := r.URL.Query()
	out, err := h.Tips.List(ctx, tipstore.ListFilter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}, page)
	if err != nil {
		h.Log.Error("list tips failed", zap.Error(err))
		respond.Internal(w, "Failed to fetch tips")
		return
	}

	respond.JSON(w, http.StatusOK, out)
}
