// internal/app/features/tips/create.go
package tips

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

// HandleCreate handles POST /api/tips. Author comes from the verified token.
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
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		respond.Error(w, http.StatusBadRequest, "Title and content are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	tip, err := h.Tips.Create(ctx, models.Tip{
		Title:    strings.TrimSpace(req.Title),
		Content:  htmlsanitize.Sanitize(req.Content),
		Category: req.Category,
		Author:   principal,
	})
	if err != nil {
		h.Log.Error("create tip failed", zap.Error(err), zap.String("author", principal))
		respond.Internal(w, "Failed to create tip")
		return
	}

	h.Log.Info("tip created",
		zap.String("tip_id", tip.ID.Hex()),
		zap.String("author", principal))

	respond.JSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"tipId":   tip.ID.Hex(),
		"message": "Tip created successfully",
	})
}
