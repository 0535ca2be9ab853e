// internal/app/features/challenges/create.go
package challenges

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/htmlsanitize"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/dalemusser/ecotrack/internal/app/system/txn"
	"github.com/dalemusser/ecotrack/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate handles POST /api/challenges.
//
// CreatedBy is stamped from the verified principal; a createdBy field in the
// body is ignored by construction (the decode target has no such field). The
// creator's membership row is written in the same transaction as the
// challenge, so a challenge never exists without its creator row.
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
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Category) == "" {
		respond.Error(w, http.StatusBadRequest, "Title and category are required")
		return
	}

	ch := models.Challenge{
		Title:               strings.TrimSpace(req.Title),
		Category:            strings.TrimSpace(req.Category),
		Description:         htmlsanitize.Sanitize(req.Description),
		Duration:            req.Duration,
		Target:              req.Target,
		HowToParticipate:    req.HowToParticipate,
		EnvironmentalImpact: htmlsanitize.Sanitize(req.EnvironmentalImpact),
		ImageURL:            req.ImageURL,
		SecondaryTag:        req.SecondaryTag,
		CreatedBy:           principal,
	}
	if req.CommunityGoal != nil {
		ch.CommunityGoal = *req.CommunityGoal
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err := txn.WithTransaction(ctx, h.Client, func(ctx context.Context) error {
		created, err := h.Challenges.Create(ctx, ch)
		if err != nil {
			return err
		}
		ch = created
		_, err = h.Members.AddCreator(ctx, principal, created)
		return err
	})
	if err != nil {
		h.Log.Error("create challenge failed", zap.Error(err), zap.String("created_by", principal))
		respond.Internal(w, "Failed to create challenge")
		return
	}

	h.Log.Info("challenge created",
		zap.String("challenge_id", ch.ID.Hex()),
		zap.String("created_by", principal))

	respond.JSON(w, http.StatusCreated, map[string]any{
		"success":     true,
		"challengeId": ch.ID.Hex(),
		"message":     "Challenge created successfully",
	})
}
