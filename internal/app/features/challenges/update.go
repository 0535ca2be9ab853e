// internal/app/features/challenges/update.go
package challenges

import (
	"context"
	"errors"
	"net/http"

	challengestore "github.com/dalemusser/ecotrack/internal/app/store/challenges"
	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/authz"
	"github.com/dalemusser/ecotrack/internal/app/system/htmlsanitize"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/ecotrack/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleUpdate handles PATCH /api/challenges/{id}.
//
// Check order: 400 malformed id, then 404 absent, then 403 non-owner. The
// existence check runs before the ownership check so a non-owner probing a
// random id learns nothing beyond "not found".
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	idHex := chi.URLParam(r, "id")
	oid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid challenge ID")
		return
	}

	principal, ok := auth.Principal(r)
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "unauthorized access")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ch, err := h.Challenges.GetByID(ctx, oid)
	if err != nil {
		if errors.Is(err, challengestore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Challenge not found")
			return
		}
		h.Log.Error("get challenge failed", zap.Error(err), zap.String("challenge_id", idHex))
		respond.Internal(w, "Failed to update challenge")
		return
	}
	if !authz.CanMutate(principal, ch.CreatedBy) {
		respond.Error(w, http.StatusForbidden, "Not authorized to update this challenge")
		return
	}

	var req updateRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Description != nil {
		clean := htmlsanitize.Sanitize(*req.Description)
		req.Description = &clean
	}
	if req.EnvironmentalImpact != nil {
		clean := htmlsanitize.Sanitize(*req.EnvironmentalImpact)
		req.EnvironmentalImpact = &clean
	}

	err = h.Challenges.Update(ctx, oid, challengestore.UpdateFields{
		Title:               req.Title,
		Category:            req.Category,
		Description:         req.Description,
		Duration:            req.Duration,
		Target:              req.Target,
		HowToParticipate:    req.HowToParticipate,
		EnvironmentalImpact: req.EnvironmentalImpact,
		CommunityGoal:       req.CommunityGoal,
		ImageURL:            req.ImageURL,
		SecondaryTag:        req.SecondaryTag,
	})
	if err != nil {
		if errors.Is(err, challengestore.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "Challenge not found")
			return
		}
		h.Log.Error("update challenge failed", zap.Error(err), zap.String("challenge_id", idHex))
		respond.Internal(w, "Failed to update challenge")
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Challenge updated successfully",
	})
}
