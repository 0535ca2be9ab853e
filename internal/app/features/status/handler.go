// internal/app/features/status/handler.go
package status

import (
	"net/http"
	"time"

	"github.com/dalemusser/ecotrack/internal/app/system/respond"
)

// Handler serves the API root banner.
type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Serve handles GET /. It is the unauthenticated liveness banner clients use
// to confirm they reached the API at all.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{
		"message":   "EcoTrack API is running!",
		"status":    "success",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
