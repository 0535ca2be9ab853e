// internal/app/features/challenges/handler.go
package challenges

import (
	challengestore "github.com/dalemusser/ecotrack/internal/app/store/challenges"
	userchallengestore "github.com/dalemusser/ecotrack/internal/app/store/userchallenges"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Challenges.
type Handler struct {
	Challenges *challengestore.Store
	Members    *userchallengestore.Store
	Client     *mongo.Client
	Log        *zap.Logger
}

// NewHandler constructs a Challenges handler bound to its stores and logger.
// The client is needed for the multi-collection transactions (create stamps a
// creator membership; delete cascades memberships).
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Challenges: challengestore.New(db),
		Members:    userchallengestore.New(db),
		Client:     db.Client(),
		Log:        logger,
	}
}
