// internal/app/features/userchallenges/handler.go
package userchallenges

import (
	memberchallenges "github.com/dalemusser/ecotrack/internal/app/store/queries/memberchallenges"
	userchallengestore "github.com/dalemusser/ecotrack/internal/app/store/userchallenges"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the principal's memberships.
// Reads go through the aggregation query (embedded challenge); writes go
// through the membership store.
type Handler struct {
	Members *userchallengestore.Store
	Query   *memberchallenges.Query
	Log     *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Members: userchallengestore.New(db),
		Query:   memberchallenges.New(db),
		Log:     logger,
	}
}
