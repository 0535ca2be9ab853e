// internal/app/features/tips/handler.go
package tips

import (
	tipstore "github.com/dalemusser/ecotrack/internal/app/store/tips"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for Tips.
type Handler struct {
	Tips *tipstore.Store
	Log  *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Tips: tipstore.New(db),
		Log:  logger,
	}
}
