// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/ecotrack/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnsureSchema reconciles indexes at startup. The unique membership index is
// created here, so duplicate-join protection is in place before the first
// request is served.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.MongoDatabase, logger)
}
