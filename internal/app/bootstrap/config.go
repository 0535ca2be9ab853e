// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for EcoTrack.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, oidc_issuer, etc.
//   - Environment variables: ECOTRACK_MONGO_URI, ECOTRACK_OIDC_ISSUER, etc.
//   - Command-line flags: --mongo_uri, --oidc_issuer, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "ecotrack", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	// Bearer-token verification (OIDC discovery)
	{Name: "oidc_issuer", Default: "", Desc: "OIDC issuer URL for token verification"},
	{Name: "oidc_audience", Default: "", Desc: "Expected audience (client ID) in verified tokens"},
	{Name: "auth_disabled", Default: false, Desc: "Skip token verification; bearer value becomes the principal (dev only)"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, ECOTRACK_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ECOTRACK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),
		OIDCIssuer:       appValues.String("oidc_issuer"),
		OIDCAudience:     appValues.String("oidc_audience"),
		AuthDisabled:     appValues.Bool("auth_disabled"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The MongoDB URI is checked up front so configuration errors surface before
// any connection attempt, and the auth_disabled escape hatch is refused
// outside the dev environment.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.AuthDisabled {
		if coreCfg.Env != "dev" {
			return fmt.Errorf("auth_disabled is only allowed when env is 'dev' (env is %q)", coreCfg.Env)
		}
		logger.Warn("token verification is DISABLED; bearer values are trusted as principals")
		return nil
	}

	if appCfg.OIDCIssuer == "" {
		return fmt.Errorf("oidc_issuer is required unless auth_disabled is set")
	}
	return nil
}
