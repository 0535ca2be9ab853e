// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	challengesfeature "github.com/dalemusser/ecotrack/internal/app/features/challenges"
	eventsfeature "github.com/dalemusser/ecotrack/internal/app/features/events"
	healthfeature "github.com/dalemusser/ecotrack/internal/app/features/health"
	statusfeature "github.com/dalemusser/ecotrack/internal/app/features/status"
	tipsfeature "github.com/dalemusser/ecotrack/internal/app/features/tips"
	userchallengesfeature "github.com/dalemusser/ecotrack/internal/app/features/userchallenges"
	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"github.com/dalemusser/ecotrack/internal/app/system/requestid"
	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// Reads under /api are public; every mutation route is wrapped in the
// bearer-token middleware built here. Unknown paths get the JSON 404 body
// rather than chi's plain-text default.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier, err := buildVerifier(appCfg, logger)
	if err != nil {
		logger.Error("token verifier init failed", zap.Error(err))
		return nil, err
	}
	requireAuth := auth.RequireAuth(verifier, logger)

	r := chi.NewRouter()
	r.Use(requestid.Middleware(logger))

	// Registered before any Mount so chi propagates it into the subrouters.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		respond.Error(w, http.StatusNotFound, "Route not found")
	})

	// Root banner is a single route, not a mounted subtree, so unknown paths
	// fall through to the JSON 404 above.
	statusHandler := statusfeature.NewHandler()
	r.Get("/", statusHandler.Serve)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	challengesHandler := challengesfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/challenges", challengesfeature.Routes(challengesHandler, requireAuth))

	userChallengesHandler := userchallengesfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/user-challenges", userchallengesfeature.Routes(userChallengesHandler, requireAuth))

	eventsHandler := eventsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/events", eventsfeature.Routes(eventsHandler, requireAuth))

	tipsHandler := tipsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/api/tips", tipsfeature.Routes(tipsHandler, requireAuth))

	return r, nil
}

// buildVerifier picks the token verifier. The insecure path only exists for
// local development; ValidateConfig refuses it outside env=dev.
func buildVerifier(appCfg AppConfig, logger *zap.Logger) (auth.Verifier, error) {
	if appCfg.AuthDisabled {
		logger.Warn("using insecure verifier; bearer values are trusted as principals")
		return auth.Insecure(), nil
	}
	return auth.NewOIDCVerifier(context.Background(), appCfg.OIDCIssuer, appCfg.OIDCAudience)
}
