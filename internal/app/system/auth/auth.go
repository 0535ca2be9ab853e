// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/ecotrack/internal/app/system/respond"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Principal context plumbing                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

type ctxKey string

const principalKey ctxKey = "principal"

// Principal returns the verified identity (email) for the request and a
// "found?" flag. It is only set by RequireAuth, so ok=true means the bearer
// token on this request was verified.
func Principal(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(principalKey).(string)
	return email, ok && email != ""
}

// WithPrincipal returns a request whose context carries the given principal.
// Handler tests use this to bypass token verification.
func WithPrincipal(r *http.Request, email string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), principalKey, email))
}

/*─────────────────────────────────────────────────────────────────────────────*
| Token verification                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// Verifier exchanges a raw bearer credential for a verified principal
// identity. Implementations must treat every failure as terminal for the
// request; verification is never transient-retryable.
type Verifier interface {
	Verify(ctx context.Context, rawToken string) (email string, err error)
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(ctx context.Context, rawToken string) (string, error)

func (f VerifierFunc) Verify(ctx context.Context, rawToken string) (string, error) {
	return f(ctx, rawToken)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// unauthorizedMessage is the exact 401 body the API has always returned;
// clients match on it.
const unauthorizedMessage = "unauthorized access"

// RequireAuth returns middleware that verifies the Authorization bearer token
// and injects the principal into the request context. Any failure — missing
// header, malformed header, invalid or expired token — yields
// 401 {"message":"unauthorized access"} and the handler body never runs.
func RequireAuth(v Verifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// A principal already in context means an outer RequireAuth (or a
			// test) verified this request.
			if _, ok := Principal(r); ok {
				next.ServeHTTP(w, r)
				return
			}

			raw, ok := bearerToken(r)
			if !ok {
				respond.Error(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			email, err := v.Verify(r.Context(), raw)
			if err != nil || email == "" {
				logger.Debug("token verification failed", zap.Error(err))
				respond.Error(w, http.StatusUnauthorized, unauthorizedMessage)
				return
			}

			next.ServeHTTP(w, WithPrincipal(r, email))
		})
	}
}

// bearerToken extracts the credential from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
