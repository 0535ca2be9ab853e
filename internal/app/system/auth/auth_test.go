package auth_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/ecotrack/internal/app/system/auth"
	"go.uber.org/zap"
)

// stubVerifier accepts the single token "good-token" for principal a@x.com.
var stubVerifier = auth.VerifierFunc(func(_ context.Context, raw string) (string, error) {
	if raw == "good-token" {
		return "a@x.com", nil
	}
	return "", errors.New("invalid token")
})

func protected(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, ok := auth.Principal(r)
		if !ok {
			t.Error("handler ran without a principal in context")
		}
		seen = email
		w.WriteHeader(http.StatusOK)
	})
	return auth.RequireAuth(stubVerifier, zap.NewNop())(inner), &seen
}

func TestRequireAuth_ValidToken(t *testing.T) {
	h, seen := protected(t)

	req := httptest.NewRequest("GET", "/api/user-challenges", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if *seen != "a@x.com" {
		t.Errorf("principal: got %q, want %q", *seen, "a@x.com")
	}
}

func TestRequireAuth_Failures(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer scheme", "Basic Zm9vOmJhcg=="},
		{"bearer with no token", "Bearer "},
		{"invalid token", "Bearer bad-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := protected(t)

			req := httptest.NewRequest("GET", "/api/user-challenges", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status: got %d, want %d", rec.Code, http.StatusUnauthorized)
			}

			var body struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to parse 401 body: %v", err)
			}
			if body.Message != "unauthorized access" {
				t.Errorf("message: got %q, want %q", body.Message, "unauthorized access")
			}
		})
	}
}

func TestRequireAuth_LowercaseBearerScheme(t *testing.T) {
	h, _ := protected(t)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("scheme comparison should be case-insensitive, got %d", rec.Code)
	}
}

func TestRequireAuth_PreverifiedContext(t *testing.T) {
	h, seen := protected(t)

	req := auth.WithPrincipal(httptest.NewRequest("GET", "/", nil), "b@x.com")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if *seen != "b@x.com" {
		t.Errorf("principal: got %q, want %q", *seen, "b@x.com")
	}
}

func TestInsecureVerifier(t *testing.T) {
	v := auth.Insecure()

	email, err := v.Verify(context.Background(), "dev@local")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if email != "dev@local" {
		t.Errorf("principal: got %q, want %q", email, "dev@local")
	}

	if _, err := v.Verify(context.Background(), ""); err == nil {
		t.Error("expected error for empty token")
	}
}
