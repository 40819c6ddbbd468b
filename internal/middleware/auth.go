package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/brandwave/social-backend/internal/auth"
)

const userIDKey ctxKey = "userId"

// AuthGate rejects every protected request that does not carry a valid
// bearer token, and attaches the resolved user id to the request context.
// It performs no role or ownership checks; any valid token grants access
// to every entity operation.
type AuthGate struct {
	Tokens *auth.TokenManager
}

func NewAuthGate(tokens *auth.TokenManager) *AuthGate {
	return &AuthGate{Tokens: tokens}
}

// Middleware returns the HTTP middleware enforcing the gate.
func (g *AuthGate) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.shouldSkip(r) {
			next.ServeHTTP(w, r)
			return
		}

		token := bearerToken(r)
		if token == "" {
			writeAuthError(w, "No token, authorization denied")
			return
		}

		userID, err := g.Tokens.Verify(token)
		if err != nil {
			writeAuthError(w, "Token is not valid, authorization denied")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// shouldSkip returns true for the routes that must stay reachable without a
// credential: registration, login and the health check.
func (g *AuthGate) shouldSkip(r *http.Request) bool {
	skipPaths := []string{
		"/api/user/register",
		"/api/user/login",
		"/health",
	}
	for _, path := range skipPaths {
		if r.URL.Path == path {
			return true
		}
	}
	return false
}

// bearerToken extracts the token from "Authorization: Bearer <token>".
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func writeAuthError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// UserID returns the authenticated user id attached by the gate, or "" when
// the request never passed through it.
func UserID(ctx context.Context) string {
	if v, ok := ctx.Value(userIDKey).(string); ok {
		return v
	}
	return ""
}
