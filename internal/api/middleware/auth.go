package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/MarinaMenezess/devSocial/internal/auth"
)

// Context keys for storing user information
type contextKey string

const userIDKey contextKey = "user_id"

// AuthMiddleware validates bearer tokens from the Authorization header
// and injects the authenticated user id into the request context.
type AuthMiddleware struct {
	tokens *auth.TokenIssuer
	logger *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware around the token issuer
func NewAuthMiddleware(tokens *auth.TokenIssuer, logger *slog.Logger) *AuthMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthMiddleware{
		tokens: tokens,
		logger: logger,
	}
}

// RequireAuth ensures the request carries a valid bearer token.
// If not authenticated, returns 401 without calling the next handler.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeAuthError(w, "Missing or malformed Authorization header. Expected: Bearer <token>")
			return
		}

		userID, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Warn("auth failure",
				"path", r.URL.Path,
				"method", r.Method,
				"remote", r.RemoteAddr,
				"error", err)
			writeAuthError(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth loads the user id if a valid token is present, but never
// fails the request. An invalid or expired token degrades silently to the
// anonymous path; read endpoints must not care whether decoding happened.
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := m.tokens.Verify(token)
		if err != nil {
			m.logger.Debug("optional auth failed, continuing as anonymous",
				"path", r.URL.Path,
				"error", err)
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", false
	}
	return token, true
}

// GetUserID extracts the authenticated user id from the request context.
// The second return is false for anonymous requests.
func GetUserID(r *http.Request) (int64, bool) {
	id, ok := r.Context().Value(userIDKey).(int64)
	return id, ok
}

// SetTestUserID sets the user id in the context for testing purposes.
// This function should ONLY be used in tests to mock authenticated users.
func SetTestUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// writeAuthError writes a JSON error response for authentication failures
func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	response := `{"error":"Unauthorized","message":"` + message + `"}`
	if _, err := w.Write([]byte(response)); err != nil {
		slog.Error("failed to write auth error response", "error", err)
	}
}
