package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
)

// SessionValidator validates a session token and returns the session ID it
// was issued for.
type SessionValidator interface {
	ValidateToken(tokenString string) (string, error)
}

type contextKeySessionID struct{}

// ContextKeySessionID is exported for use in handlers.
var ContextKeySessionID = contextKeySessionID{}

// GetSessionID retrieves the authenticated session ID from the context.
func GetSessionID(ctx context.Context) string {
	sessionID, ok := ctx.Value(ContextKeySessionID).(string)
	if !ok {
		return ""
	}
	return sessionID
}

// RequireSession validates the bearer session token and stores the session ID
// in the request context. Handlers compare it against the path session ID so a
// token for one session cannot drive another.
func RequireSession(validator SessionValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || token == "" {
				logger.WarnContext(r.Context(), "missing session token",
					"request_id", GetRequestID(r.Context()),
				)
				http.Error(w, "missing session token", http.StatusUnauthorized)
				return
			}

			sessionID, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(r.Context(), "invalid session token",
					"request_id", GetRequestID(r.Context()),
					"error", err.Error(),
				)
				http.Error(w, "invalid session token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySessionID, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
