// Package server exposes the chunk-processing pipeline and quiz engine over
// a JSON HTTP API.
package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

type contextKey string

const sessionKey contextKey = "session"

type session struct {
	UserID int64
	Token  string
}

// TokenParser validates a session token and returns the user id it carries.
type TokenParser interface {
	ParseToken(tokenText string) (int64, error)
}

// AuthMiddleware rejects requests without a valid bearer token and stores
// the session in the request context.
func AuthMiddleware(tokens TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				jsonError(w, "missing authorization header", http.StatusUnauthorized)
				return
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				jsonError(w, "invalid authorization format", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.ParseToken(parts[1])
			if err != nil {
				jsonError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, session{UserID: userID, Token: parts[1]})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func sessionFromContext(ctx context.Context) (session, bool) {
	s, ok := ctx.Value(sessionKey).(session)
	return s, ok
}

func corsOptions(allowedOrigins []string) cors.Options {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	// With a wildcard origin, credentials must stay off.
	allowCreds := true
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowCreds = false
			break
		}
	}

	return cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: allowCreds,
		MaxAge:           300,
	}
}
