// File: internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/blendchat/blendchat/internal/auth"
)

type contextKey string

// SessionKey holds the auth.SessionClaims of the caller, when present.
const SessionKey contextKey = "session"

// SessionCookieName is the cookie carrying the session JWT.
const SessionCookieName = "session_token"

// SessionFromContext returns the caller identity set by the session
// middleware, if any.
func SessionFromContext(ctx context.Context) (auth.SessionClaims, bool) {
	claims, ok := ctx.Value(SessionKey).(auth.SessionClaims)
	return claims, ok
}

// OptionalSession decodes the session cookie when present and valid. Requests
// without a usable session pass through anonymously; chat access is still
// gated by per-chat tokens downstream.
func OptionalSession(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ValidateSessionToken(cookie.Value, secretKey)
			if err != nil {
				log.Printf("[AuthMiddleware] Invalid session token: %v", err)
				clearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireSession rejects requests without a valid session cookie with 401.
func RequireSession(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil {
				writeUnauthorized(w, "session required")
				return
			}

			claims, err := auth.ValidateSessionToken(cookie.Value, secretKey)
			if err != nil {
				log.Printf("[AuthMiddleware] Invalid session token: %v", err)
				clearSessionCookie(w)
				writeUnauthorized(w, "session expired or invalid")
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
