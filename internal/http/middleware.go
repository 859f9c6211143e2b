package http

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type ctxKey string

const (
	sessionCtxKey ctxKey = "session_id"
	userCtxKey    ctxKey = "user_id"
)

// SessionCookie names the anonymous storefront session cookie. Carts,
// wishlists and checkout wizards are keyed by its value.
const SessionCookie = "t2bike_session"

// SessionMiddleware reads the session cookie, minting a new id when the
// browser has none, and puts the id on the request context.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID string
		if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// MockAuthMiddleware simulates an authenticated customer for the profile
// views. TODO: replace with real session lookup once the backend exposes a
// whoami endpoint that returns the numeric user id.
func MockAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var userID int64 = 1
		ctx := context.WithValue(r.Context(), userCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionIDFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionCtxKey).(string); ok {
		return sessionID
	}
	return ""
}

func userIDFromContext(ctx context.Context) int64 {
	if userID, ok := ctx.Value(userCtxKey).(int64); ok {
		return userID
	}
	return 0
}
