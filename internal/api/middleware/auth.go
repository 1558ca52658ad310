package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/nikov/simplenote-backend/internal/auth"
)

type contextKey string

const UserIDKey contextKey = "userID"

// Auth extracts the session token from the auth cookie, verifies it and
// binds the user ID to the request context. A missing, malformed, forged or
// expired token all get the same rejection; the middleware does not reveal
// which check failed, and it never touches the database.
func Auth(tokens *auth.TokenCodec) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookieName)
			if err != nil || cookie.Value == "" {
				unauthorized(w)
				return
			}

			userID, err := tokens.Verify(cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the verified user ID bound by Auth. It is the single
// source of truth for who is making the call.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "Authentication required"})
}
