package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"querylens/internal/gateway/entity"
)

type userIDKey struct{}

// RequireUser extracts the caller identity from the X-User-ID header and
// stores it on the request context. Requests without one get a 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := entity.NormalizeUserID(r.Header.Get("X-User-ID"))
		if userID.IsZero() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": "authentication required",
			})
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserFromContext returns the identity stored by RequireUser.
func UserFromContext(ctx context.Context) (entity.UserID, bool) {
	userID, ok := ctx.Value(userIDKey{}).(entity.UserID)
	return userID, ok
}
