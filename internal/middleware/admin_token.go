package middleware

import (
	"context"
	"net/http"
)

// AdminTokenKey is the context key under which the X-Admin-Token header is
// stored.
const AdminTokenKey contextKey = "admin_token"

// AdminTokenMiddleware copies the opaque X-Admin-Token header into the
// request context. The token is never validated here; an external gatekeeper
// in front of this service owns that decision.
func AdminTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Admin-Token")
		if token != "" {
			r = r.WithContext(context.WithValue(r.Context(), AdminTokenKey, token))
		}
		next.ServeHTTP(w, r)
	})
}

// GetAdminToken returns the pass-through admin token, or an empty string.
func GetAdminToken(ctx context.Context) string {
	if token, ok := ctx.Value(AdminTokenKey).(string); ok {
		return token
	}
	return ""
}
