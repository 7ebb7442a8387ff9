package middleware

import (
	"context"
	"net/http"
	"strings"
)

const bearerTokenKey contextKey = "bearer_token"

// BearerTokenMiddleware extracts an Authorization bearer token into the
// request context. The token is not verified here; enforcement lives outside
// this service.
func BearerTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if token, ok := strings.CutPrefix(header, "Bearer "); ok && token != "" {
			ctx := context.WithValue(r.Context(), bearerTokenKey, token)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// BearerTokenFromContext returns the raw bearer token, or "" when absent.
func BearerTokenFromContext(ctx context.Context) string {
	if token, ok := ctx.Value(bearerTokenKey).(string); ok {
		return token
	}
	return ""
}
