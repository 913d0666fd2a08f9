// internal/adapters/in/http/middleware/cors.go
package middleware

import (
	"net/http"
	"strings"
)

// CORS allows the configured front-end origin. An empty origin falls back
// to "*" for local development; production sets ALLOWED_ORIGIN strictly.
func CORS(allowOrigin string) func(http.Handler) http.Handler {
	origin := strings.TrimSpace(allowOrigin)
	if origin == "" {
		origin = "*"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type,X-Session-Id")
			w.Header().Set("Access-Control-Max-Age", "600")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
