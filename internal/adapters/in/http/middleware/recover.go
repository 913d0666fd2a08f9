// internal/adapters/in/http/middleware/recover.go
package middleware

import (
	"fmt"
	"log"
	"net/http"
	"runtime/debug"
)

func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("[recover] PANIC: %v\n%s", rec, string(debug.Stack()))

				// always answer; CORS headers are attached by the outer chain
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(fmt.Sprintf(`{"error":"internal server error","detail":"%v"}`, rec)))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
