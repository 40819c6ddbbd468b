package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/brandwave/social-backend/internal/logs"
)

// Recoverer turns a handler panic into a 500 JSON response and logs the
// stack with the request id.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logs.Logger.Errorf("panic: %v reqid=%s method=%s uri=%s\nstack:\n%s",
					rec, GetRequestID(r), r.Method, r.RequestURI, string(debug.Stack()))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
