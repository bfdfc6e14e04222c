package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// PathID rejects requests whose {name} path value is not a UUID.
// It runs before Auth so a malformed id is reported first.
func PathID(name string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.PathValue(name)
			if _, err := uuid.Parse(raw); err != nil {
				writeMessage(w, http.StatusBadRequest, "Bad Request: Invalid id: "+raw)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
