package middleware

import (
	"net/http"
	"time"
)

const timeoutBody = `{"error":"timeout","message":"Request timed out"}`

// Timeout answers with a JSON 503 when the handler runs longer than timeout.
// Content-Type is preset to JSON; a handler that sets its own keeps it.
func Timeout(timeout time.Duration) Middleware {
	return func(h http.Handler) http.Handler {
		th := http.TimeoutHandler(h, timeout, timeoutBody)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			th.ServeHTTP(w, r)
		})
	}
}
