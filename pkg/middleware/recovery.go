package middleware

import (
	"errors"
	"net/http"

	invprobe "github.com/app-sre/invprobe/pkg"
	"github.com/app-sre/invprobe/pkg/models"
)

func Recovery(cfg *invprobe.Config) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if ok && errors.Is(err, http.ErrAbortHandler) {
						panic(err)
					}

					cfg.Logger.Errorf("Recovered from an error: %s", r)
					writeError(w, http.StatusInternalServerError, &models.ErrorResponse{
						Error:   "query_failed",
						Message: "Internal server error during inventory query",
					})
				}
			}()
			h.ServeHTTP(w, r)
		})
	}
}
