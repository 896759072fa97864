package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"

	invprobe "github.com/app-sre/invprobe/pkg"
	"github.com/app-sre/invprobe/pkg/models"
)

// Authorization requires HTTP Basic credentials matching the configured
// client ID and secret. The client ID is stored in the request context.
func Authorization(cfg *invprobe.Config) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			clientID, clientSecret, ok := r.BasicAuth()
			if !ok {
				writeError(w, http.StatusUnauthorized, &models.ErrorResponse{
					Error:            "invalid_client",
					ErrorDescription: "Client authentication required - use Basic auth with clientId:clientSecret",
				})
				return
			}

			expected := cfg.Credentials
			if expected.ClientID == "" || expected.ClientSecret == "" {
				writeError(w, http.StatusUnauthorized, &models.ErrorResponse{
					Error:            "invalid_client",
					ErrorDescription: "Request cannot be authorized",
				})
				return
			}

			idMatch := subtle.ConstantTimeCompare([]byte(clientID), []byte(expected.ClientID))
			secretMatch := subtle.ConstantTimeCompare([]byte(clientSecret), []byte(expected.ClientSecret))
			if idMatch&secretMatch != 1 {
				cfg.Logger.Errorf("Invalid client credentials: %s", clientID)
				writeError(w, http.StatusUnauthorized, &models.ErrorResponse{
					Error:            "invalid_client",
					ErrorDescription: "Invalid client credentials",
				})
				return
			}

			ctx = context.WithValue(ctx, ContextKeyClient, clientID)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
