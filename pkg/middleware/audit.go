package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	invprobe "github.com/app-sre/invprobe/pkg"
	"github.com/app-sre/invprobe/pkg/audit"
	"github.com/app-sre/invprobe/pkg/inventory"
	"github.com/app-sre/invprobe/pkg/models"
)

// Audit records the query type, filters and client of every inventory
// request. Bodies that cannot be decoded are passed through so the handler
// can reject them.
func Audit(cfg *invprobe.Config) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()

			var (
				b       bytes.Buffer
				request inventory.QueryRequest
			)

			client, _ := r.Context().Value(ContextKeyClient).(string)

			if _, err := io.Copy(&b, r.Body); err != nil {
				cfg.Logger.Errorf("Unable to copy request body: %s", err)
				writeError(w, http.StatusInternalServerError, &models.ErrorResponse{
					Error:   "query_failed",
					Message: "Internal server error during inventory query",
				})
				return
			}
			_ = r.Body.Close()

			r.Body = io.NopCloser(bytes.NewReader(b.Bytes()))

			if err := json.Unmarshal(b.Bytes(), &request); err != nil {
				cfg.Logger.Debugf("Unable to unmarshal request body: %s", err)
				h.ServeHTTP(w, r)
				return
			}

			query := &audit.QueryData{
				Type:      request.Query.Type,
				Filters:   request.Query.Filters,
				Client:    client,
				Timestamp: now.Unix(),
			}
			if err := cfg.LoggerAudit.Write(query); err != nil {
				cfg.Logger.Errorf("Unable to write audit: %s", err)
			}

			h.ServeHTTP(w, r)
		})
	}
}
