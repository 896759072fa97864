package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/app-sre/invprobe/pkg/models"
)

type ctxKey string

const (
	ContextKeyClient ctxKey = "client"
)

type Middleware func(http.Handler) http.Handler

func writeError(w http.ResponseWriter, code int, e *models.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(e)
}
