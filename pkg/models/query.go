package models

import (
	"time"

	"github.com/app-sre/invprobe/pkg/inventory"
)

const ResponseSource = "mcp-external-api"

// QueryResponse is the envelope the inventory endpoint answers with.
type QueryResponse struct {
	Success   bool                `json:"success"`
	QueryType inventory.QueryType `json:"queryType"`
	Data      any                 `json:"data"`
	Timestamp time.Time           `json:"timestamp"`
	Source    string              `json:"source"`
	Client    string              `json:"client"`
}

type ErrorResponse struct {
	Error            string `json:"error"`
	Message          string `json:"message,omitempty"`
	ErrorDescription string `json:"error_description,omitempty"`
}
