package handlers

import (
	"net/http"
	"time"

	"github.com/app-sre/invprobe/pkg/inventory"
	"github.com/app-sre/invprobe/pkg/version"
)

const serviceName = "mcp-inventory-server"

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, &inventory.Health{
			Status:       "healthy",
			Service:      serviceName,
			Version:      version.Version(),
			Timestamp:    time.Now().UTC(),
			Capabilities: []string{"inventory_query", "warehouse_lookup"},
		})
	}
}
