package handlers

import (
	"net/http"

	"github.com/app-sre/invprobe/pkg/inventory"
)

const serverName = "MCP Inventory Authorization Server"

func ServerConfig() http.HandlerFunc {
	queries := make([]string, 0, len(inventory.QueryTypes))
	for _, q := range inventory.QueryTypes {
		queries = append(queries, q.String())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, &inventory.ServerConfig{
			ServerName: serverName,
			Endpoints: inventory.Endpoints{
				ExternalInventory: inventory.InventoryPath,
				Health:            inventory.HealthPath,
			},
			SupportedQueries: queries,
		})
	}
}
