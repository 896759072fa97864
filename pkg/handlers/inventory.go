package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	invprobe "github.com/app-sre/invprobe/pkg"
	"github.com/app-sre/invprobe/pkg/inventory"
	"github.com/app-sre/invprobe/pkg/middleware"
	"github.com/app-sre/invprobe/pkg/models"
)

// Inventory answers external inventory queries from the catalog. It expects
// the client ID to have been stored in the context by the authorization
// middleware.
func Inventory(cfg *invprobe.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request inventory.QueryRequest

		if err := json.NewDecoder(r.Body).Decode(&request); err != nil || request.Query.Type == "" {
			writeJSON(w, http.StatusBadRequest, &models.ErrorResponse{
				Error:            "invalid_request",
				ErrorDescription: "Query object with type field is required",
			})
			return
		}

		query := request.Query
		client, _ := r.Context().Value(middleware.ContextKeyClient).(string)

		var data any

		switch query.Type {
		case inventory.QueryWarehouse:
			state := query.Filters[inventory.FilterState]
			if state == "" {
				writeError(w, http.StatusBadRequest, "missing_filter", "State filter required for warehouse query")
				return
			}
			warehouse, found := cfg.Catalog.FindByState(state)
			if !found {
				writeError(w, http.StatusNotFound, "warehouse_not_found", fmt.Sprintf("No warehouse found for state: %s", state))
				return
			}
			data = cfg.Catalog.Inventory(warehouse)
		case inventory.QueryAllInventory:
			data = cfg.Catalog.AllInventory()
		case inventory.QueryLowStock:
			data = cfg.Catalog.LowStock()
		default:
			writeError(w, http.StatusBadRequest, "invalid_query_type", "Supported query types: warehouse, all_inventory, low_stock")
			return
		}

		cfg.Logger.Debugf("Answering %s query for client: %s", query.Type, client)

		writeJSON(w, http.StatusOK, &models.QueryResponse{
			Success:   true,
			QueryType: query.Type,
			Data:      data,
			Timestamp: time.Now().UTC(),
			Source:    models.ResponseSource,
			Client:    client,
		})
	}
}
