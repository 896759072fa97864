package inventory

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

type QueryType string

const (
	QueryWarehouse    QueryType = "warehouse"
	QueryAllInventory QueryType = "all_inventory"
	QueryLowStock     QueryType = "low_stock"
)

// FilterState is the only filter key the service recognizes, and only for
// warehouse queries. It is matched against the warehouse state.
const FilterState = "state"

// QueryTypes lists every query type the service supports, in the order the
// discovery document advertises them.
var QueryTypes = []QueryType{QueryWarehouse, QueryAllInventory, QueryLowStock}

func (q QueryType) Valid() bool {
	for _, t := range QueryTypes {
		if q == t {
			return true
		}
	}
	return false
}

func (q QueryType) String() string {
	return string(q)
}

func ParseQueryType(s string) (QueryType, error) {
	q := QueryType(strings.TrimSpace(s))
	if !q.Valid() {
		return "", &InvalidQueryError{Type: q}
	}
	return q, nil
}

type Filters map[string]string

type Query struct {
	Type    QueryType `json:"type"`
	Filters Filters   `json:"filters,omitempty"`
}

type QueryRequest struct {
	Query Query `json:"query"`
}

type Warehouse struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Location string `json:"location"`
	State    string `json:"state"`
	Active   bool   `json:"active"`
}

type Item struct {
	ID            string   `json:"id"`
	WarehouseID   string   `json:"warehouseId"`
	WarehouseName string   `json:"warehouseName,omitempty"`
	Name          string   `json:"name"`
	SKU           string   `json:"sku"`
	Category      string   `json:"category"`
	Quantity      int      `json:"quantity"`
	MinStockLevel int      `json:"minStockLevel"`
	Price         *float64 `json:"price,omitempty"`
}

// IsLow reports whether the item is at or below its reorder threshold.
func (i *Item) IsLow() bool {
	return i.Quantity <= i.MinStockLevel
}

// WarehouseInventory is the data of a warehouse query, and one element of an
// all_inventory query.
type WarehouseInventory struct {
	Warehouse     Warehouse `json:"warehouse"`
	Items         []Item    `json:"items,omitempty"`
	TotalItems    int       `json:"totalItems"`
	LowStockItems []Item    `json:"lowStockItems"`
}

func (w *WarehouseInventory) UnmarshalJSON(b []byte) error {
	type alias WarehouseInventory

	aux := &struct {
		*alias
		Warehouse *Warehouse `json:"warehouse"`
	}{
		alias: (*alias)(w),
	}

	if err := json.Unmarshal(b, aux); err != nil {
		return err
	}
	if aux.Warehouse == nil {
		return errors.New("unable to find warehouse")
	}
	w.Warehouse = *aux.Warehouse

	if w.LowStockItems == nil {
		w.LowStockItems = []Item{}
	}

	return nil
}

type LowStockWarehouse struct {
	Warehouse     string `json:"warehouse"`
	LowStockItems []Item `json:"lowStockItems"`
}

// QueryResult holds a decoded response. Type selects which one of Warehouse,
// AllInventory and LowStock carries the data.
type QueryResult struct {
	Type      QueryType
	Success   bool
	Timestamp time.Time
	Source    string
	Client    string

	// Data is the undecoded "data" member of the response.
	Data json.RawMessage

	Warehouse    *WarehouseInventory
	AllInventory []WarehouseInventory
	LowStock     []LowStockWarehouse
}

type envelope struct {
	Success   bool            `json:"success"`
	QueryType string          `json:"queryType"`
	Timestamp json.RawMessage `json:"timestamp"`
	Source    string          `json:"source"`
	Client    string          `json:"client"`
	Data      json.RawMessage `json:"data"`
}

// parseTimestamp reads an RFC 3339 string. The timestamp is informational,
// so anything else yields the zero time.
func parseTimestamp(raw json.RawMessage) time.Time {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func decodeResult(queryType QueryType, body []byte) (*QueryResult, error) {
	var e envelope

	if err := json.Unmarshal(body, &e); err != nil {
		return nil, &DecodeError{Body: body, Err: err}
	}
	if e.QueryType != "" && e.QueryType != string(queryType) {
		err := fmt.Errorf("query type mismatch: requested %s, received %s", queryType, e.QueryType)
		return nil, &DecodeError{Body: body, Err: err}
	}

	result := &QueryResult{
		Type:      queryType,
		Success:   e.Success,
		Timestamp: parseTimestamp(e.Timestamp),
		Source:    e.Source,
		Client:    e.Client,
		Data:      e.Data,
	}

	empty := len(e.Data) == 0 || string(e.Data) == "null"

	switch queryType {
	case QueryWarehouse:
		if empty {
			return nil, &DecodeError{Body: body, Err: errors.New("unable to find data")}
		}
		var w WarehouseInventory
		if err := json.Unmarshal(e.Data, &w); err != nil {
			return nil, &DecodeError{Body: body, Err: err}
		}
		result.Warehouse = &w
	case QueryAllInventory:
		if empty {
			return nil, &DecodeError{Body: body, Err: errors.New("unable to find data")}
		}
		if err := json.Unmarshal(e.Data, &result.AllInventory); err != nil {
			return nil, &DecodeError{Body: body, Err: err}
		}
	case QueryLowStock:
		result.LowStock = []LowStockWarehouse{}
		if !empty {
			if err := json.Unmarshal(e.Data, &result.LowStock); err != nil {
				return nil, &DecodeError{Body: body, Err: err}
			}
		}
	}

	return result, nil
}

type Endpoints struct {
	Authorization         string `json:"authorization,omitempty"`
	InventoryQuery        string `json:"inventoryQuery,omitempty"`
	ExternalTokenExchange string `json:"externalTokenExchange,omitempty"`
	ExternalInventory     string `json:"externalInventory"`
	Health                string `json:"health,omitempty"`
}

// ServerConfig is the discovery document served at ConfigPath.
type ServerConfig struct {
	ServerName          string    `json:"serverName"`
	Audience            string    `json:"audience,omitempty"`
	Issuer              string    `json:"issuer,omitempty"`
	Endpoints           Endpoints `json:"endpoints"`
	SupportedGrantTypes []string  `json:"supportedGrantTypes,omitempty"`
	SupportedQueries    []string  `json:"supportedQueries"`
	TokenType           string    `json:"tokenType,omitempty"`
}

func (s *ServerConfig) validate() error {
	if s.ServerName == "" {
		return errors.New("unable to find server name")
	}
	if s.Endpoints.ExternalInventory == "" {
		return errors.New("unable to find external inventory endpoint")
	}
	if s.SupportedQueries == nil {
		return errors.New("unable to find supported queries")
	}
	return nil
}

func (s *ServerConfig) Supports(q QueryType) bool {
	for _, name := range s.SupportedQueries {
		if name == string(q) {
			return true
		}
	}
	return false
}

// MissingQueries returns the known query types the server does not advertise.
func (s *ServerConfig) MissingQueries() []QueryType {
	var missing []QueryType
	for _, q := range QueryTypes {
		if !s.Supports(q) {
			missing = append(missing, q)
		}
	}
	return missing
}

type Health struct {
	Status       string    `json:"status"`
	Service      string    `json:"service"`
	Version      string    `json:"version"`
	Timestamp    time.Time `json:"timestamp"`
	Capabilities []string  `json:"capabilities"`
}

func (h *Health) UnmarshalJSON(b []byte) error {
	type alias Health

	aux := struct {
		*alias
		Timestamp json.RawMessage `json:"timestamp"`
	}{alias: (*alias)(h)}

	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	h.Timestamp = parseTimestamp(aux.Timestamp)

	return nil
}

func (h *Health) Healthy() bool {
	return h.Status == "healthy"
}
