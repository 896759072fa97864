package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/app-sre/invprobe/internal/test"
	invprobe "github.com/app-sre/invprobe/pkg"
	"github.com/app-sre/invprobe/pkg/inventory"
	"github.com/app-sre/invprobe/pkg/middleware"
	"github.com/app-sre/invprobe/pkg/models"
)

func TestInventory(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       string
		code        int
		body        string
		check       func(*testing.T, *models.QueryResponse)
	}{
		{
			"warehouse query for a known state",
			`{"query":{"type":"warehouse","filters":{"state":"Texas"}}}`,
			200,
			`"queryType":"warehouse"`,
			func(t *testing.T, r *models.QueryResponse) {
				data, ok := r.Data.(map[string]any)
				require.True(t, ok)
				warehouse, ok := data["warehouse"].(map[string]any)
				require.True(t, ok)
				assert.Equal(t, "Central Distribution Hub", warehouse["name"])
				assert.EqualValues(t, 3, data["totalItems"])
			},
		},
		{
			"warehouse query for an unknown state",
			`{"query":{"type":"warehouse","filters":{"state":"Oregon"}}}`,
			404,
			`{"error":"warehouse_not_found","message":"No warehouse found for state: Oregon"}`,
			nil,
		},
		{
			"warehouse query without state filter",
			`{"query":{"type":"warehouse"}}`,
			400,
			`{"error":"missing_filter","message":"State filter required for warehouse query"}`,
			nil,
		},
		{
			"all inventory query",
			`{"query":{"type":"all_inventory"}}`,
			200,
			`"source":"mcp-external-api"`,
			func(t *testing.T, r *models.QueryResponse) {
				data, ok := r.Data.([]any)
				require.True(t, ok)
				assert.Len(t, data, 3)
			},
		},
		{
			"low stock query",
			`{"query":{"type":"low_stock","filters":{}}}`,
			200,
			`"warehouseName":"West Coast Distribution"`,
			func(t *testing.T, r *models.QueryResponse) {
				data, ok := r.Data.([]any)
				require.True(t, ok)
				assert.Len(t, data, 3)
			},
		},
		{
			"unknown query type",
			`{"query":{"type":"everything"}}`,
			400,
			`{"error":"invalid_query_type","message":"Supported query types: warehouse, all_inventory, low_stock"}`,
			nil,
		},
		{
			"query without type",
			`{"query":{}}`,
			400,
			`{"error":"invalid_request","error_description":"Query object with type field is required"}`,
			nil,
		},
		{
			"malformed request body",
			`{"query":`,
			400,
			`"error":"invalid_request"`,
			nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			var body bytes.Buffer

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, inventory.InventoryPath, strings.NewReader(tc.given))
			r = r.WithContext(context.WithValue(r.Context(), middleware.ContextKeyClient, "test"))

			logger := test.DummyLogger(io.Discard).Sugar()

			expected := &invprobe.Config{Catalog: models.DemoCatalog(), Logger: logger}
			Inventory(expected).ServeHTTP(w, r)

			actual := w.Result()
			defer func() { _ = actual.Body.Close() }()

			_, _ = io.Copy(&body, actual.Body)

			assert.Equal(t, tc.code, actual.StatusCode)
			assert.Equal(t, "application/json", actual.Header.Get("Content-Type"))
			assert.Contains(t, body.String(), tc.body)

			if tc.check != nil {
				var response models.QueryResponse
				require.NoError(t, json.Unmarshal(body.Bytes(), &response))
				assert.True(t, response.Success)
				assert.Equal(t, "test", response.Client)
				assert.False(t, response.Timestamp.IsZero())
				tc.check(t, &response)
			}
		})
	}
}
