package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/app-sre/invprobe/pkg/inventory"
)

const DefaultState = "California"

// Querier is the subset of the inventory client the probe exercises.
type Querier interface {
	Query(ctx context.Context, queryType inventory.QueryType, filters inventory.Filters) (*inventory.QueryResult, error)
	FetchConfig(ctx context.Context) (*inventory.ServerConfig, error)
}

type Runner struct {
	Client Querier
	Out    io.Writer
	Logger *zap.SugaredLogger
	State  string
}

type Summary struct {
	Passed int
	Failed int
}

func (s *Summary) OK() bool {
	return s.Failed == 0
}

type check struct {
	name string
	run  func(context.Context) ([]string, error)
}

// Run executes every check in order. A failing check does not stop the
// ones after it.
func (r *Runner) Run(ctx context.Context) *Summary {
	state := r.State
	if state == "" {
		state = DefaultState
	}
	if r.Logger == nil {
		r.Logger = zap.NewNop().Sugar()
	}

	checks := []check{
		{fmt.Sprintf("warehouse (%s)", state), func(ctx context.Context) ([]string, error) {
			return r.warehouse(ctx, state)
		}},
		{"all_inventory", r.allInventory},
		{"low_stock", r.lowStock},
		{"config", r.config},
	}

	summary := &Summary{}

	fmt.Fprintln(r.Out, "Probing MCP inventory service")

	for _, c := range checks {
		lines, err := c.run(ctx)
		if err != nil {
			summary.Failed++
			r.Logger.Debugf("Check %s failed: %s", c.name, err)
			fmt.Fprintf(r.Out, "FAIL %s: %s\n", c.name, err)
			lines = append(lines, failureDetail(err)...)
		} else {
			summary.Passed++
			fmt.Fprintf(r.Out, "PASS %s\n", c.name)
		}
		for _, line := range lines {
			fmt.Fprintf(r.Out, "     %s\n", line)
		}
	}

	fmt.Fprintf(r.Out, "%d passed, %d failed\n", summary.Passed, summary.Failed)

	return summary
}

func failureDetail(err error) []string {
	var rejected *inventory.RejectedError
	if !errors.As(err, &rejected) {
		return nil
	}

	if rejected.Unauthorized() {
		return []string{"check MCP_CLIENT_ID and MCP_CLIENT_SECRET"}
	}
	return nil
}

func (r *Runner) config(ctx context.Context) ([]string, error) {
	config, err := r.Client.FetchConfig(ctx)
	if err != nil {
		return nil, err
	}

	lines := []string{
		fmt.Sprintf("server: %s", config.ServerName),
		fmt.Sprintf("inventory endpoint: %s", config.Endpoints.ExternalInventory),
		fmt.Sprintf("supported queries: %s", strings.Join(config.SupportedQueries, ", ")),
	}
	if missing := config.MissingQueries(); len(missing) > 0 {
		names := make([]string, 0, len(missing))
		for _, q := range missing {
			names = append(names, q.String())
		}
		lines = append(lines, fmt.Sprintf("warning: server does not advertise: %s", strings.Join(names, ", ")))
	}

	return lines, nil
}

func (r *Runner) warehouse(ctx context.Context, state string) ([]string, error) {
	result, err := r.Client.Query(ctx, inventory.QueryWarehouse, inventory.Filters{inventory.FilterState: state})
	if err != nil {
		return nil, err
	}

	w := result.Warehouse
	return []string{
		fmt.Sprintf("%s, %s", w.Warehouse.Name, w.Warehouse.Location),
		fmt.Sprintf("%d items, %d low stock", w.TotalItems, len(w.LowStockItems)),
	}, nil
}

func (r *Runner) allInventory(ctx context.Context) ([]string, error) {
	result, err := r.Client.Query(ctx, inventory.QueryAllInventory, nil)
	if err != nil {
		return nil, err
	}

	lines := []string{fmt.Sprintf("%d warehouses", len(result.AllInventory))}
	for _, w := range result.AllInventory {
		lines = append(lines, fmt.Sprintf("%s (%s): %d items", w.Warehouse.Name, w.Warehouse.State, w.TotalItems))
	}
	return lines, nil
}

func (r *Runner) lowStock(ctx context.Context) ([]string, error) {
	result, err := r.Client.Query(ctx, inventory.QueryLowStock, nil)
	if err != nil {
		return nil, err
	}

	if len(result.LowStock) == 0 {
		return []string{"no low stock items found"}, nil
	}

	lines := []string{fmt.Sprintf("%d warehouses with low stock", len(result.LowStock))}
	for _, w := range result.LowStock {
		for _, item := range w.LowStockItems {
			lines = append(lines, fmt.Sprintf("%s: %s %d/%d", w.Warehouse, item.SKU, item.Quantity, item.MinStockLevel))
		}
	}
	return lines, nil
}
