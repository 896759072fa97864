package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/etherlabsio/healthcheck/v2"

	invprobe "github.com/app-sre/invprobe/pkg"
)

func Healthcheck(cfg *invprobe.Config) http.Handler {
	return healthcheck.Handler(
		healthcheck.WithTimeout(5*time.Second),
		healthcheck.WithChecker(
			"catalog", healthcheck.CheckerFunc(
				func(ctx context.Context) error {
					if cfg.Catalog == nil || len(cfg.Catalog.Warehouses()) == 0 {
						cfg.Logger.Errorf("Healthcheck failed: inventory catalog is empty")
						return errors.New("Inventory catalog is empty")
					}
					return nil
				},
			),
		),
	)
}
