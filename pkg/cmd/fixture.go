package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	invprobe "github.com/app-sre/invprobe/pkg"
	"github.com/app-sre/invprobe/pkg/audit"
	"github.com/app-sre/invprobe/pkg/env/mcp"
	"github.com/app-sre/invprobe/pkg/handlers"
	"github.com/app-sre/invprobe/pkg/inventory"
	"github.com/app-sre/invprobe/pkg/middleware"
	"github.com/app-sre/invprobe/pkg/models"
	"github.com/app-sre/invprobe/pkg/version"
)

const (
	defaultAddr = ":5000"

	readTimeout       = 1 * time.Minute
	readHeaderTimeout = 20 * time.Second
	writeTimeout      = 2 * time.Minute
	shutdownTimeout   = 10 * time.Second
)

func newFixtureCommand(logger *zap.SugaredLogger) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Serve a local inventory service backed by demo data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFixture(cmd.Context(), logger, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "address to listen on")

	return cmd
}

func runFixture(ctx context.Context, logger *zap.SugaredLogger, addr string) error {
	production := invprobe.Production()
	logger.Infof("Starting inventory fixture version: %s", version.Version())

	mcpe := mcp.NewMCPEnv()
	if err := mcpe.PopulateCredentials(); err != nil {
		return fmt.Errorf("unable to configure credentials: %w", err)
	}
	logger.Infof("Production: %t, accepted client: %s", production, mcpe.ClientID)

	cfg := &invprobe.Config{
		Credentials: mcpe.Credentials(),
		Catalog:     models.DemoCatalog(),
		LoggerAudit: audit.NewLoggerAudit(logger),
		Logger:      logger,
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(cfg, production),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Infof("HTTP server starting on: %s", addr)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("unable to start HTTP server: %w", err)
	}

	return nil
}

// NewRouter wires the fixture endpoints. Only the inventory endpoint
// requires authentication.
func NewRouter(cfg *invprobe.Config, production bool) http.Handler {
	defaultLogOutput := log.Default().Writer()

	healthLogOutput := io.Discard
	if !production {
		healthLogOutput = defaultLogOutput
	}
	logHandler := gorillaHandlers.LoggingHandler

	inventoryChain := alice.New(
		alice.Constructor(middleware.Recovery(cfg)),
		alice.Constructor(middleware.Timeout(invprobe.RequestTimeout())),
		alice.Constructor(middleware.Authorization(cfg)),
		alice.Constructor(middleware.Audit(cfg)),
	).Then(handlers.Inventory(cfg))

	r := mux.NewRouter()
	r.Handle("/healthcheck", logHandler(healthLogOutput, handlers.Healthcheck(cfg))).Methods("GET")
	r.Handle(inventory.HealthPath, logHandler(healthLogOutput, handlers.Health())).Methods("GET")
	r.Handle(inventory.ConfigPath, logHandler(defaultLogOutput, handlers.ServerConfig())).Methods("GET")
	r.Handle(inventory.InventoryPath, logHandler(defaultLogOutput, inventoryChain)).Methods("POST")

	return r
}
