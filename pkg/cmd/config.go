package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newConfigCommand(logger *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the service discovery document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(logger, false)
			if err != nil {
				return err
			}

			config, err := client.FetchConfig(cmd.Context())
			if err != nil {
				return fmt.Errorf("unable to fetch server configuration: %w", err)
			}
			if missing := config.MissingQueries(); len(missing) > 0 {
				logger.Warnf("Server does not advertise queries: %v", missing)
			}

			data, err := json.Marshal(config)
			if err != nil {
				return fmt.Errorf("unable to marshal server configuration: %w", err)
			}
			return printJSON(cmd.OutOrStdout(), data)
		},
	}
}

func newHealthCommand(logger *zap.SugaredLogger) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the service health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(logger, false)
			if err != nil {
				return err
			}

			health, err := client.Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("unable to check health: %w", err)
			}

			data, err := json.Marshal(health)
			if err != nil {
				return fmt.Errorf("unable to marshal health status: %w", err)
			}
			if err := printJSON(cmd.OutOrStdout(), data); err != nil {
				return err
			}

			if !health.Healthy() {
				return fmt.Errorf("service is not healthy: %s", health.Status)
			}
			return nil
		},
	}
}
