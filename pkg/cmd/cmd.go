package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	invprobe "github.com/app-sre/invprobe/pkg"
	"github.com/app-sre/invprobe/pkg/env"
	"github.com/app-sre/invprobe/pkg/env/mcp"
	"github.com/app-sre/invprobe/pkg/inventory"
	"github.com/app-sre/invprobe/pkg/probe"
	"github.com/app-sre/invprobe/pkg/version"
)

var errChecksFailed = errors.New("one or more checks failed")

// NewRootCommand builds the command tree. Running the root command without a
// subcommand executes the full probe.
func NewRootCommand(logger *zap.SugaredLogger) *cobra.Command {
	var state string

	root := &cobra.Command{
		Use:           "invprobe",
		Short:         "Probe an MCP inventory service",
		Version:       version.Version(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, err := env.LoadFile()
			if err != nil {
				return err
			}
			if path != "" {
				logger.Debugf("Loaded environment from: %s", path)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(logger, true)
			if err != nil {
				return err
			}

			r := &probe.Runner{
				Client: client,
				Out:    cmd.OutOrStdout(),
				Logger: logger,
				State:  state,
			}
			if summary := r.Run(cmd.Context()); !summary.OK() {
				return errChecksFailed
			}
			return nil
		},
	}
	root.Flags().StringVarP(&state, "state", "s", probe.DefaultState, "state used for the warehouse check")

	root.AddCommand(
		newQueryCommand(logger),
		newConfigCommand(logger),
		newHealthCommand(logger),
		newFixtureCommand(logger),
	)

	return root
}

func newClient(logger *zap.SugaredLogger, authenticated bool) (*inventory.Client, error) {
	mcpe := mcp.NewMCPEnv()

	populate := mcpe.PopulateBaseURL
	if authenticated {
		populate = mcpe.Populate
	}
	if err := populate(); err != nil {
		return nil, fmt.Errorf("unable to configure MCP client: %w", err)
	}

	timeout := invprobe.RequestTimeout()
	logger.Debugf("Using MCP service: %s (client: %s, timeout: %s)", mcpe.BaseURL, mcpe.ClientID, timeout)

	return inventory.NewClient(mcpe.BaseURL, mcpe.Credentials(),
		inventory.WithLogger(logger),
		inventory.WithTimeout(timeout),
	)
}
