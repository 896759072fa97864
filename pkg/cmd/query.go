package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/app-sre/invprobe/pkg/inventory"
	"github.com/app-sre/invprobe/pkg/probe"
)

func newQueryCommand(logger *zap.SugaredLogger) *cobra.Command {
	var state string

	validArgs := make([]string, 0, len(inventory.QueryTypes))
	for _, q := range inventory.QueryTypes {
		validArgs = append(validArgs, q.String())
	}

	cmd := &cobra.Command{
		Use:       "query <type>",
		Short:     "Run a single inventory query and print its data",
		Args:      cobra.ExactArgs(1),
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			queryType, err := inventory.ParseQueryType(args[0])
			if err != nil {
				return err
			}

			filter := state
			if queryType == inventory.QueryWarehouse && filter == "" {
				filter = probe.DefaultState
			}

			var filters inventory.Filters
			if filter != "" {
				filters = inventory.Filters{inventory.FilterState: filter}
			}

			client, err := newClient(logger, true)
			if err != nil {
				return err
			}

			result, err := client.Query(cmd.Context(), queryType, filters)
			if err != nil {
				return fmt.Errorf("unable to query inventory: %w", err)
			}

			return printJSON(cmd.OutOrStdout(), result.Data)
		},
	}
	cmd.Flags().StringVarP(&state, "state", "s", "", "state filter, defaults to California for warehouse queries")

	return cmd
}

func printJSON(w io.Writer, data []byte) error {
	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return fmt.Errorf("unable to format response: %w", err)
	}
	out.WriteByte('\n')

	_, err := out.WriteTo(w)
	return err
}
