/*
PURPOSE:
  Defines the 'list-options' subcommand.
  Helps discover valid values for the filter flags.

REQUIREMENTS:
  User-specified:
  - List available filter values.

  Implementation-discovered:
  - Useful validation step before a filtered run.

ARCHITECTURE INTEGRATION:
  - Calls: internal/loader.Load(), internal/filter.Options()

ERROR HANDLING:
  - Returns error if the input files cannot be loaded.

USAGE:
  solver-bench list-options --results results.csv
*/

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daryltucker/solver-bench/internal/classify"
	"github.com/daryltucker/solver-bench/internal/filter"
	"github.com/daryltucker/solver-bench/internal/loader"
)

var listOptionsCmd = &cobra.Command{
	Use:   "list-options",
	Short: "List the values available for each filter flag",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyOverrides(); err != nil {
			return err
		}
		raw, err := loader.Load(cmd.Context(), cfg.ResultsFile, cfg.MetadataFile)
		if err != nil {
			return err
		}

		opts := filter.Options(raw.Results, raw.Metadata)
		for _, c := range filter.Categories {
			fmt.Fprintf(cmd.OutOrStdout(), "--%s\n", c)
			for _, v := range opts[c] {
				if v == "" {
					v = "(blank)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", v)
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "--mode\n- %s\n", strings.Join(modeNames(), "\n- "))
		return nil
	},
}

func modeNames() []string {
	names := make([]string, len(classify.Modes))
	for i, m := range classify.Modes {
		names[i] = string(m)
	}
	return names
}

func init() {
	rootCmd.AddCommand(listOptionsCmd)
	listOptionsCmd.Flags().StringVar(&resultsOverride, "results", "", "results CSV (overrides config)")
	listOptionsCmd.Flags().StringVar(&metadataOverride, "metadata", "", "metadata YAML (overrides config)")
}
