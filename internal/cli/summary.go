package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/solver-bench/internal/engine"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Rank solvers by SGM runtime on their latest versions",
	Long: `Aggregates the latest result per benchmark instance and solver into one row
per solver: shifted geometric mean of runtime and memory, the number of solved
instances, and the rank by runtime relative to the fastest solver.`,
	Example: `  # Summary of every solver with the default mode (use-max)
  solver-bench summary

  # Only MILP problems, penalizing failures by a factor of 10
  solver-bench summary --technique MILP --mode penalize --x-factor 10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context())
		if err != nil {
			return err
		}
		mode, err := tableMode()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), summaryTable(engine.Summary(view, cfg.Shift), mode).String(), "\n")
		return nil
	},
}

var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "SGM per solver within each problem-size bucket (S, M, L)",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context())
		if err != nil {
			return err
		}
		mode, err := tableMode()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), bucketTable(view.Buckets, mode).String(), "\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(sizesCmd)
	addDataFlags(summaryCmd)
	addDataFlags(sizesCmd)
}
