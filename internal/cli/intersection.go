package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var solvedOnly bool

var intersectionCmd = &cobra.Command{
	Use:   "intersection",
	Short: "List the benchmark instances every selected solver has run",
	Long: `Lists the (benchmark, size) instances that have a latest-version result
from every selected solver. With --solved, an instance only counts when every
solver solved it (status ok), which is the set intersection mode uses for the
summary.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context())
		if err != nil {
			return err
		}
		mode, err := tableMode()
		if err != nil {
			return err
		}
		keys := view.Common
		if solvedOnly {
			keys = view.CommonSolved
		}
		fmt.Fprint(cmd.OutOrStdout(), instanceTable(keys, mode).String(), "\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(intersectionCmd)
	addDataFlags(intersectionCmd)
	intersectionCmd.Flags().BoolVar(&solvedOnly, "solved", false, "only count instances every release solved")
}
