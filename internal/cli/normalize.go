package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var globalNormalize bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Runtime SGM relative to the best solver per year (or overall)",
	Long: `Divides each solver's yearly runtime SGM by the best value of that year, so
the fastest solver reads 1.0. With --global the reference is the best value
across every year instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context())
		if err != nil {
			return err
		}
		mode, err := tableMode()
		if err != nil {
			return err
		}
		points := view.PerYear
		if globalNormalize {
			points = view.Global
		}
		fmt.Fprint(cmd.OutOrStdout(), rankedTable(points, mode).String(), "\n")
		return nil
	},
}

var speedUpCmd = &cobra.Command{
	Use:   "speedup",
	Short: "Runtime speed-up of each solver relative to its first valid year",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context())
		if err != nil {
			return err
		}
		mode, err := tableMode()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), speedUpTable(view.SpeedUp, mode).String(), "\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(speedUpCmd)
	addDataFlags(normalizeCmd)
	addDataFlags(speedUpCmd)
	normalizeCmd.Flags().BoolVar(&globalNormalize, "global", false, "normalize against the best value across all years")
}
