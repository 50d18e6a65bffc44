package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/daryltucker/solver-bench/internal/engine"
	"github.com/daryltucker/solver-bench/internal/filter"
	"github.com/daryltucker/solver-bench/internal/output"
)

var reportStdout bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write a Markdown report with every view",
	Example: `  # Write ./report.md
  solver-bench report

  # Print to stdout instead
  solver-bench report --stdout --size L`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context())
		if err != nil {
			return err
		}
		doc := buildReport(view, cfg.Shift)

		if reportStdout {
			fmt.Fprint(cmd.OutOrStdout(), doc)
			return nil
		}
		path, err := outputPath("report.md")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
			return fmt.Errorf("failed to write report %s: %w", path, err)
		}
		output.New("report").Info("Wrote report", "path", path)
		return nil
	},
}

func buildReport(view *engine.View, shift float64) string {
	r := output.NewReport("Solver benchmark report")
	r.Note("SGM mode: `%s` (X = %g, shift = %g). %d results after filtering, %d common instances.",
		view.State.Mode(), view.State.XFactor(), shift, len(view.Filtered), len(view.Common))

	var active []string
	for _, c := range filter.Categories {
		if view.State.Constrained(c) {
			active = append(active, fmt.Sprintf("%s = %s", c, strings.Join(view.State.Active(c), ", ")))
		}
	}
	if len(active) > 0 {
		r.Note("Filters: %s.", strings.Join(active, "; "))
	}

	section := func(t *output.Table) string {
		if t.Len() == 0 {
			return ""
		}
		return t.String()
	}
	r.Section("Summary (latest versions)", section(summaryTable(engine.Summary(view, shift), output.Markdown)))
	r.Section("Performance history", section(yearlyTable(view.Yearly, output.Markdown)))
	r.Section("Normalized runtime per year", section(rankedTable(view.PerYear, output.Markdown)))
	r.Section("Normalized runtime (best ever)", section(rankedTable(view.Global, output.Markdown)))
	r.Section("Speed-up", section(speedUpTable(view.SpeedUp, output.Markdown)))
	r.Section("By problem size", section(bucketTable(view.Buckets, output.Markdown)))
	return r.String()
}

func init() {
	rootCmd.AddCommand(reportCmd)
	addDataFlags(reportCmd)
	reportCmd.Flags().BoolVar(&reportStdout, "stdout", false, "print the report instead of writing report.md")
}
