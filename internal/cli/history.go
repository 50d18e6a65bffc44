/*
PURPOSE:
  Defines the 'history' subcommand.
  Shows solver performance per release year and optionally exports it.

REQUIREMENTS:
  User-specified:
  - SGM runtime and memory per (solver, year), plus solved counts.
  - Export to CSV/JSON for the dashboard charts.

  Implementation-discovered:
  - Export writes both the aggregate records and the chart-ready series.
  - Series CSV carries a log10 column for the dashboard's log-scale axis.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Derive(), internal/output writers

ERROR HANDLING:
  - Returns error if loading fails or an output file cannot be created.
  - Individual record write failures are logged and skipped.

USAGE:
  solver-bench history --write -o ./out
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daryltucker/solver-bench/internal/engine"
	"github.com/daryltucker/solver-bench/internal/model"
	"github.com/daryltucker/solver-bench/internal/output"
)

var writeHistory bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "SGM runtime and memory per solver and release year",
	Example: `  # Print the table
  solver-bench history

  # Also write history.csv, history.jsonl, series.jsonl and series.csv to ./out
  solver-bench history --write -o ./out`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, view, err := loadView(cmd.Context())
		if err != nil {
			return err
		}
		mode, err := tableMode()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), yearlyTable(view.Yearly, mode).String(), "\n")

		if !writeHistory {
			return nil
		}
		return exportHistory(view)
	},
}

// exportHistory writes the yearly aggregates and chart series to the output directory.
func exportHistory(view *engine.View) error {
	log := output.New("history")

	csvPath, err := outputPath("history.csv")
	if err != nil {
		return err
	}
	csvWriter, err := output.NewCSVWriter(csvPath, output.YearlyHeader)
	if err != nil {
		return fmt.Errorf("failed to init CSV writer at %s: %w", csvPath, err)
	}
	defer csvWriter.Close()

	jsonPath, err := outputPath("history.jsonl")
	if err != nil {
		return err
	}
	jsonWriter, err := output.NewJSONWriter(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to init JSON writer at %s: %w", jsonPath, err)
	}
	defer jsonWriter.Close()

	for _, m := range view.Yearly {
		if err := csvWriter.Write(output.YearlyRecord(m)); err != nil {
			log.Error("Failed to write record to CSV", "solver", m.Solver, "year", m.Year, "error", err)
		}
		if err := jsonWriter.Write(output.YearlyJSON(m)); err != nil {
			log.Error("Failed to write record to JSON", "solver", m.Solver, "year", m.Year, "error", err)
		}
	}

	seriesPath, err := outputPath("series.jsonl")
	if err != nil {
		return err
	}
	seriesWriter, err := output.NewJSONWriter(seriesPath)
	if err != nil {
		return fmt.Errorf("failed to init JSON writer at %s: %w", seriesPath, err)
	}
	defer seriesWriter.Close()

	seriesCSVPath, err := outputPath("series.csv")
	if err != nil {
		return err
	}
	seriesCSV, err := output.NewCSVWriter(seriesCSVPath, output.SeriesHeader)
	if err != nil {
		return fmt.Errorf("failed to init CSV writer at %s: %w", seriesCSVPath, err)
	}
	defer seriesCSV.Close()

	type line struct {
		Metric string `json:"metric"`
		model.SeriesPoint
	}
	series := []struct {
		name   string
		points []model.SeriesPoint
	}{
		{"runtime", view.RuntimeSeries},
		{"memoryUsage", view.MemorySeries},
		{"speedUp", view.SpeedUp},
	}
	for _, s := range series {
		for _, p := range s.points {
			if err := seriesWriter.Write(line{Metric: s.name, SeriesPoint: p}); err != nil {
				log.Error("Failed to write series point", "metric", s.name, "solver", p.Solver, "error", err)
			}
			if err := seriesCSV.Write(output.SeriesRecord(s.name, p)); err != nil {
				log.Error("Failed to write series point to CSV", "metric", s.name, "solver", p.Solver, "error", err)
			}
		}
	}

	log.Info("Wrote history", "csv", csvPath, "jsonl", jsonPath, "series", seriesPath, "seriesCSV", seriesCSVPath, "records", len(view.Yearly))
	return nil
}

func init() {
	rootCmd.AddCommand(historyCmd)
	addDataFlags(historyCmd)
	historyCmd.Flags().BoolVar(&writeHistory, "write", false, "write history.csv, history.jsonl, series.jsonl and series.csv to the output directory")
}
