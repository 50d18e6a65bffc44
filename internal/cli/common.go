/*
PURPOSE:
  Shared flags and the load sequence used by every data subcommand.

REQUIREMENTS:
  User-specified:
  - Every view accepts the same filter flags and SGM mode overrides.

  Implementation-discovered:
  - Command-line overrides are folded into the config before validation so
    a bad --mode fails the same way a bad config file does.

ARCHITECTURE INTEGRATION:
  - Called by: summary.go, history.go, normalize.go, intersection.go, report.go, watch.go
  - Calls: config.Validate(), filter.ReduceAll(), loader.Load(), engine.Derive()

ERROR HANDLING:
  - Returns config.ErrInvalid (wrapped) for invalid overrides.
  - Returns loader errors unchanged.

IMPLEMENTATION RULES:
  - Flag variables are package-level and registered in each command's init().
  - Flow: Load Config -> Override -> Build Filter State -> Load Data -> Derive.

RELATED FILES:
  - internal/cli/root.go
  - internal/engine/derive.go
*/

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daryltucker/solver-bench/internal/classify"
	"github.com/daryltucker/solver-bench/internal/engine"
	"github.com/daryltucker/solver-bench/internal/filter"
	"github.com/daryltucker/solver-bench/internal/loader"
	"github.com/daryltucker/solver-bench/internal/output"
)

var (
	resultsOverride  string
	metadataOverride string
	outputOverride   string
	formatFlag       string
	modeOverride     string
	xFactorOverride  float64

	sectorFilter    []string
	techniqueFilter []string
	kindFilter      []string
	modelFilter     []string
	sizeFilter      []string
	realisticFilter []string
	solverFilter    []string
)

// addDataFlags registers the input/output overrides and every filter flag.
func addDataFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&resultsOverride, "results", "", "results CSV (overrides config)")
	f.StringVar(&metadataOverride, "metadata", "", "metadata YAML (overrides config)")
	f.StringVarP(&outputOverride, "output-dir", "o", "", "output directory for written files")
	f.StringVar(&formatFlag, "format", "table", "table format: table, markdown or csv")
	f.StringVar(&modeOverride, "mode", "", "SGM mode: use-max, penalize or intersection (overrides config)")
	f.Float64Var(&xFactorOverride, "x-factor", 0, "penalty multiplier for penalize mode (overrides config)")

	f.StringSliceVar(&sectorFilter, "sector", nil, "keep benchmarks covering any of these sectors")
	f.StringSliceVar(&techniqueFilter, "technique", nil, "keep problem classes (LP, MILP)")
	f.StringSliceVar(&kindFilter, "kind", nil, "keep application kinds")
	f.StringSliceVar(&modelFilter, "model", nil, "keep modelling frameworks")
	f.StringSliceVar(&sizeFilter, "size", nil, "keep size buckets (S, M, L)")
	f.StringSliceVar(&realisticFilter, "realistic", nil, "keep realistic and/or other instances")
	f.StringSliceVar(&solverFilter, "solver", nil, "keep solvers")
}

// applyOverrides folds command-line overrides into the loaded config.
func applyOverrides() error {
	if resultsOverride != "" {
		cfg.ResultsFile = resultsOverride
	}
	if metadataOverride != "" {
		cfg.MetadataFile = metadataOverride
	}
	if outputOverride != "" {
		cfg.OutputDir = outputOverride
	}
	if modeOverride != "" {
		cfg.SGMMode = modeOverride
	}
	if xFactorOverride != 0 {
		cfg.XFactor = xFactorOverride
	}
	return cfg.Validate()
}

// buildState turns the filter flags into a filter state.
func buildState() (filter.State, error) {
	mode, err := classify.ParseMode(cfg.SGMMode)
	if err != nil {
		return filter.State{}, err
	}
	actions := []filter.Action{
		filter.SetMode{Mode: mode},
		filter.SetXFactor{XFactor: cfg.XFactor},
	}
	for c, values := range map[filter.Category][]string{
		filter.Sector:        sectorFilter,
		filter.Technique:     techniqueFilter,
		filter.KindOfProblem: kindFilter,
		filter.Model:         modelFilter,
		filter.ProblemSize:   sizeFilter,
		filter.Realistic:     realisticFilter,
		filter.Solver:        solverFilter,
	} {
		if len(values) > 0 {
			actions = append(actions, filter.Set{Category: c, Values: values})
		}
	}
	return filter.ReduceAll(filter.New(), actions...), nil
}

func engineOptions() engine.Options {
	return engine.Options{
		Shift:          cfg.Shift,
		MaxMemory:      cfg.MaxMemoryMB,
		ExcludeSolvers: cfg.ExcludeSolvers,
	}
}

// loadView runs the full Load Config -> Override -> Load Data -> Derive sequence.
func loadView(ctx context.Context) (*loader.Raw, *engine.View, error) {
	if err := applyOverrides(); err != nil {
		return nil, nil, err
	}
	state, err := buildState()
	if err != nil {
		return nil, nil, err
	}
	raw, err := loader.Load(ctx, cfg.ResultsFile, cfg.MetadataFile)
	if err != nil {
		return nil, nil, err
	}
	return raw, engine.Derive(raw, state, engineOptions()), nil
}

func tableMode() (output.TableMode, error) {
	return output.ParseTableMode(formatFlag)
}

// outputPath ensures the output directory exists and joins name onto it.
func outputPath(name string) (string, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
	}
	return filepath.Join(cfg.OutputDir, name), nil
}
