/*
PURPOSE:
  Parses the benchmark results table (CSV) into model.BenchmarkResult rows.

REQUIREMENTS:
  User-specified:
  - Read the dashboard's results file as-is.

  Implementation-discovered:
  - Header names differ between exports ("Runtime (s)" vs runtime), so the
    mapping is header-driven with aliases.
  - Bad rows must not abort the load; they are logged and skipped.

ARCHITECTURE INTEGRATION:
  - Called by: internal/loader.Load
  - Produces: []model.BenchmarkResult

ERROR HANDLING:
  - Returns error if the header is missing a required column.
  - Row-level parse problems are logged at Warn and the row is skipped.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Preserve file order; it is the ingestion order used for tie-breaks.

USAGE:
  rows, err := loader.ReadResults(f)

RELATED FILES:
  - internal/model/types.go
  - internal/output/csv.go
*/

package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/daryltucker/solver-bench/internal/model"
	"github.com/daryltucker/solver-bench/internal/output"
)

// ErrNoResults is returned when a results file holds no usable rows.
var ErrNoResults = errors.New("no benchmark results")

type column int

const (
	colBenchmark column = iota
	colSize
	colSolver
	colVersion
	colYear
	colStatus
	colTermination
	colRuntime
	colMemory
	colObjective
	colTimeout
	numColumns
)

// headerAliases maps a normalised header name onto a column.
var headerAliases = map[string]column{
	"benchmark":             colBenchmark,
	"size":                  colSize,
	"solver":                colSolver,
	"solver version":        colVersion,
	"solver_version":        colVersion,
	"solverversion":         colVersion,
	"solver release year":   colYear,
	"solver_release_year":   colYear,
	"solverreleaseyear":     colYear,
	"status":                colStatus,
	"termination condition": colTermination,
	"termination_condition": colTermination,
	"terminationcondition":  colTermination,
	"runtime (s)":           colRuntime,
	"runtime":               colRuntime,
	"memory usage (mb)":     colMemory,
	"memory_usage":          colMemory,
	"memoryusage":           colMemory,
	"objective value":       colObjective,
	"objective_value":       colObjective,
	"objectivevalue":        colObjective,
	"timeout":               colTimeout,
	"timeout (s)":           colTimeout,
}

var requiredColumns = []column{colBenchmark, colSize, colSolver, colVersion, colYear, colStatus, colRuntime}

var columnNames = [numColumns]string{
	"Benchmark", "Size", "Solver", "Solver Version", "Solver Release Year", "Status",
	"Termination Condition", "Runtime (s)", "Memory Usage (MB)", "Objective Value", "Timeout",
}

// ReadResults parses a results table. Rows are returned in file order.
func ReadResults(r io.Reader) ([]model.BenchmarkResult, error) {
	log := output.New("loader")

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoResults
		}
		return nil, fmt.Errorf("failed to read results header: %w", err)
	}

	var index [numColumns]int
	for i := range index {
		index[i] = -1
	}
	for i, h := range header {
		if c, ok := headerAliases[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))]; ok {
			index[c] = i
		}
	}
	for _, c := range requiredColumns {
		if index[c] < 0 {
			return nil, fmt.Errorf("results header missing column %q", columnNames[c])
		}
	}

	var out []model.BenchmarkResult
	line := 1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to read results line %d: %w", line, err)
		}
		res, err := parseRow(record, index)
		if err != nil {
			log.Warn("Skipping results row", "line", line, "error", err)
			continue
		}
		out = append(out, res)
	}

	if len(out) == 0 {
		return nil, ErrNoResults
	}
	return out, nil
}

func parseRow(record []string, index [numColumns]int) (model.BenchmarkResult, error) {
	cell := func(c column) string {
		i := index[c]
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	res := model.BenchmarkResult{
		Benchmark:            cell(colBenchmark),
		Size:                 cell(colSize),
		Solver:               cell(colSolver),
		SolverVersion:        cell(colVersion),
		TerminationCondition: cell(colTermination),
	}
	if res.Benchmark == "" || res.Solver == "" {
		return res, errors.New("empty benchmark or solver")
	}

	var err error
	if res.Status, err = model.ParseStatus(cell(colStatus)); err != nil {
		return res, err
	}
	if res.SolverReleaseYear, err = strconv.Atoi(cell(colYear)); err != nil {
		return res, fmt.Errorf("bad release year: %w", err)
	}
	if res.Runtime, err = parseNonNegative(cell(colRuntime)); err != nil {
		return res, fmt.Errorf("bad runtime: %w", err)
	}
	if res.MemoryUsage, err = parseNonNegative(cell(colMemory)); err != nil {
		return res, fmt.Errorf("bad memory usage: %w", err)
	}
	if res.Timeout, err = parseNonNegative(cell(colTimeout)); err != nil {
		return res, fmt.Errorf("bad timeout: %w", err)
	}
	if v := cell(colObjective); v != "" && !strings.EqualFold(v, "nan") {
		obj, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return res, fmt.Errorf("bad objective value: %w", err)
		}
		res.ObjectiveValue = &obj
	}
	return res, nil
}

// parseNonNegative reads an optional non-negative number; blanks and NaN read as 0.
func parseNonNegative(s string) (float64, error) {
	if s == "" || strings.EqualFold(s, "nan") {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("negative value %v", v)
	}
	return v, nil
}
