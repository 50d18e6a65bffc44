/*
PURPOSE:
  Defines the core data structures used throughout Solver Bench.
  These models represent raw benchmark results, benchmark metadata and
  the derived per-(solver, year) aggregates consumed by the outputs.

REQUIREMENTS:
  User-specified:
  - Record runtime, memory usage, status and timeout per run.
  - Track benchmark, size instance, solver, version and release year.

  Implementation-discovered:
  - Need JSON tags for JSONL export.
  - Need YAML tags matching the dashboard's metadata file keys.

ARCHITECTURE INTEGRATION:
  - Used by: every internal package.
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Results are never mutated after loading; derived values are copies.

USAGE:
  res := model.BenchmarkResult{...}

SELF-HEALING INSTRUCTIONS:
  - If new columns are needed, add the field and update the loader mapping and writers.

RELATED FILES:
  - internal/loader/results.go
  - internal/loader/metadata.go
  - internal/output/csv.go

MAINTENANCE:
  - Update when the results file gains columns.
*/

package model

import (
	"fmt"
	"strings"
)

// Status is the outcome of a single solver run.
type Status string

const (
	StatusOK      Status = "ok"
	StatusWarning Status = "warning"
	StatusTimeout Status = "TO"
	StatusOOM     Status = "OOM"
	StatusError   Status = "ER"
)

// ParseStatus maps a raw status cell onto a Status. Matching is case-insensitive.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ok":
		return StatusOK, nil
	case "warning":
		return StatusWarning, nil
	case "to", "timeout":
		return StatusTimeout, nil
	case "oom":
		return StatusOOM, nil
	case "er", "error":
		return StatusError, nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// Solved reports whether the run counts as a solved benchmark.
func (s Status) Solved() bool { return s == StatusOK }

// BenchmarkResult is one observation of a solver on a benchmark size instance.
type BenchmarkResult struct {
	Benchmark            string   `json:"benchmark"`
	Size                 string   `json:"size"`
	Solver               string   `json:"solver"`
	SolverVersion        string   `json:"solverVersion"`
	SolverReleaseYear    int      `json:"solverReleaseYear"`
	Runtime              float64  `json:"runtime"`     // seconds
	MemoryUsage          float64  `json:"memoryUsage"` // MB
	Status               Status   `json:"status"`
	Timeout              float64  `json:"timeout"` // seconds
	ObjectiveValue       *float64 `json:"objectiveValue"`
	TerminationCondition string   `json:"terminationCondition"`
}

// Instance returns the (benchmark, size) key of the result.
func (r BenchmarkResult) Instance() InstanceKey {
	return InstanceKey{Benchmark: r.Benchmark, Size: r.Size}
}

// Combo returns the (solver, version) pair that produced the result.
func (r BenchmarkResult) Combo() SolverCombo {
	return SolverCombo{Solver: r.Solver, Version: r.SolverVersion}
}

// InstanceKey identifies a benchmark size instance.
type InstanceKey struct {
	Benchmark string `json:"benchmark"`
	Size      string `json:"size"`
}

func (k InstanceKey) String() string { return k.Benchmark + "-" + k.Size }

// SolverCombo identifies a solver release.
type SolverCombo struct {
	Solver  string `json:"solver"`
	Version string `json:"version"`
}

func (c SolverCombo) String() string { return c.Solver + "@" + c.Version }

// Size describes one size instance of a benchmark problem family.
type Size struct {
	Name               string `yaml:"Name" json:"name" validate:"required"`
	Size               string `yaml:"Size" json:"size" validate:"omitempty,oneof=S M L"`
	NumVariables       int    `yaml:"N. of variables" json:"numVariables" validate:"gte=0"`
	NumConstraints     int    `yaml:"N. of constraints" json:"numConstraints" validate:"gte=0"`
	Realistic          bool   `yaml:"Realistic" json:"realistic"`
	TemporalResolution string `yaml:"Temporal resolution" json:"temporalResolution"`
	SpatialResolution  string `yaml:"Spatial resolution" json:"spatialResolution"`
}

// MetaDataEntry describes one benchmark problem family.
type MetaDataEntry struct {
	ShortDescription   string `yaml:"Short description" json:"shortDescription"`
	ModellingFramework string `yaml:"Modelling framework" json:"modellingFramework"`
	ProblemClass       string `yaml:"Problem class" json:"problemClass" validate:"omitempty,oneof=LP MILP"`
	Application        string `yaml:"Application" json:"application"`
	Sectors            string `yaml:"Sectors" json:"sectors"`
	SectoralFocus      string `yaml:"Sectoral focus" json:"sectoralFocus"`
	TimeHorizon        string `yaml:"Time horizon" json:"timeHorizon"`
	MILPFeatures       string `yaml:"MILP features" json:"milpFeatures"`
	Sizes              []Size `yaml:"Sizes" json:"sizes" validate:"dive"`
}

// FindSize returns the size instance with the given name.
func (m MetaDataEntry) FindSize(name string) (Size, bool) {
	for _, s := range m.Sizes {
		if s.Name == name {
			return s, true
		}
	}
	return Size{}, false
}

// SectorList splits the comma-separated Sectors field.
func (m MetaDataEntry) SectorList() []string {
	var out []string
	for _, s := range strings.Split(m.Sectors, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// MetaData maps benchmark name to its entry.
type MetaData map[string]MetaDataEntry

// SolverYearlyMetric is the aggregate for one solver in one release year.
type SolverYearlyMetric struct {
	Solver             string            `json:"solver"`
	Year               int               `json:"year"`
	Version            string            `json:"version"`
	Results            []BenchmarkResult `json:"-"`
	SGMRuntime         float64           `json:"sgmRuntime"`
	SGMMemoryUsage     float64           `json:"sgmMemoryUsage"`
	NumSolvedBenchmark int               `json:"numSolvedBenchmark"`
}

// SeriesPoint is a chart-ready value for one solver in one year.
type SeriesPoint struct {
	Solver  string  `json:"solver"`
	Year    int     `json:"year"`
	Value   float64 `json:"value"`
	Version string  `json:"version"`
}
