/*
PURPOSE:
  Writes derived aggregates to a JSON Lines file (NDJSON).
  Optimized for machine parsing and feeding the dashboard's chart series.

REQUIREMENTS:
  User-specified:
  - JSON output for easier parsing.

  Implementation-discovered:
  - encoding/json rejects NaN; missing SGMs are written as null.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Consumes: model.SolverYearlyMetric, model.SeriesPoint

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Thread-safe.

USAGE:
  w, err := output.NewJSONWriter("history.jsonl")
  w.Write(output.YearlyJSON(m))
  w.Close()
*/

package output

import (
	"encoding/json"
	"math"
	"os"
	"sync"

	"github.com/daryltucker/solver-bench/internal/model"
)

// JSONWriter handles writing records to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
	mu      sync.Mutex
}

// NewJSONWriter creates a new JSONWriter.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single value as a JSON line.
func (jw *JSONWriter) Write(v any) error {
	jw.mu.Lock()
	defer jw.mu.Unlock()

	return jw.encoder.Encode(v)
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}

// YearlyLine is the JSON shape of a yearly aggregate record.
type YearlyLine struct {
	Solver             string   `json:"solver"`
	Year               int      `json:"year"`
	Version            string   `json:"version"`
	SGMRuntime         *float64 `json:"sgmRuntime"`
	SGMMemoryUsage     *float64 `json:"sgmMemoryUsage"`
	NumSolvedBenchmark int      `json:"numSolvedBenchmark"`
}

// YearlyJSON converts m into its JSON line shape.
func YearlyJSON(m model.SolverYearlyMetric) YearlyLine {
	return YearlyLine{
		Solver:             m.Solver,
		Year:               m.Year,
		Version:            m.Version,
		SGMRuntime:         finite(m.SGMRuntime),
		SGMMemoryUsage:     finite(m.SGMMemoryUsage),
		NumSolvedBenchmark: m.NumSolvedBenchmark,
	}
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
