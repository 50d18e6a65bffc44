/*
PURPOSE:
  Writes derived aggregates to CSV files.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - Output yearly metrics and chart series to CSV.

  Implementation-discovered:
  - Missing values (NaN SGM) must be written as empty cells, not "NaN".

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Consumes: model.SolverYearlyMetric, model.SeriesPoint

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).
  - Mutex guards the writer.

USAGE:
  w, err := output.NewCSVWriter("history.csv", output.YearlyHeader)
  w.Write(output.YearlyRecord(m))
  w.Close()

RELATED FILES:
  - internal/model/types.go
*/

package output

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"
	"sync"

	"github.com/daryltucker/solver-bench/internal/metric"
	"github.com/daryltucker/solver-bench/internal/model"
)

// YearlyHeader is the column layout of YearlyRecord.
var YearlyHeader = []string{"solver", "year", "version", "sgm_runtime_s", "log10_sgm_runtime", "sgm_memory_mb", "num_solved_benchmark", "num_benchmark"}

// SeriesHeader is the column layout of SeriesRecord.
var SeriesHeader = []string{"metric", "solver", "year", "version", "value", "log10_value"}

// CSVWriter handles writing records to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter and writes the header.
// It overwrites the file if it exists.
func NewCSVWriter(path string, header []string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single record to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(record []string) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if err := cw.writer.Write(record); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}

// YearlyRecord flattens a yearly metric into a CSV row.
func YearlyRecord(m model.SolverYearlyMetric) []string {
	return []string{
		m.Solver,
		strconv.Itoa(m.Year),
		m.Version,
		formatCell(m.SGMRuntime),
		formatCell(metric.LogScale(m.SGMRuntime)),
		formatCell(m.SGMMemoryUsage),
		strconv.Itoa(m.NumSolvedBenchmark),
		strconv.Itoa(len(m.Results)),
	}
}

// SeriesRecord flattens a chart point of the named series into a CSV row. The
// log10 column is the position on the dashboard's log axis.
func SeriesRecord(name string, p model.SeriesPoint) []string {
	return []string{name, p.Solver, strconv.Itoa(p.Year), p.Version, formatCell(p.Value), formatCell(metric.LogScale(p.Value))}
}

func formatCell(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}
