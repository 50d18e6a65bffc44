package output

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/solver-bench/internal/model"
)

func TestCSVWriter_YearlyRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	w, err := NewCSVWriter(path, YearlyHeader)
	require.NoError(t, err)

	require.NoError(t, w.Write(YearlyRecord(model.SolverYearlyMetric{
		Solver: "highs", Year: 2024, Version: "1.9.0",
		SGMRuntime: 12.5, SGMMemoryUsage: math.NaN(), NumSolvedBenchmark: 3,
		Results: make([]model.BenchmarkResult, 4),
	})))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Join(YearlyHeader, ","), lines[0])
	assert.Equal(t, "highs,2024,1.9.0,12.5000,1.0969,,3,4", lines[1])
}

func TestSeriesRecord_LogColumn(t *testing.T) {
	got := SeriesRecord("runtime", model.SeriesPoint{Solver: "glpk", Year: 2020, Version: "5.0", Value: 100})
	assert.Equal(t, []string{"runtime", "glpk", "2020", "5.0", "100.0000", "2.0000"}, got)
	assert.Len(t, got, len(SeriesHeader))

	got = SeriesRecord("speedUp", model.SeriesPoint{Solver: "glpk", Year: 2020, Value: 0})
	assert.Equal(t, "", got[5])
}

func TestJSONWriter_NaNBecomesNull(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	w, err := NewJSONWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(YearlyJSON(model.SolverYearlyMetric{Solver: "glpk", Year: 2020, SGMRuntime: math.NaN(), SGMMemoryUsage: 40})))
	require.NoError(t, w.Write(model.SeriesPoint{Solver: "glpk", Year: 2020, Value: 1.5}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Nil(t, got["sgmRuntime"])
	assert.Equal(t, 40.0, got["sgmMemoryUsage"])
	assert.Contains(t, lines[1], `"value":1.5`)
}

func TestTable_Modes(t *testing.T) {
	build := func(m TableMode) string {
		tb := NewTable(m)
		tb.Header("Solver", "SGM runtime")
		tb.Row("highs", "12.50")
		tb.Footer("total", 1)
		tb.AlignRight(2)
		return tb.String()
	}

	ascii := build(ASCII)
	assert.Contains(t, ascii, "highs")
	assert.Contains(t, ascii, "─")

	md := build(Markdown)
	assert.Contains(t, md, "| Solver")
	assert.Contains(t, md, "---")

	csv := build(CSV)
	assert.Contains(t, csv, "highs,12.50")
}

func TestParseTableMode(t *testing.T) {
	m, err := ParseTableMode("md")
	require.NoError(t, err)
	assert.Equal(t, Markdown, m)
	_, err = ParseTableMode("html")
	assert.Error(t, err)
}

func TestReport(t *testing.T) {
	r := NewReport("Solver benchmark")
	r.Note("Mode: %s", "use-max")
	r.Section("Summary", "| a |\n")
	r.Section("Speed-up", "  ")
	out := r.String()

	assert.True(t, strings.HasPrefix(out, "# Solver benchmark\n\nMode: use-max\n\n"))
	assert.Contains(t, out, "## Summary\n\n| a |\n\n")
	assert.Contains(t, out, "## Speed-up\n\n_No data._")
}

func TestInit_LevelAndComponent(t *testing.T) {
	prev := Logger
	t.Cleanup(func() { SetLogger(prev) })

	var buf bytes.Buffer
	Init(slog.LevelWarn, "json", &buf)
	New("loader").Info("hidden")
	New("loader").Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"component":"loader"`)
	assert.Contains(t, out, `"level":"WARN"`)
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warning")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
