package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/solver-bench/internal/classify"
	"github.com/daryltucker/solver-bench/internal/config"
	"github.com/daryltucker/solver-bench/internal/filter"
)

const testResults = `Benchmark,Size,Solver,Solver Version,Solver Release Year,Status,Termination Condition,Runtime (s),Memory Usage (MB),Objective Value,Timeout
pypsa-eur,1-24h,highs,1.5.0,2023,ok,optimal,30,300,10,3600
pypsa-eur,1-24h,highs,1.9.0,2024,ok,optimal,10,250,10,3600
pypsa-eur,1-24h,glpk,5.0,2020,ok,optimal,20,100,10,3600
genx,3-1h,highs,1.9.0,2024,ok,optimal,50,900,5,3600
genx,3-1h,glpk,5.0,2020,TO,time_limit,3600,2000,,3600
`

const testMetadata = `benchmarks:
  pypsa-eur:
    Modelling framework: PyPSA
    Problem class: LP
    Sectors: Power, Heating
    Sizes:
      - Name: 1-24h
        Size: S
  genx:
    Modelling framework: GenX
    Problem class: MILP
    Sectors: Power
    Sizes:
      - Name: 3-1h
        Size: L
        Realistic: true
`

func writeInputs(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	rp := filepath.Join(dir, "results.csv")
	mp := filepath.Join(dir, "metadata.yaml")
	require.NoError(t, os.WriteFile(rp, []byte(testResults), 0o644))
	require.NoError(t, os.WriteFile(mp, []byte(testMetadata), 0o644))
	return rp, mp
}

func resetFlags() {
	cfgFile, logLevel, logFormat = "", "info", "text"
	resultsOverride, metadataOverride, outputOverride = "", "", ""
	formatFlag, modeOverride, xFactorOverride = "table", "", 0
	sectorFilter, techniqueFilter, kindFilter, modelFilter = nil, nil, nil, nil
	sizeFilter, realisticFilter, solverFilter = nil, nil, nil
	writeHistory, globalNormalize, solvedOnly, reportStdout = false, false, false, false
}

func run(t *testing.T, args ...string) string {
	t.Helper()
	resetFlags()
	chdir(t, t.TempDir())

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--log-level", "error"))
	require.NoError(t, rootCmd.Execute(), errOut.String())
	return out.String()
}

func TestSummaryCommand(t *testing.T) {
	rp, mp := writeInputs(t)
	out := run(t, "summary", "--results", rp, "--metadata", mp, "--format", "csv")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1,highs,1.9.0,"))
	assert.True(t, strings.HasPrefix(lines[2], "2,glpk,5.0,"))
	assert.True(t, strings.HasSuffix(lines[2], ",1/2"))
}

func TestSummaryCommand_Filtered(t *testing.T) {
	rp, mp := writeInputs(t)
	out := run(t, "summary", "--results", rp, "--metadata", mp, "--technique", "MILP", "--solver", "glpk", "--format", "csv")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "glpk")
	assert.True(t, strings.HasSuffix(lines[1], ",0/1"))
}

func TestHistoryCommand_Write(t *testing.T) {
	rp, mp := writeInputs(t)
	outDir := t.TempDir()
	out := run(t, "history", "--results", rp, "--metadata", mp, "--write", "-o", outDir)

	assert.Contains(t, out, "2023")
	for _, name := range []string{"history.csv", "history.jsonl", "series.jsonl", "series.csv"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
	data, err := os.ReadFile(filepath.Join(outDir, "history.csv"))
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(string(data)), "\n"), 4)

	series, err := os.ReadFile(filepath.Join(outDir, "series.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(series), "metric,solver,year,version,value,log10_value\n")
	assert.Contains(t, string(series), "speedUp,highs,2023,1.5.0,1.0000,0.0000\n")
}

func TestIntersectionCommand(t *testing.T) {
	rp, mp := writeInputs(t)
	out := run(t, "intersection", "--results", rp, "--metadata", mp, "--format", "csv")
	assert.Contains(t, out, "genx,3-1h")
	assert.Contains(t, out, "Total,2")

	out = run(t, "intersection", "--results", rp, "--metadata", mp, "--format", "csv", "--solved")
	assert.NotContains(t, out, "genx,3-1h")
	assert.Contains(t, out, "Total,1")
}

const mixedResults = `Benchmark,Size,Solver,Solver Version,Solver Release Year,Status,Termination Condition,Runtime (s),Memory Usage (MB),Objective Value,Timeout
pypsa-eur,1-24h,highs,1.5.0,2023,ok,optimal,30,300,10,3600
pypsa-eur,1-24h,highs,1.9.0,2024,ok,optimal,10,250,10,3600
genx,3-1h,highs,1.5.0,2023,ok,optimal,50,900,5,3600
pypsa-eur,1-24h,glpk,5.0,2020,ok,optimal,20,100,10,3600
genx,3-1h,glpk,5.0,2020,TO,time_limit,3600,2000,,3600
`

func TestIntersectionCommand_LatestReleaseDiffersByInstance(t *testing.T) {
	rp, mp := writeInputs(t)
	require.NoError(t, os.WriteFile(rp, []byte(mixedResults), 0o644))

	out := run(t, "intersection", "--results", rp, "--metadata", mp, "--format", "csv")
	assert.Contains(t, out, "genx,3-1h")
	assert.Contains(t, out, "pypsa-eur,1-24h")
	assert.Contains(t, out, "Total,2")

	out = run(t, "intersection", "--results", rp, "--metadata", mp, "--format", "csv", "--solved")
	assert.Contains(t, out, "pypsa-eur,1-24h")
	assert.NotContains(t, out, "genx,3-1h")
	assert.Contains(t, out, "Total,1")

	out = run(t, "summary", "--results", rp, "--metadata", mp, "--format", "csv", "--mode", "intersection")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "1,highs,1.9.0,"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], ",1/1"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], ",1/1"), lines[2])
}

func TestNormalizeAndSpeedUpCommands(t *testing.T) {
	rp, mp := writeInputs(t)
	out := run(t, "normalize", "--results", rp, "--metadata", mp, "--format", "csv", "--global")
	assert.Contains(t, out, "1.00")

	out = run(t, "speedup", "--results", rp, "--metadata", mp, "--format", "csv")
	assert.Contains(t, out, "highs,2023,1.5.0,1.00x")
}

func TestReportCommand(t *testing.T) {
	rp, mp := writeInputs(t)
	out := run(t, "report", "--results", rp, "--metadata", mp, "--stdout", "--mode", "penalize", "--size", "S")
	assert.True(t, strings.HasPrefix(out, "# Solver benchmark report"))
	assert.Contains(t, out, "SGM mode: `penalize`")
	assert.Contains(t, out, "Filters: size = S.")
	assert.Contains(t, out, "## Speed-up")
}

func TestListOptionsCommand(t *testing.T) {
	rp, mp := writeInputs(t)
	out := run(t, "list-options", "--results", rp, "--metadata", mp)
	assert.Contains(t, out, "--sector\n- Heating\n- Power\n")
	assert.Contains(t, out, "--mode\n- use-max\n- penalize\n- intersection\n")
}

func TestInvalidMode(t *testing.T) {
	rp, mp := writeInputs(t)
	resetFlags()
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"summary", "--results", rp, "--metadata", mp, "--mode", "median", "--log-level", "error"})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestBuildState(t *testing.T) {
	resetFlags()
	cfg = config.DefaultConfig()
	cfg.SGMMode = "intersection"
	sizeFilter = []string{"S", "M"}

	s, err := buildState()
	require.NoError(t, err)
	assert.Equal(t, classify.ModeIntersection, s.Mode())
	assert.Equal(t, []string{"M", "S"}, s.Active(filter.ProblemSize))
	assert.False(t, s.Constrained(filter.Solver))
}

func TestWatchFiles_InitialRender(t *testing.T) {
	rp, mp := writeInputs(t)
	resetFlags()
	cfg = config.DefaultConfig()
	cfg.ResultsFile, cfg.MetadataFile = rp, mp

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var out bytes.Buffer
	require.NoError(t, watchFiles(ctx, &out))
	assert.Contains(t, out.String(), "highs")
	assert.Contains(t, out.String(), "5 results")
}
