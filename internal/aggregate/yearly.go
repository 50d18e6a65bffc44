// Package aggregate groups benchmark results by solver and release year (or
// by size bucket) and reduces each group to shifted geometric means.
package aggregate

import (
	"sort"

	"github.com/daryltucker/solver-bench/internal/classify"
	"github.com/daryltucker/solver-bench/internal/metric"
	"github.com/daryltucker/solver-bench/internal/model"
)

// Field selects which measurement a series is built from.
type Field int

const (
	Runtime Field = iota
	MemoryUsage
)

func (f Field) String() string {
	switch f {
	case MemoryUsage:
		return "memoryUsage"
	default:
		return "runtime"
	}
}

type yearKey struct {
	solver string
	year   int
}

// Yearly partitions results by (solver, release year) and computes the SGM of
// runtime and memory usage plus the count of solved runs for each partition.
// The output is sorted by solver, then year.
func Yearly(results []model.BenchmarkResult, shift float64) []model.SolverYearlyMetric {
	groups := make(map[yearKey][]model.BenchmarkResult)
	for _, r := range results {
		k := yearKey{r.Solver, r.SolverReleaseYear}
		groups[k] = append(groups[k], r)
	}

	out := make([]model.SolverYearlyMetric, 0, len(groups))
	for k, rs := range groups {
		out = append(out, reduce(k.solver, k.year, rs, shift))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Solver != out[j].Solver {
			return out[i].Solver < out[j].Solver
		}
		return out[i].Year < out[j].Year
	})
	return out
}

func reduce(solver string, year int, rs []model.BenchmarkResult, shift float64) model.SolverYearlyMetric {
	m := model.SolverYearlyMetric{Solver: solver, Year: year, Results: rs}
	runtimes := make([]float64, 0, len(rs))
	memory := make([]float64, 0, len(rs))
	for _, r := range rs {
		runtimes = append(runtimes, r.Runtime)
		memory = append(memory, r.MemoryUsage)
		if r.Status.Solved() {
			m.NumSolvedBenchmark++
		}
		if m.Version == "" || classify.CompareVersions(r.SolverVersion, m.Version) > 0 {
			m.Version = r.SolverVersion
		}
	}
	m.SGMRuntime = metric.SGM(runtimes, shift)
	m.SGMMemoryUsage = metric.SGM(memory, shift)
	return m
}

// Value returns the selected SGM of m.
func Value(m model.SolverYearlyMetric, f Field) float64 {
	if f == MemoryUsage {
		return m.SGMMemoryUsage
	}
	return m.SGMRuntime
}

// Series turns yearly metrics into chart points. Partitions without a valid
// SGM are left out rather than plotted as zero.
func Series(metrics []model.SolverYearlyMetric, f Field) []model.SeriesPoint {
	var out []model.SeriesPoint
	for _, m := range metrics {
		v := Value(m, f)
		if !metric.IsValid(v) {
			continue
		}
		out = append(out, model.SeriesPoint{Solver: m.Solver, Year: m.Year, Value: v, Version: m.Version})
	}
	return out
}
