// Package classify picks the representative result per benchmark instance and
// solver, and rewrites failed runs according to the active SGM mode.
package classify

import (
	"github.com/daryltucker/solver-bench/internal/model"
)

type latestKey struct {
	benchmark, size, solver string
}

// Latest keeps one result per (benchmark, size, solver): the one with the
// highest solver version. Equal versions keep the first-seen row, and the
// output preserves the order in which each key first appeared.
func Latest(results []model.BenchmarkResult) []model.BenchmarkResult {
	index := make(map[latestKey]int)
	var out []model.BenchmarkResult
	for _, r := range results {
		k := latestKey{r.Benchmark, r.Size, r.Solver}
		i, ok := index[k]
		if !ok {
			index[k] = len(out)
			out = append(out, r)
			continue
		}
		if CompareVersions(r.SolverVersion, out[i].SolverVersion) > 0 {
			out[i] = r
		}
	}
	return out
}

// LatestVersions returns the highest version seen per solver.
func LatestVersions(results []model.BenchmarkResult) map[string]string {
	out := make(map[string]string)
	for _, r := range results {
		cur, ok := out[r.Solver]
		if !ok || CompareVersions(r.SolverVersion, cur) > 0 {
			out[r.Solver] = r.SolverVersion
		}
	}
	return out
}
