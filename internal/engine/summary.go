/*
PURPOSE:
  Builds the benchmark summary: one row per solver over its latest-version
  results, ranked by the shifted geometric mean of runtime.

REQUIREMENTS:
  User-specified:
  - SGM runtime and memory per solver, solved count out of total instances.
  - Rank solvers by runtime and show each one relative to the fastest.

  Implementation-discovered:
  - The reported version is the highest release seen in the latest rows; a
    solver may be represented by older releases on instances the newest one
    never ran.
  - Equal SGMs share a rank (dense ranking).

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (summary, watch, report)
  - Uses: View.Latest from Derive, classify.LatestVersions, metric.SGM

ERROR HANDLING:
  - None. A solver without a valid SGM is listed last with Rank 0 and a NaN
    Relative, which the tables print as "-".

USAGE:
  rows := engine.Summary(view, cfg.Shift)
*/

package engine

import (
	"math"
	"sort"

	"github.com/daryltucker/solver-bench/internal/classify"
	"github.com/daryltucker/solver-bench/internal/metric"
)

// SummaryRow is one solver's line in the benchmark summary.
type SummaryRow struct {
	Solver         string  `json:"solver"`
	Version        string  `json:"version"`
	SGMRuntime     float64 `json:"sgmRuntime"`
	SGMMemoryUsage float64 `json:"sgmMemoryUsage"`
	// Relative is SGMRuntime divided by the best SGMRuntime among rows.
	Relative  float64 `json:"relative"`
	NumSolved int     `json:"numSolved"`
	Total     int     `json:"total"`
	Rank      int     `json:"rank"`
}

// Summary aggregates the latest-version results per solver, ranked by
// runtime SGM. Rows without a valid runtime SGM are ranked last with Rank 0.
func Summary(v *View, shift float64) []SummaryRow {
	type acc struct {
		runtimes []float64
		memory   []float64
		solved   int
	}
	by := make(map[string]*acc)
	for _, r := range v.Latest {
		a := by[r.Solver]
		if a == nil {
			a = &acc{}
			by[r.Solver] = a
		}
		a.runtimes = append(a.runtimes, r.Runtime)
		a.memory = append(a.memory, r.MemoryUsage)
		if r.Status.Solved() {
			a.solved++
		}
	}

	versions := classify.LatestVersions(v.Latest)
	rows := make([]SummaryRow, 0, len(by))
	best := 0.0
	for solver, a := range by {
		row := SummaryRow{
			Solver:         solver,
			Version:        versions[solver],
			SGMRuntime:     metric.SGM(a.runtimes, shift),
			SGMMemoryUsage: metric.SGM(a.memory, shift),
			NumSolved:      a.solved,
			Total:          len(a.runtimes),
		}
		if metric.IsValid(row.SGMRuntime) && (best == 0 || row.SGMRuntime < best) {
			best = row.SGMRuntime
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		vi, vj := metric.IsValid(rows[i].SGMRuntime), metric.IsValid(rows[j].SGMRuntime)
		if vi != vj {
			return vi
		}
		if vi && rows[i].SGMRuntime != rows[j].SGMRuntime {
			return rows[i].SGMRuntime < rows[j].SGMRuntime
		}
		return rows[i].Solver < rows[j].Solver
	})

	rank := 0
	for i := range rows {
		if !metric.IsValid(rows[i].SGMRuntime) {
			rows[i].Relative = math.NaN()
			continue
		}
		if i == 0 || rows[i].SGMRuntime != rows[i-1].SGMRuntime {
			rank++
		}
		rows[i].Rank = rank
		rows[i].Relative = rows[i].SGMRuntime / best
	}
	return rows
}
