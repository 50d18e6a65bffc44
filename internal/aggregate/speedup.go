package aggregate

import (
	"sort"

	"github.com/daryltucker/solver-bench/internal/metric"
	"github.com/daryltucker/solver-bench/internal/model"
)

// SpeedUp computes, per solver, sgmRuntime[baseline] / sgmRuntime[year]. The
// baseline is the earliest year whose runtime SGM is valid; earlier years and
// years without a valid SGM produce no point.
func SpeedUp(metrics []model.SolverYearlyMetric) []model.SeriesPoint {
	bySolver := make(map[string][]model.SolverYearlyMetric)
	var solvers []string
	for _, m := range metrics {
		if _, ok := bySolver[m.Solver]; !ok {
			solvers = append(solvers, m.Solver)
		}
		bySolver[m.Solver] = append(bySolver[m.Solver], m)
	}
	sort.Strings(solvers)

	var out []model.SeriesPoint
	for _, s := range solvers {
		ms := bySolver[s]
		sort.SliceStable(ms, func(i, j int) bool { return ms[i].Year < ms[j].Year })

		baseline := 0.0
		for _, m := range ms {
			if !metric.IsValid(m.SGMRuntime) {
				continue
			}
			if baseline == 0 {
				baseline = m.SGMRuntime
			}
			out = append(out, model.SeriesPoint{
				Solver:  s,
				Year:    m.Year,
				Value:   baseline / m.SGMRuntime,
				Version: m.Version,
			})
		}
	}
	return out
}
