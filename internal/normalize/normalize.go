// Package normalize rescales chart series against a reference value so the
// best performer reads 1.0.
package normalize

import (
	"sort"

	"github.com/daryltucker/solver-bench/internal/metric"
	"github.com/daryltucker/solver-bench/internal/model"
)

// PerYear divides each point by the smallest valid value in its year.
func PerYear(points []model.SeriesPoint) []model.SeriesPoint {
	mins := make(map[int]float64)
	for _, p := range points {
		if !metric.IsValid(p.Value) {
			continue
		}
		if cur, ok := mins[p.Year]; !ok || p.Value < cur {
			mins[p.Year] = p.Value
		}
	}
	return scale(points, func(p model.SeriesPoint) float64 { return mins[p.Year] })
}

// Global divides each point by the smallest valid value in the whole series.
func Global(points []model.SeriesPoint) []model.SeriesPoint {
	best := 0.0
	for _, p := range points {
		if metric.IsValid(p.Value) && (best == 0 || p.Value < best) {
			best = p.Value
		}
	}
	return scale(points, func(model.SeriesPoint) float64 { return best })
}

// scale drops points with an invalid value or baseline instead of emitting
// NaN or Inf ratios.
func scale(points []model.SeriesPoint, baseline func(model.SeriesPoint) float64) []model.SeriesPoint {
	var out []model.SeriesPoint
	for _, p := range points {
		b := baseline(p)
		if !metric.IsValid(p.Value) || !metric.IsValid(b) {
			continue
		}
		p.Value /= b
		out = append(out, p)
	}
	return out
}

// Ranked is a normalized point with its position among solvers that year.
type Ranked struct {
	model.SeriesPoint
	Rank int `json:"rank"`
}

// Rank orders points within each year by value (lower is better) and assigns
// dense 1-based ranks, so equal values share a rank. Output is sorted by year,
// then rank, then solver.
func Rank(points []model.SeriesPoint) []Ranked {
	out := make([]Ranked, 0, len(points))
	for _, p := range points {
		out = append(out, Ranked{SeriesPoint: p})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		if out[i].Value != out[j].Value {
			return out[i].Value < out[j].Value
		}
		return out[i].Solver < out[j].Solver
	})
	for i := range out {
		switch {
		case i == 0 || out[i].Year != out[i-1].Year:
			out[i].Rank = 1
		case out[i].Value == out[i-1].Value:
			out[i].Rank = out[i-1].Rank
		default:
			out[i].Rank = out[i-1].Rank + 1
		}
	}
	return out
}
