/*
PURPOSE:
  Derives every view the outputs need from the raw data and a filter state.
  This is the single entry point of the aggregation pipeline.

REQUIREMENTS:
  User-specified:
  - Recompute all aggregates whenever the filter state or SGM mode changes.
  - Never mutate raw data.

  Implementation-discovered:
  - The summary uses only the latest version per solver; the history uses
    every version, grouped by release year.
  - Intersection mode has to see the whole slice being aggregated, so status
    handling runs after filtering and after latest-version selection.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: filter, classify, aggregate, normalize, intersect

ERROR HANDLING:
  - None. Bad inputs surface as NaN SGMs, which series builders drop.

IMPLEMENTATION RULES:
  - Pure function of (raw, state, options).

USAGE:
  view := engine.Derive(raw, state, engine.Options{Shift: 10})
*/

package engine

import (
	"strings"

	"github.com/daryltucker/solver-bench/internal/aggregate"
	"github.com/daryltucker/solver-bench/internal/classify"
	"github.com/daryltucker/solver-bench/internal/filter"
	"github.com/daryltucker/solver-bench/internal/intersect"
	"github.com/daryltucker/solver-bench/internal/loader"
	"github.com/daryltucker/solver-bench/internal/metric"
	"github.com/daryltucker/solver-bench/internal/model"
	"github.com/daryltucker/solver-bench/internal/normalize"
	"github.com/daryltucker/solver-bench/internal/output"
)

// Options are the settings that are not part of the interactive filter state.
type Options struct {
	Shift float64
	// MaxMemory is the memory ceiling (MB) for failed runs; 0 uses the largest observed value.
	MaxMemory float64
	// ExcludeSolvers drops solvers whose name contains any of these substrings.
	ExcludeSolvers []string
}

// View holds every derived dataset for one filter state.
type View struct {
	State filter.State

	// Filtered is the raw results that pass the filter, in ingestion order.
	Filtered []model.BenchmarkResult
	// Latest is one result per (benchmark, size, solver), status-substituted.
	Latest []model.BenchmarkResult
	// History is every version's results, status-substituted.
	History []model.BenchmarkResult

	Yearly        []model.SolverYearlyMetric
	RuntimeSeries []model.SeriesPoint
	MemorySeries  []model.SeriesPoint
	PerYear       []normalize.Ranked
	Global        []normalize.Ranked
	SpeedUp       []model.SeriesPoint
	Buckets       []aggregate.BucketMetric

	// Common is the instances every solver has a latest result for. A solver
	// counts once, whichever release represents it on each instance.
	Common []model.InstanceKey
	// CommonSolved is Common restricted to instances every solver solved.
	CommonSolved []model.InstanceKey
}

// Derive runs the whole pipeline.
func Derive(raw *loader.Raw, state filter.State, opts Options) *View {
	shift := opts.Shift
	if shift < 0 {
		shift = metric.DefaultShift
	}

	included := excludeSolvers(raw.Results, opts.ExcludeSolvers)
	filtered := filter.Apply(state, included, raw.Metadata)

	policy := classify.Policy{
		Mode:      state.Mode(),
		XFactor:   state.XFactor(),
		MaxMemory: opts.MaxMemory,
	}
	if policy.MaxMemory <= 0 {
		// one ceiling for both views, taken before any filtering narrows the data
		policy.MaxMemory = classify.MaxMemory(raw.Results)
	}

	latestRaw := classify.Latest(filtered)
	v := &View{
		State:    state,
		Filtered: filtered,
		Latest:   classify.ApplyLatest(latestRaw, policy),
		History:  classify.Apply(filtered, policy),
	}

	v.Yearly = aggregate.Yearly(v.History, shift)
	v.RuntimeSeries = aggregate.Series(v.Yearly, aggregate.Runtime)
	v.MemorySeries = aggregate.Series(v.Yearly, aggregate.MemoryUsage)
	v.PerYear = normalize.Rank(normalize.PerYear(v.RuntimeSeries))
	v.Global = normalize.Rank(normalize.Global(v.RuntimeSeries))
	v.SpeedUp = aggregate.SpeedUp(v.Yearly)
	v.Buckets = aggregate.BySizeBucket(v.Latest, raw.Metadata, shift)
	solvers := intersect.Solvers(latestRaw)
	v.Common = intersect.SortedKeys(intersect.SolverInstances(latestRaw, solvers, intersect.HasResult))
	v.CommonSolved = intersect.SortedKeys(intersect.SolverInstances(latestRaw, solvers, intersect.Solved))

	output.New("engine").Debug("Derived view",
		"mode", state.Mode(),
		"filtered", len(filtered),
		"latest", len(v.Latest),
		"yearly", len(v.Yearly),
		"common", len(v.Common),
	)
	return v
}

func excludeSolvers(results []model.BenchmarkResult, patterns []string) []model.BenchmarkResult {
	if len(patterns) == 0 {
		return results
	}
	out := make([]model.BenchmarkResult, 0, len(results))
	for _, r := range results {
		skip := false
		for _, ex := range patterns {
			if ex != "" && strings.Contains(strings.ToLower(r.Solver), strings.ToLower(ex)) {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, r)
		}
	}
	return out
}
