/*
PURPOSE:
  Computes the set of benchmark instances common to a group of solvers, so
  comparisons can be restricted to the same ground.

REQUIREMENTS:
  User-specified:
  - An instance is common when every active solver release has a result on it.
  - No active releases means no common instances.

  Implementation-discovered:
  - Latest-version views key coverage by solver name, since one solver may be
    represented by different releases on different instances.
  - Intersection SGM mode needs a stricter predicate (status ok).

ARCHITECTURE INTEGRATION:
  - Used by: internal/classify (intersection mode), internal/engine

ERROR HANDLING:
  - None (pure functions).
*/

// Package intersect computes the benchmark instances common to a set of
// solver releases, so comparisons can be restricted to shared ground.
package intersect

import (
	"sort"

	"github.com/daryltucker/solver-bench/internal/model"
)

// Predicate decides whether a result counts towards an instance being covered.
type Predicate func(model.BenchmarkResult) bool

// HasResult accepts any recorded result.
func HasResult(model.BenchmarkResult) bool { return true }

// Solved accepts only results with an ok status.
func Solved(r model.BenchmarkResult) bool { return r.Status.Solved() }

// ActiveCombos returns the distinct (solver, version) pairs in results, sorted.
func ActiveCombos(results []model.BenchmarkResult) []model.SolverCombo {
	seen := make(map[model.SolverCombo]struct{})
	var combos []model.SolverCombo
	for _, r := range results {
		c := r.Combo()
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		combos = append(combos, c)
	}
	sort.Slice(combos, func(i, j int) bool {
		if combos[i].Solver != combos[j].Solver {
			return combos[i].Solver < combos[j].Solver
		}
		return combos[i].Version < combos[j].Version
	})
	return combos
}

// Solvers returns the distinct solver names in results, sorted.
func Solvers(results []model.BenchmarkResult) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range results {
		if _, ok := seen[r.Solver]; ok {
			continue
		}
		seen[r.Solver] = struct{}{}
		out = append(out, r.Solver)
	}
	sort.Strings(out)
	return out
}

// Instances returns the instance keys for which every combo in combos has at
// least one result accepted by pred. No combos means no common ground, so the
// result is empty rather than every instance.
func Instances(results []model.BenchmarkResult, combos []model.SolverCombo, pred Predicate) map[model.InstanceKey]struct{} {
	return cover(results, combos, model.BenchmarkResult.Combo, pred)
}

// SolverInstances is Instances keyed by solver name alone. It is meant for
// latest-version results, where one solver may be represented by different
// releases on different instances.
func SolverInstances(results []model.BenchmarkResult, solvers []string, pred Predicate) map[model.InstanceKey]struct{} {
	return cover(results, solvers, func(r model.BenchmarkResult) string { return r.Solver }, pred)
}

func cover[K comparable](results []model.BenchmarkResult, members []K, key func(model.BenchmarkResult) K, pred Predicate) map[model.InstanceKey]struct{} {
	out := make(map[model.InstanceKey]struct{})
	if len(members) == 0 {
		return out
	}
	if pred == nil {
		pred = HasResult
	}

	active := make(map[K]struct{}, len(members))
	for _, m := range members {
		active[m] = struct{}{}
	}

	covered := make(map[model.InstanceKey]map[K]struct{})
	for _, r := range results {
		m := key(r)
		if _, ok := active[m]; !ok || !pred(r) {
			continue
		}
		k := r.Instance()
		if covered[k] == nil {
			covered[k] = make(map[K]struct{})
		}
		covered[k][m] = struct{}{}
	}

	for k, by := range covered {
		if len(by) == len(active) {
			out[k] = struct{}{}
		}
	}
	return out
}

// Restrict keeps only the results whose instance is in keys.
func Restrict(results []model.BenchmarkResult, keys map[model.InstanceKey]struct{}) []model.BenchmarkResult {
	out := make([]model.BenchmarkResult, 0, len(results))
	for _, r := range results {
		if _, ok := keys[r.Instance()]; ok {
			out = append(out, r)
		}
	}
	return out
}

// SortedKeys returns keys ordered by benchmark then size.
func SortedKeys(keys map[model.InstanceKey]struct{}) []model.InstanceKey {
	out := make([]model.InstanceKey, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Benchmark != out[j].Benchmark {
			return out[i].Benchmark < out[j].Benchmark
		}
		return out[i].Size < out[j].Size
	})
	return out
}
