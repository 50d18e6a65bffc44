package filter

import (
	"sort"

	"github.com/daryltucker/solver-bench/internal/model"
)

// Attributes returns the values a result carries for category c. ok is false
// when the result's benchmark or size is not described by meta.
func Attributes(c Category, r model.BenchmarkResult, meta model.MetaData) (values []string, ok bool) {
	if c == Solver {
		return []string{r.Solver}, true
	}
	entry, found := meta[r.Benchmark]
	if !found {
		return nil, false
	}
	size, found := entry.FindSize(r.Size)
	if !found {
		return nil, false
	}
	switch c {
	case Sector:
		if sectors := entry.SectorList(); len(sectors) > 0 {
			return sectors, true
		}
		return []string{""}, true
	case Technique:
		return []string{entry.ProblemClass}, true
	case KindOfProblem:
		return []string{entry.Application}, true
	case Model:
		return []string{entry.ModellingFramework}, true
	case ProblemSize:
		return []string{size.Size}, true
	case Realistic:
		if size.Realistic {
			return []string{RealisticYes}, true
		}
		return []string{RealisticNo}, true
	}
	return nil, false
}

// Apply returns the results that pass every constrained category of s.
func Apply(s State, results []model.BenchmarkResult, meta model.MetaData) []model.BenchmarkResult {
	out := make([]model.BenchmarkResult, 0, len(results))
	for _, r := range results {
		if Keep(s, r, meta) {
			out = append(out, r)
		}
	}
	return out
}

// Keep reports whether r passes s.
func Keep(s State, r model.BenchmarkResult, meta model.MetaData) bool {
	for _, c := range Categories {
		if !s.Constrained(c) {
			continue
		}
		values, ok := Attributes(c, r, meta)
		if !ok || !s.Allows(c, values...) {
			return false
		}
	}
	return true
}

// Options returns the distinct values of each category across results. An
// empty string stands for results whose metadata leaves the attribute blank.
func Options(results []model.BenchmarkResult, meta model.MetaData) map[Category][]string {
	seen := make(map[Category]map[string]struct{}, len(Categories))
	for _, c := range Categories {
		seen[c] = make(map[string]struct{})
	}
	for _, r := range results {
		for _, c := range Categories {
			values, ok := Attributes(c, r, meta)
			if !ok {
				continue
			}
			for _, v := range values {
				seen[c][v] = struct{}{}
			}
		}
	}

	out := make(map[Category][]string, len(seen))
	for c, set := range seen {
		vals := make([]string, 0, len(set))
		for v := range set {
			vals = append(vals, v)
		}
		sort.Strings(vals)
		out[c] = vals
	}
	return out
}

// Defaults returns a state with every category fully selected.
func Defaults(results []model.BenchmarkResult, meta model.MetaData) State {
	s := New()
	opts := Options(results, meta)
	for _, c := range Categories {
		s = Reduce(s, Set{Category: c, Values: opts[c]})
	}
	return s
}
