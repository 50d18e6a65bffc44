/*
PURPOSE:
  Rewrites runs that did not finish ok before they enter an SGM, according
  to the selected mode.

REQUIREMENTS:
  User-specified:
  - use-max: failed runs count as the timeout and the memory ceiling.
  - penalize: as use-max, multiplied by X (default 5).
  - intersection: keep only instances every active solver solved.

IMPLEMENTATION RULES:
  - ok runs are never altered.
  - Input slices are never modified; callers get a copy.

RELATED FILES:
  - internal/intersect/intersect.go
  - internal/engine/derive.go
*/

package classify

import (
	"fmt"

	"github.com/daryltucker/solver-bench/internal/intersect"
	"github.com/daryltucker/solver-bench/internal/model"
)

// Mode selects how runs that did not finish ok enter the SGM.
type Mode string

const (
	// ModeUseMax replaces failed runs with the timeout and the memory ceiling.
	ModeUseMax Mode = "use-max"
	// ModePenalize replaces failed runs with the timeout and ceiling times X.
	ModePenalize Mode = "penalize"
	// ModeIntersection keeps only instances every active release solved.
	ModeIntersection Mode = "intersection"
)

// DefaultXFactor is the penalty multiplier used by ModePenalize.
const DefaultXFactor = 5.0

// Modes lists every mode in display order.
var Modes = []Mode{ModeUseMax, ModePenalize, ModeIntersection}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown sgm mode %q (want one of %v)", s, Modes)
}

// Policy is the substitution applied before aggregation. A failed run's
// runtime becomes its timeout (its observed runtime when no timeout is
// recorded) and its memory becomes the ceiling, both multiplied by XFactor in
// ModePenalize. The observed memory of a failed run is never used.
type Policy struct {
	Mode    Mode
	XFactor float64
	// MaxMemory is the memory ceiling in MB. Zero means the largest observed value.
	MaxMemory float64
}

// MaxMemory returns the largest memory usage in results.
func MaxMemory(results []model.BenchmarkResult) float64 {
	var m float64
	for _, r := range results {
		if r.MemoryUsage > m {
			m = r.MemoryUsage
		}
	}
	return m
}

// Apply returns a rewritten copy of results. Runs with an ok status are never
// altered. In intersection mode no value is rewritten; instead instances that
// any active (solver, version) failed to solve are removed.
func Apply(results []model.BenchmarkResult, p Policy) []model.BenchmarkResult {
	if p.Mode == ModeIntersection {
		keys := intersect.Instances(results, intersect.ActiveCombos(results), intersect.Solved)
		return intersect.Restrict(results, keys)
	}
	return substitute(results, p)
}

// ApplyLatest is Apply for the output of Latest. In intersection mode an
// instance is kept when every solver solved it, whichever release represents
// the solver there.
func ApplyLatest(latest []model.BenchmarkResult, p Policy) []model.BenchmarkResult {
	if p.Mode == ModeIntersection {
		keys := intersect.SolverInstances(latest, intersect.Solvers(latest), intersect.Solved)
		return intersect.Restrict(latest, keys)
	}
	return substitute(latest, p)
}

func substitute(results []model.BenchmarkResult, p Policy) []model.BenchmarkResult {

	ceiling := p.MaxMemory
	if ceiling <= 0 {
		ceiling = MaxMemory(results)
	}
	factor := 1.0
	if p.Mode == ModePenalize {
		factor = p.XFactor
		if factor <= 0 {
			factor = DefaultXFactor
		}
	}

	out := make([]model.BenchmarkResult, len(results))
	for i, r := range results {
		out[i] = r
		if r.Status.Solved() {
			continue
		}
		runtime := r.Timeout
		if runtime <= 0 {
			runtime = r.Runtime
		}
		out[i].Runtime = runtime * factor
		out[i].MemoryUsage = ceiling * factor
	}
	return out
}
