package intersect_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/solver-bench/internal/intersect"
	"github.com/daryltucker/solver-bench/internal/model"
)

func res(bench, size, solver, version string, status model.Status) model.BenchmarkResult {
	return model.BenchmarkResult{Benchmark: bench, Size: size, Solver: solver, SolverVersion: version, Status: status}
}

func TestInstances_CommonGround(t *testing.T) {
	results := []model.BenchmarkResult{
		res("pypsa", "1-1h", "highs", "1.9.0", model.StatusOK),
		res("pypsa", "1-1h", "glpk", "5.0", model.StatusTimeout),
		res("genx", "3-1h", "highs", "1.9.0", model.StatusOK),
		res("tulipa", "S", "glpk", "5.0", model.StatusOK),
	}
	combos := intersect.ActiveCombos(results)
	require.Len(t, combos, 2)

	got := intersect.SortedKeys(intersect.Instances(results, combos, intersect.HasResult))
	want := []model.InstanceKey{{Benchmark: "pypsa", Size: "1-1h"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Instances mismatch (-want +got):\n%s", diff)
	}

	solved := intersect.Instances(results, combos, intersect.Solved)
	assert.Empty(t, solved)
}

func TestInstances_NoCombos(t *testing.T) {
	results := []model.BenchmarkResult{res("pypsa", "1-1h", "highs", "1.9.0", model.StatusOK)}
	assert.Empty(t, intersect.Instances(results, nil, intersect.HasResult))
}

func TestInstances_CombosWithoutResults(t *testing.T) {
	results := []model.BenchmarkResult{res("pypsa", "1-1h", "highs", "1.9.0", model.StatusOK)}
	combos := []model.SolverCombo{{Solver: "highs", Version: "1.9.0"}, {Solver: "scip", Version: "9.0"}}
	assert.Empty(t, intersect.Instances(results, combos, nil))
}

func TestInstances_Property(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	solvers := []model.SolverCombo{
		{Solver: "highs", Version: "1.8.0"},
		{Solver: "highs", Version: "1.9.0"},
		{Solver: "glpk", Version: "5.0"},
		{Solver: "scip", Version: "9.1.1"},
	}
	var results []model.BenchmarkResult
	var all []model.InstanceKey
	for b := 0; b < 12; b++ {
		k := model.InstanceKey{Benchmark: fmt.Sprintf("bench-%d", b), Size: "S"}
		all = append(all, k)
		for _, c := range solvers {
			if rng.Intn(4) == 0 {
				continue
			}
			results = append(results, res(k.Benchmark, k.Size, c.Solver, c.Version, model.StatusOK))
		}
	}

	has := make(map[model.InstanceKey]map[model.SolverCombo]bool)
	for _, r := range results {
		if has[r.Instance()] == nil {
			has[r.Instance()] = make(map[model.SolverCombo]bool)
		}
		has[r.Instance()][r.Combo()] = true
	}

	got := intersect.Instances(results, solvers, intersect.HasResult)
	for _, k := range all {
		_, in := got[k]
		allHave := true
		for _, c := range solvers {
			if !has[k][c] {
				allHave = false
			}
		}
		assert.Equal(t, allHave, in, "instance %s", k)
	}
}

func TestRestrict(t *testing.T) {
	results := []model.BenchmarkResult{
		res("a", "S", "highs", "1", model.StatusOK),
		res("b", "S", "highs", "1", model.StatusOK),
	}
	keys := map[model.InstanceKey]struct{}{{Benchmark: "b", Size: "S"}: {}}
	got := intersect.Restrict(results, keys)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].Benchmark)
}

func TestSolverInstances_MixedReleases(t *testing.T) {
	// highs 1.9.0 never ran b, so b is represented by 1.5.0
	latest := []model.BenchmarkResult{
		res("a", "S", "highs", "1.9.0", model.StatusOK),
		res("b", "S", "highs", "1.5.0", model.StatusOK),
		res("a", "S", "glpk", "5.0", model.StatusOK),
		res("b", "S", "glpk", "5.0", model.StatusTimeout),
	}
	solvers := intersect.Solvers(latest)
	assert.Equal(t, []string{"glpk", "highs"}, solvers)

	got := intersect.SortedKeys(intersect.SolverInstances(latest, solvers, intersect.HasResult))
	want := []model.InstanceKey{{Benchmark: "a", Size: "S"}, {Benchmark: "b", Size: "S"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SolverInstances mismatch (-want +got):\n%s", diff)
	}

	solved := intersect.SortedKeys(intersect.SolverInstances(latest, solvers, intersect.Solved))
	assert.Equal(t, []model.InstanceKey{{Benchmark: "a", Size: "S"}}, solved)

	// keyed by release, the two highs versions never meet on one instance
	assert.Empty(t, intersect.Instances(latest, intersect.ActiveCombos(latest), intersect.HasResult))
}

func TestSolverInstances_NoSolvers(t *testing.T) {
	latest := []model.BenchmarkResult{res("a", "S", "highs", "1.9.0", model.StatusOK)}
	assert.Empty(t, intersect.SolverInstances(latest, nil, intersect.HasResult))
}
