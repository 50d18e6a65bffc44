package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/solver-bench/internal/classify"
	"github.com/daryltucker/solver-bench/internal/model"
)

func testMeta() model.MetaData {
	return model.MetaData{
		"pypsa-eur": {
			ModellingFramework: "PyPSA",
			ProblemClass:       "LP",
			Application:        "Infrastructure & Capacity Expansion",
			Sectors:            "Power, Heating",
			Sizes: []model.Size{
				{Name: "1-24h", Size: "S"},
				{Name: "100-1h", Size: "L", Realistic: true},
			},
		},
		"genx-unit": {
			ModellingFramework: "GenX",
			ProblemClass:       "MILP",
			Application:        "Operational",
			Sectors:            "Power",
			Sizes:              []model.Size{{Name: "3-1h", Size: "M"}},
		},
	}
}

func testResults() []model.BenchmarkResult {
	return []model.BenchmarkResult{
		{Benchmark: "pypsa-eur", Size: "1-24h", Solver: "highs"},
		{Benchmark: "pypsa-eur", Size: "100-1h", Solver: "gurobi"},
		{Benchmark: "genx-unit", Size: "3-1h", Solver: "highs"},
		{Benchmark: "genx-unit", Size: "3-1h", Solver: "scip"},
	}
}

func TestReduce_DoesNotMutate(t *testing.T) {
	s0 := Reduce(New(), Set{Category: Solver, Values: []string{"highs", "scip"}})
	s1 := Reduce(s0, Toggle{Category: Solver, Value: "highs"})

	assert.Equal(t, []string{"highs", "scip"}, s0.Active(Solver))
	assert.Equal(t, []string{"scip"}, s1.Active(Solver))
}

func TestReduce_Actions(t *testing.T) {
	s := ReduceAll(New(),
		Toggle{Category: Technique, Value: "LP"},
		Toggle{Category: Technique, Value: "MILP"},
		Toggle{Category: Technique, Value: "LP"},
		Only{Category: ProblemSize, Value: "L"},
		SetMode{Mode: classify.ModePenalize},
		SetXFactor{XFactor: 3},
		SetXFactor{XFactor: -1},
	)
	assert.Equal(t, []string{"MILP"}, s.Active(Technique))
	assert.Equal(t, []string{"L"}, s.Active(ProblemSize))
	assert.Equal(t, classify.ModePenalize, s.Mode())
	assert.Equal(t, 3.0, s.XFactor())
	assert.Nil(t, s.Active(Sector))

	s = Reduce(s, Clear{Category: ProblemSize})
	assert.False(t, s.Constrained(ProblemSize))
}

func TestApply(t *testing.T) {
	meta, results := testMeta(), testResults()

	tests := []struct {
		name    string
		actions []Action
		want    []string
	}{
		{"unconstrained", nil, []string{"highs", "gurobi", "highs", "scip"}},
		{"heating sector", []Action{Only{Category: Sector, Value: "Heating"}}, []string{"highs", "gurobi"}},
		{"milp only", []Action{Only{Category: Technique, Value: "MILP"}}, []string{"highs", "scip"}},
		{"realistic", []Action{Only{Category: Realistic, Value: RealisticYes}}, []string{"gurobi"}},
		{"size and solver", []Action{
			Set{Category: ProblemSize, Values: []string{"S", "M"}},
			Only{Category: Solver, Value: "highs"},
		}, []string{"highs", "highs"}},
		{"empty set keeps nothing", []Action{Set{Category: Model}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(ReduceAll(New(), tt.actions...), results, meta)
			var solvers []string
			for _, r := range got {
				solvers = append(solvers, r.Solver)
			}
			if diff := cmp.Diff(tt.want, solvers); diff != "" {
				t.Errorf("Apply mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApply_UnknownMetadataDropsWhenConstrained(t *testing.T) {
	results := []model.BenchmarkResult{{Benchmark: "mystery", Size: "x", Solver: "highs"}}
	s := Reduce(New(), Only{Category: Model, Value: "PyPSA"})
	assert.Empty(t, Apply(s, results, testMeta()))
	assert.Len(t, Apply(Reduce(New(), Only{Category: Solver, Value: "highs"}), results, testMeta()), 1)
}

func TestDefaults_KeepEverything(t *testing.T) {
	meta, results := testMeta(), testResults()
	s := Defaults(results, meta)
	for _, c := range Categories {
		require.True(t, s.Constrained(c), c.String())
	}
	assert.Equal(t, []string{"Heating", "Power"}, s.Active(Sector))
	assert.Equal(t, []string{RealisticNo, RealisticYes}, s.Active(Realistic))
	assert.Len(t, Apply(s, results, meta), len(results))
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		got, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	_, err := ParseCategory("colour")
	assert.Error(t, err)
}
