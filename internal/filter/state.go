/*
PURPOSE:
  Immutable filter state for the dashboard views: the active values per
  category plus the SGM mode and penalty factor.

REQUIREMENTS:
  User-specified:
  - Categories: sector, technique, kind of problem, model, problem size,
    realistic, solver.

  Implementation-discovered:
  - A category with no entry is unconstrained; an emptied one keeps nothing.

IMPLEMENTATION RULES:
  - Never mutate a State; reduce.go clones before every change.

RELATED FILES:
  - internal/filter/reduce.go
  - internal/filter/apply.go
*/

// Package filter holds the user-selected filter state, the reducer that
// produces new states from actions, and the function that applies a state to
// the raw result set.
package filter

import (
	"fmt"
	"maps"
	"sort"
	"strings"

	"github.com/daryltucker/solver-bench/internal/classify"
)

// Category is a filterable attribute of a result.
type Category int

const (
	Sector Category = iota
	Technique
	KindOfProblem
	Model
	ProblemSize
	Realistic
	Solver
)

// Categories lists every category in display order.
var Categories = []Category{Sector, Technique, KindOfProblem, Model, ProblemSize, Realistic, Solver}

func (c Category) String() string {
	switch c {
	case Sector:
		return "sector"
	case Technique:
		return "technique"
	case KindOfProblem:
		return "kind"
	case Model:
		return "model"
	case ProblemSize:
		return "size"
	case Realistic:
		return "realistic"
	case Solver:
		return "solver"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// ParseCategory resolves a category by its String name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if c.String() == strings.ToLower(s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown filter category %q", s)
}

// Values of the Realistic category.
const (
	RealisticYes = "realistic"
	RealisticNo  = "other"
)

// State is an immutable filter selection. A category with no entry is
// unconstrained; a category with an entry keeps only results whose attribute
// is in the set, so an empty set keeps nothing.
type State struct {
	active  map[Category]map[string]struct{}
	mode    classify.Mode
	xFactor float64
}

// New returns a state with every category unconstrained.
func New() State {
	return State{
		active:  map[Category]map[string]struct{}{},
		mode:    classify.ModeUseMax,
		xFactor: classify.DefaultXFactor,
	}
}

// Mode returns the SGM mode.
func (s State) Mode() classify.Mode { return s.mode }

// XFactor returns the penalty multiplier.
func (s State) XFactor() float64 { return s.xFactor }

// Constrained reports whether c has an active set.
func (s State) Constrained(c Category) bool {
	_, ok := s.active[c]
	return ok
}

// Active returns the sorted active values of c. Nil means unconstrained.
func (s State) Active(c Category) []string {
	set, ok := s.active[c]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Allows reports whether any of values passes the filter for c.
func (s State) Allows(c Category, values ...string) bool {
	set, ok := s.active[c]
	if !ok {
		return true
	}
	for _, v := range values {
		if _, hit := set[v]; hit {
			return true
		}
	}
	return false
}

func (s State) clone() State {
	next := s
	next.active = make(map[Category]map[string]struct{}, len(s.active))
	for c, set := range s.active {
		next.active[c] = maps.Clone(set)
	}
	return next
}
