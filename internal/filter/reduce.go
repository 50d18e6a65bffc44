package filter

import (
	"github.com/daryltucker/solver-bench/internal/classify"
)

// Action is a state transition understood by Reduce.
type Action interface {
	isAction()
}

// Toggle flips one value of a category. Toggling an unconstrained category
// constrains it to that single value.
type Toggle struct {
	Category Category
	Value    string
}

// Set replaces the active values of a category.
type Set struct {
	Category Category
	Values   []string
}

// Only keeps a single value active in a category.
type Only struct {
	Category Category
	Value    string
}

// Clear makes a category unconstrained.
type Clear struct {
	Category Category
}

// SetMode changes the SGM mode.
type SetMode struct {
	Mode classify.Mode
}

// SetXFactor changes the penalty multiplier. Non-positive values are ignored.
type SetXFactor struct {
	XFactor float64
}

func (Toggle) isAction()     {}
func (Set) isAction()        {}
func (Only) isAction()       {}
func (Clear) isAction()      {}
func (SetMode) isAction()    {}
func (SetXFactor) isAction() {}

// Reduce returns the state that results from applying a to s. s is never
// modified.
func Reduce(s State, a Action) State {
	next := s.clone()
	switch a := a.(type) {
	case Toggle:
		set, ok := next.active[a.Category]
		if !ok {
			next.active[a.Category] = map[string]struct{}{a.Value: {}}
			break
		}
		if _, on := set[a.Value]; on {
			delete(set, a.Value)
		} else {
			set[a.Value] = struct{}{}
		}
	case Set:
		set := make(map[string]struct{}, len(a.Values))
		for _, v := range a.Values {
			set[v] = struct{}{}
		}
		next.active[a.Category] = set
	case Only:
		next.active[a.Category] = map[string]struct{}{a.Value: {}}
	case Clear:
		delete(next.active, a.Category)
	case SetMode:
		next.mode = a.Mode
	case SetXFactor:
		if a.XFactor > 0 {
			next.xFactor = a.XFactor
		}
	}
	return next
}

// ReduceAll folds actions over s in order.
func ReduceAll(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}
