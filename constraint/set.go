package constraint

import "github.com/katalvlaran/newton/vector"

// Set is an ordered, immutable-after-construction collection of Constraint
// values. It copies the input slice at construction time so later mutation
// of the caller's slice never affects a Set already handed to the engine —
// the same "construct once, read concurrently" discipline the graph package's
// core.Graph applies under a mutex, except no lock is needed here because a
// Set truly never changes after NewSet returns.
type Set struct {
	all       []Constraint
	convex    []Constraint
	nonconvex []Constraint
}

// NewSet builds a Set from constraints, pre-splitting into convex and
// nonconvex sublists once so Convex()/Nonconvex() are O(1) on every
// subsequent call instead of re-scanning on each invocation.
func NewSet(constraints []Constraint) Set {
	all := make([]Constraint, len(constraints))
	copy(all, constraints)

	var convex, nonconvex []Constraint
	for _, c := range all {
		if c.IsConvex() {
			convex = append(convex, c)
		} else {
			nonconvex = append(nonconvex, c)
		}
	}
	return Set{all: all, convex: convex, nonconvex: nonconvex}
}

// All returns every constraint in the set, in construction order.
func (s Set) All() []Constraint { return s.all }

// Convex returns the convex relaxation: the sublist of constraints for
// which IsConvex() holds
func (s Set) Convex() []Constraint { return s.convex }

// Nonconvex returns the sublist of constraints for which IsConvex() does
// not hold.
func (s Set) Nonconvex() []Constraint { return s.nonconvex }

// Len reports the total constraint count.
func (s Set) Len() int { return len(s.all) }

// IsAllConvex reports whether every constraint in the set is convex.
func (s Set) IsAllConvex() bool { return len(s.nonconvex) == 0 }

// SatisfiesAll reports whether p satisfies every constraint in the set.
func (s Set) SatisfiesAll(p vector.Vector) bool {
	for _, c := range s.all {
		if !c.Satisfied(p) {
			return false
		}
	}
	return true
}
