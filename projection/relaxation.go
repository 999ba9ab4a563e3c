package projection

import "github.com/katalvlaran/newton/constraint"

// ConvexRelaxation returns the sublist of constraints for which IsConvex()
// holds. Projecting onto this relaxation yields a center that respects
// every convex constraint but ignores nonconvex ones; the nonconvex
// candidate search in package candidate seeds itself from that center.
func ConvexRelaxation(constraints []constraint.Constraint) []constraint.Constraint {
	out := make([]constraint.Constraint, 0, len(constraints))
	for _, c := range constraints {
		if c.IsConvex() {
			out = append(out, c)
		}
	}
	return out
}
