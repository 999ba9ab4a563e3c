package projection

import (
	"math"

	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/vector"
)

// Weighted projects point onto the intersection of constraints under the
// weighted Euclidean metric ‖x‖²_W = Σ w_i x_i²: scale space by √W, run
// Dykstra in the scaled space, then scale the result back by W^(-1/2).
//
// Box constraints reduce to component-wise clamping of the scaled point by
// the scaled bounds: because each dimension's clamp is independent of the
// others, the scaling factor applied to a single dimension never changes
// which face that dimension's coordinate lands on. Weights only change the
// outcome when the feasible set couples dimensions together, which is why
// Halfspace constraints (their normal couples every dimension through the
// dot product) are rescaled too: a·x <= b in the original space becomes
// (a ⊘ √W)·x' <= b in the scaled space, since x = x' ⊘ √W.
//
// Only Box and Halfspace are supported; any other convex variant returns
// ErrUnsupportedWeightedConstraint. Weights must all exceed Epsilon;
// extreme ratios (tested up to ~10⁶:1) must never produce non-finite
// output, which is why weights are validated up front rather than relying
// on division to degrade gracefully.
func Weighted(point vector.Vector, constraints []constraint.Constraint, weights vector.Vector, opts ...Option) (Outcome, error) {
	if point.Dim() != weights.Dim() {
		return Outcome{}, ErrDimensionMismatch
	}
	for i := 0; i < weights.Dim(); i++ {
		if weights[i] <= vector.Epsilon {
			return Outcome{}, ErrNonPositiveWeight
		}
	}
	if err := validateAllConvex(constraints); err != nil {
		return Outcome{}, err
	}

	n := point.Dim()
	sqrtW := make(vector.Vector, n)
	invSqrtW := make(vector.Vector, n)
	for i := 0; i < n; i++ {
		sqrtW[i] = math.Sqrt(weights[i])
		invSqrtW[i] = 1 / sqrtW[i]
	}

	scaledPoint := make(vector.Vector, n)
	for i := 0; i < n; i++ {
		scaledPoint[i] = point[i] * sqrtW[i]
	}

	scaled := make([]constraint.Constraint, len(constraints))
	for i, c := range constraints {
		sc, err := scaleConstraint(c, sqrtW, invSqrtW)
		if err != nil {
			return Outcome{}, err
		}
		scaled[i] = sc
	}

	outcome, err := run(scaledPoint, scaled, apply(opts), false)
	if err != nil {
		return Outcome{}, err
	}

	back := make(vector.Vector, n)
	for i := 0; i < n; i++ {
		back[i] = outcome.Point[i] * invSqrtW[i]
	}
	outcome.Point = back
	return outcome, nil
}

func scaleConstraint(c constraint.Constraint, sqrtW, invSqrtW vector.Vector) (constraint.Constraint, error) {
	switch t := c.(type) {
	case constraint.Box:
		min, max := t.Min(), t.Max()
		sMin := make(vector.Vector, len(min))
		sMax := make(vector.Vector, len(max))
		for i := range min {
			sMin[i] = min[i] * sqrtW[i]
			sMax[i] = max[i] * sqrtW[i]
		}
		return constraint.NewBox(sMin, sMax)
	case constraint.Halfspace:
		a := t.Normal()
		sA := make(vector.Vector, len(a))
		for i := range a {
			sA[i] = a[i] * invSqrtW[i]
		}
		return constraint.NewHalfspace(sA, t.Bound())
	default:
		return nil, ErrUnsupportedWeightedConstraint
	}
}
