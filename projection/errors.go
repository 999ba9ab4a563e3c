// SPDX-License-Identifier: MIT
package projection

import "errors"

var (
	// ErrDimensionMismatch is returned when a point and a constraint, or two
	// points, disagree on dimension.
	ErrDimensionMismatch = errors.New("projection: dimension mismatch")
	// ErrNonConvexConstraint is returned when a convex-only routine (Dykstra,
	// weighted projection) is handed a nonconvex constraint: this is a
	// precondition violation, the caller must not have routed here.
	ErrNonConvexConstraint = errors.New("projection: nonconvex constraint routed to convex-only algorithm")
	// ErrNonPositiveWeight is returned by Weighted when a weight is <= Epsilon.
	ErrNonPositiveWeight = errors.New("projection: non-positive weight")
	// ErrUnsupportedWeightedConstraint is returned by Weighted when given a
	// convex constraint variant it does not know how to rescale (only Box
	// and Halfspace are supported worked examples).
	ErrUnsupportedWeightedConstraint = errors.New("projection: constraint variant unsupported under space scaling")
)
