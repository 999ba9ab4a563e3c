package projection

import (
	"math"

	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/vector"
)

// ProjectHalfspace projects p onto {x : normal·x <= bound}: slack
// s = a·p - b; if s <= Epsilon return p; otherwise return
// p - (s/‖a‖²)·a. Degenerate normals (‖a‖² < Epsilon) return p unchanged.
//
// Complexity: O(n).
func ProjectHalfspace(p, normal vector.Vector, bound float64) (vector.Vector, error) {
	if p.Dim() != normal.Dim() {
		return nil, ErrDimensionMismatch
	}
	h, err := constraint.NewHalfspace(normal, bound)
	if err != nil {
		return nil, err
	}
	return h.Project(p), nil
}

// ProjectHyperplane projects p onto {x : normal·x = bound}, applying the
// halfspace formula unconditionally regardless of slack sign — unlike
// ProjectHalfspace, a point already "inside" one side of the plane is still
// moved onto it, because equality constraints have no interior.
//
// Complexity: O(n).
func ProjectHyperplane(p, normal vector.Vector, bound float64) (vector.Vector, error) {
	if p.Dim() != normal.Dim() {
		return nil, ErrDimensionMismatch
	}
	sqNorm := normal.SquaredNorm()
	if sqNorm < vector.Epsilon {
		return p.Clone(), nil
	}
	dot, err := vector.Dot(normal, p)
	if err != nil {
		return nil, err
	}
	factor := (dot - bound) / sqNorm
	shift := vector.Scale(normal, factor)
	return vector.Sub(p, shift)
}

// SignedHalfspaceDistance returns the signed distance from p to the
// halfspace boundary normal·x = bound: s/‖a‖
func SignedHalfspaceDistance(p, normal vector.Vector, bound float64) (float64, error) {
	if p.Dim() != normal.Dim() {
		return 0, ErrDimensionMismatch
	}
	sqNorm := normal.SquaredNorm()
	if sqNorm < vector.Epsilon {
		return 0, nil
	}
	dot, err := vector.Dot(normal, p)
	if err != nil {
		return 0, err
	}
	return (dot - bound) / math.Sqrt(sqNorm), nil
}
