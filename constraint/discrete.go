package constraint

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/newton/vector"
)

// Discrete is the nonconvex constraint whose feasible region is a finite
// set of points.
type Discrete struct {
	points []vector.Vector
	dim    int
}

// NewDiscrete constructs a Discrete constraint from an explicit point set.
// All points must share the same dimension; an empty set is a precondition
// violation since the engine guarantees at least one feasible candidate
// when the region is non-empty.
func NewDiscrete(points []vector.Vector) (Discrete, error) {
	if len(points) == 0 {
		return Discrete{}, ErrEmptyDiscreteSet
	}
	dim := points[0].Dim()
	cloned := make([]vector.Vector, len(points))
	for i, p := range points {
		if p.Dim() != dim {
			return Discrete{}, ErrDimensionMismatch
		}
		cloned[i] = p.Clone()
	}
	return Discrete{points: cloned, dim: dim}, nil
}

// Range describes one dimension's [min,max] span for the Grid factory.
type Range struct {
	Min, Max float64
}

// Grid generates the Cartesian product of grid points spaced by `spacing`
// across each dimension's Range, in lexicographic order, and wraps the
// result in a Discrete constraint. The nearest-point search on the
// resulting set is linear in its size, so Grid is intended for modest
// point counts; callers needing a finer lattice should page the search
// space themselves rather than materializing a huge Discrete set.
func Grid(spacing float64, ranges []Range) (Discrete, error) {
	if spacing <= 0 {
		return Discrete{}, ErrNonPositiveSpacing
	}
	if len(ranges) == 0 {
		return Discrete{}, ErrEmptyRanges
	}

	axisCoords := make([][]float64, len(ranges))
	for i, r := range ranges {
		if r.Min > r.Max {
			return Discrete{}, ErrInvertedBounds
		}
		var coords []float64
		for v := r.Min; v <= r.Max+vector.Epsilon; v += spacing {
			coords = append(coords, v)
		}
		if len(coords) == 0 {
			coords = append(coords, r.Min)
		}
		axisCoords[i] = coords
	}

	var points []vector.Vector
	idx := make([]int, len(ranges))
	for {
		pt := make(vector.Vector, len(ranges))
		for d := range ranges {
			pt[d] = axisCoords[d][idx[d]]
		}
		points = append(points, pt)

		// Odometer increment, rightmost dimension fastest, producing
		// lexicographic order directly.
		d := len(ranges) - 1
		for d >= 0 {
			idx[d]++
			if idx[d] < len(axisCoords[d]) {
				break
			}
			idx[d] = 0
			d--
		}
		if d < 0 {
			break
		}
	}

	sort.Slice(points, func(i, j int) bool { return vector.Less(points[i], points[j]) })
	return NewDiscrete(points)
}

func (d Discrete) Satisfied(p vector.Vector) bool {
	return d.Distance(p) <= vector.Epsilon
}

func (d Discrete) Distance(p vector.Vector) float64 {
	// Distance to a finite point set is always >= 0; "inside" only occurs
	// exactly on a member point, so the sign convention collapses to
	// unsigned distance to the nearest element.
	best := -1.0
	for i := 0; i < len(d.points); i++ {
		dist, err := vector.Distance(p, d.points[i])
		if err != nil {
			continue
		}
		if best < 0 || dist < best {
			best = dist
		}
	}
	if best < 0 {
		return 0
	}
	return best
}

// Project returns the nearest member point. Ties (equal distance) break by
// lexicographic order on the candidate points, matching the engine-wide
// tiebreak convention.
func (d Discrete) Project(p vector.Vector) vector.Vector {
	var best vector.Vector
	bestDist := -1.0
	for i := 0; i < len(d.points); i++ {
		dist, err := vector.Distance(p, d.points[i])
		if err != nil {
			continue
		}
		switch {
		case bestDist < 0 || dist < bestDist-vector.Epsilon:
			best, bestDist = d.points[i], dist
		case dist < bestDist+vector.Epsilon && vector.Less(d.points[i], best):
			best, bestDist = d.points[i], dist
		}
	}
	if best == nil {
		return p.Clone()
	}
	return best.Clone()
}

func (d Discrete) IsConvex() bool   { return false }
func (d Discrete) Dim() int         { return d.dim }
func (d Discrete) Describe() string { return fmt.Sprintf("Discrete[%d points]", len(d.points)) }
func (d Discrete) closed()          {}

// Points returns a copy of the feasible point set.
func (d Discrete) Points() []vector.Vector {
	out := make([]vector.Vector, len(d.points))
	for i, p := range d.points {
		out[i] = p.Clone()
	}
	return out
}
