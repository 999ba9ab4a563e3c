package geom

import (
	"math"

	"github.com/katalvlaran/newton/vector"
)

// Bounds is an axis-aligned box [Min, Max] of equal-dimension vectors, with
// Min[i] <= Max[i] for every i. Bounds is immutable after construction.
type Bounds struct {
	Min vector.Vector
	Max vector.Vector
}

// NewBounds validates and constructs a Bounds from min/max. Returns
// ErrDimensionMismatch when the two vectors differ in dimension and
// ErrInvertedBounds when min[i] > max[i] for any dimension — both are
// precondition violations per the engine's three-class error policy, so
// they are surfaced immediately rather than silently clamped.
func NewBounds(min, max vector.Vector) (Bounds, error) {
	if min.Dim() != max.Dim() {
		return Bounds{}, ErrDimensionMismatch
	}
	for i := 0; i < min.Dim(); i++ {
		if min[i] > max[i] {
			return Bounds{}, ErrInvertedBounds
		}
	}
	return Bounds{Min: min.Clone(), Max: max.Clone()}, nil
}

// Dim reports the bounds' dimension.
func (b Bounds) Dim() int { return b.Min.Dim() }

// Contains reports whether p lies within [Min, Max] inclusive of the
// boundary, tolerant of Epsilon to match the rest of the engine's inclusive-
// boundary convention.
func (b Bounds) Contains(p vector.Vector) bool {
	if p.Dim() != b.Dim() {
		return false
	}
	for i := 0; i < p.Dim(); i++ {
		if p[i] < b.Min[i]-vector.Epsilon || p[i] > b.Max[i]+vector.Epsilon {
			return false
		}
	}
	return true
}

// Distance returns the signed Euclidean distance from p to the boundary:
// negative (or zero) when p is inside, positive when outside. The outside
// case is the Euclidean norm of the per-dimension clamp residual; the
// inside case is the negated distance to the nearest face.
func (b Bounds) Distance(p vector.Vector) float64 {
	outside := make(vector.Vector, p.Dim())
	var anyOutside bool
	for i := 0; i < p.Dim(); i++ {
		lo, hi := b.Min[i], b.Max[i]
		switch {
		case p[i] < lo:
			outside[i] = lo - p[i]
			anyOutside = true
		case p[i] > hi:
			outside[i] = p[i] - hi
			anyOutside = true
		default:
			outside[i] = 0
		}
	}
	if anyOutside {
		return outside.Norm()
	}
	// Interior (or boundary): negative distance to the nearest face.
	nearest := math.Inf(1)
	for i := 0; i < p.Dim(); i++ {
		if d := p[i] - b.Min[i]; d < nearest {
			nearest = d
		}
		if d := b.Max[i] - p[i]; d < nearest {
			nearest = d
		}
	}
	return -nearest
}

// Center returns the midpoint of the box.
func (b Bounds) Center() vector.Vector {
	out := make(vector.Vector, b.Dim())
	for i := 0; i < b.Dim(); i++ {
		out[i] = (b.Min[i] + b.Max[i]) / 2
	}
	return out
}

// Size returns Max-Min, the per-dimension extent of the box.
func (b Bounds) Size() vector.Vector {
	out, _ := vector.Sub(b.Max, b.Min)
	return out
}

// Expand returns a new Bounds grown isotropically by margin in every
// dimension (negative margin shrinks). A resulting inverted dimension
// collapses to a single point rather than erroring, since shrink-to-empty
// is a well-defined degenerate box, not a precondition violation.
func (b Bounds) Expand(margin float64) Bounds {
	min := make(vector.Vector, b.Dim())
	max := make(vector.Vector, b.Dim())
	for i := 0; i < b.Dim(); i++ {
		lo, hi := b.Min[i]-margin, b.Max[i]+margin
		if lo > hi {
			mid := (b.Min[i] + b.Max[i]) / 2
			lo, hi = mid, mid
		}
		min[i], max[i] = lo, hi
	}
	return Bounds{Min: min, Max: max}
}

// Intersect returns the intersection of b and other, and false when the
// intersection is empty (some dimension's resulting min exceeds its max).
func (b Bounds) Intersect(other Bounds) (Bounds, bool) {
	if b.Dim() != other.Dim() {
		return Bounds{}, false
	}
	min := make(vector.Vector, b.Dim())
	max := make(vector.Vector, b.Dim())
	for i := 0; i < b.Dim(); i++ {
		min[i] = math.Max(b.Min[i], other.Min[i])
		max[i] = math.Min(b.Max[i], other.Max[i])
		if min[i] > max[i] {
			return Bounds{}, false
		}
	}
	return Bounds{Min: min, Max: max}, true
}
