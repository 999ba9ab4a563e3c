package vector

import "math"

// Vector is an ordered sequence of float64 components. The zero value is a
// zero-dimensional vector; use New or Zero to build one with a specific
// dimension. The arithmetic functions in this package (Add, Sub, Scale,
// Clamp, ...) return new vectors and never write to their arguments; a
// Vector is still a slice, so callers that mutate one they did not create
// should Clone it first.
type Vector []float64

// New returns a Vector containing a copy of components, so later mutation
// of the caller's slice never aliases the returned Vector.
func New(components ...float64) Vector {
	v := make(Vector, len(components))
	copy(v, components)
	return v
}

// Zero returns the n-dimensional zero vector.
func Zero(n int) Vector {
	return make(Vector, n)
}

// Dim reports the vector's dimension.
func (v Vector) Dim() int { return len(v) }

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// IsFinite reports whether every component is finite (no NaN, no ±Inf).
// Iterates left-to-right and short-circuits on the first offending
// component; the early return does not affect determinism since the result
// is a boolean, not an accumulated numeric value.
func (v Vector) IsFinite() bool {
	for i := 0; i < len(v); i++ {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return false
		}
	}
	return true
}

func requireSameDim(a, b Vector, op string) error {
	if len(a) != len(b) {
		return errorf(op, ErrDimensionMismatch)
	}
	return nil
}
