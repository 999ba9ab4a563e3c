package constraint

import (
	"fmt"
	"math"

	"github.com/katalvlaran/newton/vector"
)

// Halfspace is the convex constraint a·x <= bound.
type Halfspace struct {
	normal    vector.Vector
	bound     float64
	sqNormA   float64 // cached ‖a‖²
	degen     bool    // ‖a‖² < Epsilon
	vacuous   bool    // degenerate and satisfied everywhere (bound >= 0)
}

// NewHalfspace constructs a Halfspace, caching ‖normal‖².
// A near-zero normal (‖a‖² < Epsilon) is not a precondition violation: it is
// a numeric degeneracy, resolved as vacuously true when bound >= 0 and
// vacuously false otherwise.
func NewHalfspace(normal vector.Vector, bound float64) (Halfspace, error) {
	sq := normal.SquaredNorm()
	h := Halfspace{normal: normal.Clone(), bound: bound, sqNormA: sq}
	if sq < vector.Epsilon {
		h.degen = true
		h.vacuous = bound >= 0
	}
	return h, nil
}

func (h Halfspace) slack(p vector.Vector) (float64, error) {
	d, err := vector.Dot(h.normal, p)
	if err != nil {
		return 0, err
	}
	return d - h.bound, nil
}

func (h Halfspace) Satisfied(p vector.Vector) bool {
	if h.degen {
		return h.vacuous
	}
	s, err := h.slack(p)
	if err != nil {
		return false
	}
	return s <= vector.Epsilon
}

func (h Halfspace) Distance(p vector.Vector) float64 {
	if h.degen {
		if h.vacuous {
			return -1 // arbitrary negative: always satisfied, treated as interior
		}
		return 1 // arbitrary positive: never satisfied
	}
	s, err := h.slack(p)
	if err != nil {
		return math.Inf(1)
	}
	return s / math.Sqrt(h.sqNormA)
}

// Project implements p - max(0, (a·p - b)/‖a‖²)·a. Degenerate normals
// (‖a‖² < Epsilon) return p unchanged rather than dividing by a near-zero
// norm.
func (h Halfspace) Project(p vector.Vector) vector.Vector {
	if h.degen {
		return p.Clone()
	}
	s, err := h.slack(p)
	if err != nil {
		return p.Clone()
	}
	if s <= vector.Epsilon {
		return p.Clone()
	}
	factor := s / h.sqNormA
	shift := vector.Scale(h.normal, factor)
	out, err := vector.Sub(p, shift)
	if err != nil {
		return p.Clone()
	}
	return out
}

func (h Halfspace) IsConvex() bool { return true }
func (h Halfspace) Dim() int       { return h.normal.Dim() }
func (h Halfspace) Describe() string {
	return fmt.Sprintf("Halfspace[normal=%v <= %v]", []float64(h.normal), h.bound)
}
func (h Halfspace) closed() {}

// Normal returns the halfspace's normal vector.
func (h Halfspace) Normal() vector.Vector { return h.normal.Clone() }

// Bound returns the halfspace's bound.
func (h Halfspace) Bound() float64 { return h.bound }
