package constraint

import (
	"fmt"
	"math"

	"github.com/katalvlaran/newton/vector"
)

// Box is the convex constraint min <= x <= max, per dimension.
type Box struct {
	min, max vector.Vector
	reverse  bool // test-only: iterate dimensions high-to-low during Project.
}

// NewBox validates and constructs a Box constraint.
func NewBox(min, max vector.Vector) (Box, error) {
	if min.Dim() != max.Dim() {
		return Box{}, ErrDimensionMismatch
	}
	for i := 0; i < min.Dim(); i++ {
		if min[i] > max[i] {
			return Box{}, ErrInvertedBounds
		}
	}
	return Box{min: min.Clone(), max: max.Clone()}, nil
}

// NewBoxReverseOrder builds a Box whose Project clamps dimensions from
// highest index to lowest. It exists only to verify, in tests, that
// per-dimension clamp order does not affect the result — clamps are
// independent, so forward and reverse orders must agree within tolerance.
// Not intended for production use.
func NewBoxReverseOrder(min, max vector.Vector) (Box, error) {
	b, err := NewBox(min, max)
	if err != nil {
		return Box{}, err
	}
	b.reverse = true
	return b, nil
}

func (b Box) Satisfied(p vector.Vector) bool {
	if p.Dim() != b.Dim() {
		return false
	}
	for i := 0; i < p.Dim(); i++ {
		if p[i] < b.min[i]-vector.Epsilon || p[i] > b.max[i]+vector.Epsilon {
			return false
		}
	}
	return true
}

func (b Box) Distance(p vector.Vector) float64 {
	outside := make(vector.Vector, p.Dim())
	var anyOutside bool
	for i := 0; i < p.Dim(); i++ {
		switch {
		case p[i] < b.min[i]:
			outside[i] = b.min[i] - p[i]
			anyOutside = true
		case p[i] > b.max[i]:
			outside[i] = p[i] - b.max[i]
			anyOutside = true
		}
	}
	if anyOutside {
		return outside.Norm()
	}
	nearest := math.Inf(1)
	for i := 0; i < p.Dim(); i++ {
		if d := p[i] - b.min[i]; d < nearest {
			nearest = d
		}
		if d := b.max[i] - p[i]; d < nearest {
			nearest = d
		}
	}
	return -nearest
}

// Project clamps each component independently to [min[i], max[i]]. Clamps
// are independent of each other, so the traversal order (forward, or
// reverse via NewBoxReverseOrder) never changes the result.
func (b Box) Project(p vector.Vector) vector.Vector {
	out := make(vector.Vector, p.Dim())
	n := p.Dim()
	if !b.reverse {
		for i := 0; i < n; i++ {
			out[i] = math.Min(math.Max(p[i], b.min[i]), b.max[i])
		}
	} else {
		for i := n - 1; i >= 0; i-- {
			out[i] = math.Min(math.Max(p[i], b.min[i]), b.max[i])
		}
	}
	return out
}

func (b Box) IsConvex() bool { return true }
func (b Box) Dim() int       { return b.min.Dim() }
func (b Box) Describe() string {
	return fmt.Sprintf("Box[min=%v, max=%v]", []float64(b.min), []float64(b.max))
}
func (b Box) closed() {}

// Min returns the box's lower corner.
func (b Box) Min() vector.Vector { return b.min.Clone() }

// Max returns the box's upper corner.
func (b Box) Max() vector.Vector { return b.max.Clone() }
