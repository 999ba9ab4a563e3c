package constraint

import (
	"fmt"

	"github.com/katalvlaran/newton/vector"
)

// escapeMargin is the fixed margin used by EscapeCandidates: m = 100·Epsilon.
const escapeMargin = 100 * vector.Epsilon

// Collision is the nonconvex constraint whose feasible region is the
// complement of a closed obstacle box, optionally dilated by a separation
// margin.
type Collision struct {
	original   Box // the obstacle as supplied by the caller
	obstacle   Box // original dilated by separation; used for all checks
	separation float64
}

// NewCollision constructs a Collision constraint. separation dilates the
// obstacle box isotropically before any satisfied/distance/project check;
// pass 0 for no dilation.
func NewCollision(obstacleMin, obstacleMax vector.Vector, separation float64) (Collision, error) {
	orig, err := NewBox(obstacleMin, obstacleMax)
	if err != nil {
		return Collision{}, err
	}
	dilatedMin := make(vector.Vector, orig.Dim())
	dilatedMax := make(vector.Vector, orig.Dim())
	for i := 0; i < orig.Dim(); i++ {
		dilatedMin[i] = orig.min[i] - separation
		dilatedMax[i] = orig.max[i] + separation
	}
	dilated, err := NewBox(dilatedMin, dilatedMax)
	if err != nil {
		return Collision{}, err
	}
	return Collision{original: orig, obstacle: dilated, separation: separation}, nil
}

// Satisfied reports whether p lies outside the (dilated) obstacle, boundary
// inclusive.
func (c Collision) Satisfied(p vector.Vector) bool {
	return c.obstacle.Distance(p) >= -vector.Epsilon
}

// Distance returns the signed distance to the feasible boundary: negative
// (or zero) outside the obstacle, positive when strictly inside it — the
// negation of Box.Distance because Collision's feasible set is the
// obstacle's complement.
func (c Collision) Distance(p vector.Vector) float64 {
	return -c.obstacle.Distance(p)
}

// Project pushes a point that lies inside the obstacle to the nearest face,
// plus the fixed escape margin, so the result clears the feasibility
// tolerance. Points already outside the obstacle are returned unchanged —
// they are already their own nearest feasible point.
func (c Collision) Project(p vector.Vector) vector.Vector {
	if c.Satisfied(p) {
		return p.Clone()
	}
	out := p.Clone()
	bestDim := 0
	bestPush := -1.0
	bestTarget := 0.0
	for i := 0; i < p.Dim(); i++ {
		belowPush := p[i] - c.obstacle.min[i]
		abovePush := c.obstacle.max[i] - p[i]
		if bestPush < 0 || belowPush < bestPush {
			bestPush, bestDim, bestTarget = belowPush, i, c.obstacle.min[i]-escapeMargin
		}
		if abovePush < bestPush {
			bestPush, bestDim, bestTarget = abovePush, i, c.obstacle.max[i]+escapeMargin
		}
	}
	out[bestDim] = bestTarget
	return out
}

func (c Collision) IsConvex() bool { return false }
func (c Collision) Dim() int       { return c.obstacle.Dim() }
func (c Collision) Describe() string {
	return fmt.Sprintf("Collision[obstacle=%v..%v, separation=%v]",
		[]float64(c.original.min), []float64(c.original.max), c.separation)
}
func (c Collision) closed() {}

// EscapeCandidates returns a small deterministic set of points strictly
// outside the (dilated) obstacle, seeding the nonconvex candidate search:
// one pair per axis pushing below min[i] and above max[i] by the escape
// margin (other coordinates held at p's values), plus all four corners when
// the constraint is 2-dimensional.
func (c Collision) EscapeCandidates(p vector.Vector) []vector.Vector {
	n := c.Dim()
	out := make([]vector.Vector, 0, 2*n+4)
	for i := 0; i < n; i++ {
		below := p.Clone()
		below[i] = c.obstacle.min[i] - escapeMargin
		out = append(out, below)

		above := p.Clone()
		above[i] = c.obstacle.max[i] + escapeMargin
		out = append(out, above)
	}
	if n == 2 {
		lo0, hi0 := c.obstacle.min[0]-escapeMargin, c.obstacle.max[0]+escapeMargin
		lo1, hi1 := c.obstacle.min[1]-escapeMargin, c.obstacle.max[1]+escapeMargin
		out = append(out,
			vector.New(lo0, lo1),
			vector.New(lo0, hi1),
			vector.New(hi0, lo1),
			vector.New(hi0, hi1),
		)
	}
	return out
}

// Obstacle returns the dilated obstacle box used for all feasibility checks.
func (c Collision) Obstacle() Box { return c.obstacle }
