package candidate

import (
	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/vector"
)

// BoundaryCandidates returns box's 2^n corners (only emitted when n <= 5 to
// keep the candidate count bounded), each face's centre (2n points), and
// the box centre, truncated to quota.
func BoundaryCandidates(box constraint.Box, quota int) []vector.Vector {
	if quota <= 0 {
		return nil
	}
	min, max := box.Min(), box.Max()
	n := min.Dim()

	var out []vector.Vector

	if n <= 5 {
		corners := 1 << uint(n)
		for mask := 0; mask < corners; mask++ {
			p := make(vector.Vector, n)
			for i := 0; i < n; i++ {
				if mask&(1<<uint(i)) != 0 {
					p[i] = max[i]
				} else {
					p[i] = min[i]
				}
			}
			out = append(out, p)
		}
	}

	center := box.Min()
	for i := 0; i < n; i++ {
		center[i] = (min[i] + max[i]) / 2
	}
	for i := 0; i < n; i++ {
		faceLo := center.Clone()
		faceLo[i] = min[i]
		out = append(out, faceLo)

		faceHi := center.Clone()
		faceHi[i] = max[i]
		out = append(out, faceHi)
	}

	out = append(out, center)

	if len(out) > quota {
		out = out[:quota]
	}
	return out
}
