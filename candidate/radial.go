package candidate

import (
	"math"
	"sort"

	"github.com/katalvlaran/newton/geom"
	"github.com/katalvlaran/newton/vector"
)

// shellPoints generates the points on the sphere of radius r around c,
// following a fixed per-dimension schedule:
//   - n = 1: {c-r·e0, c+r·e0}
//   - n = 2: 8 points at angles 2πk/8
//   - n >= 3: 2n axial points c±r·e_k, plus four 2-plane diagonal points at
//     offset r/√2 for every pair (k<j)
func shellPoints(c vector.Vector, r float64) []vector.Vector {
	n := c.Dim()
	switch {
	case n == 1:
		return []vector.Vector{
			vector.New(c[0] - r),
			vector.New(c[0] + r),
		}
	case n == 2:
		out := make([]vector.Vector, 0, ShellAngularSamples2D)
		for k := 0; k < ShellAngularSamples2D; k++ {
			theta := 2 * math.Pi * float64(k) / float64(ShellAngularSamples2D)
			out = append(out, vector.New(
				c[0]+r*math.Cos(theta),
				c[1]+r*math.Sin(theta),
			))
		}
		return out
	default:
		out := make([]vector.Vector, 0, 2*n+4*n*(n-1)/2)
		for k := 0; k < n; k++ {
			plus := c.Clone()
			plus[k] += r
			out = append(out, plus)

			minus := c.Clone()
			minus[k] -= r
			out = append(out, minus)
		}
		offset := r / math.Sqrt2
		for k := 0; k < n; k++ {
			for j := k + 1; j < n; j++ {
				for _, sk := range []float64{-1, 1} {
					for _, sj := range []float64{-1, 1} {
						p := c.Clone()
						p[k] += sk * offset
						p[j] += sj * offset
						out = append(out, p)
					}
				}
			}
		}
		return out
	}
}

// RadialSearch generates deterministic candidates around center across the
// fixed ShellRadii schedule, filtering to the optional bounds (nil means
// unbounded) and emitting at most quota points, lexicographically ordered
// within each shell. The quota is typically max(0, MaxCandidates - existing
// candidate count); the caller computes that and passes it in directly.
func RadialSearch(center vector.Vector, bounds *geom.Bounds, quota int) []vector.Vector {
	if quota <= 0 {
		return nil
	}
	var out []vector.Vector
	for _, r := range ShellRadii {
		shell := shellPoints(center, r)
		if bounds != nil {
			filtered := shell[:0:0]
			for _, p := range shell {
				if bounds.Contains(p) {
					filtered = append(filtered, p)
				}
			}
			shell = filtered
		}
		sort.Slice(shell, func(i, j int) bool { return vector.Less(shell[i], shell[j]) })
		for _, p := range shell {
			out = append(out, p)
			if len(out) >= quota {
				return out
			}
		}
	}
	return out
}
