package candidate

import (
	"math"
	"sort"

	"github.com/katalvlaran/newton/vector"
)

// SnapToGrid generates candidates near center on a lattice of the given
// spacing, enumerating every lattice point whose offset from center's
// nearest lattice point is at most ⌈searchRadius/spacing⌉ steps in each
// dimension (a cube of points, so its corners lie farther than
// searchRadius). Results are sorted by distance to center with a
// lexicographic tiebreak, then capped at quota.
func SnapToGrid(center vector.Vector, spacing, searchRadius float64, quota int) ([]vector.Vector, error) {
	if spacing <= 0 {
		return nil, ErrNonPositiveSpacing
	}
	if quota <= 0 {
		return nil, nil
	}

	n := center.Dim()
	base := make(vector.Vector, n)
	for i := 0; i < n; i++ {
		base[i] = math.Round(center[i]/spacing) * spacing
	}

	m := int(math.Ceil(searchRadius / spacing))
	offsetCounts := make([]int, n)
	for i := range offsetCounts {
		offsetCounts[i] = 2*m + 1
	}

	var points []vector.Vector
	idx := make([]int, n)
	for {
		p := make(vector.Vector, n)
		for d := 0; d < n; d++ {
			offset := float64(idx[d]-m) * spacing
			p[d] = base[d] + offset
		}
		points = append(points, p)

		d := n - 1
		for d >= 0 {
			idx[d]++
			if idx[d] < offsetCounts[d] {
				break
			}
			idx[d] = 0
			d--
		}
		if d < 0 {
			break
		}
	}

	sort.Slice(points, func(i, j int) bool {
		di, _ := vector.Distance(points[i], center)
		dj, _ := vector.Distance(points[j], center)
		if math.Abs(di-dj) > vector.Epsilon {
			return di < dj
		}
		return vector.Less(points[i], points[j])
	})

	if len(points) > quota {
		points = points[:quota]
	}
	return points, nil
}
