package candidate

import (
	"math"
	"sort"

	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/vector"
)

// FilterAndRank keeps only candidates satisfying every constraint (convex
// and nonconvex together) and sorts the survivors ascending by Euclidean
// distance to intended — not to the search center — with a lexicographic
// tiebreak.
func FilterAndRank(candidates []vector.Vector, constraints []constraint.Constraint, intended vector.Vector) []vector.Vector {
	var survivors []vector.Vector
	for _, c := range candidates {
		ok := true
		for _, con := range constraints {
			if !con.Satisfied(c) {
				ok = false
				break
			}
		}
		if ok {
			survivors = append(survivors, c)
		}
	}

	sort.Slice(survivors, func(i, j int) bool {
		di, _ := vector.Distance(survivors[i], intended)
		dj, _ := vector.Distance(survivors[j], intended)
		if math.Abs(di-dj) > vector.Tolerance {
			return di < dj
		}
		return vector.Less(survivors[i], survivors[j])
	})

	return survivors
}
