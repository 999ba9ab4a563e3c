package candidate_test

import (
	"testing"

	"github.com/katalvlaran/newton/candidate"
	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/vector"
	"github.com/stretchr/testify/require"
)

func TestFilterAndRankKeepsOnlyValid(t *testing.T) {
	box, _ := constraint.NewBox(vector.New(0, 0), vector.New(10, 10))
	coll, _ := constraint.NewCollision(vector.New(4, 4), vector.New(6, 6), 0)

	cands := []vector.Vector{
		vector.New(5, 5),  // inside obstacle: rejected
		vector.New(1, 1),  // valid
		vector.New(20, 20), // outside box: rejected
	}
	got := candidate.FilterAndRank(cands, []constraint.Constraint{box, coll}, vector.New(0, 0))
	require.Len(t, got, 1)
	require.Equal(t, vector.New(1, 1), got[0])
}

func TestFilterAndRankSortsByDistanceToIntended(t *testing.T) {
	box, _ := constraint.NewBox(vector.New(-100, -100), vector.New(100, 100))
	cands := []vector.Vector{
		vector.New(10, 0),
		vector.New(1, 0),
		vector.New(5, 0),
	}
	got := candidate.FilterAndRank(cands, []constraint.Constraint{box}, vector.New(0, 0))
	require.Equal(t, []vector.Vector{vector.New(1, 0), vector.New(5, 0), vector.New(10, 0)}, got)
}
