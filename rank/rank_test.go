package rank_test

import (
	"testing"

	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/rank"
	"github.com/katalvlaran/newton/vector"
	"github.com/stretchr/testify/require"
)

func TestRankOrdersByDistanceToIntended(t *testing.T) {
	box, _ := constraint.NewBox(vector.New(-100, -100), vector.New(100, 100))
	cands := []vector.Vector{vector.New(10, 0), vector.New(1, 0), vector.New(5, 0)}

	got := rank.Rank(cands, []constraint.Constraint{box}, vector.New(0, 0), vector.New(0, 0), rank.DefaultCriteria())
	require.Equal(t, vector.New(1, 0), got[0].Point)
	require.Equal(t, vector.New(10, 0), got[len(got)-1].Point)
}

func TestRankDeterministic(t *testing.T) {
	box, _ := constraint.NewBox(vector.New(-100, -100), vector.New(100, 100))
	cands := []vector.Vector{vector.New(3, 4), vector.New(4, 3)}

	got1 := rank.Rank(cands, []constraint.Constraint{box}, vector.New(0, 0), vector.New(0, 0), rank.DefaultCriteria())
	got2 := rank.Rank(cands, []constraint.Constraint{box}, vector.New(0, 0), vector.New(0, 0), rank.DefaultCriteria())
	require.Equal(t, got1, got2)
}

func TestRankIdempotent(t *testing.T) {
	box, _ := constraint.NewBox(vector.New(-100, -100), vector.New(100, 100))
	cands := []vector.Vector{vector.New(10, 0), vector.New(1, 0), vector.New(5, 0)}

	once := rank.Rank(cands, []constraint.Constraint{box}, vector.New(0, 0), vector.New(0, 0), rank.DefaultCriteria())
	points := make([]vector.Vector, len(once))
	for i, sc := range once {
		points[i] = sc.Point
	}
	twice := rank.Rank(points, []constraint.Constraint{box}, vector.New(0, 0), vector.New(0, 0), rank.DefaultCriteria())
	for i := range once {
		require.True(t, vector.Equal(once[i].Point, twice[i].Point))
	}
}

func TestWithIntentWeightPanicsOnNegative(t *testing.T) {
	require.Panics(t, func() { rank.WithIntentWeight(-1) })
}
