package constraint_test

import (
	"testing"

	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/vector"
	"github.com/stretchr/testify/require"
)

func TestSetSplitsConvexNonconvex(t *testing.T) {
	box, _ := constraint.NewBox(vector.New(0, 0), vector.New(100, 100))
	coll, _ := constraint.NewCollision(vector.New(40, 40), vector.New(60, 60), 0)

	s := constraint.NewSet([]constraint.Constraint{box, coll})
	require.Len(t, s.Convex(), 1)
	require.Len(t, s.Nonconvex(), 1)
	require.False(t, s.IsAllConvex())
}

func TestSetMutationIsolation(t *testing.T) {
	box, _ := constraint.NewBox(vector.New(0, 0), vector.New(100, 100))
	cs := []constraint.Constraint{box}
	s := constraint.NewSet(cs)

	cs[0] = nil // mutate caller's slice after construction
	require.NotNil(t, s.All()[0])
}

func TestSetSatisfiesAll(t *testing.T) {
	box, _ := constraint.NewBox(vector.New(0, 0), vector.New(10, 10))
	h, _ := constraint.NewHalfspace(vector.New(1, 0), 5)
	s := constraint.NewSet([]constraint.Constraint{box, h})

	require.True(t, s.SatisfiesAll(vector.New(3, 3)))
	require.False(t, s.SatisfiesAll(vector.New(8, 3)))
}
