package constraint_test

import (
	"testing"

	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/vector"
	"github.com/stretchr/testify/require"
)

func TestBoxSatisfiedAndProject(t *testing.T) {
	b, err := constraint.NewBox(vector.New(0, 0), vector.New(10, 10))
	require.NoError(t, err)

	require.True(t, b.Satisfied(vector.New(5, 5)))
	require.False(t, b.Satisfied(vector.New(15, 5)))

	got := b.Project(vector.New(15, -5))
	require.Equal(t, vector.New(10, 0), got)
}

func TestBoxInvertedBounds(t *testing.T) {
	_, err := constraint.NewBox(vector.New(10, 0), vector.New(0, 10))
	require.ErrorIs(t, err, constraint.ErrInvertedBounds)
}

func TestBoxProjectIdempotent(t *testing.T) {
	b, _ := constraint.NewBox(vector.New(0, 0), vector.New(10, 10))
	p := vector.New(-5, 20)
	once := b.Project(p)
	twice := b.Project(once)
	require.True(t, vector.Equal(once, twice))
}

func TestBoxOrderIndependence(t *testing.T) {
	fwd, _ := constraint.NewBox(vector.New(0, 0, 0), vector.New(10, 10, 10))
	rev, _ := constraint.NewBoxReverseOrder(vector.New(0, 0, 0), vector.New(10, 10, 10))

	p := vector.New(-5, 15, 3)
	got1 := fwd.Project(p)
	got2 := rev.Project(p)
	require.True(t, vector.ApproxEqual(got1, got2, vector.Tolerance))
}
