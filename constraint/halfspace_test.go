package constraint_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/vector"
	"github.com/stretchr/testify/require"
)

func TestHalfspaceProject(t *testing.T) {
	h, err := constraint.NewHalfspace(vector.New(1, 0), 10)
	require.NoError(t, err)

	require.True(t, h.Satisfied(vector.New(5, 100)))
	require.False(t, h.Satisfied(vector.New(20, 0)))

	got := h.Project(vector.New(20, 5))
	require.InDelta(t, 10, got[0], 1e-9)
	require.InDelta(t, 5, got[1], 1e-9)
}

func TestHalfspaceProjectAlreadySatisfiedUnchanged(t *testing.T) {
	h, _ := constraint.NewHalfspace(vector.New(1, 0), 10)
	p := vector.New(5, 5)
	got := h.Project(p)
	require.True(t, vector.Equal(p, got))
}

func TestHalfspaceDegenerateNormal(t *testing.T) {
	h, err := constraint.NewHalfspace(vector.New(1e-15, 0), 100)
	require.NoError(t, err)
	require.True(t, h.Satisfied(vector.New(1e30, 50)))

	got := h.Project(vector.New(1e30, 50))
	require.False(t, math.IsNaN(got[0]))
	require.False(t, math.IsNaN(got[1]))
}

func TestHalfspaceDegenerateNegativeBoundVacuouslyFalse(t *testing.T) {
	h, err := constraint.NewHalfspace(vector.New(1e-15, 0), -5)
	require.NoError(t, err)
	require.False(t, h.Satisfied(vector.New(0, 0)))
}

func TestHalfspaceDuplicateLandsOnBoundary(t *testing.T) {
	h1, _ := constraint.NewHalfspace(vector.New(1, 0), 10)
	h2, _ := constraint.NewHalfspace(vector.New(1, 0), 10)

	p := vector.New(50, 0)
	got := h2.Project(h1.Project(p))
	require.InDelta(t, 10, got[0], 1e-9)
}
