package projection_test

import (
	"testing"

	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/projection"
	"github.com/katalvlaran/newton/vector"
	"github.com/stretchr/testify/require"
)

func TestWeightedBoxReducesToClamp(t *testing.T) {
	box, _ := constraint.NewBox(vector.New(0, 0), vector.New(10, 10))
	out, err := projection.Weighted(vector.New(15, -5), []constraint.Constraint{box}, vector.New(1, 1000))
	require.NoError(t, err)
	require.True(t, box.Satisfied(out.Point))
	require.InDelta(t, 10, out.Point[0], 1e-6)
	require.InDelta(t, 0, out.Point[1], 1e-6)
}

func TestWeightedExtremeRatioFinite(t *testing.T) {
	box, _ := constraint.NewBox(vector.New(0, 0), vector.New(10, 10))
	out, err := projection.Weighted(vector.New(15, -5), []constraint.Constraint{box}, vector.New(1e6, 1))
	require.NoError(t, err)
	require.True(t, out.Point.IsFinite())
}

func TestWeightedNonPositiveWeight(t *testing.T) {
	box, _ := constraint.NewBox(vector.New(0, 0), vector.New(10, 10))
	_, err := projection.Weighted(vector.New(1, 1), []constraint.Constraint{box}, vector.New(1, 0))
	require.ErrorIs(t, err, projection.ErrNonPositiveWeight)
}

func TestWeightedDeterministic(t *testing.T) {
	box, _ := constraint.NewBox(vector.New(0, 0), vector.New(10, 10))
	out1, err1 := projection.Weighted(vector.New(15, -5), []constraint.Constraint{box}, vector.New(2, 3))
	out2, err2 := projection.Weighted(vector.New(15, -5), []constraint.Constraint{box}, vector.New(2, 3))
	require.NoError(t, err1)
	require.NoError(t, err2)
	require.Equal(t, out1.Point, out2.Point)
}

func TestWeightedUnsupportedConstraint(t *testing.T) {
	coll, _ := constraint.NewCollision(vector.New(0, 0), vector.New(1, 1), 0)
	_, err := projection.Weighted(vector.New(5, 5), []constraint.Constraint{coll}, vector.New(1, 1))
	require.Error(t, err)
}
