package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/newton/vector"
	"github.com/stretchr/testify/require"
)

func TestAddSub(t *testing.T) {
	a := vector.New(1, 2, 3)
	b := vector.New(4, -1, 0.5)

	sum, err := vector.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, vector.New(5, 1, 3.5), sum)

	diff, err := vector.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, vector.New(-3, 3, 2.5), diff)
}

func TestAddDimensionMismatch(t *testing.T) {
	_, err := vector.Add(vector.New(1, 2), vector.New(1, 2, 3))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
}

func TestDot(t *testing.T) {
	d, err := vector.Dot(vector.New(1, 2, 3), vector.New(4, 5, 6))
	require.NoError(t, err)
	require.InDelta(t, 32.0, d, 1e-12)
}

func TestNormNormalize(t *testing.T) {
	v := vector.New(3, 4)
	require.InDelta(t, 5.0, v.Norm(), 1e-12)

	u, err := v.Normalize()
	require.NoError(t, err)
	require.InDelta(t, 1.0, u.Norm(), 1e-12)
}

func TestNormalizeZeroNorm(t *testing.T) {
	_, err := vector.New(0, 0, 0).Normalize()
	require.ErrorIs(t, err, vector.ErrZeroNorm)
}

func TestClamp(t *testing.T) {
	out, err := vector.Clamp(vector.New(-5, 50, 150), vector.New(0, 0, 0), vector.New(100, 100, 100))
	require.NoError(t, err)
	require.Equal(t, vector.New(0, 50, 100), out)
}

func TestCompareLexicographic(t *testing.T) {
	require.True(t, vector.Less(vector.New(1, 9), vector.New(2, 0)))
	require.True(t, vector.Less(vector.New(1, 1), vector.New(1, 2)))
	require.Equal(t, 0, vector.Compare(vector.New(1, 2), vector.New(1, 2)))
}

func TestCompareNaN(t *testing.T) {
	nan := math.NaN()
	// NaN compares greater than any number.
	require.True(t, vector.Less(vector.New(1e300), vector.New(nan)))
	// NaN == NaN.
	require.Equal(t, 0, vector.Compare(vector.New(nan), vector.New(nan)))
}

func TestApproxEqual(t *testing.T) {
	a := vector.New(1.0, 2.0)
	b := vector.New(1.0+1e-12, 2.0-1e-12)
	require.True(t, vector.Equal(a, b))
	require.False(t, vector.ApproxEqual(a, vector.New(1.1, 2.0), vector.Epsilon))
}

func TestIsFinite(t *testing.T) {
	require.True(t, vector.New(1, 2, 3).IsFinite())
	require.False(t, vector.New(1, math.NaN()).IsFinite())
	require.False(t, vector.New(math.Inf(1), 0).IsFinite())
}
