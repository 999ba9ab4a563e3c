package geom_test

import (
	"testing"

	"github.com/katalvlaran/newton/geom"
	"github.com/stretchr/testify/require"
)

func TestFromRatioValid(t *testing.T) {
	s := geom.FromRatio(0, 1)
	require.Equal(t, geom.KindValid, s.Kind())
	require.True(t, s.IsFeasible())
}

func TestFromRatioExact(t *testing.T) {
	s := geom.FromRatio(1, 1)
	require.Equal(t, geom.KindExact, s.Kind())
	require.True(t, s.IsFeasible())
}

func TestFromRatioSlack(t *testing.T) {
	s := geom.FromRatio(0.3, 1)
	require.Equal(t, geom.KindSlack, s.Kind())
	margin, ok := s.Margin()
	require.True(t, ok)
	require.InDelta(t, 0.7, margin, 1e-9)
	require.False(t, s.IsFeasible())
}

func TestFromRatioFinfr(t *testing.T) {
	s := geom.FromRatio(5, 1)
	require.Equal(t, geom.KindFinfr, s.Kind())
	excess, ok := s.Excess()
	require.True(t, ok)
	require.InDelta(t, 4, excess, 1e-9)
}

func TestHapticAmplitudeBounds(t *testing.T) {
	for _, s := range []geom.FGState{
		geom.FromRatio(0, 1),
		geom.FromRatio(0.5, 1),
		geom.FromRatio(1, 1),
		geom.FromRatio(10, 1),
	} {
		amp := s.HapticAmplitude()
		require.GreaterOrEqual(t, amp, 0.0)
		require.LessOrEqual(t, amp, 1.0)
	}
}
