package candidate_test

import (
	"testing"

	"github.com/katalvlaran/newton/candidate"
	"github.com/katalvlaran/newton/geom"
	"github.com/katalvlaran/newton/vector"
	"github.com/stretchr/testify/require"
)

func TestRadialSearchRespectsQuota(t *testing.T) {
	got := candidate.RadialSearch(vector.New(0, 0), nil, 5)
	require.Len(t, got, 5)
}

func TestRadialSearchZeroQuota(t *testing.T) {
	require.Nil(t, candidate.RadialSearch(vector.New(0, 0), nil, 0))
}

func TestRadialSearchFiltersBounds(t *testing.T) {
	b, err := geom.NewBounds(vector.New(-2, -2), vector.New(2, 2))
	require.NoError(t, err)

	got := candidate.RadialSearch(vector.New(0, 0), &b, candidate.MaxCandidates)
	for _, p := range got {
		require.True(t, b.Contains(p))
	}
}

func TestRadialSearchDeterministicOrder(t *testing.T) {
	a := candidate.RadialSearch(vector.New(1, 2), nil, 10)
	b := candidate.RadialSearch(vector.New(1, 2), nil, 10)
	require.Equal(t, a, b)
}

func TestRadialSearch1D(t *testing.T) {
	got := candidate.RadialSearch(vector.New(0), nil, 2)
	require.Len(t, got, 2)
}

func TestRadialSearch3D(t *testing.T) {
	got := candidate.RadialSearch(vector.New(0, 0, 0), nil, candidate.MaxCandidates)
	require.NotEmpty(t, got)
}
