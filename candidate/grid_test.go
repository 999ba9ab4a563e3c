package candidate_test

import (
	"testing"

	"github.com/katalvlaran/newton/candidate"
	"github.com/katalvlaran/newton/vector"
	"github.com/stretchr/testify/require"
)

func TestSnapToGridBasic(t *testing.T) {
	got, err := candidate.SnapToGrid(vector.New(4.6, 4.6), 1.0, 2.0, candidate.MaxCandidates)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	require.Contains(t, got, vector.New(5, 5))
}

func TestSnapToGridNonPositiveSpacing(t *testing.T) {
	_, err := candidate.SnapToGrid(vector.New(0, 0), 0, 1, 10)
	require.ErrorIs(t, err, candidate.ErrNonPositiveSpacing)
}

func TestSnapToGridQuotaCap(t *testing.T) {
	got, err := candidate.SnapToGrid(vector.New(0, 0), 0.5, 5, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
}
