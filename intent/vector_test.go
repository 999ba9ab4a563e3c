package intent_test

import (
	"testing"

	"github.com/katalvlaran/newton/intent"
	"github.com/katalvlaran/newton/vector"
	"github.com/stretchr/testify/require"
)

func TestFromVectorZeroIntent(t *testing.T) {
	v := intent.FromVector(vector.New(0, 0))
	require.Equal(t, 0.0, v.Magnitude)
}

func TestPreservedFullIntent(t *testing.T) {
	v := intent.FromVector(vector.New(10, 0))
	score := v.Preserved(vector.New(0, 0), vector.New(10, 0))
	require.InDelta(t, 1.0, score, 1e-9)
}

func TestPreservedBlocked(t *testing.T) {
	v := intent.FromVector(vector.New(10, 0))
	score := v.Preserved(vector.New(0, 0), vector.New(0, 0))
	require.Equal(t, 0.0, score)
}

func TestPreservedNoIntent(t *testing.T) {
	v := intent.FromVector(vector.New(0, 0))
	score := v.Preserved(vector.New(0, 0), vector.New(5, 5))
	require.Equal(t, 1.0, score)
}

func TestPreservedBackwardsClampsToZero(t *testing.T) {
	v := intent.FromVector(vector.New(10, 0))
	score := v.Preserved(vector.New(0, 0), vector.New(-10, 0))
	require.Equal(t, 0.0, score)
}

func TestCombineRenormalizesMagnitude(t *testing.T) {
	a := intent.FromVector(vector.New(10, 0))
	b := intent.FromVector(vector.New(0, 10))
	combined := a.Combine(b)

	// Norm of the summed displacement (10,10) is ~14.14, NOT 10+10=20.
	require.InDelta(t, 14.142135, combined.Magnitude, 1e-4)
}
