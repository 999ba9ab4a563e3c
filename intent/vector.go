package intent

import (
	"math"

	"github.com/katalvlaran/newton/vector"
)

// Vector is the direction/magnitude decomposition of a delta: a unit
// Direction, a non-negative Magnitude, and per-dimension positive Weights
// (defaulting to 1). Short-circuits to the zero intent when Magnitude would
// fall below vector.Epsilon.
type Vector struct {
	Direction vector.Vector
	Magnitude float64
	Weights   vector.Vector
}

// FromVector derives an intent Vector from a raw delta. When the delta's
// norm is below vector.Epsilon, Direction is the dim-sized zero vector and
// Magnitude is 0 ("no intent to honour").
func FromVector(delta vector.Vector) Vector {
	n := delta.Dim()
	mag := delta.Norm()
	if mag < vector.Epsilon {
		return Vector{Direction: vector.Zero(n), Magnitude: 0, Weights: ones(n)}
	}
	dir := vector.Scale(delta, 1/mag)
	return Vector{Direction: dir, Magnitude: mag, Weights: ones(n)}
}

// WithWeights returns a copy of v with its Weights replaced.
func (v Vector) WithWeights(weights vector.Vector) Vector {
	v.Weights = weights.Clone()
	return v
}

func ones(n int) vector.Vector {
	w := make(vector.Vector, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

// Preserved scores how much of this intent survives between original and
// result:
//
//	Δ = result - original
//	if m < ε: return 1.0               // no intent to honour
//	if ‖Δ‖ < ε: return 0.0             // movement fully blocked
//	alignment = d̂ · (Δ / ‖Δ‖)         // cosine of angle
//	ratio = min(‖Δ‖ / m, 1)
//	return max(0, alignment·ratio)
func (v Vector) Preserved(original, result vector.Vector) float64 {
	delta, err := vector.Sub(result, original)
	if err != nil {
		return 0
	}
	if v.Magnitude < vector.Epsilon {
		return 1.0
	}
	deltaNorm := delta.Norm()
	if deltaNorm < vector.Epsilon {
		return 0.0
	}
	unitDelta := vector.Scale(delta, 1/deltaNorm)
	alignment, err := vector.Dot(v.Direction, unitDelta)
	if err != nil {
		return 0
	}
	ratio := math.Min(deltaNorm/v.Magnitude, 1)
	score := alignment * ratio
	if score < 0 {
		return 0
	}
	return score
}

// Combine merges v with other by summing their weighted displacement
// vectors (direction*magnitude) and re-deriving direction/magnitude from
// that sum via FromVector.
//
// This intentionally reproduces the original Rust reference's behavior of
// discarding any notion of "sum of magnitudes": the returned Magnitude is
// the norm of the combined displacement, not v.Magnitude+other.Magnitude.
// Verified against the Rust reference (intent.rs) during the port; see
// DESIGN.md's Open Question 1 for why this is preserved rather than
// "fixed" to a naive magnitude sum.
func (v Vector) Combine(other Vector) Vector {
	vDisp := vector.Scale(v.Direction, v.Magnitude)
	oDisp := vector.Scale(other.Direction, other.Magnitude)
	combined := make(vector.Vector, len(vDisp))
	for i := range vDisp {
		combined[i] = vDisp[i] + oDisp[i]
	}
	out := FromVector(combined)
	out.Weights = v.Weights
	return out
}
