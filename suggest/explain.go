package suggest

import (
	"fmt"
	"math"

	"github.com/katalvlaran/newton/geom"
	"github.com/katalvlaran/newton/vector"
)

// DimensionChange records a single dimension's movement between a
// requested and a delivered point. Only dimensions whose movement exceeds
// vector.Tolerance are recorded; unchanged dimensions are omitted.
type DimensionChange struct {
	Dimension int
	Original  float64
	Suggested float64
	Delta     float64
}

// StateDiff summarizes the displacement between an intended point and the
// suggested point that replaced it, including the per-dimension changes
// that produced that displacement. Reapplying Changes to Requested must
// reconstruct Delivered within vector.Tolerance; this is exactly what
// verify.Harness's diff-monotonicity check re-derives independently.
type StateDiff struct {
	Requested vector.Vector
	Delivered vector.Vector
	Distance  float64
	Changes   []DimensionChange
}

func dimensionChanges(requested, delivered vector.Vector) []DimensionChange {
	var changes []DimensionChange
	for i := 0; i < requested.Dim(); i++ {
		delta := delivered[i] - requested[i]
		if math.Abs(delta) > vector.Tolerance {
			changes = append(changes, DimensionChange{
				Dimension: i,
				Original:  requested[i],
				Suggested: delivered[i],
				Delta:     delta,
			})
		}
	}
	return changes
}

// Explanation is a deterministic, human-readable account of why a
// particular suggestion looks the way it does: how far it moved from the
// caller's intended point, how much of the requested intent it preserved,
// and which constraint state produced it. Explanation never reads a clock
// or a random source, so the same inputs always produce the same text.
type Explanation struct {
	Diff         StateDiff
	Preservation float64
	State        geom.FGState
	Summary      string
}

func newExplanation(intended, delivered vector.Vector, preservation float64, state geom.FGState) Explanation {
	dist, _ := vector.Distance(intended, delivered)
	diff := StateDiff{
		Requested: intended,
		Delivered: delivered,
		Distance:  dist,
		Changes:   dimensionChanges(intended, delivered),
	}
	return Explanation{
		Diff:         diff,
		Preservation: preservation,
		State:        state,
		Summary:      summarize(diff, preservation, state),
	}
}

func summarize(diff StateDiff, preservation float64, state geom.FGState) string {
	switch state.Kind() {
	case geom.KindValid:
		return "intended point already satisfies every constraint"
	case geom.KindExact:
		return fmt.Sprintf("moved %.6g to sit exactly on the constraint boundary, preserving %.1f%% of the requested intent", diff.Distance, preservation*100)
	case geom.KindFinfr:
		excess, _ := state.Excess()
		return fmt.Sprintf("moved %.6g but violation still exceeds effort by a factor of %.3g; preserved %.1f%% of intent", diff.Distance, excess, preservation*100)
	default:
		margin, _ := state.Margin()
		return fmt.Sprintf("moved %.6g, landing with %.3g margin to spare; preserved %.1f%% of intent", diff.Distance, margin, preservation*100)
	}
}
