package rank

import (
	"math"
	"sort"

	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/vector"
)

// Default weight values
const (
	DefaultIntentWeight    = 1.0
	DefaultMarginWeight    = 0.5
	DefaultStabilityWeight = 0.3
)

// Criteria holds the weights combining the three ranking signals into a
// single score.
type Criteria struct {
	IntentWeight    float64
	MarginWeight    float64
	StabilityWeight float64
}

// DefaultCriteria returns the frozen default weights.
func DefaultCriteria() Criteria {
	return Criteria{
		IntentWeight:    DefaultIntentWeight,
		MarginWeight:    DefaultMarginWeight,
		StabilityWeight: DefaultStabilityWeight,
	}
}

// Option configures Criteria. Options validate and panic on invalid input;
// Rank itself never panics.
type Option func(*Criteria)

// WithIntentWeight overrides the intent-distance weight. Panics if w < 0.
func WithIntentWeight(w float64) Option {
	if w < 0 {
		panic("rank: WithIntentWeight requires w >= 0")
	}
	return func(c *Criteria) { c.IntentWeight = w }
}

// WithMarginWeight overrides the margin weight. Panics if w < 0.
func WithMarginWeight(w float64) Option {
	if w < 0 {
		panic("rank: WithMarginWeight requires w >= 0")
	}
	return func(c *Criteria) { c.MarginWeight = w }
}

// WithStabilityWeight overrides the stability-distance weight. Panics if w < 0.
func WithStabilityWeight(w float64) Option {
	if w < 0 {
		panic("rank: WithStabilityWeight requires w >= 0")
	}
	return func(c *Criteria) { c.StabilityWeight = w }
}

// Components are the three raw signals behind a ScoredCandidate's score.
type Components struct {
	IntentDistance    float64
	Margin            float64
	StabilityDistance float64
}

// ScoredCandidate bundles a candidate point with its score and the raw
// components that produced it.
type ScoredCandidate struct {
	Point      vector.Vector
	Score      float64
	Components Components
}

func minMargin(p vector.Vector, constraints []constraint.Constraint) float64 {
	margin := math.Inf(1)
	for _, c := range constraints {
		if d := -c.Distance(p); d < margin {
			margin = d
		}
	}
	if math.IsInf(margin, 1) {
		return 0
	}
	return margin
}

// Rank scores each candidate against intended (for IntentDistance) and
// stabilityRef (for StabilityDistance, typically the caller's current
// state), combines the signals via criteria, and returns candidates sorted
// ascending by score with a lexicographic tiebreak on near-equal scores
// (|Δscore| < vector.Tolerance). Rank is deterministic and idempotent:
// calling it twice on the same input, or ranking an already-ranked slice,
// produces the same order.
func Rank(candidates []vector.Vector, constraints []constraint.Constraint, intended, stabilityRef vector.Vector, criteria Criteria) []ScoredCandidate {
	scored := make([]ScoredCandidate, len(candidates))
	for i, p := range candidates {
		intentDist, _ := vector.Distance(p, intended)
		stabilityDist, _ := vector.Distance(p, stabilityRef)
		margin := minMargin(p, constraints)

		comp := Components{IntentDistance: intentDist, Margin: margin, StabilityDistance: stabilityDist}
		score := criteria.IntentWeight*comp.IntentDistance -
			criteria.MarginWeight*comp.Margin +
			criteria.StabilityWeight*comp.StabilityDistance

		scored[i] = ScoredCandidate{Point: p, Score: score, Components: comp}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if math.Abs(scored[i].Score-scored[j].Score) > vector.Tolerance {
			return scored[i].Score < scored[j].Score
		}
		return vector.Less(scored[i].Point, scored[j].Point)
	})

	return scored
}
