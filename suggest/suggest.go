// SPDX-License-Identifier: MIT
package suggest

import (
	"time"

	"github.com/katalvlaran/newton/candidate"
	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/geom"
	"github.com/katalvlaran/newton/intent"
	"github.com/katalvlaran/newton/projection"
	"github.com/katalvlaran/newton/rank"
	"github.com/katalvlaran/newton/vector"
)

func qualityFromPreservation(preservation float64) Quality {
	switch {
	case preservation > 0.9:
		return QualityExact
	case preservation > 0.5:
		return QualityNear
	default:
		return QualityRelaxed
	}
}

func buildSuggestion(current, intended, point vector.Vector, intentVec intent.Vector) Suggestion {
	preservation := intentVec.Preserved(current, point)
	violation, _ := vector.Distance(intended, point)
	state := geom.FromRatio(violation, intentVec.Magnitude)
	return Suggestion{
		Point:        point,
		State:        state,
		Preservation: preservation,
		Explanation:  newExplanation(intended, point, preservation, state),
	}
}

func validateInputs(current, delta vector.Vector, constraints []constraint.Constraint) error {
	if current.Dim() == 0 {
		return ErrEmptyCurrentState
	}
	if current.Dim() != delta.Dim() {
		return ErrDimensionMismatch
	}
	for _, c := range constraints {
		if c.Dim() != current.Dim() {
			return ErrDimensionMismatch
		}
	}
	return nil
}

// Suggest routes (current, delta, constraints) through the convex or
// nonconvex path and returns a ranked Response. When every constraint is
// convex, Dykstra's cyclic projection yields a single nearest-point
// suggestion. When any constraint is nonconvex, the intended point is
// projected onto the convex relaxation to obtain a search center, then a
// deterministic radial candidate search explores around that center and the
// survivors are ranked against the full constraint list.
func Suggest(current vector.Vector, delta geom.Delta, constraints []constraint.Constraint) (Response, error) {
	start := time.Now()
	if err := validateInputs(current, delta.Vector, constraints); err != nil {
		return Response{}, err
	}
	intended, err := vector.Add(current, delta.Vector)
	if err != nil {
		return Response{}, err
	}
	intentVec := intent.FromVector(delta.Vector)

	set := constraint.NewSet(constraints)
	var resp Response
	if set.IsAllConvex() {
		resp, err = suggestConvex(current, intended, set, intentVec)
	} else {
		resp, err = suggestNonconvex(current, intended, set, intentVec)
	}
	if err != nil {
		return Response{}, err
	}
	resp.Stats.ElapsedUs = time.Since(start).Microseconds()
	return resp, nil
}

func suggestConvex(current, intended vector.Vector, set constraint.Set, intentVec intent.Vector) (Response, error) {
	outcome, err := projection.Project(intended, set.Convex())
	if err != nil {
		return Response{}, err
	}

	sug := buildSuggestion(current, intended, outcome.Point, intentVec)
	return Response{
		Suggestions: []Suggestion{sug},
		Quality:     qualityFromPreservation(sug.Preservation),
		Stats: Stats{
			CandidatesGenerated: 1,
			CandidatesVerified:  1,
			IterationsUsed:      outcome.Iterations,
		},
	}, nil
}

// SuggestConvex is the explicit convex-only entry point: it errors on any
// nonconvex constraint instead of silently routing around it.
func SuggestConvex(current vector.Vector, delta geom.Delta, constraints []constraint.Constraint) (Response, error) {
	start := time.Now()
	if err := validateInputs(current, delta.Vector, constraints); err != nil {
		return Response{}, err
	}
	for _, c := range constraints {
		if !c.IsConvex() {
			return Response{}, projection.ErrNonConvexConstraint
		}
	}
	intended, err := vector.Add(current, delta.Vector)
	if err != nil {
		return Response{}, err
	}
	resp, err := suggestConvex(current, intended, constraint.NewSet(constraints), intent.FromVector(delta.Vector))
	if err != nil {
		return Response{}, err
	}
	resp.Stats.ElapsedUs = time.Since(start).Microseconds()
	return resp, nil
}

func boundsFromConvex(convex []constraint.Constraint) *geom.Bounds {
	for _, c := range convex {
		if box, ok := c.(constraint.Box); ok {
			b, err := geom.NewBounds(box.Min(), box.Max())
			if err != nil {
				return nil
			}
			return &b
		}
	}
	return nil
}

func suggestNonconvex(current, intended vector.Vector, set constraint.Set, intentVec intent.Vector) (Response, error) {
	center := intended
	iterationsUsed := 0
	if len(set.Convex()) > 0 {
		outcome, err := projection.Project(intended, set.Convex())
		if err != nil {
			return Response{}, err
		}
		center = outcome.Point
		iterationsUsed = outcome.Iterations
	}

	bounds := boundsFromConvex(set.Convex())
	seeds := []vector.Vector{center}
	for _, c := range set.Nonconvex() {
		if coll, ok := c.(constraint.Collision); ok {
			seeds = append(seeds, coll.EscapeCandidates(center)...)
		}
	}
	radial := candidate.RadialSearch(center, bounds, candidate.MaxCandidates-len(seeds))
	pool := append(seeds, radial...)

	survivors := candidate.FilterAndRank(pool, set.All(), intended)

	const keep = 5
	if len(survivors) == 0 {
		sug := buildSuggestion(current, intended, center, intentVec)
		return Response{
			Suggestions: []Suggestion{sug},
			Quality:     QualityRelaxed,
			Stats: Stats{
				CandidatesGenerated: len(pool),
				CandidatesVerified:  0,
				IterationsUsed:      iterationsUsed,
			},
		}, nil
	}
	if len(survivors) > keep {
		survivors = survivors[:keep]
	}

	scored := rank.Rank(survivors, set.All(), intended, current, rank.DefaultCriteria())
	suggestions := make([]Suggestion, len(scored))
	bestPreservation := 0.0
	for i, sc := range scored {
		sug := buildSuggestion(current, intended, sc.Point, intentVec)
		suggestions[i] = sug
		if sug.Preservation > bestPreservation {
			bestPreservation = sug.Preservation
		}
	}

	return Response{
		Suggestions: suggestions,
		Quality:     qualityFromPreservation(bestPreservation),
		Stats: Stats{
			CandidatesGenerated: len(pool),
			CandidatesVerified:  len(survivors),
			IterationsUsed:      iterationsUsed,
		},
	}, nil
}

// SuggestNonconvex is the explicit nonconvex-capable entry point, usable
// even when every constraint happens to be convex: the Dykstra result then
// becomes the search center, and the radial candidates around it are still
// generated, filtered and ranked alongside it.
func SuggestNonconvex(current vector.Vector, delta geom.Delta, constraints []constraint.Constraint) (Response, error) {
	start := time.Now()
	if err := validateInputs(current, delta.Vector, constraints); err != nil {
		return Response{}, err
	}
	intended, err := vector.Add(current, delta.Vector)
	if err != nil {
		return Response{}, err
	}
	resp, err := suggestNonconvex(current, intended, constraint.NewSet(constraints), intent.FromVector(delta.Vector))
	if err != nil {
		return Response{}, err
	}
	resp.Stats.ElapsedUs = time.Since(start).Microseconds()
	return resp, nil
}

// SuggestWeighted uses per-dimension weights as the projection metric when
// every constraint is convex: the intended point is projected with
// projection.Weighted. When any constraint is nonconvex it takes the same
// path as SuggestNonconvex, and the weights are not used: the convex
// relaxation is projected without weights and the candidates are ranked
// with rank.DefaultCriteria. The weights are attached to the intent vector,
// but intent preservation does not read them. See DESIGN.md's Open
// Question 2.
func SuggestWeighted(current vector.Vector, delta geom.Delta, constraints []constraint.Constraint, weights vector.Vector) (Response, error) {
	start := time.Now()
	if err := validateInputs(current, delta.Vector, constraints); err != nil {
		return Response{}, err
	}
	if current.Dim() != weights.Dim() {
		return Response{}, ErrDimensionMismatch
	}
	intended, err := vector.Add(current, delta.Vector)
	if err != nil {
		return Response{}, err
	}
	intentVec := intent.FromVector(delta.Vector).WithWeights(weights)

	set := constraint.NewSet(constraints)
	if !set.IsAllConvex() {
		resp, err := suggestNonconvex(current, intended, set, intentVec)
		if err != nil {
			return Response{}, err
		}
		resp.Stats.ElapsedUs = time.Since(start).Microseconds()
		return resp, nil
	}

	outcome, err := projection.Weighted(intended, set.Convex(), weights)
	if err != nil {
		return Response{}, err
	}

	sug := buildSuggestion(current, intended, outcome.Point, intentVec)
	return Response{
		Suggestions: []Suggestion{sug},
		Quality:     qualityFromPreservation(sug.Preservation),
		Stats: Stats{
			CandidatesGenerated: 1,
			CandidatesVerified:  1,
			IterationsUsed:      outcome.Iterations,
			ElapsedUs:           time.Since(start).Microseconds(),
		},
	}, nil
}
