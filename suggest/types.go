package suggest

import (
	"github.com/katalvlaran/newton/geom"
	"github.com/katalvlaran/newton/vector"
)

// Quality labels the overall confidence of a Response.
type Quality int

const (
	// QualityExact marks a response where the intended state was already
	// valid, or intent was honoured almost entirely.
	QualityExact Quality = iota
	// QualityNear marks a response preserving over half the requested intent.
	QualityNear
	// QualityRelaxed marks a response where only the convex relaxation, or a
	// fallback candidate, was usable.
	QualityRelaxed
)

func (q Quality) String() string {
	switch q {
	case QualityExact:
		return "Exact"
	case QualityNear:
		return "Near"
	case QualityRelaxed:
		return "Relaxed"
	default:
		return "Unknown"
	}
}

// Stats carries per-call search statistics, populated throughout the
// pipeline.
type Stats struct {
	CandidatesGenerated int
	CandidatesVerified  int
	IterationsUsed      int
	ElapsedUs           int64
}

// Suggestion is a single proposed state.
type Suggestion struct {
	Point        vector.Vector
	State        geom.FGState
	Preservation float64
	Explanation  Explanation
}

// Response is the top-level result of a Suggest call.
type Response struct {
	Suggestions []Suggestion
	Quality     Quality
	Stats       Stats
}
