package geom

import "github.com/katalvlaran/newton/vector"

// Delta is an attempted state change: a vector plus optional provenance.
// Immutable per call; the engine never mutates a Delta after construction.
type Delta struct {
	Vector vector.Vector
	// Source is an optional caller-supplied tag (e.g. "mouse-drag",
	// "keyboard-nudge"); empty when not supplied. Never inspected by the
	// core algorithms or by explanations — purely advisory.
	Source string
	// TimestampUs is an optional caller-supplied microsecond timestamp.
	// The core never reads the wall clock itself to derive this value and
	// never branches on it; it exists purely for the caller's own
	// provenance tracking, matching the "no dependence on wall-clock time
	// in the result" non-goal.
	TimestampUs int64
}

// NewDelta constructs a Delta from a vector with no provenance tags.
func NewDelta(v vector.Vector) Delta {
	return Delta{Vector: v}
}
