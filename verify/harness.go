// SPDX-License-Identifier: MIT
package verify

import (
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/geom"
	"github.com/katalvlaran/newton/suggest"
	"github.com/katalvlaran/newton/vector"
	"github.com/rs/zerolog"
)

// ViolationKind categorizes a single ContractViolation.
type ViolationKind string

const (
	// ViolationValidity marks a suggestion that fails to satisfy the
	// constraint set it was supposedly projected against.
	ViolationValidity ViolationKind = "VALIDITY"
	// ViolationDeterminism marks two calls with identical inputs producing
	// non-bit-identical outputs.
	ViolationDeterminism ViolationKind = "DETERMINISM"
	// ViolationTermination marks a call that exceeded its timeout budget.
	ViolationTermination ViolationKind = "TERMINATION"
	// ViolationMonotonicity marks a suggestion whose recorded diff, reapplied
	// to the requested point, does not reconstruct the delivered point.
	ViolationMonotonicity ViolationKind = "MONOTONICITY"
)

// ContractViolation is a single finding from a Harness.Run call.
type ContractViolation struct {
	Kind    ViolationKind
	Index   int // suggestion index, or -1 when not applicable
	Message string
	Details map[string]interface{}
}

// Report is the result of one Harness.Run call.
type Report struct {
	RunID      string
	ElapsedUs  int64
	Violations []ContractViolation
}

// Passed reports whether Run found zero violations.
func (r Report) Passed() bool { return len(r.Violations) == 0 }

// Harness re-verifies suggest.Suggest's contract independently of the call
// that produced a Response: it re-derives a Response from scratch and
// checks it for validity, determinism, termination, and diff monotonicity.
type Harness struct {
	// TimeoutMicros bounds the wall-clock budget for a single Suggest call;
	// exceeding it is reported as ViolationTermination, not an error.
	TimeoutMicros int64
	// Logger receives a start and a completion entry per Run call, plus one
	// per violation found (a termination violation is also logged once more
	// when it is detected). The zero Logger is zerolog's disabled logger, so a
	// Harness{} with no logger configured produces no log output.
	Logger zerolog.Logger
}

// DefaultTimeoutMicros matches the engine's iteration cap, converted to a
// generous wall-clock budget: contradictory constraints must terminate
// well under this bound even on a loaded machine.
const DefaultTimeoutMicros = 500_000

// NewHarness returns a Harness configured with DefaultTimeoutMicros and a
// disabled logger.
func NewHarness() Harness {
	return Harness{TimeoutMicros: DefaultTimeoutMicros, Logger: zerolog.Nop()}
}

// VerifyContract checks an already-computed set of suggestions against the
// engine's contract without re-running Suggest: it takes the suggestions a
// prior call produced, the constraints they were checked against, the
// original requested point, and the wall-clock time that call took. Use
// this to re-verify a response obtained elsewhere (a replayed log, a
// response crossing a process boundary) where only the Response value, not
// the original current/delta inputs, is available to re-simulate with.
// Unlike Run, it cannot check Determinism, since that requires invoking the
// pipeline twice.
func VerifyContract(suggestions []suggest.Suggestion, constraints []constraint.Constraint, original vector.Vector, elapsedUs int64) (Report, error) {
	if original.Dim() == 0 {
		return Report{}, ErrEmptyCurrentState
	}

	var violations []ContractViolation
	set := constraint.NewSet(constraints)
	violations = append(violations, checkValidity(set, suggestions)...)
	violations = append(violations, checkMonotonicity(suggestions)...)

	if elapsedUs > DefaultTimeoutMicros {
		violations = append(violations, ContractViolation{
			Kind:    ViolationTermination,
			Index:   -1,
			Message: "elapsed_us exceeds the timeout budget",
			Details: map[string]interface{}{"elapsed_us": elapsedUs, "timeout_us": int64(DefaultTimeoutMicros)},
		})
	}

	return Report{RunID: uuid.New().String(), ElapsedUs: elapsedUs, Violations: violations}, nil
}

// Run re-derives a suggest.Response for (current, delta, constraints) and
// checks it against the engine's contract. It never panics and never
// returns early on the first violation found; Report.Violations accumulates
// every check that failed.
func (h Harness) Run(current vector.Vector, delta geom.Delta, constraints []constraint.Constraint) (Report, error) {
	if current.Dim() == 0 {
		return Report{}, ErrEmptyCurrentState
	}
	if current.Dim() != delta.Vector.Dim() {
		return Report{}, ErrDimensionMismatch
	}

	runID := uuid.New().String()
	logger := h.Logger.With().Str("run_id", runID).Logger()
	logger.Info().Int("dim", current.Dim()).Int("constraints", len(constraints)).Msg("verification run starting")

	start := time.Now()
	resp, err := suggest.Suggest(current, delta, constraints)
	elapsed := time.Since(start)
	if err != nil {
		return Report{}, verifyErrorf("Run", "suggest.Suggest failed: %v", err)
	}

	var violations []ContractViolation

	set := constraint.NewSet(constraints)
	violations = append(violations, checkValidity(set, resp.Suggestions)...)
	violations = append(violations, checkMonotonicity(resp.Suggestions)...)

	timeoutMicros := h.TimeoutMicros
	if timeoutMicros <= 0 {
		timeoutMicros = DefaultTimeoutMicros
	}
	elapsedUs := elapsed.Microseconds()
	if elapsedUs > timeoutMicros {
		v := ContractViolation{
			Kind:    ViolationTermination,
			Index:   -1,
			Message: "Suggest exceeded its timeout budget",
			Details: map[string]interface{}{"elapsed_us": elapsedUs, "timeout_us": timeoutMicros},
		}
		violations = append(violations, v)
		logger.Warn().Int64("elapsed_us", elapsedUs).Int64("timeout_us", timeoutMicros).Msg("termination violation")
	}

	repeat, err := suggest.Suggest(current, delta, constraints)
	if err != nil {
		return Report{}, verifyErrorf("Run", "suggest.Suggest (repeat) failed: %v", err)
	}
	violations = append(violations, h.checkDeterminism(resp, repeat)...)

	for _, v := range violations {
		logger.Warn().Str("kind", string(v.Kind)).Int("index", v.Index).Str("message", v.Message).Msg("contract violation")
	}
	logger.Info().Int("violations", len(violations)).Msg("verification run complete")

	return Report{RunID: runID, ElapsedUs: elapsedUs, Violations: violations}, nil
}

func checkValidity(set constraint.Set, suggestions []suggest.Suggestion) []ContractViolation {
	var out []ContractViolation
	for i, s := range suggestions {
		if !set.SatisfiesAll(s.Point) {
			out = append(out, ContractViolation{
				Kind:    ViolationValidity,
				Index:   i,
				Message: "suggestion does not satisfy every constraint",
				Details: map[string]interface{}{"point": []float64(s.Point)},
			})
		}
	}
	return out
}

func (h Harness) checkDeterminism(first, second suggest.Response) []ContractViolation {
	var out []ContractViolation
	if len(first.Suggestions) != len(second.Suggestions) {
		out = append(out, ContractViolation{
			Kind:    ViolationDeterminism,
			Index:   -1,
			Message: "repeat call produced a different suggestion count",
			Details: map[string]interface{}{"first": len(first.Suggestions), "second": len(second.Suggestions)},
		})
		return out
	}
	for i := range first.Suggestions {
		a, b := first.Suggestions[i].Point, second.Suggestions[i].Point
		if a.Dim() != b.Dim() {
			out = append(out, ContractViolation{Kind: ViolationDeterminism, Index: i, Message: "repeat call produced a different dimension"})
			continue
		}
		for d := 0; d < a.Dim(); d++ {
			if a[d] != b[d] {
				out = append(out, ContractViolation{
					Kind:    ViolationDeterminism,
					Index:   i,
					Message: "repeat call was not bit-identical",
					Details: map[string]interface{}{"dim": d, "first": a[d], "second": b[d]},
				})
				break
			}
		}
	}
	return out
}

// checkMonotonicity re-derives each suggestion's delivered point from its
// recorded diff: applying every DimensionChange to the requested point must
// reconstruct the delivered point within vector.Tolerance. A mismatch means
// the explanation lied about what actually changed.
func checkMonotonicity(suggestions []suggest.Suggestion) []ContractViolation {
	var out []ContractViolation
	for i, s := range suggestions {
		if v := reconstructionMismatch(s.Explanation.Diff); v != nil {
			v.Index = i
			out = append(out, *v)
		}
	}
	return out
}

func reconstructionMismatch(diff suggest.StateDiff) *ContractViolation {
	reconstructed := make(vector.Vector, diff.Requested.Dim())
	copy(reconstructed, diff.Requested)
	for _, ch := range diff.Changes {
		if ch.Dimension < len(reconstructed) {
			reconstructed[ch.Dimension] = ch.Suggested
		}
	}
	mismatch, err := vector.Distance(reconstructed, diff.Delivered)
	if err != nil || mismatch <= vector.Tolerance {
		return nil
	}
	return &ContractViolation{
		Kind:    ViolationMonotonicity,
		Message: "diff reconstruction does not match the delivered point",
		Details: map[string]interface{}{
			"mismatch":      mismatch,
			"reconstructed": []float64(reconstructed),
			"delivered":     []float64(diff.Delivered),
		},
	}
}
