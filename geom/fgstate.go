package geom

import "math"

// Kind discriminates the closed set of FGState variants.
type Kind int

const (
	// KindValid marks a point whose violation is negligible relative to effort.
	KindValid Kind = iota
	// KindSlack marks a point with meaningful remaining margin before the boundary.
	KindSlack
	// KindExact marks a point sitting essentially on the constraint boundary.
	KindExact
	// KindFinfr ("effort exceeded") marks a point whose violation exceeds the
	// effort that produced it.
	KindFinfr
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "Valid"
	case KindSlack:
		return "Slack"
	case KindExact:
		return "Exact"
	case KindFinfr:
		return "Finfr"
	default:
		return "Unknown"
	}
}

// FGState is the closed tagged variant {Valid, Slack(margin), Exact,
// Finfr(excess)} derived from the ratio ρ = violation / (effort + Epsilon).
// The zero value is not a meaningful FGState; always construct via FromRatio.
type FGState struct {
	kind    Kind
	payload float64 // Slack: margin in (0,1]; Finfr: excess > 0; unused otherwise.
	ratio   float64 // the ρ that produced this state, retained for diagnostics.
}

// FromRatio derives the FGState for a given violation and effort magnitude,
// following the thresholds: ρ<ε → Valid; |ρ−1|≤ε → Exact; ρ>1+ε → Finfr(ρ−1);
// otherwise → Slack(1−ρ). violation and effort must both be >= 0; effort is
// widened by vector.Epsilon internally so effort == 0 never divides by zero.
func FromRatio(violation, effort float64) FGState {
	const eps = 1e-10
	rho := violation / (effort + eps)
	switch {
	case rho < eps:
		return FGState{kind: KindValid, ratio: rho}
	// |ρ−1| ≤ ε tested as |violation−effort−ε| ≤ ε·(effort+ε), which is the
	// same condition but avoids the rounding of the division (violation ==
	// effort == 1 would otherwise land just outside the band).
	case math.Abs(violation-effort-eps) <= eps*(effort+eps):
		return FGState{kind: KindExact, ratio: rho}
	case rho > 1+eps:
		return FGState{kind: KindFinfr, payload: rho - 1, ratio: rho}
	default:
		return FGState{kind: KindSlack, payload: 1 - rho, ratio: rho}
	}
}

// Kind reports which variant this FGState holds.
func (f FGState) Kind() Kind { return f.kind }

// Ratio returns the ρ value that produced this state.
func (f FGState) Ratio() float64 { return f.ratio }

// Margin returns the slack margin and true when Kind() == KindSlack.
func (f FGState) Margin() (float64, bool) {
	if f.kind != KindSlack {
		return 0, false
	}
	return f.payload, true
}

// Excess returns the effort-exceeded amount and true when Kind() == KindFinfr.
func (f FGState) Excess() (float64, bool) {
	if f.kind != KindFinfr {
		return 0, false
	}
	return f.payload, true
}

// IsFeasible reports whether this state represents a point the engine
// considers usable without further correction (Valid or Exact).
func (f FGState) IsFeasible() bool {
	return f.kind == KindValid || f.kind == KindExact
}

// Severity buckets the FGState into a coarse scale for presentation layers
// (haptic/visual feedback is an out-of-scope collaborator per the contract,
// but this deterministic, history-independent mapping gives that
// collaborator something to consume without reimplementing the ρ thresholds
// itself). Ported from the original's FGState::color mapping.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityMinor
	SeverityMajor
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityMinor:
		return "minor"
	case SeverityMajor:
		return "major"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Severity derives a coarse severity bucket from the FGState's kind and
// payload.
func (f FGState) Severity() Severity {
	switch f.kind {
	case KindValid:
		return SeverityNone
	case KindSlack:
		if f.payload > 0.5 {
			return SeverityMinor
		}
		return SeverityMajor
	case KindExact:
		return SeverityMajor
	case KindFinfr:
		if f.payload > 1.0 {
			return SeverityCritical
		}
		return SeverityMajor
	default:
		return SeverityNone
	}
}

// HapticAmplitude maps this FGState to a bounded [0,1] scalar suitable for
// driving haptic/visual feedback intensity, without this package knowing
// anything about haptics or colour itself: Valid maps to 0, Exact and Finfr
// to 1, and Slack to 1−margin (that is, ρ), clamped to [0,1].
func (f FGState) HapticAmplitude() float64 {
	switch f.kind {
	case KindValid:
		return 0
	case KindExact:
		return 1
	case KindSlack:
		return clamp01(1 - f.payload)
	case KindFinfr:
		return 1
	default:
		return 0
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
