package projection

import (
	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/vector"
)

// ProjectAlternating performs plain alternating projection: it cycles
// through the constraints projecting in turn, without Dykstra's correction
// vectors. Cheaper per cycle, but it converges only to *some* feasible
// point in the intersection, not necessarily the nearest one — retained
// only for constraint sets known to be mutually orthogonal (e.g.
// independent per-dimension box clamps), where the correction vectors
// would contribute nothing anyway.
func ProjectAlternating(p vector.Vector, constraints []constraint.Constraint, opts ...Option) (Outcome, error) {
	if err := validateAllConvex(constraints); err != nil {
		return Outcome{}, err
	}
	cfg := apply(opts)

	if len(constraints) == 0 {
		return Outcome{Point: p.Clone(), Iterations: 0, Converged: true}, nil
	}

	allSatisfied := true
	for _, c := range constraints {
		if c.Dim() != p.Dim() {
			return Outcome{}, ErrDimensionMismatch
		}
		if !c.Satisfied(p) {
			allSatisfied = false
			break
		}
	}
	if allSatisfied {
		return Outcome{Point: p.Clone(), Iterations: 0, Converged: true}, nil
	}

	x := p.Clone()
	iterations := 0
	converged := false
	change := 0.0

	for iterations < cfg.maxIterations {
		xPrev := x.Clone()
		for _, c := range constraints {
			x = c.Project(x)
		}
		iterations++
		change = subUnchecked(x, xPrev).Norm()
		if change < cfg.tolerance {
			converged = true
			break
		}
	}

	return Outcome{Point: x, Iterations: iterations, Converged: converged, FinalChange: change}, nil
}
