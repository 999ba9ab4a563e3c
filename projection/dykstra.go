package projection

import (
	"github.com/katalvlaran/newton/constraint"
	"github.com/katalvlaran/newton/vector"
)

// Outcome is the result record of a cyclic projection, carrying the
// projected point, how many cycles ran, whether
// the iteration converged within the cap, the final per-cycle movement, and
// — only when requested via ProjectWithHistory — the per-cycle iterate
// history.
type Outcome struct {
	Point       vector.Vector
	Iterations  int
	Converged   bool
	FinalChange float64
	History     []vector.Vector
}

func addUnchecked(a, b vector.Vector) vector.Vector {
	out := make(vector.Vector, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

func subUnchecked(a, b vector.Vector) vector.Vector {
	out := make(vector.Vector, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func validateAllConvex(constraints []constraint.Constraint) error {
	for _, c := range constraints {
		if !c.IsConvex() {
			return ErrNonConvexConstraint
		}
	}
	return nil
}

// Project runs Dykstra's cyclic projection algorithm to find
// the nearest point in the intersection of constraints to p. All
// constraints must be convex; a nonconvex constraint is a precondition
// violation (ErrNonConvexConstraint) because convex-only algorithms must
// never be routed nonconvex input.
//
// Complexity: O(I_max * m * n) worst case, where m is the constraint count
// and n the dimension; typically far fewer than I_max cycles run in
// practice because the loop exits as soon as the per-cycle movement drops
// below the convergence tolerance.
func Project(p vector.Vector, constraints []constraint.Constraint, opts ...Option) (Outcome, error) {
	return run(p, constraints, apply(opts), false)
}

// ProjectWithHistory behaves like Project but additionally records the
// iterate after every cycle, for tests and debugging that need to inspect
// convergence behaviour (e.g. the "no oscillation" adversarial check).
func ProjectWithHistory(p vector.Vector, constraints []constraint.Constraint, opts ...Option) (Outcome, error) {
	return run(p, constraints, apply(opts), true)
}

func run(p vector.Vector, constraints []constraint.Constraint, cfg config, captureHistory bool) (Outcome, error) {
	if err := validateAllConvex(constraints); err != nil {
		return Outcome{}, err
	}

	// Early exit 1: empty constraint list.
	if len(constraints) == 0 {
		return Outcome{Point: p.Clone(), Iterations: 0, Converged: true}, nil
	}

	// Early exit 2: p already satisfies every constraint.
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

	n := p.Dim()
	m := len(constraints)
	x := p.Clone()
	y := make([]vector.Vector, m)
	for i := range y {
		y[i] = make(vector.Vector, n)
	}

	var history []vector.Vector
	if captureHistory {
		history = make([]vector.Vector, 0, cfg.maxIterations)
	}

	iterations := 0
	converged := false
	change := 0.0

	for iterations < cfg.maxIterations {
		xPrev := x.Clone()
		for i, c := range constraints {
			z := addUnchecked(x, y[i])
			xNew := c.Project(z)
			y[i] = subUnchecked(z, xNew)
			x = xNew
		}
		iterations++
		change = subUnchecked(x, xPrev).Norm()
		if captureHistory {
			history = append(history, x.Clone())
		}
		if change < cfg.tolerance {
			converged = true
			break
		}
	}

	return Outcome{
		Point:       x,
		Iterations:  iterations,
		Converged:   converged,
		FinalChange: change,
		History:     history,
	}, nil
}
