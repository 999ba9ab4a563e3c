package constraint

import "github.com/katalvlaran/newton/vector"

// Constraint is the polymorphic geometric constraint abstraction. All
// implementations are value-semantic (safe to copy and share across
// goroutines) and immutable after construction.
type Constraint interface {
	// Satisfied reports whether p lies in the feasible set, boundary
	// inclusive, within the engine's fixed absolute tolerance.
	Satisfied(p vector.Vector) bool
	// Distance returns the signed distance from p to the feasible set's
	// boundary: negative inside, positive outside, zero on the boundary.
	Distance(p vector.Vector) float64
	// Project returns a point in the feasible set nearest to p. For convex
	// constraints this is the unique globally-nearest point; for nonconvex
	// constraints it is only locally nearest.
	Project(p vector.Vector) vector.Vector
	// IsConvex reports whether this constraint's feasible set is convex.
	IsConvex() bool
	// Dim reports the dimension this constraint operates over.
	Dim() int
	// Describe returns a short, human-readable description for
	// explanations; it never affects correctness.
	Describe() string

	// closed is an unexported marker restricting Constraint to the variants
	// declared in this package, mirroring a closed sum type.
	closed()
}
