// Package newton is a deterministic geometric constraint-projection
// engine: given an n-dimensional state, a requested delta, and a set of
// geometric constraints, it finds the nearest valid state (or a small
// ranked set of candidates) that preserves as much of the caller's intent
// as the constraints allow.
//
// 🎯 What is newton?
//
//	A small, dependency-light library built around three ideas:
//
//	  • Exact projection onto convex constraints via Dykstra's cyclic
//	    projection algorithm — the true nearest point, not an approximation.
//	  • Deterministic radial candidate search for nonconvex constraints
//	    (obstacles, discrete point sets) where no closed-form projection
//	    exists.
//	  • Intent preservation scoring, so a caller can tell whether a
//	    suggestion honoured the gesture behind a requested delta, or merely
//	    satisfied the constraints.
//
// ✨ Why newton?
//
//   - Deterministic — every call with the same inputs produces bit-identical
//     output; no wall-clock or random-source dependence inside the core.
//   - Bounded — Dykstra's iteration cap and the nonconvex candidate quota
//     guarantee termination even for contradictory constraints.
//   - Composable — constraints are a closed interface (Box, Halfspace,
//     Collision, Discrete); new convex variants plug into the same
//     projection and ranking machinery.
//
// Under the hood, everything is organized under these subpackages:
//
//	vector/     — deterministic n-dimensional vector arithmetic
//	geom/       — bounds, deltas, and the feasibility/effort state (FGState)
//	constraint/ — the Constraint interface and its Box/Halfspace/Collision/Discrete variants
//	projection/ — Dykstra's cyclic projection, weighted projection, convex relaxation
//	candidate/  — radial shell search, grid snapping, boundary candidates
//	intent/     — direction/magnitude decomposition and preservation scoring
//	rank/       — multi-criteria scoring and lexicographic tiebreak
//	suggest/    — the public facade tying the above into one Suggest call
//	verify/     — a contract-verification harness for CI and regression checks
//
// Quick ASCII example — clamping a dragged point to a panel:
//
//	(0,100)┌───────────┐(100,100)
//	       │        ●→ │   drag past the right wall
//	(0,0)  └───────────┘(100,0)
//
//	resp, _ := suggest.Suggest(vector.New(50, 50), geom.NewDelta(vector.New(100, 0)),
//	    []constraint.Constraint{box})
//	// resp.Suggestions[0].Point == (100, 50)
//
//	go get github.com/katalvlaran/newton
package newton
