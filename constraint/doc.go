// SPDX-License-Identifier: MIT
//
// Package constraint implements the polymorphic Constraint abstraction and
// its four concrete variants: Box, Halfspace, Collision, and Discrete.
//
// What:
//   - Constraint is a closed interface: every satisfying type in this
//     module is enumerated below, so callers can type-switch exhaustively
//     via IsConvex() without needing reflection.
//   - Box and Halfspace are convex; Collision and Discrete are not.
//   - Set is an ordered, immutable-after-construction collection of
//     Constraint values that pre-splits into convex/nonconvex sublists once,
//     at construction, rather than on every call.
//
// Why: this package is the variant-set half of design note
// "prefer the closed sum when the variant set is fixed" — Go has no sum
// type, so the closed list is enforced by convention (an unexported marker
// method) rather than the compiler, the same tradeoff the graph package's
// matrix.Matrix interface makes for its Dense/Sparse backers.
//
// Errors: precondition violations (mismatched dimensions, empty discrete
// sets, min > max) are sentinel errors in errors.go. Numeric degeneracies
// (near-zero halfspace normals) are handled locally and never surfaced as
// errors.
package constraint
