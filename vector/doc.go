// SPDX-License-Identifier: MIT
//
// Package vector implements deterministic n-dimensional real vector
// arithmetic.
//
// What:
//   - Vector is an ordered sequence of IEEE-754 float64 components with an
//     explicit, fixed dimension.
//   - Every operation (Add, Sub, Scale, Dot, Norm, Normalize, Clamp,
//     lexicographic Compare, approximate equality) evaluates its components
//     strictly left-to-right.
//
// Why:
//   - The engine built on top of this package promises bitwise-identical
//     outputs for identical inputs. That promise only holds if summation and
//     comparison order never vary across calls, platforms, or compiler
//     versions — so this package never reorders or parallelizes arithmetic
//     for speed.
//   - Lexicographic Compare treats NaN as greater than any number and equal
//     to itself, so sorts built on it are always total, even over vectors
//     that carry degenerate components.
//
// Complexity: every operation here is O(n) in the vector dimension unless
// documented otherwise.
//
// Errors: operations on mismatched dimensions return ErrDimensionMismatch.
// Callers MUST check errors with errors.Is; sentinels are never wrapped with
// formatted strings at their definition site.
package vector
