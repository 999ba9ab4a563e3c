// SPDX-License-Identifier: MIT
//
// Package geom provides the primitive value types shared by the
// constraint-projection engine: axis-aligned Bounds, the FGState
// violation-severity enum, and the Delta input record.
//
// What:
//   - Bounds is a (min, max) pair of equal-dimension vectors.
//   - FGState is a closed tagged variant derived from a violation/effort
//     ratio, categorising how far a point sits from feasibility.
//   - Delta carries an attempted state change plus optional provenance.
//
// Why: these three types sit directly above vector.Vector in the dependency
// graph and are shared by every constraint variant and the suggestion
// pipeline, so they live in their own package rather than inside vector or
// constraint to avoid an import cycle between those two.
//
// Errors: precondition violations (e.g. min[i] > max[i]) are sentinel
// errors in errors.go; callers use errors.Is.
package geom
