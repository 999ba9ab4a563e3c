// SPDX-License-Identifier: MIT
//
// Package projection implements the projection kernel: halfspace and
// hyperplane projection, Dykstra's cyclic projection algorithm for convex
// intersections, a convex-relaxation extractor, and a weighted projector
// via space scaling.
//
// Time/space complexity and numeric notes are documented per function,
// following the dijkstra package's convention of stating complexity and
// implementation-choice notes directly on the exported entry point rather
// than only in package-level prose.
//
// Errors: dimension mismatches are precondition violations (sentinel
// errors, errors.Is). Non-convergence within the iteration cap is NOT an
// error — the Outcome's Converged field communicates it.
package projection
