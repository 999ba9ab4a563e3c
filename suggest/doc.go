// SPDX-License-Identifier: MIT
//
// Package suggest is the public facade for the constraint-projection
// engine: it routes a (current state, delta, constraints) call through the
// convex or nonconvex path, assembles ranked suggestions, and attaches
// search statistics and explanations.
//
// This file intentionally contains no algorithms, following core/api.go's
// "thin deterministic public facade" pattern: every exported function here
// delegates to projection, candidate, rank, and intent, and only adds
// input validation, routing, and result assembly.
package suggest
