// SPDX-License-Identifier: MIT
//
// Package candidate implements the deterministic candidate-generation
// schemes for nonconvex constraints: local radial search, snap-to-grid,
// and box boundary candidates, plus the shared filter-and-rank step.
//
// Every generator here is radial and monotonic — shells grow outward, and
// within a shell ordering is lexicographic rather than random — so the
// candidate stream a caller observes is fully reproducible, matching the
// engine-wide determinism contract. None of these functions read the wall
// clock, a random source, or any mutable package state.
package candidate
