// SPDX-License-Identifier: MIT
//
// Package rank implements the multi-criteria scoring and lexicographic
// tiebreak used to order candidate suggestions.
//
// A ScoredCandidate's score combines three signals: distance to the
// intended state (lower is better), remaining constraint margin (higher is
// better, so it is subtracted), and distance to the stability reference
// point — typically the caller's current state — (lower is better). Lower
// total score ranks first. Default weights (IntentWeight=1.0,
// MarginWeight=0.5, StabilityWeight=0.3) are the engine's frozen defaults.
package rank
