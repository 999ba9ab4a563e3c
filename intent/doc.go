// SPDX-License-Identifier: MIT
//
// Package intent implements IntentVector: the direction/magnitude
// decomposition of a delta, its per-dimension weights, and the
// intent-preservation metric used by ranking.
package intent
