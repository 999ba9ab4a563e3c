// SPDX-License-Identifier: MIT
package candidate

import "errors"

var (
	// ErrDimensionMismatch names a center/bounds pair that disagree on
	// dimension. No function in this package returns it: RadialSearch drops
	// every shell point that a bounds of another dimension does not contain.
	ErrDimensionMismatch = errors.New("candidate: dimension mismatch")
	// ErrNonPositiveSpacing is returned by SnapToGrid when spacing <= 0.
	ErrNonPositiveSpacing = errors.New("candidate: non-positive spacing")
)
