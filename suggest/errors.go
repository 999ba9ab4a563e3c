// SPDX-License-Identifier: MIT
package suggest

import "errors"

var (
	// ErrDimensionMismatch is returned when current, delta, and the
	// constraint set disagree on dimension.
	ErrDimensionMismatch = errors.New("suggest: dimension mismatch")
	// ErrEmptyCurrentState is returned when current has zero dimension.
	ErrEmptyCurrentState = errors.New("suggest: empty current state")
)
