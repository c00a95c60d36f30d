// SPDX-License-Identifier: MIT

package pairwise

import (
	"errors"
	"fmt"
)

var (
	// ErrNoItems is returned when Build is asked for a 0×0 matrix.
	ErrNoItems = errors.New("pairwise: item list is empty")

	// ErrPairOutOfRange indicates a judgment index outside [0, n).
	ErrPairOutOfRange = errors.New("pairwise: judgment index out of range")

	// ErrPairOrder indicates a judgment with Row >= Col. Only the strict upper
	// triangle may be supplied; the lower triangle is always derived.
	ErrPairOrder = errors.New("pairwise: judgment must satisfy row < col")

	// ErrInvalidJudgment indicates a token outside the Saaty scale.
	ErrInvalidJudgment = errors.New("pairwise: invalid judgment")

	// ErrMissingJudgment is returned under FillRequired when a pair is absent.
	ErrMissingJudgment = errors.New("pairwise: missing judgment")
)

// pairErrorf attaches the offending pair to a sentinel.
func pairErrorf(p Pair, err error) error {
	return fmt.Errorf("%s: %w", p, err)
}
