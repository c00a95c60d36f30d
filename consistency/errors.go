// SPDX-License-Identifier: MIT

package consistency

import "errors"

var (
	// ErrZeroComponent indicates a principal vector entry equal to 0, for
	// which the ratio (A·w)[i] / w[i] is undefined.
	ErrZeroComponent = errors.New("consistency: zero component in principal vector")

	// ErrNonFinite indicates NaN or ±Inf in the principal vector.
	ErrNonFinite = errors.New("consistency: non-finite principal vector")
)
