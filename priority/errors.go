// SPDX-License-Identifier: MIT

package priority

import "errors"

var (
	// ErrZeroSum indicates a vector whose normalization denominator is 0.
	ErrZeroSum = errors.New("priority: vector sums to zero")

	// ErrNegativeWeight indicates a normalized entry below -NoiseTolerance.
	ErrNegativeWeight = errors.New("priority: negative weight")

	// ErrNonFinite indicates NaN or ±Inf in a vector being normalized.
	ErrNonFinite = errors.New("priority: non-finite value")

	// ErrNoConvergence indicates the eigendecomposition failed to converge.
	ErrNoConvergence = errors.New("priority: eigendecomposition did not converge")

	// ErrUnknownMethod indicates a Method outside the declared constants.
	ErrUnknownMethod = errors.New("priority: unknown method")
)
