// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
//
// Notes:
//   - DefaultEpsilon is the structural tolerance used by ValidateReciprocal.
//     Reciprocals of Saaty values (1/3, 1/7, 1/9) are not exactly
//     representable, so a*b == 1 only holds within a few ULPs.
//   - DefaultValidateNaNInf keeps Dense.Set from ever storing NaN/±Inf.
package matrix

const (
	// DefaultEpsilon defines the non-negative tolerance used by structural checks.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation on Set.
	DefaultValidateNaNInf = true
)

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Unit is the diagonal value of an identity or reciprocal matrix.
const Unit = 1.0
