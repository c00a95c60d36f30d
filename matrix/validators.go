// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks run before
//    any priority or consistency computation.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly and callers can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Reciprocity is checked on the strict upper triangle only: O(n²/2).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols). Assumes m != nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil – Composite: NotNil → Square.
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateVecLen ensures x is non-nil and has exactly n entries.
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePositive checks that every entry of m is finite and strictly > 0.
// Geometric means and Perron eigenvectors are only defined for positive matrices.
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrNonPositive.
// Complexity: O(r*c).
func ValidatePositive(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidatePositive", err)
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidatePositive", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf("ValidatePositive", ErrNaNInf)
			}
			if v <= 0 {
				return validatorErrorf("ValidatePositive", ErrNonPositive)
			}
		}
	}

	return nil
}

// ValidateReciprocal checks the positive-reciprocal structure of a pairwise
// comparison matrix within tolerance eps:
//
//	|a[i][i] - 1| ≤ eps   and   |a[i][j]*a[j][i] - 1| ≤ eps   for all i<j.
//
// Composite order: NotNil → Square → Positive → Reciprocal.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf (also for a bad eps),
// ErrNonPositive, ErrNotReciprocal.
// Complexity: O(n²).
func ValidateReciprocal(m Matrix, eps float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateReciprocal", err)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return validatorErrorf("ValidateReciprocal", ErrNaNInf)
	}
	eps = math.Abs(eps)
	if err := ValidatePositive(m); err != nil {
		return validatorErrorf("ValidateReciprocal", err)
	}

	n := m.Rows()
	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		aij, _ = m.At(i, i) // shape already validated
		if math.Abs(aij-Unit) > eps {
			return validatorErrorf("ValidateReciprocal", ErrNotReciprocal)
		}
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j)
			aji, _ = m.At(j, i)
			if math.Abs(aij*aji-Unit) > eps {
				return validatorErrorf("ValidateReciprocal", ErrNotReciprocal)
			}
		}
	}

	return nil
}
