// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm in this package returns one of these sentinels (optionally
// wrapped with an operation tag); tests and callers match them via errors.Is.
// No function panics on user-triggered conditions.

package matrix

import "errors"

// ERROR PRIORITY (checked in this order by composite validators):
// nil -> shape -> NaN/Inf -> structural violations (positivity, reciprocity).

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. MatVec where len(x) != Cols, or a non-square comparison matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (or nil vector) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNonPositive signals an entry ≤ 0 in a matrix required to be strictly positive.
	ErrNonPositive = errors.New("matrix: non-positive entry")

	// ErrNotReciprocal signals a[i][i] != 1 or a[i][j]*a[j][i] != 1 beyond epsilon.
	ErrNotReciprocal = errors.New("matrix: matrix is not reciprocal within eps")
)
