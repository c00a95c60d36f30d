// SPDX-License-Identifier: MIT

// Package priority derives priority (weight) vectors from positive
// reciprocal comparison matrices.
//
// Two methods share one output contract (Vector):
//
//	GeometricMean (default)
//	    principal[i] = (Π_j a[i][j])^(1/n);  weights = principal / Σ principal.
//	    Matches the consistency scorer's λmax estimate exactly and never
//	    touches complex arithmetic.
//
//	Eigenvector
//	    Full (non-symmetric) eigendecomposition; the eigenvector of the
//	    eigenvalue with the largest real part, real component, normalized
//	    to sum 1. For a positive matrix this is the Perron vector.
//
// Contract for both:
//   - len(Weights) == len(Principal) == n, aligned with the matrix item order.
//   - Weights are ≥ 0 and sum to 1 within floating tolerance. Negative noise
//     no larger than NoiseTolerance is clamped to 0; anything larger is
//     ErrNegativeWeight.
//   - A zero normalization denominator is ErrZeroSum, never NaN.
//   - Principal keeps the unnormalized vector for consistency.Score.
//
// Both methods are deterministic for identical input matrices.
package priority
