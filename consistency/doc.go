// SPDX-License-Identifier: MIT

// Package consistency scores how coherent a set of pairwise judgments is.
//
// Given a comparison matrix A (n×n) and its unnormalized priority vector w:
//
//	λmax = mean_i (A·w)[i] / w[i]
//	CI   = (λmax − n) / (n − 1)
//	CR   = CI / RI(n)         (0 when RI(n) == 0)
//
// RI is Saaty's Random Index for n = 1..15; larger matrices use
// FallbackRandomIndex. Matrices with n ≤ 2 are consistent by construction
// and return the perfect record without computation.
//
// Status bands:
//
//	CR < 0.10           Excellent
//	0.10 ≤ CR < 0.20    Acceptable
//	CR ≥ 0.20           NeedsRevision
//
// Score is pure: it never mutates its inputs.
package consistency
