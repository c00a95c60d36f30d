// SPDX-License-Identifier: MIT

// Package matrix is the numeric substrate of ahp: a small row-major dense
// matrix with safe accessors, the validators every comparison-matrix
// consumer runs before touching data, and the one kernel the consistency
// scorer needs (MatVec).
//
// The package provides:
//
//   - Matrix, the read/write interface consumed by priority and consistency.
//   - Dense, a contiguous row-major implementation (offset = i*cols + j).
//   - NewFilled, the starting point of every pairwise comparison matrix
//     (all ones: every unset judgment reads as equal importance).
//   - ValidateReciprocal / ValidatePositive, the structural checks of a
//     positive reciprocal matrix (a[i][i] = 1, a[i][j]*a[j][i] = 1).
//
// Every public accessor returns sentinel errors instead of panicking;
// loops run in fixed i→j order so identical inputs give identical floats.
package matrix
