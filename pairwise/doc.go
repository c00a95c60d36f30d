// SPDX-License-Identifier: MIT

// Package pairwise assembles n×n positive reciprocal comparison matrices
// from sparse, upper-triangular human judgments.
//
// Only cells with Row < Col are accepted. The lower triangle is always
// derived (a[j][i] = 1/a[i][j]) and the diagonal is always 1, so a built
// matrix is reciprocal by construction: callers cannot hand in an
// inconsistent mirror cell.
//
// Fill policy for cells the caller did not supply:
//
//	FillEqual    (default) unset cells read as "1", equal importance.
//	FillRequired every upper-triangle pair must be present, otherwise
//	             Build fails with ErrMissingJudgment naming the first gap.
//
// Usage:
//
//	c, err := pairwise.Build(
//	    []string{"Cost", "Quality", "Speed"},
//	    pairwise.Judgments{
//	        {Row: 0, Col: 1}: "1/3",
//	        {Row: 0, Col: 2}: "1",
//	        {Row: 1, Col: 2}: "3",
//	    },
//	)
//
// Build is all-or-nothing: any bad index or token aborts and no partial
// matrix is returned.
package pairwise
