// SPDX-License-Identifier: MIT

package pairwise

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/ahp/matrix"
	"github.com/katalvlaran/ahp/scale"
)

// Pair addresses one upper-triangle cell: Row < Col.
type Pair struct {
	Row int
	Col int
}

// String renders the pair as "(row,col)".
func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Judgments maps upper-triangle cells to Saaty tokens ("3", "1/5", ...).
type Judgments map[Pair]string

// sortedPairs returns the keys of j in (Row, Col) order so that Build fails
// on the same pair for the same input every time.
func (j Judgments) sortedPairs() []Pair {
	out := make([]Pair, 0, len(j))
	for p := range j {
		out = append(out, p)
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Row != out[b].Row {
			return out[a].Row < out[b].Row
		}
		return out[a].Col < out[b].Col
	})

	return out
}

// UpperPairs lists every strict upper-triangle cell of an n×n matrix in
// row-major order: n(n-1)/2 pairs.
func UpperPairs(n int) []Pair {
	if n < 2 {
		return nil
	}
	out := make([]Pair, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, Pair{Row: i, Col: j})
		}
	}

	return out
}

// Missing lists the upper-triangle cells of an n×n matrix that j leaves unset.
func Missing(n int, j Judgments) []Pair {
	var out []Pair
	for _, p := range UpperPairs(n) {
		if _, ok := j[p]; !ok {
			out = append(out, p)
		}
	}

	return out
}

// Comparison is a finalized positive reciprocal matrix over an ordered item list.
// It is immutable once built; accessors return copies.
type Comparison struct {
	items  []string
	m      *matrix.Dense
	tokens [][]string // canonical judgment per cell, lower triangle derived
}

// Build assembles the comparison matrix for items from upper-triangle judgments.
//
// Implementation:
//   - Stage 1: reject n == 0; start from an n×n matrix filled with 1.
//   - Stage 2: visit pairs in (Row, Col) order; check range, Row < Col and the
//     token; set a[i][j] = v and a[j][i] = 1/v.
//   - Stage 3: under FillRequired, reject the first unset upper-triangle cell.
//
// Errors:
//   - ErrNoItems, ErrPairOutOfRange, ErrPairOrder, ErrInvalidJudgment,
//     ErrMissingJudgment (each wrapped with the pair). No partial matrix is
//     ever returned.
//
// Complexity:
//   - Time O(n² + k log k) for k judgments, Space O(n²).
func Build(items []string, j Judgments, opts ...Option) (*Comparison, error) {
	o := gatherOptions(opts...)
	n := len(items)
	if n == 0 {
		return nil, ErrNoItems
	}

	m, err := matrix.NewFilled(n, n, matrix.Unit)
	if err != nil {
		return nil, err
	}
	tokens := make([][]string, n)
	for i := range tokens {
		tokens[i] = make([]string, n)
		for k := range tokens[i] {
			tokens[i][k] = scale.Equal
		}
	}

	var (
		v     float64
		token string
	)
	for _, p := range j.sortedPairs() {
		if p.Row < 0 || p.Col < 0 || p.Row >= n || p.Col >= n {
			return nil, pairErrorf(p, ErrPairOutOfRange)
		}
		if p.Row >= p.Col {
			return nil, pairErrorf(p, ErrPairOrder)
		}
		raw := j[p]
		if v, err = scale.Parse(raw); err != nil {
			return nil, pairErrorf(p, fmt.Errorf("%w: %q", ErrInvalidJudgment, raw))
		}
		if err = m.Set(p.Row, p.Col, v); err != nil {
			return nil, pairErrorf(p, err)
		}
		if err = m.Set(p.Col, p.Row, 1/v); err != nil {
			return nil, pairErrorf(p, err)
		}
		token, _ = scale.Canonical(raw) // raw already parsed above
		tokens[p.Row][p.Col] = token
		tokens[p.Col][p.Row] = scale.Reciprocal(token)
	}

	if o.Fill == FillRequired {
		if gaps := Missing(n, j); len(gaps) > 0 {
			return nil, pairErrorf(gaps[0], ErrMissingJudgment)
		}
	}

	cp := make([]string, n)
	copy(cp, items)

	return &Comparison{items: cp, m: m, tokens: tokens}, nil
}

// FromMatrix wraps an existing matrix after checking that it is positive
// reciprocal within matrix.DefaultEpsilon and matches len(items).
// Tokens are not available for such matrices; Token returns "".
//
// Errors: ErrNoItems, matrix.ErrDimensionMismatch, and the sentinels of
// matrix.ValidateReciprocal.
func FromMatrix(items []string, m matrix.Matrix) (*Comparison, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if err := matrix.ValidateReciprocal(m, matrix.DefaultEpsilon); err != nil {
		return nil, err
	}
	if m.Rows() != len(items) {
		return nil, fmt.Errorf("pairwise: %d items for a %dx%d matrix: %w",
			len(items), m.Rows(), m.Cols(), matrix.ErrDimensionMismatch)
	}
	d, ok := m.Clone().(*matrix.Dense)
	if !ok {
		rows := make([][]float64, m.Rows())
		for i := range rows {
			rows[i] = make([]float64, m.Cols())
			for k := range rows[i] {
				rows[i][k], _ = m.At(i, k)
			}
		}
		var err error
		if d, err = matrix.NewFromRows(rows); err != nil {
			return nil, err
		}
	}
	cp := make([]string, len(items))
	copy(cp, items)

	return &Comparison{items: cp, m: d}, nil
}

// Len returns the number of items (matrix order n).
func (c *Comparison) Len() int { return len(c.items) }

// Items returns a copy of the ordered item list.
func (c *Comparison) Items() []string {
	out := make([]string, len(c.items))
	copy(out, c.items)

	return out
}

// At returns a[i][j]; ok is false for indices out of range.
func (c *Comparison) At(i, j int) (float64, bool) {
	v, err := c.m.At(i, j)
	return v, err == nil
}

// Token returns the canonical judgment shown in cell (i,j), lower triangle
// included ("1/3" below a "3"). It returns "" out of range or when the
// Comparison was created by FromMatrix.
func (c *Comparison) Token(i, j int) string {
	if c.tokens == nil || i < 0 || j < 0 || i >= len(c.items) || j >= len(c.items) {
		return ""
	}

	return c.tokens[i][j]
}

// Matrix returns an independent copy of the numeric matrix.
func (c *Comparison) Matrix() matrix.Matrix { return c.m.Clone() }

// Rows returns the matrix as plain [][]float64 (copy).
func (c *Comparison) Rows() [][]float64 { return c.m.ToRows() }
