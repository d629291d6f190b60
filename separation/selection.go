// SPDX-License-Identifier: MIT

package separation

import (
	"fmt"

	"github.com/katalvlaran/atspcut/matrix"
)

// Selection is an n×n boolean arc matrix stored row-major in one buffer.
type Selection struct {
	n   int
	sel []bool
}

// NewSelection returns an empty selection over n nodes (n < 0 is treated as 0).
func NewSelection(n int) *Selection {
	if n < 0 {
		n = 0
	}

	return &Selection{n: n, sel: make([]bool, n*n)}
}

// Round selects every arc whose value in x exceeds 0.5.
func Round(x *matrix.Dense) (*Selection, error) {
	if x == nil {
		return nil, matrix.ErrNilMatrix
	}
	if !x.IsSquare() {
		return nil, ErrNonSquare
	}
	s := NewSelection(x.Rows())
	for i := 0; i < s.n; i++ {
		row, _ := x.Row(i)
		for j, v := range row {
			if v > 0.5 {
				_ = s.Select(i, j) // in range by construction
			}
		}
	}

	return s, nil
}

// N returns the node count.
func (s *Selection) N() int { return s.n }

// Select marks arc i→j as selected.
func (s *Selection) Select(i, j int) error {
	if i < 0 || i >= s.n || j < 0 || j >= s.n {
		return fmt.Errorf("%w: (%d,%d) n=%d", ErrOutOfRange, i, j, s.n)
	}
	s.sel[i*s.n+j] = true

	return nil
}

// Has reports whether arc i→j is selected; out-of-range arcs are not.
func (s *Selection) Has(i, j int) bool {
	return i >= 0 && i < s.n && j >= 0 && j < s.n && s.sel[i*s.n+j]
}

// Successor returns the lowest j with i→j selected.
func (s *Selection) Successor(i int) (int, bool) {
	if i < 0 || i >= s.n {
		return -1, false
	}
	for j := 0; j < s.n; j++ {
		if s.Has(i, j) {
			return j, true
		}
	}

	return -1, false
}
