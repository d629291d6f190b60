// SPDX-License-Identifier: MIT

package separation

import (
	"fmt"

	"github.com/katalvlaran/atspcut/matrix"
	"github.com/katalvlaran/atspcut/mip"
)

// ArcVars maps arcs i→j (i ≠ j) to model variables.
type ArcVars struct {
	n    int
	vars []mip.Var
	set  []bool
}

// NewArcVars returns an empty n×n grid.
func NewArcVars(n int) *ArcVars {
	return &ArcVars{n: n, vars: make([]mip.Var, n*n), set: make([]bool, n*n)}
}

// N returns the node count.
func (a *ArcVars) N() int { return a.n }

// Set binds arc i→j to v. Diagonal arcs are rejected.
func (a *ArcVars) Set(i, j int, v mip.Var) error {
	if i < 0 || i >= a.n || j < 0 || j >= a.n || i == j {
		return fmt.Errorf("%w: (%d,%d) n=%d", ErrOutOfRange, i, j, a.n)
	}
	a.vars[i*a.n+j] = v
	a.set[i*a.n+j] = true

	return nil
}

// At returns the variable of arc i→j.
func (a *ArcVars) At(i, j int) (mip.Var, bool) {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return mip.Var{}, false
	}
	k := i*a.n + j

	return a.vars[k], a.set[k]
}

// ValueSource is anything that reports variable values: *mip.Model after a
// solve, or a mip.CallbackContext during one.
type ValueSource interface {
	Value(v mip.Var) (float64, error)
}

// Values writes the value of every bound arc into dst (n×n); unbound arcs
// and the diagonal are 0.
func (a *ArcVars) Values(src ValueSource, dst *matrix.Dense) error {
	if dst == nil {
		return matrix.ErrNilMatrix
	}
	if dst.Rows() != a.n || dst.Cols() != a.n {
		return matrix.ErrInvalidDimensions
	}
	for i := 0; i < a.n; i++ {
		row, _ := dst.Row(i)
		for j := range row {
			row[j] = 0
			if !a.set[i*a.n+j] {
				continue
			}
			v, err := src.Value(a.vars[i*a.n+j])
			if err != nil {
				return fmt.Errorf("separation: value of x[%d][%d]: %w", i, j, err)
			}
			row[j] = v
		}
	}

	return nil
}

// BuildCut returns Σ_{i∉S, j∈S} x[i][j] ≥ 1 over the bound arcs.
// S must satisfy 0 < |S| < n; it is not validated.
func BuildCut(S []int, arcs *ArcVars) mip.Constraint {
	in := membership(S, arcs.n)
	expr := make(mip.LinExpr, 0, max(0, len(S)*(arcs.n-len(S))))
	for i := 0; i < arcs.n; i++ {
		if in[i] {
			continue
		}
		for _, j := range S {
			if v, ok := arcs.At(i, j); ok {
				expr = expr.Add(v, 1)
			}
		}
	}

	return mip.Constraint{Name: "subtour", Expr: expr, Sense: mip.GreaterEqual, RHS: 1}
}

// CrossingWeight returns Σ_{i∉S, j∈S} w[i][j], the in-cut weight of S.
func CrossingWeight(S []int, w *matrix.Dense) float64 {
	if w == nil {
		return 0
	}
	n := w.Rows()
	in := membership(S, n)
	var sum float64
	for i := 0; i < n; i++ {
		if in[i] {
			continue
		}
		row, _ := w.Row(i)
		for j, v := range row {
			if in[j] && i != j {
				sum += v
			}
		}
	}

	return sum
}

// membership returns a length-n mask of S; out-of-range members are ignored.
func membership(S []int, n int) []bool {
	in := make([]bool, n)
	for _, v := range S {
		if v >= 0 && v < n {
			in[v] = true
		}
	}

	return in
}
