// SPDX-License-Identifier: MIT

package mip

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	// fixTol: columns with ub-lb below this are substituted as constants.
	fixTol = 1e-9
	// simplexTol is the reduced-cost optimality tolerance passed to gonum.
	simplexTol = 1e-9
	// bigMScale multiplies (1 + Σ|c_j|) to price artificial columns.
	bigMScale = 100
)

// relaxation is the outcome of one LP solve.
type relaxation struct {
	status Status // Optimal, Infeasible or Unbounded
	x      []float64
	obj    float64
}

// stdRow is a row over the free columns with rhs ≥ 0.
type stdRow struct {
	coef   []float64
	sense  Sense
	rhs    float64
	nonNeg bool // every coefficient ≥ 0
}

// solveRelaxation solves the LP relaxation of all row pools under the
// column bounds lb/ub.
//
// Steps:
//  1. Substitute fixed columns and shift the rest: y_j = x_j - lb_j ≥ 0.
//  2. Move constants to the right-hand side; rows without free columns are
//     checked directly. Rows with a negative rhs are negated.
//  3. Add y_j ≤ ub_j - lb_j unless a non-negative ≤/= row already implies it.
//  4. Drop columns that appear in no row (they stay at lb, or the LP is unbounded).
//  5. Build standard form: each ≤ row gets a slack, each ≥ row a surplus, and
//     every row that the slack cannot start feasibly (= rows, ≥ rows with
//     rhs > 0) gets an artificial column priced at big-M. The slack/artificial
//     columns form a feasible starting basis, so gonum skips its own phase I.
//  6. Solve with lp.Simplex; a positive artificial at the optimum means infeasible.
//
// Errors: ErrNumeric wraps any gonum failure other than unboundedness.
func (m *Model) solveRelaxation(lb, ub []float64) (relaxation, error) {
	nv := len(m.vars)
	x := make([]float64, nv)
	copy(x, lb)

	// 1) Free columns
	col := make([]int, nv)
	free := make([]int, 0, nv)
	for j := 0; j < nv; j++ {
		if ub[j]-lb[j] > fixTol {
			col[j] = len(free)
			free = append(free, j)
		} else {
			col[j] = -1
		}
	}

	// 2) Row pools in standard orientation
	rows := make([]stdRow, 0, len(m.constrs)+len(m.lazy)+len(m.cuts)+len(free))
	for _, pool := range [][]row{m.constrs, m.lazy, m.cuts} {
		for _, r := range pool {
			sr, keep, ok := m.standardRow(r, lb, col, len(free))
			if !ok {
				return relaxation{status: Infeasible}, nil
			}
			if keep {
				rows = append(rows, sr)
			}
		}
	}

	// 3) Upper bounds
	for c, j := range free {
		u := ub[j] - lb[j]
		if math.IsInf(u, 1) || impliedUB(rows, c, u) {
			continue
		}
		coef := make([]float64, len(free))
		coef[c] = 1
		rows = append(rows, stdRow{coef: coef, sense: LessEqual, rhs: u, nonNeg: true})
	}

	// 4) Columns used by some row
	used := make([]bool, len(free))
	for _, r := range rows {
		for c, v := range r.coef {
			if v != 0 {
				used[c] = true
			}
		}
	}
	cols := make([]int, 0, len(free))
	for c := range free {
		if used[c] {
			cols = append(cols, c)
			continue
		}
		if m.vars[free[c]].obj < 0 {
			return relaxation{status: Unbounded}, nil
		}
	}
	if len(rows) == 0 {
		return relaxation{status: Optimal, x: x, obj: m.objective(x)}, nil
	}

	// 5) Standard form
	nCols := len(cols) + len(rows)
	for _, r := range rows {
		if r.sense == GreaterEqual && r.rhs > 0 {
			nCols++ // surplus + artificial
		}
	}
	A := mat.NewDense(len(rows), nCols, nil)
	cost := make([]float64, nCols)
	b := make([]float64, len(rows))
	basis := make([]int, len(rows))
	artificial := make([]int, 0, len(rows))

	bigM := 1.0
	for k, c := range cols {
		cost[k] = m.vars[free[c]].obj
		bigM += math.Abs(cost[k])
	}
	bigM *= bigMScale

	next := len(cols)
	for i, r := range rows {
		for k, c := range cols {
			if v := r.coef[c]; v != 0 {
				A.Set(i, k, v)
			}
		}
		b[i] = r.rhs
		switch r.sense {
		case LessEqual:
			A.Set(i, next, 1)
			basis[i] = next
			next++
		case GreaterEqual:
			A.Set(i, next, -1)
			basis[i] = next
			next++
			if r.rhs > 0 {
				A.Set(i, next, 1)
				cost[next] = bigM
				basis[i] = next
				artificial = append(artificial, next)
				next++
			}
		case Equal:
			A.Set(i, next, 1)
			cost[next] = bigM
			basis[i] = next
			artificial = append(artificial, next)
			next++
		}
	}

	// 6) Solve
	_, y, err := simplex(cost, A, b, basis)
	switch {
	case errors.Is(err, lp.ErrUnbounded):
		return relaxation{status: Unbounded}, nil
	case errors.Is(err, lp.ErrInfeasible):
		return relaxation{status: Infeasible}, nil
	case errors.Is(err, ErrNumeric):
		return relaxation{}, err
	case err != nil:
		return relaxation{}, fmt.Errorf("%w: %w", ErrNumeric, err)
	}
	for _, a := range artificial {
		if y[a] > m.feasTol {
			return relaxation{status: Infeasible}, nil
		}
	}
	for k, c := range cols {
		j := free[c]
		x[j] = math.Min(math.Max(lb[j]+y[k], lb[j]), ub[j])
	}

	return relaxation{status: Optimal, x: x, obj: m.objective(x)}, nil
}

// standardRow projects r onto the free columns.
// keep=false drops a row with no free column; ok=false reports it violated.
func (m *Model) standardRow(r row, lb []float64, col []int, nFree int) (sr stdRow, keep, ok bool) {
	coef := make([]float64, nFree)
	rhs := r.rhs
	var nz bool
	for k, j := range r.idx {
		a := r.coef[k]
		rhs -= a * lb[j]
		if c := col[j]; c >= 0 && a != 0 {
			coef[c] += a
			nz = true
		}
	}
	if !nz {
		switch r.sense {
		case LessEqual:
			return stdRow{}, false, rhs >= -m.feasTol
		case GreaterEqual:
			return stdRow{}, false, rhs <= m.feasTol
		default:
			return stdRow{}, false, math.Abs(rhs) <= m.feasTol
		}
	}

	sense := r.sense
	if rhs < 0 {
		floats.Scale(-1, coef)
		rhs = -rhs
		switch sense {
		case LessEqual:
			sense = GreaterEqual
		case GreaterEqual:
			sense = LessEqual
		}
	}
	nonNeg := floats.Min(coef) >= 0

	return stdRow{coef: coef, sense: sense, rhs: rhs, nonNeg: nonNeg}, true, true
}

// impliedUB reports whether some ≤/= row with non-negative coefficients
// already forces y_c ≤ u.
func impliedUB(rows []stdRow, c int, u float64) bool {
	for _, r := range rows {
		if r.sense == GreaterEqual || !r.nonNeg || r.coef[c] <= 0 {
			continue
		}
		if r.rhs/r.coef[c] <= u+fixTol {
			return true
		}
	}

	return false
}

// simplex calls lp.Simplex and turns its panics into ErrNumeric.
func simplex(c []float64, A mat.Matrix, b []float64, basis []int) (opt float64, x []float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrNumeric, r)
		}
	}()

	return lp.Simplex(c, A, b, simplexTol, basis)
}
