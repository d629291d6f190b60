// SPDX-License-Identifier: MIT

package mip_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atspcut/mip"
)

const tol = 1e-7

// TestRelaxedLessEqual: max x+y s.t. x+2y ≤ 4, 3x+y ≤ 6 → (1.6, 1.2).
func TestRelaxedLessEqual(t *testing.T) {
	m := mip.NewModel("lp")
	m.SetRelaxed(true)
	x := addVars(t, m, mip.Continuous, 0, math.Inf(1), -1, -1)
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 1, 2), Sense: mip.LessEqual, RHS: 4}))
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 3, 1), Sense: mip.LessEqual, RHS: 6}))

	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, mip.Optimal, m.Status())
	require.Equal(t, 1, m.SolCount())
	obj, err := m.ObjVal()
	require.NoError(t, err)
	require.InDelta(t, -2.8, obj, tol)
	require.InDelta(t, -2.8, m.ObjBound(), tol)
	v0, _ := m.Value(x[0])
	v1, _ := m.Value(x[1])
	require.InDelta(t, 1.6, v0, tol)
	require.InDelta(t, 1.2, v1, tol)
}

// TestRelaxedMixedSenses: min x+y s.t. x+y ≥ 2, x-y = 0 → (1, 1).
func TestRelaxedMixedSenses(t *testing.T) {
	m := mip.NewModel("mixed")
	m.SetRelaxed(true)
	x := addVars(t, m, mip.Continuous, 0, 10, 1, 1)
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 1, 1), Sense: mip.GreaterEqual, RHS: 2}))
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 1, -1), Sense: mip.Equal, RHS: 0}))

	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, mip.Optimal, m.Status())
	vals, err := m.Values()
	require.NoError(t, err)
	require.InDelta(t, 1, vals[0], tol)
	require.InDelta(t, 1, vals[1], tol)
}

// TestRelaxedLowerBoundShift: bounds away from zero are honoured.
func TestRelaxedLowerBoundShift(t *testing.T) {
	m := mip.NewModel("shift")
	m.SetRelaxed(true)
	x := addVars(t, m, mip.Continuous, 2, 5, 1)
	y := addVars(t, m, mip.Continuous, 3, 3, 1)
	require.NoError(t, m.AddConstr(mip.Constraint{
		Expr: mip.LinExpr{}.Add(x[0], 1).Add(y[0], 1), Sense: mip.GreaterEqual, RHS: 6.5,
	}))

	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, mip.Optimal, m.Status())
	v, _ := m.Value(x[0])
	require.InDelta(t, 3.5, v, tol)
	v, _ = m.Value(y[0])
	require.Equal(t, 3.0, v)
}

func TestRelaxedInfeasible(t *testing.T) {
	m := mip.NewModel("inf")
	m.SetRelaxed(true)
	x := addVars(t, m, mip.Continuous, 0, 1, 1)
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 1), Sense: mip.GreaterEqual, RHS: 2}))

	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, mip.Infeasible, m.Status())
	require.Zero(t, m.SolCount())
}

func TestRelaxedFixedInfeasible(t *testing.T) {
	m := mip.NewModel("fixed")
	m.SetRelaxed(true)
	x := addVars(t, m, mip.Continuous, 1, 1, 1)
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 1), Sense: mip.LessEqual, RHS: 0}))

	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, mip.Infeasible, m.Status())
}

func TestRelaxedUnbounded(t *testing.T) {
	m := mip.NewModel("unb")
	m.SetRelaxed(true)
	addVars(t, m, mip.Continuous, 0, math.Inf(1), -1)
	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, mip.Unbounded, m.Status())

	m2 := mip.NewModel("unb-row")
	m2.SetRelaxed(true)
	x := addVars(t, m2, mip.Continuous, 0, math.Inf(1), -1, 0)
	require.NoError(t, m2.AddConstr(mip.Constraint{Expr: expr(x, 1, -1), Sense: mip.LessEqual, RHS: 1}))
	require.NoError(t, m2.Optimize(context.Background()))
	require.Equal(t, mip.Unbounded, m2.Status())
}
