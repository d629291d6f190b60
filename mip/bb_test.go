// SPDX-License-Identifier: MIT

package mip_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atspcut/mip"
)

// TestKnapsack: max 5a+4b+3c over three capacity rows; optimum a=b=1.
func TestKnapsack(t *testing.T) {
	m := mip.NewModel("knap")
	x := addVars(t, m, mip.Binary, 0, 1, -5, -4, -3)
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 2, 3, 1), Sense: mip.LessEqual, RHS: 5}))
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 4, 1, 2), Sense: mip.LessEqual, RHS: 11}))
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 3, 4, 2), Sense: mip.LessEqual, RHS: 8}))

	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, mip.Optimal, m.Status())
	obj, err := m.ObjVal()
	require.NoError(t, err)
	require.InDelta(t, -9, obj, tol)
	require.InDelta(t, -9, m.ObjBound(), tol)
	vals, _ := m.Values()
	require.Equal(t, []float64{1, 1, 0}, vals)
	require.GreaterOrEqual(t, m.NodeCount(), 1)
	require.Positive(t, m.Runtime())
}

// TestGeneralInteger: max x+y s.t. 2x+2y ≤ 7 → 3.
func TestGeneralInteger(t *testing.T) {
	m := mip.NewModel("int")
	x := addVars(t, m, mip.Integer, 0, 10, -1, -1)
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 2, 2), Sense: mip.LessEqual, RHS: 7}))

	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, mip.Optimal, m.Status())
	obj, _ := m.ObjVal()
	require.InDelta(t, -3, obj, tol)
	vals, _ := m.Values()
	require.Equal(t, 3.0, vals[0]+vals[1])
}

func TestIntegerInfeasible(t *testing.T) {
	m := mip.NewModel("odd")
	x := addVars(t, m, mip.Integer, 0, 5, 1, 1)
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 2, 2), Sense: mip.Equal, RHS: 3}))

	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, mip.Infeasible, m.Status())
	require.True(t, math.IsInf(m.ObjBound(), 1))
}

// TestLazyRejectsCandidate: the callback forbids x0=x1=1.
func TestLazyRejectsCandidate(t *testing.T) {
	m := mip.NewModel("lazy")
	x := addVars(t, m, mip.Binary, 0, 1, -2, -1)
	var calls int
	m.SetCallback(mip.CallbackFunc(func(cb mip.CallbackContext) error {
		require.Equal(t, mip.MIPSol, cb.Where())
		require.Equal(t, mip.Optimal, cb.NodeStatus())
		calls++
		a, err := cb.Value(x[0])
		if err != nil {
			return err
		}
		b, _ := cb.Value(x[1])
		if a+b > 1.5 {
			return cb.AddLazy(mip.Constraint{Expr: expr(x, 1, 1), Sense: mip.LessEqual, RHS: 1})
		}
		return nil
	}))

	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, mip.Optimal, m.Status())
	obj, _ := m.ObjVal()
	require.InDelta(t, -2, obj, tol)
	vals, _ := m.Values()
	require.Equal(t, []float64{1, 0}, vals)
	require.Equal(t, 1, m.NumLazy())
	require.GreaterOrEqual(t, calls, 2)
}

// TestNodeCutAvoidsBranching: a MIPNode cut closes the gap at the root.
func TestNodeCutAvoidsBranching(t *testing.T) {
	m := mip.NewModel("cut", mip.WithMaxCutRounds(5))
	x := addVars(t, m, mip.Binary, 0, 1, -1, -1)
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 2, 2), Sense: mip.LessEqual, RHS: 3}))

	var nodeEvents int
	m.SetCallback(mip.CallbackFunc(func(cb mip.CallbackContext) error {
		if cb.Where() != mip.MIPNode {
			require.ErrorIs(t, cb.AddCut(mip.Constraint{Expr: expr(x, 1), Sense: mip.LessEqual, RHS: 1}), mip.ErrWrongWhere)
			return nil
		}
		require.Equal(t, mip.Optimal, cb.NodeStatus())
		nodeEvents++
		return cb.AddCut(mip.Constraint{Expr: expr(x, 1, 1), Sense: mip.LessEqual, RHS: 1})
	}))

	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, mip.Optimal, m.Status())
	obj, _ := m.ObjVal()
	require.InDelta(t, -1, obj, tol)
	require.Equal(t, 1, m.NodeCount())
	require.Equal(t, 1, nodeEvents)
	require.Equal(t, 1, m.NumCuts())
}

// TestMaxCutRoundsZero disables MIPNode events.
func TestMaxCutRoundsZero(t *testing.T) {
	m := mip.NewModel("nocut", mip.WithMaxCutRounds(0))
	x := addVars(t, m, mip.Binary, 0, 1, -1, -1)
	require.NoError(t, m.AddConstr(mip.Constraint{Expr: expr(x, 2, 2), Sense: mip.LessEqual, RHS: 3}))
	m.SetCallback(mip.CallbackFunc(func(cb mip.CallbackContext) error {
		require.Equal(t, mip.MIPSol, cb.Where())
		return nil
	}))

	require.NoError(t, m.Optimize(context.Background()))
	obj, _ := m.ObjVal()
	require.InDelta(t, -1, obj, tol)
	require.Greater(t, m.NodeCount(), 1)
}

func TestCallbackErrorAborts(t *testing.T) {
	boom := errors.New("boom")
	m := mip.NewModel("err")
	addVars(t, m, mip.Binary, 0, 1, -1)
	m.SetCallback(mip.CallbackFunc(func(mip.CallbackContext) error { return boom }))

	err := m.Optimize(context.Background())
	require.ErrorIs(t, err, boom)
	require.Zero(t, m.SolCount())
}

// TestTimeLimitDuringLazyLoop: the limit expires inside a callback.
func TestTimeLimitDuringLazyLoop(t *testing.T) {
	m := mip.NewModel("tl", mip.WithTimeLimit(20*time.Millisecond))
	x := addVars(t, m, mip.Binary, 0, 1, -1, -1)
	m.SetCallback(mip.CallbackFunc(func(cb mip.CallbackContext) error {
		time.Sleep(40 * time.Millisecond)
		return cb.AddLazy(mip.Constraint{Expr: expr(x, 1, 1), Sense: mip.LessEqual, RHS: 1})
	}))

	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, mip.TimeLimit, m.Status())
	require.Zero(t, m.SolCount())
	require.InDelta(t, -2, m.ObjBound(), tol)
	require.Equal(t, 20*time.Millisecond, m.TimeLimit())
}

// TestReoptimizeKeepsPools: rows added by callbacks survive into the next run.
func TestReoptimizeKeepsPools(t *testing.T) {
	m := mip.NewModel("again")
	x := addVars(t, m, mip.Binary, 0, 1, -1, -1)
	m.SetCallback(mip.CallbackFunc(func(cb mip.CallbackContext) error {
		a, _ := cb.Value(x[0])
		b, _ := cb.Value(x[1])
		if a+b > 1.5 {
			return cb.AddLazy(mip.Constraint{Expr: expr(x, 1, 1), Sense: mip.LessEqual, RHS: 1})
		}
		return nil
	}))
	require.NoError(t, m.Optimize(context.Background()))
	require.Equal(t, 1, m.NumLazy())

	m.SetCallback(nil)
	m.SetRelaxed(true)
	require.NoError(t, m.Optimize(context.Background()))
	obj, _ := m.ObjVal()
	require.InDelta(t, -1, obj, tol)
	require.Zero(t, m.NodeCount())
}
