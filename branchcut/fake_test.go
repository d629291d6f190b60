// SPDX-License-Identifier: MIT

package branchcut_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/atspcut/branchcut"
	"github.com/katalvlaran/atspcut/matrix"
	"github.com/katalvlaran/atspcut/mip"
)

// event is one callback the fake engine fires during Optimize.
type event struct {
	where  mip.Where
	status mip.Status
	x      *matrix.Dense
}

// round scripts one Optimize call of the fake engine.
type round struct {
	status mip.Status
	x      *matrix.Dense // nil: no solution
	obj    float64
	bound  float64
	nodes  int
	err    error
	events []event
}

// fakeEngine borrows variable and row bookkeeping from a real mip.Model and
// replays scripted rounds instead of solving.
type fakeEngine struct {
	*mip.Model
	rounds []round

	coords   [][2]int
	cb       mip.Callback
	relaxed  bool
	calls    int
	limits   []time.Duration
	lazy     []mip.Constraint
	cuts     []mip.Constraint
	userCuts []mip.Constraint
	cur      round
}

func (f *fakeEngine) AddVar(name string, typ mip.VarType, lb, ub, obj float64) (mip.Var, error) {
	var i, j int
	if _, err := fmt.Sscanf(name, "x_%d_%d", &i, &j); err != nil {
		return mip.Var{}, err
	}
	f.coords = append(f.coords, [2]int{i, j})

	return f.Model.AddVar(name, typ, lb, ub, obj)
}

func (f *fakeEngine) AddUserCut(c mip.Constraint) error {
	f.userCuts = append(f.userCuts, c)

	return f.Model.AddUserCut(c)
}

func (f *fakeEngine) SetCallback(cb mip.Callback) { f.cb = cb }
func (f *fakeEngine) SetRelaxed(relaxed bool)     { f.relaxed = relaxed }

func (f *fakeEngine) SetTimeLimit(d time.Duration) {
	f.limits = append(f.limits, d)
	f.Model.SetTimeLimit(d)
}

func (f *fakeEngine) Optimize(context.Context) error {
	f.calls++
	r := f.rounds[min(f.calls, len(f.rounds))-1]
	for _, ev := range r.events {
		if f.cb == nil {
			break
		}
		if err := f.cb.Invoke(&fakeCallback{f: f, ev: ev}); err != nil {
			return fmt.Errorf("fake: callback at %s: %w", ev.where, err)
		}
	}
	f.cur = r

	return r.err
}

func (f *fakeEngine) Status() mip.Status { return f.cur.status }

func (f *fakeEngine) SolCount() int {
	if f.cur.x == nil {
		return 0
	}

	return 1
}

func (f *fakeEngine) Value(v mip.Var) (float64, error) {
	if f.cur.x == nil {
		return 0, mip.ErrNoSolution
	}

	return f.value(f.cur.x, v)
}

func (f *fakeEngine) value(x *matrix.Dense, v mip.Var) (float64, error) {
	if v.Index() < 0 || v.Index() >= len(f.coords) {
		return 0, mip.ErrUnknownVar
	}
	c := f.coords[v.Index()]

	return x.At(c[0], c[1])
}

func (f *fakeEngine) ObjVal() (float64, error) {
	if f.cur.x == nil {
		return 0, mip.ErrNoSolution
	}

	return f.cur.obj, nil
}

func (f *fakeEngine) ObjBound() float64 { return f.cur.bound }
func (f *fakeEngine) NodeCount() int    { return f.cur.nodes }

// fakeCallback is the CallbackContext of one scripted event.
type fakeCallback struct {
	f  *fakeEngine
	ev event
}

func (c *fakeCallback) Where() mip.Where       { return c.ev.where }
func (c *fakeCallback) NodeStatus() mip.Status { return c.ev.status }

func (c *fakeCallback) Value(v mip.Var) (float64, error) { return c.f.value(c.ev.x, v) }

func (c *fakeCallback) AddLazy(con mip.Constraint) error {
	c.f.lazy = append(c.f.lazy, con)

	return nil
}

func (c *fakeCallback) AddCut(con mip.Constraint) error {
	if c.ev.where != mip.MIPNode {
		return mip.ErrWrongWhere
	}
	c.f.cuts = append(c.f.cuts, con)

	return nil
}

// fakeFactory returns an EngineFactory replaying rounds and a pointer to the
// engines it created.
func fakeFactory(rounds ...round) (branchcut.EngineFactory, *[]*fakeEngine) {
	var made []*fakeEngine
	factory := func(name string, _ *zap.Logger) branchcut.Engine {
		f := &fakeEngine{Model: mip.NewModel(name), rounds: rounds}
		made = append(made, f)

		return f
	}

	return factory, &made
}

// arcsOf lists the arcs of a cut's terms in term order.
func arcsOf(t *testing.T, f *fakeEngine, c mip.Constraint) [][2]int {
	t.Helper()
	out := make([][2]int, 0, len(c.Expr))
	for _, term := range c.Expr {
		require.Equal(t, 1.0, term.Coef)
		out = append(out, f.coords[term.Var.Index()])
	}

	return out
}
