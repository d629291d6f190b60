// SPDX-License-Identifier: MIT

package branchcut

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/atspcut/instance"
	"github.com/katalvlaran/atspcut/matrix"
	"github.com/katalvlaran/atspcut/mip"
	"github.com/katalvlaran/atspcut/separation"
	"github.com/katalvlaran/atspcut/tsp"
)

// Solver owns one instance, its options and the cut counters. It is not safe
// for concurrent use; run independent solves on independent Solvers.
type Solver struct {
	inst *instance.Instance
	dist *matrix.Dense
	opts Options
	log  *zap.Logger
	sep  *separation.Separator

	// Per-solve state
	engine Engine
	arcs   *separation.ArcVars
	x      *matrix.Dense
	lazy   int
	user   int
	iters  int
	result Result
}

// New validates opts and binds the instance.
func New(inst *instance.Instance, opts Options) (*Solver, error) {
	if inst == nil {
		return nil, ErrNilInstance
	}
	if err := opts.normalize(); err != nil {
		return nil, err
	}
	x, err := matrix.NewSquare(inst.N())
	if err != nil {
		return nil, err
	}

	return &Solver{
		inst: inst,
		dist: inst.Matrix(),
		opts: opts,
		log:  opts.Logger.With(zap.String("instance", inst.String()), zap.Stringer("mode", opts.Mode)),
		sep:  separation.NewSeparator(opts.Oracle, separation.DefaultOptions()),
		x:    x,
	}, nil
}

// LazyCuts returns the lazy constraints added by the current or last Solve.
func (s *Solver) LazyCuts() int { return s.lazy }

// UserCuts returns the user cuts added by the current or last Solve.
func (s *Solver) UserCuts() int { return s.user }

// Result returns the summary of the last Solve.
func (s *Solver) Result() Result { return s.result }

// Solve builds a fresh engine model and runs the configured mode.
//
// The deadline is fixed once: start + TimeLimit, or the context deadline if
// that is earlier. No engine solve starts with a zero or negative remaining
// budget. Hitting the deadline or cancelling ctx is not an error; the engine
// status in the Result reports it.
//
// Errors: ErrEngineFault wrapping the engine, oracle or callback failure.
func (s *Solver) Solve(ctx context.Context) (Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	deadline := start.Add(s.opts.TimeLimit)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	s.lazy, s.user, s.iters = 0, 0, 0
	s.result = Result{Mode: s.opts.Mode}

	s.engine = s.opts.NewEngine(s.inst.String(), s.log)
	if err := s.build(); err != nil {
		return s.result, fmt.Errorf("%w: build model: %w", ErrEngineFault, err)
	}

	var err error
	switch s.opts.Mode {
	case ModeRelaxation:
		err = s.runLoop(ctx, deadline)
	default:
		err = s.runLazy(ctx, deadline)
	}
	s.collect(time.Since(start))
	if err != nil {
		s.log.Warn("solve aborted", zap.Error(err),
			zap.Int("lazy_cuts", s.lazy), zap.Int("user_cuts", s.user))

		return s.result, err
	}
	s.log.Info("solve done",
		zap.Stringer("status", s.result.Status),
		zap.Float64("objective", s.result.Objective),
		zap.Float64("bound", s.result.Bound),
		zap.Int("lazy_cuts", s.lazy),
		zap.Int("user_cuts", s.user),
		zap.Int("nodes", s.result.Nodes),
		zap.Duration("runtime", s.result.Runtime))

	return s.result, nil
}

// build adds x[i][j] (binary, cost d[i][j]) for i ≠ j and the two degree
// equalities per node.
func (s *Solver) build() error {
	n := s.inst.N()
	s.arcs = separation.NewArcVars(n)

	var i, j int
	for i = 0; i < n; i++ {
		row, _ := s.dist.Row(i)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			v, err := s.engine.AddVar(fmt.Sprintf("x_%d_%d", i, j), mip.Binary, 0, 1, row[j])
			if err != nil {
				return err
			}
			if err = s.arcs.Set(i, j, v); err != nil {
				return err
			}
		}
	}

	for i = 0; i < n; i++ {
		out := make(mip.LinExpr, 0, n-1)
		in := make(mip.LinExpr, 0, n-1)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			vo, _ := s.arcs.At(i, j)
			vi, _ := s.arcs.At(j, i)
			out = out.Add(vo, 1)
			in = in.Add(vi, 1)
		}
		if err := s.engine.AddConstr(mip.Constraint{Name: fmt.Sprintf("out_%d", i), Expr: out, Sense: mip.Equal, RHS: 1}); err != nil {
			return err
		}
		if err := s.engine.AddConstr(mip.Constraint{Name: fmt.Sprintf("in_%d", i), Expr: in, Sense: mip.Equal, RHS: 1}); err != nil {
			return err
		}
	}

	return nil
}

// collect fills s.result from the engine after the run.
func (s *Solver) collect(elapsed time.Duration) {
	r := &s.result
	r.Status = s.engine.Status()
	r.Bound = s.engine.ObjBound()
	r.Nodes = s.engine.NodeCount()
	r.LazyCuts = s.lazy
	r.UserCuts = s.user
	r.Iterations = s.iters
	r.Runtime = elapsed
	if s.engine.SolCount() == 0 {
		return
	}
	obj, err := s.engine.ObjVal()
	if err != nil {
		return
	}
	r.HasSolution = true
	r.Objective = obj
	if err = s.arcs.Values(s.engine, s.x); err != nil {
		return
	}
	if tour, ok := s.tour(); ok {
		r.Tour = tour
		r.Cost, _ = tsp.TourCost(s.dist, tour)
	}
}

// tour reads a Hamiltonian cycle from the rounded values in s.x.
func (s *Solver) tour() ([]int, bool) {
	sel, err := separation.Round(s.x)
	if err != nil {
		return nil, false
	}
	succ := make([]int, sel.N())
	for i := range succ {
		j, ok := sel.Successor(i)
		if !ok {
			return nil, false
		}
		succ[i] = j
	}
	t, err := tsp.TourFromSuccessors(succ, 0)
	if err != nil {
		return nil, false
	}

	return t, true
}
