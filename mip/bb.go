// SPDX-License-Identifier: MIT

package mip

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// node is an open branch-and-bound subproblem.
type node struct {
	lb, ub []float64
	bound  float64 // relaxation objective of the parent
	depth  int
}

// search holds the state of one Optimize call in MIP mode.
type search struct {
	m   *Model
	ctx context.Context

	// Time budget
	useDeadline bool
	deadline    time.Time

	// Incumbent
	incumbent []float64
	incObj    float64

	unbounded bool
}

// Optimize solves the model. In relaxed mode it solves one LP; otherwise it
// runs branch-and-bound with callbacks.
//
// A cancelled ctx ends the search with status Interrupted and the wall-clock
// limit with TimeLimit; both keep any incumbent and return nil. Errors are
// reserved for faults: ErrNumeric from the LP solver and callback errors.
func (m *Model) Optimize(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	m.resetResults()
	defer func() { m.runtime = time.Since(start) }()

	s := &search{m: m, ctx: ctx, incObj: math.Inf(1)}
	if m.timeLimit > 0 {
		s.useDeadline = true
		s.deadline = start.Add(m.timeLimit)
	}
	if m.relaxed {
		return s.relaxed()
	}

	return s.run()
}

// expired reports whether the deadline has passed.
func (s *search) expired() bool {
	return s.useDeadline && !time.Now().Before(s.deadline)
}

// stopReason returns Interrupted/TimeLimit when the search must stop, else Loaded.
func (s *search) stopReason() Status {
	if s.ctx.Err() != nil {
		return Interrupted
	}
	if s.expired() {
		return TimeLimit
	}

	return Loaded
}

// relaxed solves the root LP once.
func (s *search) relaxed() error {
	m := s.m
	if st := s.stopReason(); st != Loaded {
		m.status = st
		return nil
	}
	lb, ub := m.rootBounds()
	res, err := m.solveRelaxation(lb, ub)
	if err != nil {
		return err
	}
	m.status = res.status
	switch res.status {
	case Optimal:
		m.solCount = 1
		m.x = res.x
		m.objVal = res.obj
		m.objBound = res.obj
	case Infeasible:
		m.objBound = math.Inf(1)
	}

	return nil
}

// run is the depth-first branch-and-bound loop.
func (s *search) run() error {
	m := s.m
	lb, ub := m.rootBounds()
	stack := []node{{lb: lb, ub: ub, bound: math.Inf(-1)}}

	for len(stack) > 0 {
		if st := s.stopReason(); st != Loaded {
			s.stop(st, stack)
			return nil
		}
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.pruned(nd.bound) {
			continue
		}
		m.nodes++

		children, err := s.processNode(nd)
		if err != nil {
			return err
		}
		if s.unbounded {
			m.status = Unbounded
			m.objBound = math.Inf(-1)
			return nil
		}
		stack = append(stack, children...)
	}

	if s.incumbent == nil {
		m.status = Infeasible
		m.objBound = math.Inf(1)
	} else {
		m.status = Optimal
		m.objBound = s.incObj
	}
	m.log.Debug("mip search done",
		zap.String("model", m.name), zap.Stringer("status", m.status),
		zap.Int("nodes", m.nodes), zap.Int("lazy", len(m.lazy)), zap.Int("cuts", len(m.cuts)))

	return nil
}

// stop records a premature end; the bound is the weakest open node or the incumbent.
func (s *search) stop(st Status, open []node) {
	m := s.m
	m.status = st
	bound := s.incObj
	for _, nd := range open {
		bound = math.Min(bound, nd.bound)
	}
	m.objBound = bound
}

// pruned reports whether a node with relaxation value bound cannot improve the incumbent.
func (s *search) pruned(bound float64) bool {
	if s.incumbent == nil {
		return false
	}

	return bound >= s.incObj-1e-9*(1+math.Abs(s.incObj))
}

// processNode solves nd, fires callbacks, and returns the children to push.
// When the search must stop in the middle of a node, nd itself is returned
// so the caller's bound accounting still sees it.
func (s *search) processNode(nd node) ([]node, error) {
	m := s.m
	rounds := 0
	for {
		res, err := m.solveRelaxation(nd.lb, nd.ub)
		if err != nil {
			return nil, err
		}
		switch res.status {
		case Infeasible:
			return nil, nil
		case Unbounded:
			s.unbounded = true
			return nil, nil
		}
		if s.pruned(res.obj) {
			return nil, nil
		}

		j := m.branchVar(res.x)
		if j < 0 {
			cand := m.roundIntegral(res.x)
			added, err := s.fire(MIPSol, res.status, cand)
			if err != nil {
				return nil, err
			}
			if m.violatesAny(added, cand) {
				if s.stopReason() != Loaded {
					return []node{{lb: nd.lb, ub: nd.ub, bound: res.obj, depth: nd.depth}}, nil
				}
				continue
			}
			s.accept(cand)
			return nil, nil
		}

		if m.cb != nil && rounds < m.maxCutRounds {
			added, err := s.fire(MIPNode, res.status, res.x)
			if err != nil {
				return nil, err
			}
			if m.violatesAny(added, res.x) {
				rounds++
				if s.stopReason() != Loaded {
					return []node{{lb: nd.lb, ub: nd.ub, bound: res.obj, depth: nd.depth}}, nil
				}
				continue
			}
		}

		return s.branch(nd, j, res), nil
	}
}

// fire invokes the callback and returns the rows it added.
func (s *search) fire(where Where, status Status, x []float64) ([]row, error) {
	m := s.m
	if m.cb == nil {
		return nil, nil
	}
	cc := &cbContext{m: m, where: where, status: status, x: x}
	if err := m.cb.Invoke(cc); err != nil {
		return nil, fmt.Errorf("mip: callback at %s: %w", where, err)
	}

	return cc.added, nil
}

// accept stores cand as the incumbent when it improves on it.
func (s *search) accept(cand []float64) {
	m := s.m
	obj := m.objective(cand)
	if s.incumbent != nil && obj >= s.incObj {
		return
	}
	s.incumbent = cand
	s.incObj = obj
	m.x = cand
	m.objVal = obj
	m.solCount++
	m.log.Debug("mip incumbent",
		zap.String("model", m.name), zap.Float64("obj", obj), zap.Int("node", m.nodes))
}

// branch splits on column j: the down child (x_j ≤ ⌊v⌋) is pushed first so the
// up child (x_j ≥ ⌈v⌉) is explored first.
func (s *search) branch(nd node, j int, res relaxation) []node {
	v := res.x[j]
	down := node{lb: nd.lb, ub: append([]float64(nil), nd.ub...), bound: res.obj, depth: nd.depth + 1}
	down.ub[j] = math.Floor(v)
	up := node{lb: append([]float64(nil), nd.lb...), ub: nd.ub, bound: res.obj, depth: nd.depth + 1}
	up.lb[j] = math.Ceil(v)

	return []node{down, up}
}

// branchVar picks the most fractional integer column (lowest index on ties),
// or -1 when x is integral within intTol.
func (m *Model) branchVar(x []float64) int {
	best, bestScore := -1, m.intTol
	for j, v := range m.vars {
		if v.typ == Continuous {
			continue
		}
		f := x[j] - math.Floor(x[j])
		score := math.Min(f, 1-f)
		if score > bestScore {
			best, bestScore = j, score
		}
	}

	return best
}

// roundIntegral returns a copy of x with integer columns rounded.
func (m *Model) roundIntegral(x []float64) []float64 {
	out := append([]float64(nil), x...)
	for j, v := range m.vars {
		if v.typ != Continuous {
			out[j] = math.Round(out[j])
		}
	}

	return out
}

// violatesAny reports whether x violates one of rows by more than feasTol.
func (m *Model) violatesAny(rows []row, x []float64) bool {
	for _, r := range rows {
		if r.violation(x) > m.feasTol {
			return true
		}
	}

	return false
}
