// SPDX-License-Identifier: MIT

package branchcut

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/atspcut/mip"
	"github.com/katalvlaran/atspcut/separation"
)

// runLoop is the relaxation cutting-plane loop:
//
//	solve LP → stop on no solution or a status other than Optimal/TimeLimit
//	         → separate → stop if nothing is violated
//	         → add one user cut → stop if the round hit the time limit
//	         → repeat
//
// Every round re-reads the remaining budget and never solves with ≤ 0 left.
func (s *Solver) runLoop(ctx context.Context, deadline time.Time) error {
	s.engine.SetRelaxed(true)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return nil
		}
		s.engine.SetTimeLimit(remaining)
		s.iters++
		if err := s.engine.Optimize(ctx); err != nil {
			return fmt.Errorf("%w: optimize round %d: %w", ErrEngineFault, s.iters, err)
		}
		st := s.engine.Status()
		if s.engine.SolCount() == 0 || (st != mip.Optimal && st != mip.TimeLimit) {
			s.log.Debug("relaxation loop stopped", zap.Stringer("status", st), zap.Int("round", s.iters))
			return nil
		}
		hitLimit := st == mip.TimeLimit

		if err := s.arcs.Values(s.engine, s.x); err != nil {
			return fmt.Errorf("%w: %w", ErrEngineFault, err)
		}
		cut, ok, err := s.sep.Separate(s.x)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrEngineFault, err)
		}
		if !ok {
			return nil
		}
		if err = s.engine.AddUserCut(separation.BuildCut(cut.S, s.arcs)); err != nil {
			return fmt.Errorf("%w: add cut: %w", ErrEngineFault, err)
		}
		s.user++
		s.log.Debug("relaxation cut", zap.Ints("S", cut.S), zap.Float64("value", cut.Value),
			zap.Int("round", s.iters))
		if hitLimit {
			return nil
		}
	}
}
