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

// runLazy runs one branch-and-bound with the separation callback registered.
func (s *Solver) runLazy(ctx context.Context, deadline time.Time) error {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		return nil
	}
	s.engine.SetRelaxed(false)
	s.engine.SetTimeLimit(remaining)
	s.engine.SetCallback(mip.CallbackFunc(s.dispatch))
	s.iters++
	if err := s.engine.Optimize(ctx); err != nil {
		return fmt.Errorf("%w: optimize: %w", ErrEngineFault, err)
	}

	return nil
}

// dispatch routes engine events. Integer candidates are always checked;
// fractional nodes only with Options.NodeCuts and an optimal relaxation.
func (s *Solver) dispatch(cb mip.CallbackContext) error {
	switch cb.Where() {
	case mip.MIPSol:
		return s.onCandidate(cb)
	case mip.MIPNode:
		if !s.opts.NodeCuts || cb.NodeStatus() != mip.Optimal {
			return nil
		}

		return s.onNode(cb)
	default:
		return nil
	}
}

// onCandidate adds at most one lazy subtour cut for an integer candidate.
func (s *Solver) onCandidate(cb mip.CallbackContext) error {
	if err := s.arcs.Values(cb, s.x); err != nil {
		return err
	}
	sel, err := separation.Round(s.x)
	if err != nil {
		return err
	}
	S, ok := separation.Detect(sel)
	if !ok {
		return nil
	}
	if err = cb.AddLazy(separation.BuildCut(S, s.arcs)); err != nil {
		return err
	}
	s.lazy++
	s.log.Debug("lazy cut", zap.Ints("S", S), zap.Int("count", s.lazy))

	return nil
}

// onNode adds at most one user cut for an optimal fractional node.
func (s *Solver) onNode(cb mip.CallbackContext) error {
	if err := s.arcs.Values(cb, s.x); err != nil {
		return err
	}
	cut, ok, err := s.sep.Separate(s.x)
	if err != nil || !ok {
		return err
	}
	if err = cb.AddCut(separation.BuildCut(cut.S, s.arcs)); err != nil {
		return err
	}
	s.user++
	s.log.Debug("node cut", zap.Ints("S", cut.S), zap.Float64("value", cut.Value),
		zap.Int("sink", cut.Sink), zap.Int("count", s.user))

	return nil
}
