// SPDX-License-Identifier: MIT

package separation

import (
	"fmt"

	"github.com/katalvlaran/atspcut/flow"
	"github.com/katalvlaran/atspcut/matrix"
)

// Separator finds violated directed cuts in fractional arc solutions.
// It owns one n×n capacity buffer reused across calls; a Separator is not
// safe for concurrent use.
type Separator struct {
	oracle   flow.Oracle
	eps      float64
	capacity *matrix.Dense
}

// NewSeparator binds a min-cut oracle. A nil oracle selects flow.New(flow.DefaultOptions()).
func NewSeparator(oracle flow.Oracle, opts Options) *Separator {
	opts.normalize()
	if oracle == nil {
		oracle = flow.New(flow.DefaultOptions())
	}

	return &Separator{oracle: oracle, eps: opts.Epsilon}
}

// Epsilon returns the violation tolerance in use.
func (s *Separator) Epsilon() float64 { return s.eps }

// Separate scans sinks t = 1..n-1 with source 0 and returns the first cut
// whose value is below 1 − Epsilon, with S the sink side of that cut.
// Cuts whose S would be empty or the whole node set are skipped.
//
// Steps:
//  1. capacity[i][j] = max(sol[i][j], 0), capacity[i][i] = 0.
//  2. For each t: MinCut(capacity, 0, t); value ≥ 1 − Epsilon → next t.
//  3. Otherwise S = sink side; degenerate S → next t; else return.
//
// Oracle failures are returned wrapped and never reported as "no violation".
//
// Complexity: n-1 min-cut computations.
func (s *Separator) Separate(sol *matrix.Dense) (Cut, bool, error) {
	if sol == nil {
		return Cut{}, false, matrix.ErrNilMatrix
	}
	if !sol.IsSquare() {
		return Cut{}, false, ErrNonSquare
	}
	n := sol.Rows()
	if n < 2 {
		return Cut{}, false, nil
	}
	if err := s.load(sol); err != nil {
		return Cut{}, false, err
	}

	for t := 1; t < n; t++ {
		mc, err := s.oracle.MinCut(s.capacity, 0, t)
		if err != nil {
			return Cut{}, false, fmt.Errorf("separation: min cut 0→%d: %w", t, err)
		}
		if mc.Value >= 1-s.eps {
			continue
		}
		S := mc.SinkNodes()
		if len(S) == 0 || len(S) == n {
			continue
		}

		return Cut{S: S, Value: mc.Value, Sink: t}, true, nil
	}

	return Cut{}, false, nil
}

// load copies sol into the capacity buffer, allocating it on size change.
func (s *Separator) load(sol *matrix.Dense) error {
	n := sol.Rows()
	if s.capacity == nil || s.capacity.Rows() != n {
		c, err := matrix.NewSquare(n)
		if err != nil {
			return err
		}
		s.capacity = c
	}
	if err := s.capacity.CopyFrom(sol); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		row, _ := s.capacity.Row(i)
		for j, v := range row {
			if v < 0 {
				row[j] = 0
			}
		}
	}

	return s.capacity.ZeroDiagonal()
}
