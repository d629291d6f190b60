// SPDX-License-Identifier: MIT

package flow

import (
	"math"

	"github.com/katalvlaran/atspcut/matrix"
)

// network is the residual state shared by all algorithms.
// Both buffers are n×n row-major: cap[u*n+v].
type network struct {
	n    int
	orig []float64 // cleaned input capacities
	cap  []float64 // residual capacities, mutated by augmentations
	eps  float64
}

// newNetwork validates the inputs and copies capacity into a residual buffer.
//
// Steps:
//  1. Reject nil / non-square matrices and bad terminals.
//  2. For every off-diagonal arc: NaN/Inf or c < -eps → CapacityError;
//     c ≤ eps → 0 (absent arc); otherwise keep c.
//  3. The diagonal is always 0.
//
// Complexity: O(n²).
func newNetwork(capacity *matrix.Dense, source, sink int, eps float64) (*network, error) {
	if capacity == nil {
		return nil, matrix.ErrNilMatrix
	}
	if !capacity.IsSquare() {
		return nil, ErrNonSquare
	}
	n := capacity.Rows()
	if source < 0 || source >= n {
		return nil, ErrSourceOutOfRange
	}
	if sink < 0 || sink >= n {
		return nil, ErrSinkOutOfRange
	}
	if source == sink {
		return nil, ErrSourceIsSink
	}

	g := &network{n: n, orig: make([]float64, n*n), cap: make([]float64, n*n), eps: eps}
	var (
		u, v int
		c    float64
		row  []float64
	)
	for u = 0; u < n; u++ {
		row, _ = capacity.Row(u)
		for v = 0; v < n; v++ {
			if u == v {
				continue
			}
			c = row[v]
			if math.IsNaN(c) || math.IsInf(c, 0) || c < -eps {
				return nil, CapacityError{From: u, To: v, Cap: c}
			}
			if c <= eps {
				continue
			}
			g.orig[u*n+v] = c
		}
	}
	copy(g.cap, g.orig)

	return g, nil
}

// residual returns the remaining capacity of u→v.
func (g *network) residual(u, v int) float64 { return g.cap[u*g.n+v] }

// augment sends f units along u→v.
func (g *network) augment(u, v int, f float64) {
	g.cap[u*g.n+v] -= f
	g.cap[v*g.n+u] += f
}

// reachable marks every node reachable from source over arcs with
// residual capacity > eps. BFS in increasing node order.
func (g *network) reachable(source int) []bool {
	seen := make([]bool, g.n)
	seen[source] = true
	queue := make([]int, 1, g.n)
	queue[0] = source
	var u, v int
	for head := 0; head < len(queue); head++ {
		u = queue[head]
		for v = 0; v < g.n; v++ {
			if !seen[v] && g.residual(u, v) > g.eps {
				seen[v] = true
				queue = append(queue, v)
			}
		}
	}

	return seen
}

// cut builds the final Cut from the residual state. The value is the sum of
// original capacities crossing from the source side to the sink side.
func (g *network) cut(source int) Cut {
	side := g.reachable(source)
	var (
		value float64
		u, v  int
	)
	for u = 0; u < g.n; u++ {
		if !side[u] {
			continue
		}
		for v = 0; v < g.n; v++ {
			if !side[v] {
				value += g.orig[u*g.n+v]
			}
		}
	}

	return Cut{Value: value, SourceSide: side}
}
