// SPDX-License-Identifier: MIT

package flow

import (
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/atspcut/matrix"
)

// EdmondsKarp computes a minimum source–sink cut of the dense network
// `capacity` using the Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// Steps:
//  1. Normalize options and validate inputs.
//  2. Repeat: BFS from the source recording parents and bottlenecks; stop when
//     the sink is not reached; otherwise augment along the parent chain.
//  3. Return the cut induced by residual reachability from the source.
//
// Complexity: O(V·E²) time, O(V²) memory.
func EdmondsKarp(capacity *matrix.Dense, source, sink int, opts Options) (Cut, error) {
	opts.normalize()
	ctx := opts.Ctx
	g, err := newNetwork(capacity, source, sink, opts.Epsilon)
	if err != nil {
		return Cut{}, err
	}

	var (
		maxFlow float64
		parent  = make([]int, g.n)
		bottle  = make([]float64, g.n)
		queue   = make([]int, 0, g.n)
		u, v    int
	)
	for {
		if err = ctx.Err(); err != nil {
			return Cut{}, err
		}
		if !g.bfsAugmentingPath(source, sink, parent, bottle, queue) {
			break
		}
		f := bottle[sink]
		for v = sink; v != source; v = u {
			u = parent[v]
			g.augment(u, v, f)
		}
		maxFlow += f
		opts.Logger.Debug("edmonds-karp augment",
			zap.Float64("pushed", f), zap.Float64("total", maxFlow))
	}

	return g.cut(source), nil
}

// bfsAugmentingPath finds a fewest-arcs path source→sink over residual > eps.
// On success parent[] encodes the path and bottle[sink] its bottleneck.
func (g *network) bfsAugmentingPath(source, sink int, parent []int, bottle []float64, queue []int) bool {
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source
	bottle[source] = math.Inf(1)
	queue = append(queue[:0], source)
	var u, v int
	var c float64
	for head := 0; head < len(queue); head++ {
		u = queue[head]
		for v = 0; v < g.n; v++ {
			if parent[v] >= 0 {
				continue
			}
			c = g.residual(u, v)
			if c <= g.eps {
				continue
			}
			parent[v] = u
			bottle[v] = math.Min(bottle[u], c)
			if v == sink {
				return true
			}
			queue = append(queue, v)
		}
	}

	return false
}
