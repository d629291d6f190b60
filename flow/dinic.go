// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/atspcut/matrix"
)

// Dinic computes a minimum source–sink cut of the dense network `capacity`
// using Dinic's algorithm (level graph + blocking flows).
//
// Steps:
//  1. Normalize options and validate inputs (O(n²) copy into the residual buffer).
//  2. Repeat until the sink is unreachable:
//     a. Check for cancellation.
//     b. BFS from the source to assign levels over arcs with residual > Epsilon.
//     c. If the sink has no level, stop.
//     d. Push blocking flow with DFS along level+1 arcs, advancing a per-node
//     arc pointer so each arc is scanned once per phase; optionally rebuild
//     the level graph every LevelRebuildInterval augmentations.
//  3. Return the cut induced by residual reachability from the source.
//
// Complexity:
//
//	Time:   O(V²·E), E ≤ V².
//	Memory: O(V²).
func Dinic(capacity *matrix.Dense, source, sink int, opts Options) (Cut, error) {
	// 1) Normalize options and build residual network
	opts.normalize()
	ctx := opts.Ctx
	g, err := newNetwork(capacity, source, sink, opts.Epsilon)
	if err != nil {
		return Cut{}, err
	}

	var (
		maxFlow      float64
		augmentCount int
		level        = make([]int, g.n)
		iter         = make([]int, g.n)
		queue        = make([]int, 0, g.n)
	)
	for {
		// 2a) Cancellation check before BFS
		if err = ctx.Err(); err != nil {
			return Cut{}, err
		}

		// 2b) BFS levels
		if !g.levels(source, sink, level, queue) {
			// 2c) Sink unreachable: flow is maximum
			break
		}

		// 2d) Blocking flow
		for i := range iter {
			iter[i] = 0
		}
		for {
			if err = ctx.Err(); err != nil {
				return Cut{}, err
			}
			pushed := g.dinicPush(ctx, level, iter, source, sink, math.Inf(1))
			if pushed == 0 {
				break
			}
			maxFlow += pushed
			augmentCount++
			opts.Logger.Debug("dinic augment",
				zap.Float64("pushed", pushed), zap.Float64("total", maxFlow))
			if opts.LevelRebuildInterval > 0 && augmentCount%opts.LevelRebuildInterval == 0 {
				break
			}
		}
	}

	// 3) Cut from residual reachability
	return g.cut(source), nil
}

// levels fills level[] by BFS from source and reports whether sink got a level.
func (g *network) levels(source, sink int, level, queue []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue = append(queue[:0], source)
	var u, v int
	for head := 0; head < len(queue); head++ {
		u = queue[head]
		for v = 0; v < g.n; v++ {
			if level[v] < 0 && g.residual(u, v) > g.eps {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level[sink] >= 0
}

// dinicPush recursively pushes flow along the level graph from u to sink,
// updating residual capacities in place, and returns the amount sent.
func (g *network) dinicPush(
	ctx context.Context,
	level, iter []int,
	u, sink int,
	available float64,
) float64 {
	if ctx.Err() != nil {
		return 0
	}
	if u == sink {
		return available
	}
	var capUV, send, pushed float64
	for ; iter[u] < g.n; iter[u]++ {
		v := iter[u]
		if level[v] != level[u]+1 {
			continue
		}
		capUV = g.residual(u, v)
		if capUV <= g.eps {
			continue
		}
		send = math.Min(available, capUV)
		pushed = g.dinicPush(ctx, level, iter, v, sink, send)
		if pushed > 0 {
			g.augment(u, v, pushed)

			return pushed
		}
	}

	return 0
}
