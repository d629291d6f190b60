// SPDX-License-Identifier: MIT

// Package flow computes minimum s–t cuts on dense directed networks.
//
// A network is a square *matrix.Dense of capacities: capacity(i,j) is the
// capacity of arc i→j, the diagonal is ignored, and capacities ≤ Epsilon are
// treated as absent. Every algorithm runs max-flow to completion and then
// reports the cut as the set of nodes still reachable from the source in the
// residual network (capacity > Epsilon). That set is the source side; all other
// nodes, the sink included, form the sink side.
//
// Algorithms:
//
//   - Dinic
//   - Method: BFS level graph + DFS blocking flows with per-node arc pointers.
//   - Time:   O(V²·E) worst case, E = V² on a dense matrix.
//   - Memory: O(V²) residual buffer + O(V) level/iterator state.
//
//   - Edmonds–Karp
//   - Method: BFS shortest augmenting paths.
//   - Time:   O(V·E²) worst case.
//   - Memory: O(V²) residual buffer + O(V) parent/bottleneck state.
//
// # API
//
//	type Oracle interface {
//	    MinCut(capacity *matrix.Dense, source, sink int) (Cut, error)
//	}
//
// New(Options) returns the Oracle for Options.Algorithm. Dinic and EdmondsKarp
// are also callable directly.
//
// # Errors
//
//	matrix.ErrNilMatrix  - nil capacity matrix.
//	ErrNonSquare         - capacity matrix is not n×n.
//	ErrSourceOutOfRange  - source ∉ [0,n).
//	ErrSinkOutOfRange    - sink ∉ [0,n).
//	ErrSourceIsSink      - source == sink.
//	CapacityError        - NaN, ±Inf or negative (beyond Epsilon) capacity.
//	context.Canceled / context.DeadlineExceeded - if Options.Ctx is done.
package flow
