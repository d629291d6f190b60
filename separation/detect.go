// SPDX-License-Identifier: MIT

package separation

// Detect decomposes an integral arc selection into successor cycles and
// returns the first cycle with fewer than n nodes, in trace order.
//
// Steps:
//  1. For each start node in increasing order that no earlier trace reached,
//     follow Successor (lowest selected column) and record the trace.
//  2. Reaching a node of the current trace at position k closes the cycle
//     trace[k:]. If it has fewer than n nodes it is returned; a cycle over all
//     n nodes means the selection is a tour and there is no violation.
//  3. A node without a successor, or a step into a node traced earlier, ends
//     the trace; the partial trace is discarded as non-violating.
//
// Complexity: O(n²) time, O(n) space. Every node joins at most one trace.
func Detect(sel *Selection) ([]int, bool) {
	if sel == nil || sel.n == 0 {
		return nil, false
	}
	n := sel.n
	owner := make([]int, n) // 0 = unvisited, else start+1 of the trace that reached it
	pos := make([]int, n)
	trace := make([]int, 0, n)

	var (
		start, cur, id, nxt int
		ok                  bool
	)
	for start = 0; start < n; start++ {
		if owner[start] != 0 {
			continue
		}
		id = start + 1
		trace = trace[:0]
		cur = start
		for {
			if owner[cur] == id {
				cycle := trace[pos[cur]:]
				if len(cycle) == n {
					return nil, false
				}

				return append([]int(nil), cycle...), true
			}
			if owner[cur] != 0 {
				break
			}
			owner[cur] = id
			pos[cur] = len(trace)
			trace = append(trace, cur)
			if nxt, ok = sel.Successor(cur); !ok {
				break
			}
			cur = nxt
		}
	}

	return nil, false
}
