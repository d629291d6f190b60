// SPDX-License-Identifier: MIT

// Package separation finds violated subtour-elimination constraints for the
// ATSP arc model x[i][j] ∈ {0,1}:
//
//	Σ_{i∉S, j∈S} x[i][j] ≥ 1   for every S with 0 < |S| < n.
//
// Two separators are provided:
//
//   - Detect works on integral points (a Selection of arcs). It follows each
//     node's successor and returns the first directed cycle shorter than n.
//     O(n²), deterministic.
//
//   - Separator.Separate works on fractional points. With arc weights as
//     capacities it computes, for the fixed source 0 and every sink
//     t = 1..n-1 in order, a minimum 0–t cut. The first cut with value
//     < 1 − Epsilon yields S = the sink side of that cut, so the built
//     constraint's left-hand side over the input equals the cut value.
//
// BuildCut turns S into a mip.Constraint over an ArcVars grid.
//
// Nothing in this package keeps state between calls except the Separator's
// reusable capacity buffer, which never influences results.
package separation
