// SPDX-License-Identifier: MIT

// Package branchcut solves the Asymmetric TSP with the arc model
//
//	min Σ d[i][j]·x[i][j]
//	s.t. Σ_j x[i][j] = 1, Σ_j x[j][i] = 1   (every node i)
//	     x[i][j] ∈ {0,1}, i ≠ j
//
// and no subtour-elimination constraints up front. A Solver drives the MIP
// engine and adds violated cuts Σ_{i∉S, j∈S} x[i][j] ≥ 1 as they are found.
//
// Modes:
//
//   - ModeLazy: branch-and-bound with a callback. Every integer candidate is
//     checked with separation.Detect; a subtour becomes one lazy constraint.
//     With Options.NodeCuts the callback also separates optimal fractional
//     nodes with the min-cut separator and adds user cuts.
//   - ModeRelaxation: an explicit loop over the LP relaxation. Each round
//     solves, separates the fractional point and adds one user cut, until no
//     cut is violated, the time budget runs out, or the engine stops.
//
// Both modes share one wall-clock deadline computed when Solve starts
// (Options.TimeLimit, tightened by the context deadline). Cut counters belong
// to the Solver and are reset by every Solve. Engine and oracle failures abort
// the solve and are reported as ErrEngineFault.
package branchcut
