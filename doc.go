// SPDX-License-Identifier: MIT

// Package atspcut solves the Asymmetric Traveling Salesman Problem with
// branch-and-cut, generating subtour-elimination constraints on demand
// instead of writing the exponential family up front.
//
// 🚀 What is inside?
//
//	• Instance model: validated n×n distances, TSPLIB FULL_MATRIX loader
//	• Min-cut oracle: Dinic and Edmonds–Karp over a dense capacity buffer
//	• Separation: integral subtour detection and fractional min-cut separation
//	• MIP engine: LP-based branch-and-bound with lazy constraints and user cuts
//	• Driver: lazy (callback) and relaxation-loop modes, one deadline per solve
//	• Exact reference: Held–Karp for small instances
//
// Packages:
//
//	matrix/      dense row-major float64 buffer
//	instance/    ATSP instance, TSPLIB parsing
//	flow/        max-flow / min-cut oracle
//	mip/         branch-and-bound over gonum simplex relaxations, callbacks
//	separation/  Detect, Separator, BuildCut
//	branchcut/   Solver: model construction, separation driver, cut counters
//	tsp/         tours, tour cost, Held–Karp
//	cmd/atspcut  `solve` and `bench` commands
//
// The cut family, for every node set S with 0 < |S| < n:
//
//	Σ_{i∉S, j∈S} x[i][j] ≥ 1
//
//	  ┌─────┐  x ≥ 1  ┌─────┐
//	  │  S̄  │ ──────▶ │  S  │
//	  └─────┘         └─────┘
//
//	go install github.com/katalvlaran/atspcut/cmd/atspcut@latest
package atspcut
