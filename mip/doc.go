// SPDX-License-Identifier: MIT

// Package mip is a small pure-Go mixed-integer programming engine: linear
// relaxations are solved with gonum's simplex, integrality is enforced by
// depth-first branch-and-bound, and user code can strengthen the model while
// the search runs through callbacks.
//
// Model:
//
//	minimize   Σ c_j x_j
//	subject to rows  Σ a_rj x_j  {≤, ≥, =}  b_r
//	           lb_j ≤ x_j ≤ ub_j, x_j integral for Binary/Integer vars
//
// Rows come from three pools, all part of every relaxation solved after
// they are added:
//   - model constraints (AddConstr),
//   - lazy constraints (CallbackContext.AddLazy),
//   - user cuts (AddUserCut, CallbackContext.AddCut).
//
// Callbacks:
//
//	MIPSol  - fired for every integral relaxation solution (candidate incumbent).
//	          Lazy constraints added here that cut off the candidate make the
//	          node re-solve; otherwise the candidate becomes the incumbent.
//	MIPNode - fired when a node relaxation is optimal but fractional.
//	          Violated cuts added here make the node re-solve, at most
//	          MaxCutRounds times per node.
//
// Search: depth-first, most-fractional branching (ties → lowest index),
// up-branch explored first. The wall-clock limit and context are checked
// before every node.
//
// A Model is not safe for concurrent use. Callbacks run synchronously on the
// goroutine that called Optimize.
package mip
