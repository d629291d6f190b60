// SPDX-License-Identifier: MIT

// Package tsp holds tour utilities and an exact reference solver for the
// asymmetric TSP on a dense distance matrix.
//
//   - TourFromSuccessors turns a successor array (x[i][succ[i]] = 1) into a
//     closed tour, rejecting successor arrays with subtours.
//   - ValidateTour enforces the closed Hamiltonian-cycle shape.
//   - TourCost sums d(tour[i], tour[i+1]) along a closed tour.
//   - HeldKarp solves ATSP exactly by DP over subsets.
//     Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory; n ≤ MaxHeldKarp.
//
// Tours are closed: len(tour) == n+1 and tour[0] == tour[n] == start.
package tsp
