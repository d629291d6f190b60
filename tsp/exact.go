// SPDX-License-Identifier: MIT

package tsp

import (
	"math"

	"github.com/katalvlaran/atspcut/matrix"
)

// MaxHeldKarp bounds the instance size accepted by HeldKarp (2ⁿ·n table).
const MaxHeldKarp = 16

// HeldKarp solves the asymmetric TSP exactly with the Held–Karp DP.
//
// dp[mask][j] = minimum cost of a path that starts at 0, visits exactly the
// vertices in mask (bit 0 always set) and ends at j. The tour is closed by
// returning from the best j to 0. Arcs are directed: dist(k,j) is used for k→j.
// The diagonal is ignored.
//
// Steps:
//  1. Validate shape (square, 2 ≤ n ≤ MaxHeldKarp).
//  2. Fill dp over masks in increasing order; masks without bit 0 are skipped.
//  3. Close the cycle and reconstruct the tour from the parent table.
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrTooLarge, ErrIncompleteGraph.
//
// Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
func HeldKarp(dist *matrix.Dense) (Result, error) {
	if dist == nil {
		return Result{}, ErrDimensionMismatch
	}
	if !dist.IsSquare() {
		return Result{}, ErrNonSquare
	}
	n := dist.Rows()
	if n < 2 {
		return Result{}, ErrDimensionMismatch
	}
	if n > MaxHeldKarp {
		return Result{}, ErrTooLarge
	}

	// Flat copy of the weights: w[k*n+j].
	w := make([]float64, n*n)
	for k := 0; k < n; k++ {
		row, _ := dist.Row(k)
		copy(w[k*n:], row)
	}

	full := (1 << n) - 1
	dp := make([]float64, (full+1)*n)
	parent := make([]int, (full+1)*n)
	for i := range dp {
		dp[i] = math.Inf(1)
		parent[i] = -1
	}
	dp[1*n+0] = 0

	var (
		mask, prev, j, k int
		cand, c          float64
	)
	for mask = 1; mask <= full; mask++ {
		if mask&1 == 0 {
			continue
		}
		for j = 1; j < n; j++ {
			if mask&(1<<j) == 0 {
				continue
			}
			prev = mask ^ (1 << j)
			for k = 0; k < n; k++ {
				if prev&(1<<k) == 0 || math.IsInf(dp[prev*n+k], 1) {
					continue
				}
				c = w[k*n+j]
				if math.IsInf(c, 1) {
					continue
				}
				cand = dp[prev*n+k] + c
				if cand < dp[mask*n+j] {
					dp[mask*n+j] = cand
					parent[mask*n+j] = k
				}
			}
		}
	}

	best := math.Inf(1)
	last := -1
	for j = 1; j < n; j++ {
		c = w[j*n]
		if math.IsInf(c, 1) || math.IsInf(dp[full*n+j], 1) {
			continue
		}
		if total := dp[full*n+j] + c; total < best {
			best = total
			last = j
		}
	}
	if last < 0 {
		return Result{}, ErrIncompleteGraph
	}

	tour := make([]int, n+1)
	mask = full
	j = last
	for i := n - 1; i >= 1; i-- {
		tour[i] = j
		k = parent[mask*n+j]
		mask ^= 1 << j
		j = k
	}

	return Result{Tour: tour, Cost: round1e9(best)}, nil
}
