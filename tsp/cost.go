// SPDX-License-Identifier: MIT

package tsp

import (
	"math"

	"github.com/katalvlaran/atspcut/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums d(tour[i], tour[i+1]) over a closed tour on a square matrix.
//
// Returns ErrNonSquare, ErrDimensionMismatch (short tour or index out of range),
// ErrIncompleteGraph (±Inf weight) or ErrNegativeWeight.
//
// Complexity: O(n).
func TourCost(dist *matrix.Dense, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	if !dist.IsSquare() {
		return 0, ErrNonSquare
	}

	var (
		sum  float64
		w    float64
		err  error
		i    int
		last = len(tour) - 1
	)
	for i = 0; i < last; i++ {
		w, err = dist.At(tour[i], tour[i+1])
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		if math.IsInf(w, 0) {
			return 0, ErrIncompleteGraph
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
