// SPDX-License-Identifier: MIT

package tsp

// TourFromSuccessors follows succ from start and returns the closed tour
// start → succ[start] → ... → start.
//
// Contract:
//   - len(succ) == n ≥ 2, every succ[i] ∈ [0,n).
//   - The walk must return to start after exactly n steps, otherwise
//     ErrNotHamiltonian (a shorter cycle or a walk that never closes).
//
// Complexity: O(n) time, O(n) space.
func TourFromSuccessors(succ []int, start int) ([]int, error) {
	n := len(succ)
	if n < 2 {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	tour := make([]int, 0, n+1)
	seen := make([]bool, n)
	var (
		i   int
		cur = start
	)
	for i = 0; i < n; i++ {
		if cur < 0 || cur >= n {
			return nil, ErrDimensionMismatch
		}
		if seen[cur] {
			return nil, ErrNotHamiltonian
		}
		seen[cur] = true
		tour = append(tour, cur)
		cur = succ[cur]
	}
	if cur != start {
		return nil, ErrNotHamiltonian
	}

	return append(tour, start), nil
}

// ValidateTour enforces Hamiltonian-cycle invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// Successors is the inverse of TourFromSuccessors: succ[tour[i]] = tour[i+1].
// The tour must be valid for n = len(tour)-1.
func Successors(tour []int) ([]int, error) {
	n := len(tour) - 1
	if n < 1 {
		return nil, ErrDimensionMismatch
	}
	if err := ValidateTour(tour, n, tour[0]); err != nil {
		return nil, err
	}
	succ := make([]int, n)
	for i := 0; i < n; i++ {
		succ[tour[i]] = tour[i+1]
	}

	return succ, nil
}
