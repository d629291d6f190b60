// SPDX-License-Identifier: MIT

package tsp

import "errors"

var (
	// ErrDimensionMismatch is returned when a tour or successor array does
	// not fit the problem size.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange is returned when the start vertex is not in [0,n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrNotHamiltonian is returned when a successor array closes a cycle
	// before visiting every vertex.
	ErrNotHamiltonian = errors.New("tsp: successors do not form a Hamiltonian cycle")

	// ErrIncompleteGraph is returned when no Hamiltonian cycle exists.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")

	// ErrNonSquare is returned for a non-square distance matrix.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrNegativeWeight is returned for a negative arc weight on a tour.
	ErrNegativeWeight = errors.New("tsp: negative arc weight")

	// ErrTooLarge is returned by HeldKarp when n > MaxHeldKarp.
	ErrTooLarge = errors.New("tsp: instance too large for Held–Karp")
)

// Result holds the outcome of an exact solve.
type Result struct {
	// Tour starts and ends at 0; len(Tour) == n+1.
	Tour []int

	// Cost is the total distance of the cycle.
	Cost float64
}
