// SPDX-License-Identifier: MIT

package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/atspcut/matrix"
	"github.com/katalvlaran/atspcut/tsp"
)

// ExampleHeldKarp solves a 3-node asymmetric instance exactly.
func ExampleHeldKarp() {
	d, _ := matrix.NewDenseFrom([][]float64{
		{0, 1, 10},
		{10, 0, 2},
		{3, 10, 0},
	})
	res, _ := tsp.HeldKarp(d)
	fmt.Println(res.Tour, res.Cost)
	// Output:
	// [0 1 2 0] 6
}

// ExampleTourFromSuccessors rebuilds a tour from x[i][succ[i]] = 1.
func ExampleTourFromSuccessors() {
	tour, err := tsp.TourFromSuccessors([]int{1, 2, 0}, 0)
	fmt.Println(tour, err)

	_, err = tsp.TourFromSuccessors([]int{1, 0, 2}, 0)
	fmt.Println(err)
	// Output:
	// [0 1 2 0] <nil>
	// tsp: successors do not form a Hamiltonian cycle
}
