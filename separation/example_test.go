// SPDX-License-Identifier: MIT

package separation_test

import (
	"fmt"

	"github.com/katalvlaran/atspcut/matrix"
	"github.com/katalvlaran/atspcut/separation"
)

func ExampleDetect() {
	sel := separation.NewSelection(4)
	_ = sel.Select(0, 1)
	_ = sel.Select(1, 0)
	_ = sel.Select(2, 3)
	_ = sel.Select(3, 2)
	S, ok := separation.Detect(sel)
	fmt.Println(S, ok)
	// Output: [0 1] true
}

func ExampleSeparator_Separate() {
	x, _ := matrix.NewDenseFrom([][]float64{
		{0, 0.8, 0.2, 0},
		{0.8, 0, 0, 0.2},
		{0.2, 0, 0, 0.8},
		{0, 0.2, 0.8, 0},
	})
	cut, ok, err := separation.NewSeparator(nil, separation.DefaultOptions()).Separate(x)
	fmt.Println(cut.S, fmt.Sprintf("%.1f", cut.Value), ok, err)
	// Output: [2 3] 0.4 true <nil>
}
