// SPDX-License-Identifier: MIT

package separation

import "errors"

// Epsilon is the absolute tolerance of the fractional separator: a cut is
// violated only when its value is below 1 − Epsilon.
const Epsilon = 1e-6

var (
	// ErrNonSquare is returned for a non-square solution matrix.
	ErrNonSquare = errors.New("separation: solution matrix is not square")

	// ErrOutOfRange is returned for arc indices outside [0,n).
	ErrOutOfRange = errors.New("separation: arc index out of range")
)

// Cut is a violated subtour-elimination witness.
//   - S: the node set whose in-cut is too small, increasing order for
//     fractional cuts, trace order for integral ones.
//   - Value: Σ_{i∉S, j∈S} x[i][j] on the separated point.
//   - Sink: the min-cut sink that exposed S (fractional cuts only, else -1).
type Cut struct {
	S     []int
	Value float64
	Sink  int
}

// Options configures a Separator.
//   - Epsilon: violation tolerance (default Epsilon).
type Options struct {
	Epsilon float64
}

// DefaultOptions returns Options{Epsilon: Epsilon}.
func DefaultOptions() Options { return Options{Epsilon: Epsilon} }

func (o *Options) normalize() {
	if o.Epsilon <= 0 {
		o.Epsilon = Epsilon
	}
}
