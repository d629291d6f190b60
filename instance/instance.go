// SPDX-License-Identifier: MIT

package instance

import (
	"fmt"
	"math"

	"github.com/katalvlaran/atspcut/matrix"
)

// Instance is an ATSP instance: n nodes and the distance of every arc i→j, i≠j.
type Instance struct {
	// Name and Comment come from the TSPLIB header when loaded from a file.
	Name    string
	Comment string

	n    int
	dist *matrix.Dense
}

// New builds an Instance from a square [][]float64. The input is copied;
// diagonal entries are ignored.
//
// Errors: ErrTooSmall, ErrNonSquare, ErrNegativeDistance, ErrInvalidDistance.
//
// Complexity: O(n²).
func New(dist [][]float64) (*Instance, error) {
	if err := Validate(dist); err != nil {
		return nil, err
	}
	n := len(dist)
	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		row, _ := m.Row(i)
		copy(row, dist[i])
		row[i] = 0
	}

	return &Instance{n: n, dist: m}, nil
}

// Validate checks a raw distance matrix without building an Instance:
// n ≥ 2, every row of length n, off-diagonal entries finite and non-negative.
// The diagonal is not inspected.
func Validate(dist [][]float64) error {
	n := len(dist)
	if n < 2 {
		return ErrTooSmall
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(dist[i]), n)
		}
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := checkDistance(i, j, dist[i][j]); err != nil {
				return err
			}
		}
	}

	return nil
}

// FromMatrix builds an Instance from a square Dense. The matrix is cloned,
// so later mutations of dist do not leak into the instance.
func FromMatrix(dist *matrix.Dense) (*Instance, error) {
	if dist == nil {
		return nil, matrix.ErrNilMatrix
	}
	if !dist.IsSquare() {
		return nil, ErrNonSquare
	}
	n := dist.Rows()
	if n < 2 {
		return nil, ErrTooSmall
	}
	m := dist.Clone()
	_ = m.ZeroDiagonal() // square checked above

	var (
		i, j int
		row  []float64
	)
	for i = 0; i < n; i++ {
		row, _ = m.Row(i)
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := checkDistance(i, j, row[j]); err != nil {
				return nil, err
			}
		}
	}

	return &Instance{n: n, dist: m}, nil
}

// checkDistance applies the off-diagonal policy: finite and non-negative.
func checkDistance(i, j int, d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return fmt.Errorf("%w: d(%d,%d)=%v", ErrInvalidDistance, i, j, d)
	}
	if d < 0 {
		return fmt.Errorf("%w: d(%d,%d)=%v", ErrNegativeDistance, i, j, d)
	}

	return nil
}

// N returns the number of nodes.
func (in *Instance) N() int { return in.n }

// Distance returns d(i,j); 0 for i==j. Out-of-range indices yield an error
// from the matrix package.
func (in *Instance) Distance(i, j int) (float64, error) {
	return in.dist.At(i, j)
}

// Matrix returns a copy of the distance matrix.
func (in *Instance) Matrix() *matrix.Dense { return in.dist.Clone() }

// Rows returns the distance matrix as [][]float64 (a copy).
func (in *Instance) Rows() [][]float64 {
	out := make([][]float64, in.n)
	for i := 0; i < in.n; i++ {
		row, _ := in.dist.Row(i)
		out[i] = append([]float64(nil), row...)
	}

	return out
}

// String implements fmt.Stringer.
func (in *Instance) String() string {
	if in.Name != "" {
		return fmt.Sprintf("%s (n=%d)", in.Name, in.n)
	}

	return fmt.Sprintf("atsp (n=%d)", in.n)
}
