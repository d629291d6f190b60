// SPDX-License-Identifier: MIT

package separation_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/atspcut/flow"
	"github.com/katalvlaran/atspcut/matrix"
	"github.com/katalvlaran/atspcut/separation"
)

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// twoClusters: degree-feasible point where {0,1} and {2,3} exchange 0.4.
func twoClusters(t *testing.T) *matrix.Dense {
	return mustDense(t, [][]float64{
		{0, 0.8, 0.2, 0},
		{0.8, 0, 0, 0.2},
		{0.2, 0, 0, 0.8},
		{0, 0.2, 0.8, 0},
	})
}

func oracles() map[string]flow.Oracle {
	return map[string]flow.Oracle{
		"dinic":        flow.New(flow.Options{Algorithm: flow.AlgoDinic}),
		"edmonds-karp": flow.New(flow.Options{Algorithm: flow.AlgoEdmondsKarp}),
	}
}

// TestSeparateTwoClusters: the {0,1}/{2,3} split is found with value 0.4.
func TestSeparateTwoClusters(t *testing.T) {
	for name, o := range oracles() {
		t.Run(name, func(t *testing.T) {
			sep := separation.NewSeparator(o, separation.DefaultOptions())
			cut, ok, err := sep.Separate(twoClusters(t))
			require.NoError(t, err)
			require.True(t, ok)
			require.Equal(t, []int{2, 3}, cut.S)
			require.Equal(t, 2, cut.Sink)
			require.InDelta(t, 0.4, cut.Value, 1e-12)
		})
	}
}

func TestSeparateIntegralTour(t *testing.T) {
	sol := mustDense(t, [][]float64{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
	})
	_, ok, err := separation.NewSeparator(nil, separation.Options{}).Separate(sol)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestSeparateTolerance pins the 1 − Epsilon boundary.
func TestSeparateTolerance(t *testing.T) {
	sep := separation.NewSeparator(nil, separation.DefaultOptions())
	require.Equal(t, separation.Epsilon, sep.Epsilon())

	below := mustDense(t, [][]float64{{0, 1 - 2e-6}, {1, 0}})
	cut, ok, err := sep.Separate(below)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int{1}, cut.S)

	within := mustDense(t, [][]float64{{0, 1 - 5e-7}, {1, 0}})
	_, ok, err = sep.Separate(within)
	require.NoError(t, err)
	require.False(t, ok)

	above := mustDense(t, [][]float64{
		{0, 0.5 + 1e-6, 0.5 + 1e-6},
		{0, 0, 1},
		{0, 1, 0},
	})
	_, ok, err = sep.Separate(above)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSeparateInputs(t *testing.T) {
	sep := separation.NewSeparator(nil, separation.DefaultOptions())
	_, _, err := sep.Separate(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = sep.Separate(rect)
	require.ErrorIs(t, err, separation.ErrNonSquare)

	one := mustDense(t, [][]float64{{0}})
	_, ok, err := sep.Separate(one)
	require.NoError(t, err)
	require.False(t, ok)

	// negative noise and a non-zero diagonal are ignored
	noisy := mustDense(t, [][]float64{{5, 1, -1e-12}, {-1e-12, 3, 1}, {1, -1e-12, 7}})
	_, ok, err = sep.Separate(noisy)
	require.NoError(t, err)
	require.False(t, ok)
}

// TestSeparateLeavesInputIntact: clamping works on an internal copy, and one
// separator can be reused across sizes.
func TestSeparateLeavesInputIntact(t *testing.T) {
	sep := separation.NewSeparator(nil, separation.DefaultOptions())
	noisy := mustDense(t, [][]float64{{5, 1, -1e-12}, {-1e-12, 3, 1}, {1, -1e-12, 7}})
	before := noisy.Clone()
	_, ok, err := sep.Separate(noisy)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, before.String(), noisy.String())

	cut, ok, err := sep.Separate(twoClusters(t))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int{2, 3}, cut.S)
}

// TestSeparateOracleError: failures surface, never as "no violation".
func TestSeparateOracleError(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	o := flow.OracleFunc(func(*matrix.Dense, int, int) (flow.Cut, error) {
		calls++

		return flow.Cut{}, boom
	})
	_, ok, err := separation.NewSeparator(o, separation.DefaultOptions()).Separate(twoClusters(t))
	require.ErrorIs(t, err, boom)
	require.False(t, ok)
	require.Equal(t, 1, calls)
}

// TestSeparateSkipsDegenerate: an oracle labelling every node one way is ignored.
func TestSeparateSkipsDegenerate(t *testing.T) {
	o := flow.OracleFunc(func(c *matrix.Dense, _, _ int) (flow.Cut, error) {
		return flow.Cut{Value: 0, SourceSide: make([]bool, c.Rows())}, nil
	})
	_, ok, err := separation.NewSeparator(o, separation.DefaultOptions()).Separate(twoClusters(t))
	require.NoError(t, err)
	require.False(t, ok)
}

// TestSeparateSinkOrder: sinks are scanned in increasing order.
func TestSeparateSinkOrder(t *testing.T) {
	var sinks []int
	inner := flow.New(flow.DefaultOptions())
	o := flow.OracleFunc(func(c *matrix.Dense, s, tt int) (flow.Cut, error) {
		sinks = append(sinks, tt)

		return inner.MinCut(c, s, tt)
	})
	sep := separation.NewSeparator(o, separation.DefaultOptions())
	_, ok, err := sep.Separate(twoClusters(t))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []int{1, 2}, sinks)
}

// TestSeparateMatchesBruteForce: a violation is reported exactly when some S
// without node 0 has in-cut weight below 1 − Epsilon, and the reported cut
// evaluates to its value on the input.
func TestSeparateMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sep := separation.NewSeparator(nil, separation.DefaultOptions())
	for iter := 0; iter < 200; iter++ {
		n := 2 + rng.Intn(5)
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				if i != j && rng.Intn(3) > 0 {
					rows[i][j] = float64(rng.Intn(8)) / 10
				}
			}
		}
		sol := mustDense(t, rows)

		best := 1e18
		for mask := 1; mask < 1<<n; mask++ {
			if mask&1 != 0 {
				continue
			}
			var S []int
			for v := 0; v < n; v++ {
				if mask&(1<<v) != 0 {
					S = append(S, v)
				}
			}
			if w := separation.CrossingWeight(S, sol); w < best {
				best = w
			}
		}

		cut, ok, err := sep.Separate(sol)
		require.NoError(t, err)
		require.Equal(t, best < 1-separation.Epsilon, ok, "iter %d: %v", iter, rows)
		if ok {
			require.NotContains(t, cut.S, 0)
			require.InDelta(t, cut.Value, separation.CrossingWeight(cut.S, sol), 1e-9)
			require.Less(t, cut.Value, 1-separation.Epsilon)
		}
	}
}
