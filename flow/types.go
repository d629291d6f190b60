// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/atspcut/matrix"
)

var (
	// ErrNonSquare is returned when the capacity matrix is not n×n.
	ErrNonSquare = errors.New("flow: capacity matrix is not square")

	// ErrSourceOutOfRange is returned when the source index is not a node.
	ErrSourceOutOfRange = errors.New("flow: source out of range")

	// ErrSinkOutOfRange is returned when the sink index is not a node.
	ErrSinkOutOfRange = errors.New("flow: sink out of range")

	// ErrSourceIsSink is returned when source and sink coincide.
	ErrSourceIsSink = errors.New("flow: source equals sink")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm for unrecognized names.
	ErrUnknownAlgorithm = errors.New("flow: unknown algorithm")
)

// CapacityError is returned when an arc has a NaN, infinite or negative capacity.
type CapacityError struct {
	From, To int
	Cap      float64
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("flow: invalid capacity on arc %d→%d: %g", e.From, e.To, e.Cap)
}

// Algorithm selects the max-flow routine behind an Oracle.
type Algorithm int

const (
	// AlgoDinic uses level graphs and blocking flows.
	AlgoDinic Algorithm = iota
	// AlgoEdmondsKarp uses BFS shortest augmenting paths.
	AlgoEdmondsKarp
)

// String implements fmt.Stringer; the result round-trips through ParseAlgorithm.
func (a Algorithm) String() string {
	switch a {
	case AlgoDinic:
		return "dinic"
	case AlgoEdmondsKarp:
		return "edmonds-karp"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "dinic" or "edmonds-karp" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dinic", "":
		return AlgoDinic, nil
	case "edmonds-karp", "edmondskarp", "ek":
		return AlgoEdmondsKarp, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Options configures every min-cut routine.
//   - Ctx: cancellation for long runs (default context.Background()).
//   - Epsilon: residual capacities ≤ Epsilon count as zero (default 1e-9).
//   - Algorithm: used by New (default AlgoDinic).
//   - LevelRebuildInterval: Dinic only, rebuild the level graph every N augmentations (0 = never early).
//   - Logger: receives augmentation traces at debug level (default zap.NewNop()).
type Options struct {
	Ctx                  context.Context
	Epsilon              float64
	Algorithm            Algorithm
	LevelRebuildInterval int
	Logger               *zap.Logger
}

// DefaultEpsilon is the residual threshold used when Options.Epsilon is zero.
const DefaultEpsilon = 1e-9

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Epsilon:   DefaultEpsilon,
		Algorithm: AlgoDinic,
		Logger:    zap.NewNop(),
	}
}

// normalize fills zero-valued fields with defaults.
func (o *Options) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// Cut is a minimum s–t cut.
//   - Value: total original capacity of arcs from the source side to the sink side.
//   - SourceSide[i]: true iff node i is reachable from the source in the final residual network.
type Cut struct {
	Value      float64
	SourceSide []bool
}

// Side reports whether node i lies on the source side. Out-of-range i reports false.
func (c Cut) Side(i int) bool {
	return i >= 0 && i < len(c.SourceSide) && c.SourceSide[i]
}

// SourceNodes returns the source-side nodes in increasing order.
func (c Cut) SourceNodes() []int { return c.nodes(true) }

// SinkNodes returns the sink-side nodes in increasing order.
func (c Cut) SinkNodes() []int { return c.nodes(false) }

func (c Cut) nodes(side bool) []int {
	out := make([]int, 0, len(c.SourceSide))
	for i, s := range c.SourceSide {
		if s == side {
			out = append(out, i)
		}
	}

	return out
}

// Oracle answers min-cut queries on dense capacity matrices.
type Oracle interface {
	MinCut(capacity *matrix.Dense, source, sink int) (Cut, error)
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(capacity *matrix.Dense, source, sink int) (Cut, error)

// MinCut calls f.
func (f OracleFunc) MinCut(capacity *matrix.Dense, source, sink int) (Cut, error) {
	return f(capacity, source, sink)
}

// New returns the Oracle for opts.Algorithm, with opts bound to every call.
// Unknown algorithms fall back to Dinic.
func New(opts Options) Oracle {
	opts.normalize()
	if opts.Algorithm == AlgoEdmondsKarp {
		return OracleFunc(func(capacity *matrix.Dense, source, sink int) (Cut, error) {
			return EdmondsKarp(capacity, source, sink, opts)
		})
	}

	return OracleFunc(func(capacity *matrix.Dense, source, sink int) (Cut, error) {
		return Dinic(capacity, source, sink, opts)
	})
}
