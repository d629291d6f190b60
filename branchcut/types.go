// SPDX-License-Identifier: MIT

package branchcut

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/atspcut/flow"
	"github.com/katalvlaran/atspcut/mip"
)

var (
	// ErrEngineFault wraps every failure of the MIP engine or the min-cut
	// oracle. The solve is aborted; counters keep their values.
	ErrEngineFault = errors.New("branchcut: engine fault")

	// ErrUnknownMode is returned for an unrecognised Mode.
	ErrUnknownMode = errors.New("branchcut: unknown mode")

	// ErrNilInstance is returned by New for a nil instance.
	ErrNilInstance = errors.New("branchcut: nil instance")
)

// DefaultTimeLimit bounds one Solve when Options.TimeLimit is zero.
const DefaultTimeLimit = 180 * time.Second

// Mode selects how subtour cuts reach the engine. It is fixed for a Solve.
type Mode int

const (
	// ModeLazy separates integer candidates inside branch-and-bound.
	ModeLazy Mode = iota
	// ModeRelaxation runs the cutting-plane loop on the LP relaxation.
	ModeRelaxation
)

// String returns "lazy" or "relax".
func (m Mode) String() string {
	switch m {
	case ModeLazy:
		return "lazy"
	case ModeRelaxation:
		return "relax"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts "lazy" (also "", "cut") and "relax" (also "relaxation", "loop").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lazy", "cut":
		return ModeLazy, nil
	case "relax", "relaxation", "loop":
		return ModeRelaxation, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Engine is the MIP engine contract the Solver relies on. *mip.Model
// satisfies it.
type Engine interface {
	AddVar(name string, typ mip.VarType, lb, ub, obj float64) (mip.Var, error)
	AddConstr(c mip.Constraint) error
	AddUserCut(c mip.Constraint) error
	SetCallback(cb mip.Callback)
	SetTimeLimit(d time.Duration)
	SetRelaxed(relaxed bool)
	Optimize(ctx context.Context) error
	Status() mip.Status
	SolCount() int
	Value(v mip.Var) (float64, error)
	ObjVal() (float64, error)
	ObjBound() float64
	NodeCount() int
}

// EngineFactory returns a fresh, empty engine for one Solve.
type EngineFactory func(name string, logger *zap.Logger) Engine

// NewMIPEngine is the default EngineFactory: a *mip.Model.
func NewMIPEngine(name string, logger *zap.Logger) Engine {
	return mip.NewModel(name, mip.WithLogger(logger))
}

// Options configures a Solver.
//   - Mode: ModeLazy (default) or ModeRelaxation.
//   - TimeLimit: wall-clock budget of one Solve (default DefaultTimeLimit).
//   - NodeCuts: ModeLazy only, also separate optimal fractional nodes.
//   - Algorithm: min-cut algorithm when Oracle is nil (default flow.AlgoDinic).
//   - Oracle: min-cut oracle override.
//   - NewEngine: engine factory (default NewMIPEngine).
//   - Logger: cut and summary logging (default zap.NewNop()).
type Options struct {
	Mode      Mode
	TimeLimit time.Duration
	NodeCuts  bool
	Algorithm flow.Algorithm
	Oracle    flow.Oracle
	NewEngine EngineFactory
	Logger    *zap.Logger
}

// DefaultOptions returns lazy mode with the default time limit.
func DefaultOptions() Options {
	return Options{
		Mode:      ModeLazy,
		TimeLimit: DefaultTimeLimit,
		Algorithm: flow.AlgoDinic,
		NewEngine: NewMIPEngine,
		Logger:    zap.NewNop(),
	}
}

// normalize fills zero values and rejects an unknown mode.
func (o *Options) normalize() error {
	if o.Mode != ModeLazy && o.Mode != ModeRelaxation {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(o.Mode))
	}
	if o.TimeLimit <= 0 {
		o.TimeLimit = DefaultTimeLimit
	}
	if o.NewEngine == nil {
		o.NewEngine = NewMIPEngine
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Oracle == nil {
		o.Oracle = flow.New(flow.Options{Algorithm: o.Algorithm, Logger: o.Logger.Named("flow")})
	}

	return nil
}

// Result summarises one Solve.
//   - Status: final engine status (Loaded when no solve ran).
//   - Objective: engine objective, valid when HasSolution.
//   - Bound: engine lower bound.
//   - Tour, Cost: set when the final solution is a Hamiltonian cycle.
//   - Iterations: engine Optimize calls (relaxation rounds in ModeRelaxation).
type Result struct {
	Mode        Mode          `yaml:"mode"`
	Status      mip.Status    `yaml:"status"`
	HasSolution bool          `yaml:"has_solution"`
	Objective   float64       `yaml:"objective"`
	Bound       float64       `yaml:"bound"`
	Tour        []int         `yaml:"tour,omitempty,flow"`
	Cost        float64       `yaml:"cost,omitempty"`
	LazyCuts    int           `yaml:"lazy_cuts"`
	UserCuts    int           `yaml:"user_cuts"`
	Nodes       int           `yaml:"nodes"`
	Iterations  int           `yaml:"iterations"`
	Runtime     time.Duration `yaml:"runtime"`
}

// Cuts returns LazyCuts + UserCuts.
func (r Result) Cuts() int { return r.LazyCuts + r.UserCuts }
