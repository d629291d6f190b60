// SPDX-License-Identifier: MIT

package mip

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// varDef is one model column.
type varDef struct {
	name   string
	typ    VarType
	lb, ub float64
	obj    float64
}

// row is a compiled constraint: merged, non-zero terms over column indices.
type row struct {
	name  string
	idx   []int
	coef  []float64
	sense Sense
	rhs   float64
}

// activity returns Σ coef·x over the row.
func (r row) activity(x []float64) float64 {
	var s float64
	for k, j := range r.idx {
		s += r.coef[k] * x[j]
	}

	return s
}

// violation returns how far x is from satisfying r (0 when satisfied).
func (r row) violation(x []float64) float64 {
	lhs := r.activity(x)
	switch r.sense {
	case LessEqual:
		return math.Max(0, lhs-r.rhs)
	case GreaterEqual:
		return math.Max(0, r.rhs-lhs)
	default:
		return math.Abs(lhs - r.rhs)
	}
}

// Model is a minimization MIP with callback support.
type Model struct {
	name string

	// Problem data
	vars    []varDef
	constrs []row
	lazy    []row
	cuts    []row

	// Parameters
	cb           Callback
	relaxed      bool
	timeLimit    time.Duration
	maxCutRounds int
	intTol       float64
	feasTol      float64
	log          *zap.Logger

	// Results of the last Optimize
	status   Status
	solCount int
	x        []float64
	objVal   float64
	objBound float64
	nodes    int
	runtime  time.Duration
}

// NewModel returns an empty minimization model.
func NewModel(name string, opts ...Option) *Model {
	m := &Model{
		name:         name,
		maxCutRounds: DefaultMaxCutRounds,
		intTol:       DefaultIntTol,
		feasTol:      DefaultFeasTol,
		log:          zap.NewNop(),
		status:       Loaded,
		objBound:     math.Inf(-1),
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// AddVar appends a column with bounds [lb, ub] and objective coefficient obj.
// Binary variables are clamped to [0,1]. lb must be finite; ub may be +Inf.
//
// Errors: ErrInvalidBounds (NaN, -Inf lower bound, lb > ub, non-finite obj).
func (m *Model) AddVar(name string, typ VarType, lb, ub, obj float64) (Var, error) {
	if typ == Binary {
		lb, ub = math.Max(lb, 0), math.Min(ub, 1)
	}
	if math.IsNaN(lb) || math.IsNaN(ub) || math.IsInf(lb, 0) || math.IsInf(ub, -1) || lb > ub {
		return Var{}, fmt.Errorf("%w: %q [%g, %g]", ErrInvalidBounds, name, lb, ub)
	}
	if math.IsNaN(obj) || math.IsInf(obj, 0) {
		return Var{}, fmt.Errorf("%w: %q objective %g", ErrInvalidBounds, name, obj)
	}
	if typ == Integer {
		lb = math.Ceil(lb - m.intTol)
		if !math.IsInf(ub, 1) {
			ub = math.Floor(ub + m.intTol)
		}
	}
	m.vars = append(m.vars, varDef{name: name, typ: typ, lb: lb, ub: ub, obj: obj})

	return Var{idx: len(m.vars) - 1}, nil
}

// NumVars returns the number of columns.
func (m *Model) NumVars() int { return len(m.vars) }

// VarName returns the name given to v in AddVar.
func (m *Model) VarName(v Var) (string, error) {
	if v.idx < 0 || v.idx >= len(m.vars) {
		return "", ErrUnknownVar
	}

	return m.vars[v.idx].name, nil
}

// compile validates c and merges repeated variables.
func (m *Model) compile(c Constraint) (row, error) {
	if math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
		return row{}, fmt.Errorf("%w: %q rhs %g", ErrInvalidConstraint, c.Name, c.RHS)
	}
	if c.Sense < LessEqual || c.Sense > Equal {
		return row{}, fmt.Errorf("%w: %q sense %v", ErrInvalidConstraint, c.Name, c.Sense)
	}
	r := row{name: c.Name, sense: c.Sense, rhs: c.RHS}
	pos := make(map[int]int, len(c.Expr))
	for _, t := range c.Expr {
		if t.Var.idx < 0 || t.Var.idx >= len(m.vars) {
			return row{}, fmt.Errorf("%w: x%d in %q", ErrUnknownVar, t.Var.idx, c.Name)
		}
		if math.IsNaN(t.Coef) || math.IsInf(t.Coef, 0) {
			return row{}, fmt.Errorf("%w: %q coefficient %g", ErrInvalidConstraint, c.Name, t.Coef)
		}
		if k, ok := pos[t.Var.idx]; ok {
			r.coef[k] += t.Coef
			continue
		}
		pos[t.Var.idx] = len(r.idx)
		r.idx = append(r.idx, t.Var.idx)
		r.coef = append(r.coef, t.Coef)
	}

	return r, nil
}

// AddConstr adds a model constraint.
func (m *Model) AddConstr(c Constraint) error {
	r, err := m.compile(c)
	if err != nil {
		return err
	}
	m.constrs = append(m.constrs, r)

	return nil
}

// AddUserCut adds a cut to the cut pool; it takes part in every later relaxation.
func (m *Model) AddUserCut(c Constraint) error {
	r, err := m.compile(c)
	if err != nil {
		return err
	}
	m.cuts = append(m.cuts, r)

	return nil
}

// SetCallback registers cb for MIPSol and MIPNode events (nil removes it).
func (m *Model) SetCallback(cb Callback) { m.cb = cb }

// SetTimeLimit sets the wall-clock limit of each Optimize call (0 = none).
func (m *Model) SetTimeLimit(d time.Duration) { m.timeLimit = d }

// TimeLimit returns the current wall-clock limit.
func (m *Model) TimeLimit() time.Duration { return m.timeLimit }

// SetRelaxed switches Optimize between the MIP search (false) and a single
// LP relaxation solve that ignores integrality and callbacks (true).
func (m *Model) SetRelaxed(relaxed bool) { m.relaxed = relaxed }

// NumConstrs returns the number of model constraints.
func (m *Model) NumConstrs() int { return len(m.constrs) }

// NumLazy returns the number of lazy constraints added by callbacks.
func (m *Model) NumLazy() int { return len(m.lazy) }

// NumCuts returns the size of the user cut pool.
func (m *Model) NumCuts() int { return len(m.cuts) }

// Status returns the status of the last Optimize.
func (m *Model) Status() Status { return m.status }

// SolCount returns the number of incumbents found by the last Optimize.
func (m *Model) SolCount() int { return m.solCount }

// Value returns the value of v in the best solution.
func (m *Model) Value(v Var) (float64, error) {
	if v.idx < 0 || v.idx >= len(m.vars) {
		return 0, ErrUnknownVar
	}
	if m.solCount == 0 {
		return 0, ErrNoSolution
	}

	return m.x[v.idx], nil
}

// Values returns a copy of the best solution vector.
func (m *Model) Values() ([]float64, error) {
	if m.solCount == 0 {
		return nil, ErrNoSolution
	}

	return append([]float64(nil), m.x...), nil
}

// ObjVal returns the objective of the best solution.
func (m *Model) ObjVal() (float64, error) {
	if m.solCount == 0 {
		return 0, ErrNoSolution
	}

	return m.objVal, nil
}

// ObjBound returns the best proven lower bound (-Inf when unknown).
func (m *Model) ObjBound() float64 { return m.objBound }

// NodeCount returns the number of branch-and-bound nodes explored.
func (m *Model) NodeCount() int { return m.nodes }

// Runtime returns the wall-clock time of the last Optimize.
func (m *Model) Runtime() time.Duration { return m.runtime }

// objective evaluates Σ c_j x_j.
func (m *Model) objective(x []float64) float64 {
	var s float64
	for j, v := range m.vars {
		s += v.obj * x[j]
	}

	return s
}

// rootBounds returns fresh copies of the column bounds.
func (m *Model) rootBounds() (lb, ub []float64) {
	lb = make([]float64, len(m.vars))
	ub = make([]float64, len(m.vars))
	for j, v := range m.vars {
		lb[j], ub[j] = v.lb, v.ub
	}

	return lb, ub
}

func (m *Model) resetResults() {
	m.status = Loaded
	m.solCount = 0
	m.x = nil
	m.objVal = 0
	m.objBound = math.Inf(-1)
	m.nodes = 0
	m.runtime = 0
}
