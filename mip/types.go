// SPDX-License-Identifier: MIT

package mip

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoSolution is returned by solution accessors when SolCount() == 0.
	ErrNoSolution = errors.New("mip: no solution available")

	// ErrUnknownVar is returned for a Var that does not belong to the model.
	ErrUnknownVar = errors.New("mip: unknown variable")

	// ErrInvalidBounds is returned by AddVar when lb > ub or a bound is NaN.
	ErrInvalidBounds = errors.New("mip: invalid variable bounds")

	// ErrInvalidConstraint is returned for NaN/Inf coefficients or right-hand sides.
	ErrInvalidConstraint = errors.New("mip: invalid constraint")

	// ErrWrongWhere is returned when a callback operation is used at the wrong event.
	ErrWrongWhere = errors.New("mip: operation not allowed at this callback event")

	// ErrNumeric is returned when the LP solver fails numerically.
	ErrNumeric = errors.New("mip: numerical failure in LP solve")
)

// VarType is the integrality class of a variable.
type VarType int

const (
	Continuous VarType = iota
	Binary
	Integer
)

func (t VarType) String() string {
	switch t {
	case Continuous:
		return "continuous"
	case Binary:
		return "binary"
	case Integer:
		return "integer"
	default:
		return fmt.Sprintf("VarType(%d)", int(t))
	}
}

// Var is a handle to a model column.
type Var struct {
	idx int
}

// Index returns the column index of v in its model.
func (v Var) Index() int { return v.idx }

// Term is Coef·Var.
type Term struct {
	Var  Var
	Coef float64
}

// LinExpr is a sum of terms. Repeated variables are summed.
type LinExpr []Term

// Add appends coef·v and returns the extended expression.
func (e LinExpr) Add(v Var, coef float64) LinExpr { return append(e, Term{Var: v, Coef: coef}) }

// Sense is the comparison of a constraint row.
type Sense int

const (
	LessEqual Sense = iota
	GreaterEqual
	Equal
)

func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case GreaterEqual:
		return ">="
	case Equal:
		return "="
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// Constraint is Expr Sense RHS.
type Constraint struct {
	Name  string
	Expr  LinExpr
	Sense Sense
	RHS   float64
}

// String renders the constraint as "name: 1 x0 + 1 x3 >= 1".
func (c Constraint) String() string {
	var b strings.Builder
	if c.Name != "" {
		b.WriteString(c.Name)
		b.WriteString(": ")
	}
	for i, t := range c.Expr {
		if i > 0 {
			b.WriteString(" + ")
		}
		fmt.Fprintf(&b, "%g x%d", t.Coef, t.Var.idx)
	}
	fmt.Fprintf(&b, " %s %g", c.Sense, c.RHS)

	return b.String()
}

// Status is the state of a model after Optimize.
type Status int

const (
	// Loaded: Optimize has not run yet.
	Loaded Status = iota
	// Optimal: the search (or relaxation) finished with a proven optimum.
	Optimal
	// Infeasible: no feasible point exists.
	Infeasible
	// Unbounded: the objective decreases without limit.
	Unbounded
	// TimeLimit: the wall-clock limit was reached; an incumbent may exist.
	TimeLimit
	// Interrupted: the context was cancelled; an incumbent may exist.
	Interrupted
)

func (s Status) String() string {
	switch s {
	case Loaded:
		return "LOADED"
	case Optimal:
		return "OPTIMAL"
	case Infeasible:
		return "INFEASIBLE"
	case Unbounded:
		return "UNBOUNDED"
	case TimeLimit:
		return "TIME_LIMIT"
	case Interrupted:
		return "INTERRUPTED"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Where identifies the callback event.
type Where int

const (
	// MIPSol: an integral candidate solution was found.
	MIPSol Where = iota
	// MIPNode: a node relaxation was solved and is fractional.
	MIPNode
)

func (w Where) String() string {
	switch w {
	case MIPSol:
		return "MIPSOL"
	case MIPNode:
		return "MIPNODE"
	default:
		return fmt.Sprintf("Where(%d)", int(w))
	}
}
