// SPDX-License-Identifier: MIT

package mip

// Callback receives search events. A non-nil error aborts Optimize and is
// returned from it.
type Callback interface {
	Invoke(ctx CallbackContext) error
}

// CallbackFunc adapts a function to Callback.
type CallbackFunc func(ctx CallbackContext) error

// Invoke calls f.
func (f CallbackFunc) Invoke(ctx CallbackContext) error { return f(ctx) }

// CallbackContext is the view of the search handed to a callback. It is only
// valid for the duration of the call.
type CallbackContext interface {
	// Where reports the event.
	Where() Where
	// NodeStatus is the status of the node relaxation behind the event.
	// Model fires events only after an optimal relaxation, so it reports
	// Optimal; other engines may report anything.
	NodeStatus() Status
	// Value is the value of v in the candidate (MIPSol) or the node relaxation (MIPNode).
	Value(v Var) (float64, error)
	// AddLazy adds a globally valid constraint to the lazy pool.
	AddLazy(c Constraint) error
	// AddCut adds a cut to the cut pool. MIPNode only.
	AddCut(c Constraint) error
}

// cbContext implements CallbackContext for one invocation.
type cbContext struct {
	m      *Model
	where  Where
	status Status
	x      []float64
	added  []row
}

func (c *cbContext) Where() Where { return c.where }

func (c *cbContext) NodeStatus() Status { return c.status }

func (c *cbContext) Value(v Var) (float64, error) {
	if v.idx < 0 || v.idx >= len(c.x) {
		return 0, ErrUnknownVar
	}

	return c.x[v.idx], nil
}

func (c *cbContext) AddLazy(con Constraint) error {
	r, err := c.m.compile(con)
	if err != nil {
		return err
	}
	c.m.lazy = append(c.m.lazy, r)
	c.added = append(c.added, r)

	return nil
}

func (c *cbContext) AddCut(con Constraint) error {
	if c.where != MIPNode {
		return ErrWrongWhere
	}
	r, err := c.m.compile(con)
	if err != nil {
		return err
	}
	c.m.cuts = append(c.m.cuts, r)
	c.added = append(c.added, r)

	return nil
}
