// SPDX-License-Identifier: MIT
// Package model: the Model container and its builder API.
//
// Implementation notes:
//   - Stage 1 (construction): New* and Add* methods record data verbatim and
//     never allocate beyond the recorded slices. Expressions are cloned on
//     ingestion so callers may reuse builders.
//   - Stage 2 (read-back): accessor methods hand solvers coalesced copies;
//     internal slices never escape.
//
// Panics are reserved for programmer errors (negative handles, inverted
// bound literals); data-dependent problems surface as sentinels from
// Validate.

package model

import (
	"fmt"
	"math"
)

// Panic messages for programmer errors in builder methods.
// Kept as constants so tests can assert exact text.
const (
	panicNegativeVar = "model: negative variable handle"
	panicVarRange    = "model: variable handle out of range"
	panicBoundsOrder = "model: SetBounds: lower must be <= upper and not NaN"
	panicNilExpr     = "model: nil expression"
)

// variable is the per-variable record: bounds, integrality and a display
// name. Bounds use ±Inf for "unbounded"; the default is [0, +Inf) to match
// the usual non-negativity convention of LP formulations.
type variable struct {
	name    string
	lower   float64
	upper   float64
	integer bool
}

// row is one recorded constraint: name, cloned expression, relation, and the
// declared right-hand side (the expression constant folds into it on read).
type row struct {
	name string
	expr *Expr
	rel  Relation
	rhs  float64
}

// Model collects variables, constraint rows and an objective under a fixed
// optimization sense. The zero value is not usable; construct with New.
type Model struct {
	name      string
	sense     Sense
	vars      []variable
	rows      []row
	objective *Expr
	objSet    bool
}

// New returns an empty model with the given display name and sense.
func New(name string, sense Sense) *Model {
	return &Model{name: name, sense: sense}
}

// Name returns the model's display name.
func (m *Model) Name() string { return m.name }

// Sense returns the model's optimization direction.
func (m *Model) Sense() Sense { return m.sense }

// NewVar adds a continuous variable with bounds [0, +Inf) and returns its
// handle. An empty name is replaced by "v<index>".
func (m *Model) NewVar(name string) Var {
	return m.addVar(name, 0, math.Inf(1), false)
}

// NewFreeVar adds a continuous variable with bounds (-Inf, +Inf) and returns
// its handle.
func (m *Model) NewFreeVar(name string) Var {
	return m.addVar(name, math.Inf(-1), math.Inf(1), false)
}

// NewBoundedVar adds a continuous variable with bounds [lo, hi] and returns
// its handle. Panics with panicBoundsOrder when lo > hi or a bound is NaN.
func (m *Model) NewBoundedVar(name string, lo, hi float64) Var {
	if badInterval(lo, hi) {
		panic(panicBoundsOrder)
	}
	return m.addVar(name, lo, hi, false)
}

// NewBinaryVar adds an integer variable with bounds [0, 1] and returns its
// handle.
func (m *Model) NewBinaryVar(name string) Var {
	return m.addVar(name, 0, 1, true)
}

func (m *Model) addVar(name string, lo, hi float64, integer bool) Var {
	v := Var(len(m.vars))
	if name == "" {
		name = fmt.Sprintf("v%d", int(v))
	}
	m.vars = append(m.vars, variable{name: name, lower: lo, upper: hi, integer: integer})
	return v
}

// SetBounds replaces the bounds of v with [lo, hi].
//
// Panics:
//   - panicVarRange when v was not issued by this model;
//   - panicBoundsOrder when lo > hi or a bound is NaN.
//
// AI-Hints: use with +Inf/-Inf from math.Inf to relax one side; fixing a
// variable to a value is SetBounds(v, x, x).
func (m *Model) SetBounds(v Var, lo, hi float64) {
	m.mustOwn(v)
	if badInterval(lo, hi) {
		panic(panicBoundsOrder)
	}
	m.vars[v].lower = lo
	m.vars[v].upper = hi
}

// MarkInteger restricts v to integer values. Panics with panicVarRange for
// foreign handles.
func (m *Model) MarkInteger(v Var) {
	m.mustOwn(v)
	m.vars[v].integer = true
}

// SetObjective records a clone of e as the objective expression. A nil e
// panics with panicNilExpr; an expression without terms is allowed (pure
// feasibility runs).
func (m *Model) SetObjective(e *Expr) {
	if e == nil {
		panic(panicNilExpr)
	}
	m.objective = e.clone()
	m.objSet = true
}

// AddLe records the row "e <= rhs" under the given name.
//
// The expression is cloned; its constant part folds into the right-hand
// side on read-back (e+k <= rhs becomes e <= rhs-k). Rows are validated in
// Validate, not here, so long model-building sequences stay unconditional.
func (m *Model) AddLe(name string, e *Expr, rhs float64) {
	m.addRow(name, e, LE, rhs)
}

// AddGe records the row "e >= rhs" under the given name.
func (m *Model) AddGe(name string, e *Expr, rhs float64) {
	m.addRow(name, e, GE, rhs)
}

// AddEq records the row "e = rhs" under the given name.
func (m *Model) AddEq(name string, e *Expr, rhs float64) {
	m.addRow(name, e, EQ, rhs)
}

func (m *Model) addRow(name string, e *Expr, rel Relation, rhs float64) {
	if e == nil {
		panic(panicNilExpr)
	}
	if name == "" {
		name = fmt.Sprintf("r%d", len(m.rows))
	}
	m.rows = append(m.rows, row{name: name, expr: e.clone(), rel: rel, rhs: rhs})
}

// NumVars returns the number of variables created so far.
func (m *Model) NumVars() int { return len(m.vars) }

// NumConstraints returns the number of recorded rows.
func (m *Model) NumConstraints() int { return len(m.rows) }

// VarName returns the display name of v. Panics for foreign handles.
func (m *Model) VarName(v Var) string {
	m.mustOwn(v)
	return m.vars[v].name
}

// IsInteger reports whether v carries an integrality mark.
func (m *Model) IsInteger(v Var) bool {
	m.mustOwn(v)
	return m.vars[v].integer
}

// HasIntegers reports whether any variable is integer; solvers use it to
// route between pure LP and branch-and-bound.
func (m *Model) HasIntegers() bool {
	for i := range m.vars {
		if m.vars[i].integer {
			return true
		}
	}
	return false
}

// Bounds returns copies of the lower and upper bound vectors, indexed by
// variable handle. Solvers that branch tighten their own copies and leave
// the model untouched.
func (m *Model) Bounds() (lo, hi []float64) {
	lo = make([]float64, len(m.vars))
	hi = make([]float64, len(m.vars))
	for i := range m.vars {
		lo[i] = m.vars[i].lower
		hi[i] = m.vars[i].upper
	}
	return lo, hi
}

// IntegerMask returns a fresh bool vector marking integer variables.
func (m *Model) IntegerMask() []bool {
	mask := make([]bool, len(m.vars))
	for i := range m.vars {
		mask[i] = m.vars[i].integer
	}
	return mask
}

// ObjectiveVector returns the dense objective coefficient vector (duplicate
// terms coalesced) and the objective's constant part. The constant never
// reaches the solver matrices; engines add it back when reporting values.
//
// Complexity: O(V + t) time, O(V) space.
func (m *Model) ObjectiveVector() (c []float64, konst float64) {
	c = make([]float64, len(m.vars))
	if m.objective == nil {
		return c, 0
	}
	for _, en := range m.objective.entries() {
		if int(en.Var) < len(c) {
			c[en.Var] += en.Coef
		}
	}
	return c, m.objective.konst
}

// RowName returns the display name of row i.
func (m *Model) RowName(i int) string { return m.rows[i].name }

// RowRelation returns the relation of row i.
func (m *Model) RowRelation(i int) Relation { return m.rows[i].rel }

// RowRHS returns the effective right-hand side of row i with the
// expression's constant already folded in.
func (m *Model) RowRHS(i int) float64 { return m.rows[i].rhs - m.rows[i].expr.konst }

// RowEntries returns the coalesced (coefficient, variable) pairs of row i in
// first-appearance order. The slice is a copy.
func (m *Model) RowEntries(i int) []Entry { return m.rows[i].expr.entries() }

// mustOwn panics unless v is a handle issued by this model.
func (m *Model) mustOwn(v Var) {
	if v < 0 || int(v) >= len(m.vars) {
		panic(panicVarRange)
	}
}

// badInterval reports an unusable [lo, hi] pair: NaN on either side or an
// inverted interval. ±Inf endpoints are legal.
func badInterval(lo, hi float64) bool {
	return math.IsNaN(lo) || math.IsNaN(hi) || lo > hi
}
