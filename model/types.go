// SPDX-License-Identifier: MIT
// Package model: shared domain types for optimization models.
// This file defines the small vocabulary (Sense, Relation, Var, Entry, Expr)
// used by Model and by solver packages. Types are deliberately thin wrappers
// over primitives so call sites stay self-documenting.

package model

import "fmt"

// Sense selects the optimization direction of a model's objective.
type Sense int

const (
	// Minimize asks solvers for the smallest objective value.
	Minimize Sense = iota
	// Maximize asks solvers for the largest objective value.
	Maximize
)

// String returns "minimize" or "maximize"; unknown values render as
// "sense(<n>)".
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return fmt.Sprintf("sense(%d)", int(s))
	}
}

// Relation is the comparison of a constraint row against its right-hand side.
type Relation int

const (
	// LE constrains the row expression to be <= the right-hand side.
	LE Relation = iota
	// GE constrains the row expression to be >= the right-hand side.
	GE
	// EQ constrains the row expression to equal the right-hand side.
	EQ
)

// String returns the usual infix form: "<=", ">=" or "=".
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return fmt.Sprintf("relation(%d)", int(r))
	}
}

// Var is an opaque variable handle: the variable's creation index inside its
// Model. Handles are only meaningful together with the Model that issued
// them; mixing handles across models is a programmer error that Validate
// catches when the foreign index falls outside the variable table.
type Var int

// Entry is one coalesced (coefficient, variable) pair of a row or objective,
// as exposed to solvers by RowEntries.
type Entry struct {
	Coef float64
	Var  Var
}

// term is the raw, append-ordered building block of an Expr. Duplicate
// variables are allowed during construction and coalesced on read.
type term struct {
	coef float64
	v    Var
}

// Expr is a linear expression: a sum of coefficient*variable terms plus a
// constant. Expressions are built by chaining and may be reused; Model
// methods copy them on ingestion, so mutating an Expr after AddLe/SetObjective
// does not alter the model.
//
// Usage:
//
//	profit := model.NewExpr().
//		Term(270, yU).
//		Term(210, yV).
//		Term(-10, xM)
type Expr struct {
	terms []term
	konst float64
}

// NewExpr returns an empty expression (zero constant, no terms).
func NewExpr() *Expr {
	return &Expr{}
}

// Term appends coef*v to the expression and returns the receiver for
// chaining. A negative handle is rejected by panic (handles are creation
// indices and can never be negative); other handle mistakes surface later in
// Model.Validate as ErrUnknownVar.
func (e *Expr) Term(coef float64, v Var) *Expr {
	if v < 0 {
		panic(panicNegativeVar)
	}
	e.terms = append(e.terms, term{coef: coef, v: v})
	return e
}

// Const adds c to the expression's constant part and returns the receiver.
// Constants on constraint rows fold into the right-hand side during
// assembly: expr+k <= rhs is solved as expr <= rhs-k.
func (e *Expr) Const(c float64) *Expr {
	e.konst += c
	return e
}

// Add appends a copy of every term and the constant of other, returning the
// receiver. A nil other is a no-op.
func (e *Expr) Add(other *Expr) *Expr {
	if other == nil {
		return e
	}
	e.terms = append(e.terms, other.terms...)
	e.konst += other.konst
	return e
}

// Sum is a convenience constructor for v1 + v2 + ... + vn with unit
// coefficients.
func Sum(vs ...Var) *Expr {
	e := NewExpr()
	for _, v := range vs {
		e.Term(1, v)
	}
	return e
}

// clone returns an independent deep copy of e; nil stays nil.
func (e *Expr) clone() *Expr {
	if e == nil {
		return nil
	}
	cp := &Expr{konst: e.konst}
	if len(e.terms) > 0 {
		cp.terms = make([]term, len(e.terms))
		copy(cp.terms, e.terms)
	}
	return cp
}

// entries returns the coalesced sparse form of e, duplicate variables
// summed, zero coefficients kept (solvers decide how to treat them), ordered
// by first appearance. Complexity: O(t) time with a map of size distinct(t).
func (e *Expr) entries() []Entry {
	if e == nil || len(e.terms) == 0 {
		return nil
	}
	pos := make(map[Var]int, len(e.terms))
	out := make([]Entry, 0, len(e.terms))
	for _, t := range e.terms {
		if i, ok := pos[t.v]; ok {
			out[i].Coef += t.coef
			continue
		}
		pos[t.v] = len(out)
		out = append(out, Entry{Coef: t.coef, Var: t.v})
	}
	return out
}
