// SPDX-License-Identifier: MIT
// Package model: staged validation.
//
// Validate is the single gate solvers rely on: after a nil-error return,
// the model is structurally sound (objective present, bounds ordered, every
// row non-empty with finite numbers and known handles) and assembly can
// proceed without further checks.
//
// No logging, no panics on user data - only sentinel errors.

package model

import (
	"fmt"
	"math"
)

// Validate checks the model in stages and returns the first violation found:
//
//	Stage 1 - model and objective presence (ErrNilModel, ErrNoObjective);
//	Stage 2 - variable bounds (ErrBadBounds, wrapped with the variable name);
//	Stage 3 - rows: non-empty, finite, known handles (ErrEmptyExpression,
//	          ErrNotFinite, ErrUnknownVar, wrapped with the row name).
//
// The error priority matches the documented order in errors.go, so callers
// probing with errors.Is observe stable behavior.
func (m *Model) Validate() error {
	// Stage 1 - presence.
	if m == nil {
		return ErrNilModel
	}
	if !m.objSet {
		return ErrNoObjective
	}
	if err := m.checkExprFinite(m.objective, "objective"); err != nil {
		return err
	}
	if err := m.checkExprHandles(m.objective, "objective"); err != nil {
		return err
	}

	// Stage 2 - variable bounds. Builder panics already reject inverted
	// literals; re-checked here so a model is trustworthy regardless of how
	// it was produced.
	for i := range m.vars {
		v := &m.vars[i]
		if badInterval(v.lower, v.upper) || math.IsInf(v.lower, 1) || math.IsInf(v.upper, -1) {
			return fmt.Errorf("variable %q: %w", v.name, ErrBadBounds)
		}
	}

	// Stage 3 - rows.
	for i := range m.rows {
		r := &m.rows[i]
		if len(r.expr.terms) == 0 {
			return fmt.Errorf("row %q: %w", r.name, ErrEmptyExpression)
		}
		if math.IsNaN(r.rhs) || math.IsInf(r.rhs, 0) {
			return fmt.Errorf("row %q rhs: %w", r.name, ErrNotFinite)
		}
		if err := m.checkExprFinite(r.expr, r.name); err != nil {
			return err
		}
		if err := m.checkExprHandles(r.expr, r.name); err != nil {
			return err
		}
	}
	return nil
}

// checkExprFinite rejects NaN/±Inf coefficients and constants.
func (m *Model) checkExprFinite(e *Expr, where string) error {
	if math.IsNaN(e.konst) || math.IsInf(e.konst, 0) {
		return fmt.Errorf("%s constant: %w", where, ErrNotFinite)
	}
	for _, t := range e.terms {
		if math.IsNaN(t.coef) || math.IsInf(t.coef, 0) {
			return fmt.Errorf("%s coefficient of %s: %w", where, m.safeVarName(t.v), ErrNotFinite)
		}
	}
	return nil
}

// checkExprHandles rejects handles outside the variable table.
func (m *Model) checkExprHandles(e *Expr, where string) error {
	for _, t := range e.terms {
		if t.v < 0 || int(t.v) >= len(m.vars) {
			return fmt.Errorf("%s: handle %d: %w", where, int(t.v), ErrUnknownVar)
		}
	}
	return nil
}

// safeVarName names a variable for error text without panicking on foreign
// handles (handle errors are reported separately).
func (m *Model) safeVarName(v Var) string {
	if v >= 0 && int(v) < len(m.vars) {
		return m.vars[v].name
	}
	return fmt.Sprintf("v?%d", int(v))
}
