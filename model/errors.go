// SPDX-License-Identifier: MIT
// Package model: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the model
// package. Validate MUST return these sentinels and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors in builder methods
// (documented per method, message constants in model.go).

package model

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "model: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil model -> missing objective -> variable bounds -> row structure
// (empty/unknown/non-finite).

var (
	// ErrNilModel indicates a nil *Model receiver or argument.
	ErrNilModel = errors.New("model: nil model")

	// ErrNoObjective is returned by Validate when no objective was set.
	// Feasibility-only runs still need an explicit (possibly constant)
	// objective so the solve direction is unambiguous.
	ErrNoObjective = errors.New("model: objective not set")

	// ErrBadBounds signals a variable whose lower bound exceeds its upper
	// bound, or a NaN bound. Builder panics catch most cases at the call
	// site; Validate re-checks so solvers never see an inverted interval.
	ErrBadBounds = errors.New("model: invalid variable bounds")

	// ErrEmptyExpression signals a constraint row with no terms. Such rows
	// degenerate to "constant <= rhs" and almost always indicate a lost
	// variable handle at the call site.
	ErrEmptyExpression = errors.New("model: empty constraint expression")

	// ErrUnknownVar signals a term referencing a variable index outside the
	// model's variable table (typically a handle from another model).
	ErrUnknownVar = errors.New("model: unknown variable handle")

	// ErrNotFinite signals a NaN or ±Inf coefficient, constant or
	// right-hand side where finite values are required.
	ErrNotFinite = errors.New("model: NaN or Inf encountered")
)
