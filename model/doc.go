// Package model provides a small algebraic layer for describing linear and
// mixed-integer optimization models.
//
// The model package provides:
//
//   - Variable handles (Var) with bounds and optional integrality, indexed
//     in creation order for deterministic assembly.
//   - Linear expressions (Expr) built by chaining Term/Const/Add calls.
//   - A Model container collecting an objective, a sense (Minimize or
//     Maximize) and named constraint rows (<=, >=, =).
//   - Staged validation (Validate) returning sentinel errors, so solvers can
//     assume a well-formed model after a single check.
//
// The package holds plain data only: no numerics happen here. Solvers read
// models through the accessor methods (ObjectiveVector, RowEntries, Bounds)
// and never reach into internals.
//
// See the solver package for the LP/MILP engine consuming these models.
package model
