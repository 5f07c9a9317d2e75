// Package convex minimizes smooth convex functions under convex inequality
// and linear equality constraints.
//
// It implements the classic log-barrier interior-point method:
//
//   - Minimize solves
//     min  f0(x)
//     s.t. g_i(x) <= 0, i = 1..m
//     A x = b
//     for twice-differentiable convex f0 and g_i, starting from a strictly
//     feasible point.
//
//   - The outer loop minimizes t·f0(x) - Σ log(-g_i(x)) for growing t; each
//     value of t is centered with an equality-constrained Newton method
//     (KKT system solved by dense LU, backtracking line search). The duality
//     gap bound m/t drives termination.
//
//   - Without inequalities the method degrades to plain (equality-
//     constrained) Newton; without equalities the KKT system shrinks to the
//     Hessian.
//
// Callers supply derivatives through the Func interface; Value may return
// +Inf or NaN outside the domain and the line search backs off accordingly
// (log and negative-power objectives need exactly that).
//
// The solver is deterministic: no randomness, no time-based behavior.
// Accuracy at return is |f0(x) - p*| <= gap for convex problems.
package convex
