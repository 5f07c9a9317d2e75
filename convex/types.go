// Package convex: problem statement and result types.

package convex

import "gonum.org/v1/gonum/mat"

// Func is a twice-differentiable scalar function of a vector argument.
//
// Contracts:
//   - Value may return +Inf or NaN outside the function's domain; the
//     solver treats non-finite values as "step left the domain".
//   - Grad writes the gradient into dst (len(dst) == len(x)).
//   - Hess overwrites dst with the full Hessian at x (dst is n×n).
//
// Implementations must not retain x, dst or any solver buffer.
type Func interface {
	Value(x []float64) float64
	Grad(dst, x []float64)
	Hess(dst *mat.SymDense, x []float64)
}

// Problem bundles an objective with optional constraints.
//
// Ineqs holds g_i with the feasible set {x : g_i(x) <= 0}. A and B describe
// the equality system A x = B; both may be nil/empty for unconstrained or
// inequality-only problems, but must agree in size when present.
type Problem struct {
	Objective Func
	Ineqs     []Func
	A         *mat.Dense
	B         []float64
}

// Result is the solver output.
type Result struct {
	// X is the final iterate (a fresh slice, caller-owned).
	X []float64
	// Value is the objective f0 at X.
	Value float64
	// Gap is the final duality-gap bound m/t; zero when the problem has no
	// inequality constraints.
	Gap float64
	// OuterIters counts barrier centerings; NewtonIters counts Newton steps
	// summed over all centerings.
	OuterIters  int
	NewtonIters int
}
