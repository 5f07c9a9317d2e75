// Package convex: sentinel error set.
// All entry points MUST return these sentinels and tests MUST check them via
// errors.Is; option constructors panic on programmer errors instead.

package convex

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "convex: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at outer
// boundaries when context is essential; callers match with errors.Is.

var (
	// ErrNilObjective indicates a Problem without an objective function.
	ErrNilObjective = errors.New("convex: nil objective")

	// ErrDimensionMismatch indicates disagreeing sizes between x0, the
	// equality system A/B, or a gradient buffer.
	ErrDimensionMismatch = errors.New("convex: dimension mismatch")

	// ErrInfeasibleStart indicates that x0 violates strict inequality
	// feasibility (g_i(x0) >= 0) or the equality system (A x0 != B).
	// The barrier method needs a strictly feasible interior point.
	ErrInfeasibleStart = errors.New("convex: start point not strictly feasible")

	// ErrDomain indicates a non-finite objective value at the start point.
	ErrDomain = errors.New("convex: objective not finite at start point")

	// ErrSingularKKT indicates an unsolvable Newton system (singular KKT
	// matrix), typically a rank-deficient equality matrix or a degenerate
	// Hessian on the boundary of the domain.
	ErrSingularKKT = errors.New("convex: singular KKT system")

	// ErrNoProgress indicates that Newton could not reduce the centering
	// objective before hitting its iteration cap; the returned point, if
	// any, should not be trusted.
	ErrNoProgress = errors.New("convex: no progress in Newton centering")
)
