// Package solver: sentinel error set.
// All solve paths MUST return these sentinels and tests MUST check them via
// errors.Is. Model-structure problems surface as the model package's own
// sentinels straight from Validate; this file covers solve-time outcomes.

package solver

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "solver: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.

var (
	// ErrInfeasible signals that no point satisfies all constraints and
	// bounds. For integer models it is returned only when the root
	// relaxation is already infeasible.
	ErrInfeasible = errors.New("solver: model is infeasible")

	// ErrUnbounded signals an improving direction with no finite optimum.
	ErrUnbounded = errors.New("solver: model is unbounded")

	// ErrZeroColumn signals a variable that appears in no constraint row
	// and has no finite upper bound, leaving an all-zero column the simplex
	// cannot price. Almost always a lost handle at the call site.
	ErrZeroColumn = errors.New("solver: variable appears in no row")

	// ErrNoIntegerSolution signals a feasible relaxation whose feasible set
	// contains no integer point for the marked variables.
	ErrNoIntegerSolution = errors.New("solver: no integer feasible solution")

	// ErrNodeLimit signals that branch-and-bound exhausted its node budget.
	// The returned solution, when non-nil, holds the best incumbent found.
	ErrNodeLimit = errors.New("solver: branch-and-bound node limit reached")

	// ErrNumerical wraps simplex failures that are neither infeasibility
	// nor unboundedness (singular bases, zero rows and similar numeric
	// degeneracies).
	ErrNumerical = errors.New("solver: numerical failure in simplex")
)
