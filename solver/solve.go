// Package solver: public dispatcher.
//
// Design principles:
//   - One entry point; the integrality mask decides the engine.
//   - Validation happens exactly once, here, via model.Validate; engines
//     assume a well-formed model afterwards.
//   - No logging, no panics on user data - only sentinel errors.

package solver

import "github.com/katalvlaran/lvlopt/model"

// Solve optimizes m and returns its solution in user variable space.
//
// Contracts:
//   - m must pass model.Validate; its sentinel errors pass through as-is.
//   - Continuous models return a proven optimum or ErrInfeasible /
//     ErrUnbounded / ErrNumerical.
//   - Integer models run branch-and-bound; on ErrNodeLimit the returned
//     solution (when non-nil) is the best incumbent with StatusFeasible.
//
// Complexity: one simplex solve for LPs; up to WithNodeLimit solves for
// integer models.
func Solve(m *model.Model, opts ...Option) (*Solution, error) {
	// Stage 1 - resolve options, validate the model once.
	o := gatherOptions(opts...)
	if err := m.Validate(); err != nil {
		return nil, err
	}

	// Stage 2 - route by integrality.
	lo, hi := m.Bounds()
	if m.HasIntegers() {
		return branchAndBound(m, lo, hi, o)
	}
	x, obj, err := solveRelaxation(m, lo, hi, o)
	if err != nil {
		return nil, err
	}
	return &Solution{Status: StatusOptimal, X: x, Objective: obj, Nodes: 1}, nil
}
