// Package solver: the LP relaxation path around gonum's simplex.

package solver

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/katalvlaran/lvlopt/model"
)

// solveRelaxation assembles and solves the continuous relaxation of m under
// the given bound vectors, returning the optimum in user variable space.
// Bounds are explicit parameters so branch-and-bound can pass tightened
// copies without touching the model.
func solveRelaxation(m *model.Model, lo, hi []float64, o Options) (x []float64, obj float64, err error) {
	sf, err := assemble(m, lo, hi)
	if err != nil {
		return nil, 0, err
	}
	_, xt, err := lp.Simplex(sf.c, sf.a, sf.b, o.tol, nil)
	if err != nil {
		return nil, 0, mapSimplexErr(err)
	}
	x = sf.userX(xt)
	return x, userObjective(m, x), nil
}

// mapSimplexErr folds gonum's failure modes onto package sentinels.
// Infeasibility and unboundedness are answers, everything else (singular
// bases, zero rows, Bland cycling) is a numerical failure worth surfacing
// with its original text.
func mapSimplexErr(err error) error {
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return ErrInfeasible
	case errors.Is(err, lp.ErrUnbounded):
		return ErrUnbounded
	default:
		return fmt.Errorf("simplex failure (%v): %w", err, ErrNumerical)
	}
}
