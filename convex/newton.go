// Package convex — equality-constrained Newton centering.
//
// Rationale (succinct):
//  1. One engine struct owns every buffer of a centering run, so repeated
//     centerings along the barrier path allocate nothing.
//  2. Each step solves the KKT system
//     [H Aᵀ][dx]   [-grad      ]
//     [A 0 ][w ] = [-(A x - b) ]
//     by dense LU. The residual right-hand side heals equality drift for
//     free; with a feasible start it stays ~0.
//  3. The Newton decrement λ² = dxᵀH dx measures proximity to the center;
//     λ²/2 below tolerance ends the centering.
//  4. Backtracking line search (Armijo) also polices the domain: objective
//     values of +Inf/NaN reject the step, which is how log barriers keep
//     iterates strictly feasible.
//
// Complexity per step: O((n+r)³) for the LU solve plus one Hessian
// evaluation; n and r are small in every consumer of this package.

package convex

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// newtonEngine holds all centering state and buffers.
type newtonEngine struct {
	n, r int // variables, equality rows

	grad []float64
	hess *mat.SymDense
	kkt  *mat.Dense
	rhs  *mat.VecDense
	sol  *mat.VecDense
	dx   []float64
	dxV  *mat.VecDense // view over dx
	hdx  *mat.VecDense
	xTry []float64
}

// newNewtonEngine sizes the buffers for n variables and r equality rows.
func newNewtonEngine(n, r int) *newtonEngine {
	dx := make([]float64, n)
	return &newtonEngine{
		n:    n,
		r:    r,
		grad: make([]float64, n),
		hess: mat.NewSymDense(n, nil),
		kkt:  mat.NewDense(n+r, n+r, nil),
		rhs:  mat.NewVecDense(n+r, nil),
		sol:  mat.NewVecDense(n+r, nil),
		dx:   dx,
		dxV:  mat.NewVecDense(n, dx),
		hdx:  mat.NewVecDense(n, nil),
		xTry: make([]float64, n),
	}
}

// center minimizes obj over {x : A x = b} starting from x, which is updated
// in place. It returns the number of Newton steps taken.
func (e *newtonEngine) center(obj Func, a *mat.Dense, b []float64, x []float64, o Options) (int, error) {
	for it := 0; it < o.maxNewton; it++ {
		obj.Grad(e.grad, x)
		obj.Hess(e.hess, x)

		if err := e.solveKKT(a, b, x); err != nil {
			return it, err
		}

		// Newton decrement: λ² = dxᵀ H dx (nonnegative for convex obj;
		// clamp the numerical noise below zero).
		e.hdx.MulVec(e.hess, e.dxV)
		lambda2 := mat.Dot(e.dxV, e.hdx)
		if lambda2 < 0 {
			lambda2 = 0
		}
		if lambda2/2 <= o.newtonTol {
			return it, nil
		}

		if err := e.lineSearch(obj, x); err != nil {
			return it, err
		}
	}
	return o.maxNewton, ErrNoProgress
}

// solveKKT assembles and solves the step system, leaving the step in e.dx.
func (e *newtonEngine) solveKKT(a *mat.Dense, b []float64, x []float64) error {
	n, r := e.n, e.r
	e.kkt.Zero()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			e.kkt.Set(i, j, e.hess.At(i, j))
		}
		e.rhs.SetVec(i, -e.grad[i])
	}
	for i := 0; i < r; i++ {
		res := -b[i]
		for j := 0; j < n; j++ {
			v := a.At(i, j)
			e.kkt.Set(n+i, j, v)
			e.kkt.Set(j, n+i, v)
			res += v * x[j]
		}
		e.rhs.SetVec(n+i, -res)
	}

	var lu mat.LU
	lu.Factorize(e.kkt)
	if err := lu.SolveVecTo(e.sol, false, e.rhs); err != nil {
		// mat.Condition is a warning about conditioning, not a failure;
		// the decrement and line search decide whether the step is usable.
		if _, ok := err.(mat.Condition); !ok {
			return ErrSingularKKT
		}
	}
	for i := 0; i < n; i++ {
		v := e.sol.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrSingularKKT
		}
		e.dx[i] = v
	}
	return nil
}

// lineSearch backtracks along e.dx until the Armijo condition holds inside
// the objective's domain, then commits the step into x.
func (e *newtonEngine) lineSearch(obj Func, x []float64) error {
	f0 := obj.Value(x)
	slope := floats.Dot(e.grad, e.dx)
	step := 1.0
	for {
		for i := range x {
			e.xTry[i] = x[i] + step*e.dx[i]
		}
		fTry := obj.Value(e.xTry)
		if !math.IsNaN(fTry) && !math.IsInf(fTry, 0) && fTry <= f0+lsAlpha*step*slope {
			copy(x, e.xTry)
			return nil
		}
		step *= lsBeta
		if step < lsFloor {
			return ErrNoProgress
		}
	}
}
