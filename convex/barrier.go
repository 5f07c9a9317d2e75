// Package convex: the barrier driver and the composite centering objective.

package convex

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// feasEps is the tolerated ∞-norm residual of A x0 = B at the start point.
const feasEps = 1e-8

// Minimize solves the problem from the strictly feasible start x0.
//
// Contracts:
//   - p.Objective must be non-nil; dimensions of x0, p.A and p.B must agree.
//   - x0 must satisfy g_i(x0) < 0 for every inequality and A x0 = B within
//     1e-8; otherwise ErrInfeasibleStart.
//   - On success the result satisfies f0(X) - p* <= Gap.
//
// Complexity: O(log(m/(tol·t0)) / log(mu)) centerings, each a handful of
// Newton steps at O((n+r)³) apiece.
func Minimize(p Problem, x0 []float64, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1 - static validation.
	if p.Objective == nil {
		return nil, ErrNilObjective
	}
	n := len(x0)
	if n == 0 {
		return nil, ErrDimensionMismatch
	}
	r := 0
	if p.A != nil {
		ar, ac := p.A.Dims()
		if ac != n || ar != len(p.B) {
			return nil, ErrDimensionMismatch
		}
		r = ar
	} else if len(p.B) != 0 {
		return nil, ErrDimensionMismatch
	}

	// Stage 2 - start-point feasibility.
	if v := p.Objective.Value(x0); math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrDomain
	}
	for i, g := range p.Ineqs {
		if gv := g.Value(x0); !(gv < 0) {
			return nil, fmt.Errorf("inequality %d (g=%v): %w", i, gv, ErrInfeasibleStart)
		}
	}
	if r > 0 {
		for i := 0; i < r; i++ {
			res := -p.B[i]
			for j := 0; j < n; j++ {
				res += p.A.At(i, j) * x0[j]
			}
			if math.Abs(res) > feasEps {
				return nil, fmt.Errorf("equality %d (residual=%v): %w", i, res, ErrInfeasibleStart)
			}
		}
	}

	// Stage 3 - iterate.
	x := append([]float64(nil), x0...)
	eng := newNewtonEngine(n, r)
	m := len(p.Ineqs)

	if m == 0 {
		// No barrier needed: a single centering is the whole solve.
		its, err := eng.center(p.Objective, p.A, p.B, x, o)
		if err != nil {
			return nil, err
		}
		return &Result{X: x, Value: p.Objective.Value(x), Gap: 0, OuterIters: 1, NewtonIters: its}, nil
	}

	bo := newBarrierObjective(&p, n)
	t := o.t0
	outer, newtonTotal := 0, 0
	for {
		bo.t = t
		its, err := eng.center(bo, p.A, p.B, x, o)
		if err != nil {
			return nil, err
		}
		outer++
		newtonTotal += its

		if gap := float64(m) / t; gap < o.gapTol {
			return &Result{
				X:           x,
				Value:       p.Objective.Value(x),
				Gap:         gap,
				OuterIters:  outer,
				NewtonIters: newtonTotal,
			}, nil
		}
		t *= o.mu
	}
}

// barrierObjective is t·f0(x) - Σ log(-g_i(x)) with derivatives assembled
// from the parts:
//
//	grad = t·∇f0 + Σ ∇g_i/(-g_i)
//	hess = t·∇²f0 + Σ [∇²g_i/(-g_i) + ∇g_i ∇g_iᵀ/g_i²]
type barrierObjective struct {
	p *Problem
	t float64

	gbuf []float64
	hbuf *mat.SymDense
}

func newBarrierObjective(p *Problem, n int) *barrierObjective {
	return &barrierObjective{
		p:    p,
		gbuf: make([]float64, n),
		hbuf: mat.NewSymDense(n, nil),
	}
}

// Value returns +Inf outside the domain {x : g_i(x) < 0 ∀i}, which is how
// the line search keeps iterates strictly feasible.
func (b *barrierObjective) Value(x []float64) float64 {
	v := b.t * b.p.Objective.Value(x)
	for _, g := range b.p.Ineqs {
		gv := g.Value(x)
		if math.IsNaN(gv) || !(gv < 0) {
			return math.Inf(1)
		}
		v -= math.Log(-gv)
	}
	return v
}

func (b *barrierObjective) Grad(dst, x []float64) {
	b.p.Objective.Grad(dst, x)
	floats.Scale(b.t, dst)
	for _, g := range b.p.Ineqs {
		g.Grad(b.gbuf, x)
		floats.AddScaled(dst, 1/(-g.Value(x)), b.gbuf)
	}
}

func (b *barrierObjective) Hess(dst *mat.SymDense, x []float64) {
	n := len(x)
	b.p.Objective.Hess(dst, x)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dst.SetSym(i, j, b.t*dst.At(i, j))
		}
	}
	for _, g := range b.p.Ineqs {
		g.Hess(b.hbuf, x)
		g.Grad(b.gbuf, x)
		gv := g.Value(x)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				dst.SetSym(i, j, dst.At(i, j)+b.hbuf.At(i, j)/(-gv)+b.gbuf[i]*b.gbuf[j]/(gv*gv))
			}
		}
	}
}
