// Package portfolio: the chance-constrained formulation.
//
// With jointly normal returns z ~ N(z̄, Σ), the loss-risk requirement
// Prob(zᵀx ≤ α) ≤ β rewrites as the second-order cone constraint
//
//	Φ⁻¹(1−β)·‖Σ^{1/2}x‖₂ ≤ z̄ᵀx − α,
//
// convex whenever β ≤ ½. The solve maximizes the expected return z̄ᵀx over
// the unit simplex under that constraint, through the log-barrier method.

package portfolio

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvlopt/convex"
)

// ChanceResult is the output of MaxReturnChance.
type ChanceResult struct {
	// Weights is the fraction of capital per asset, in input order. The
	// entries sum to one and stay strictly positive: barrier iterates never
	// touch the boundary, so a weight the optimum drives to zero comes back
	// as a tiny positive number instead.
	Weights []float64
	// Return is the expected portfolio return z̄ᵀx at the optimum.
	Return float64
	// Margin is the slack of the chance constraint, z̄ᵀx − α − κ‖Σ^½x‖₂.
	// A value near zero means the risk bound is what stops the return.
	Margin float64
}

// DefaultChanceInstance returns the three-asset teaching data set: expected
// returns z̄, their covariance Σ, the wealth threshold α = 0.5 and the risk
// level β = 0.3. The covariance couples assets 1 and 3 strongly, which is
// what makes the optimal mix non-obvious.
func DefaultChanceInstance() (mean []float64, cov *mat.SymDense, alpha, beta float64) {
	mean = []float64{1.05, 1.15, 1.30}
	cov = mat.NewSymDense(3, []float64{
		1.0, 0.5, 2.0,
		0.5, 2.0, 0.0,
		2.0, 0.0, 5.0,
	})
	return mean, cov, 0.5, 0.3
}

// MaxReturnChance maximizes the expected return z̄ᵀx of a fully invested
// long-only portfolio while keeping Prob(zᵀx ≤ alpha) at or below beta:
//
//	max  z̄ᵀx
//	s.t. Φ⁻¹(1−β)·‖Σ^{1/2}x‖₂ ≤ z̄ᵀx − α
//	     Σᵢ xᵢ = 1,  x ≥ 0
//
// Contracts:
//   - mean must be non-empty and finite (ErrNoAssets, ErrAssetData) and cov
//     of matching order (ErrDimensionMismatch);
//   - alpha must be finite and beta in (0, 0.5] (ErrRiskLevel);
//   - cov must be positive definite (ErrCovariance);
//   - the uniform portfolio xᵢ = 1/n must satisfy the chance constraint
//     strictly; an (alpha, beta) pair too tight for it surfaces
//     convex.ErrInfeasibleStart.
//
// Complexity: one barrier solve over n weights, O(n³) per Newton step.
func MaxReturnChance(mean []float64, cov *mat.SymDense, alpha, beta float64) (*ChanceResult, error) {
	// Stage 1 - shapes and data.
	n := len(mean)
	if n == 0 {
		return nil, ErrNoAssets
	}
	if cov == nil || cov.SymmetricDim() != n {
		return nil, ErrDimensionMismatch
	}
	for _, v := range mean {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrAssetData
		}
	}

	// Stage 2 - risk parameters.
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) || math.IsNaN(beta) || beta <= 0 || beta > 0.5 {
		return nil, ErrRiskLevel
	}

	// Stage 3 - Σ must admit a Cholesky factor, so ‖Σ^½x‖ is a real norm.
	var chol mat.Cholesky
	if !chol.Factorize(cov) {
		return nil, ErrCovariance
	}

	kappa := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1 - beta)

	// Full-investment equality 1ᵀx = 1.
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	cone := newConeFunc(kappa, mean, cov, alpha)
	ineqs := make([]convex.Func, 0, n+1)
	ineqs = append(ineqs, cone)
	for i := 0; i < n; i++ {
		ineqs = append(ineqs, nonNegFunc(i))
	}

	prob := convex.Problem{
		Objective: negReturnFunc{mean: mean},
		Ineqs:     ineqs,
		A:         mat.NewDense(1, n, ones),
		B:         []float64{1},
	}

	x0 := make([]float64, n)
	for i := range x0 {
		x0[i] = 1 / float64(n)
	}

	res, err := convex.Minimize(prob, x0)
	if err != nil {
		return nil, err
	}

	return &ChanceResult{
		Weights: res.X,
		Return:  -res.Value,
		Margin:  -cone.Value(res.X),
	}, nil
}

// negReturnFunc is the linear objective −z̄ᵀx; the barrier minimizes it,
// which maximizes the expected return.
type negReturnFunc struct{ mean []float64 }

func (f negReturnFunc) Value(x []float64) float64 { return -floats.Dot(f.mean, x) }

func (f negReturnFunc) Grad(dst, x []float64) {
	for i, m := range f.mean {
		dst[i] = -m
	}
}

func (f negReturnFunc) Hess(dst *mat.SymDense, x []float64) { dst.Zero() }

// nonNegFunc is gᵢ(x) = −xᵢ, one long-only constraint per asset.
type nonNegFunc int

func (f nonNegFunc) Value(x []float64) float64 { return -x[f] }

func (f nonNegFunc) Grad(dst, x []float64) {
	for j := range dst {
		dst[j] = 0
	}
	dst[f] = -1
}

func (f nonNegFunc) Hess(dst *mat.SymDense, x []float64) { dst.Zero() }

// coneFunc is the chance constraint in solver form,
//
//	g(x) = κ·s(x) − z̄ᵀx + α,  s(x) = ‖Σ^{1/2}x‖₂ = √(xᵀΣx),
//
// with derivatives
//
//	∇g  = κ·Σx/s − z̄
//	∇²g = κ·(Σ/s − (Σx)(Σx)ᵀ/s³)
//
// The norm is smooth wherever xᵀΣx > 0, which a positive definite Σ grants
// at every nonzero x; a vanishing quadratic form reads as +Inf so the line
// search backs away instead of dividing by zero.
type coneFunc struct {
	kappa float64
	mean  []float64
	alpha float64
	cov   *mat.SymDense

	sx *mat.VecDense // buffer for Σx
}

func newConeFunc(kappa float64, mean []float64, cov *mat.SymDense, alpha float64) *coneFunc {
	return &coneFunc{
		kappa: kappa,
		mean:  mean,
		alpha: alpha,
		cov:   cov,
		sx:    mat.NewVecDense(len(mean), nil),
	}
}

// norm refreshes the Σx buffer and returns s(x).
func (f *coneFunc) norm(x []float64) float64 {
	xv := mat.NewVecDense(len(x), x)
	f.sx.MulVec(f.cov, xv)
	return math.Sqrt(mat.Dot(xv, f.sx))
}

func (f *coneFunc) Value(x []float64) float64 {
	s := f.norm(x)
	if math.IsNaN(s) || s == 0 {
		return math.Inf(1)
	}
	return f.kappa*s - floats.Dot(f.mean, x) + f.alpha
}

func (f *coneFunc) Grad(dst, x []float64) {
	s := f.norm(x)
	for i := range dst {
		dst[i] = f.kappa*f.sx.AtVec(i)/s - f.mean[i]
	}
}

func (f *coneFunc) Hess(dst *mat.SymDense, x []float64) {
	s := f.norm(x)
	s3 := s * s * s
	n := len(x)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			dst.SetSym(i, j, f.kappa*(f.cov.At(i, j)/s-f.sx.AtVec(i)*f.sx.AtVec(j)/s3))
		}
	}
}
