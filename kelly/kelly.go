// Package kelly: the log-growth bet and its risk-constrained variant.

package kelly

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlopt/convex"
)

// startHalvings caps the search for a strictly feasible start in
// RiskConstrained; past it the risk bound is treated as admitting only the
// zero bet.
const startHalvings = 60

// BetResult is the output of Bet and RiskConstrained.
type BetResult struct {
	// Fraction is the share of wealth to wager each round.
	Fraction float64
	// LogGrowth is the expected log growth per round at Fraction,
	// p·log(1+b·Fraction) + (1−p)·log(1−Fraction). Zero for a zero bet.
	LogGrowth float64
}

// Analytic returns the closed-form Kelly fraction p − (1−p)/b. A negative
// value means the edge p·b < 1−p makes the game not worth playing; Bet
// returns a zero fraction in that case. This is the bare formula, no
// validation.
func Analytic(p, b float64) float64 {
	return p - (1-p)/b
}

// Bet maximizes the expected log growth p·log(1+bw) + (1−p)·log(1−w) over
// the bet fraction w.
//
// The objective's own domain (−1/b, 1) acts as the barrier: outside it the
// negated objective reads +Inf and the line search backs away, so the solve
// needs no explicit inequality constraints.
//
// Contracts:
//   - p must lie strictly in (0, 1): ErrProbability;
//   - b must be positive and finite: ErrOdds;
//   - an unfavorable edge p·b ≤ 1−p returns a zero bet without calling the
//     solver (the optimum sits on the w ≥ 0 boundary).
//
// Complexity: one Newton centering over a single variable.
func Bet(p, b float64) (*BetResult, error) {
	if err := validateGame(p, b); err != nil {
		return nil, err
	}
	if p*b <= 1-p {
		return &BetResult{Fraction: 0, LogGrowth: 0}, nil
	}

	res, err := convex.Minimize(convex.Problem{Objective: negGrowthFunc{p: p, b: b}}, []float64{0})
	if err != nil {
		return nil, err
	}
	return &BetResult{Fraction: res.X[0], LogGrowth: -res.Value}, nil
}

// RiskConstrained maximizes the same log growth subject to the
// Busseti–Ryu–Boyd risk bound E[R^{−λ}] ≤ 1, which for the two-outcome
// game reads
//
//	g(w) = p(1+bw)^{−λ} + (1−p)(1−w)^{−λ} − 1 ≤ 0.
//
// Larger λ forbids more of the aggressive fractions; λ = 0 disables the
// bound and delegates to Bet.
//
// g is convex with g(0) = 0 exactly: the zero bet always satisfies the
// bound but never strictly, so it cannot seed the barrier. For favorable
// games g'(0) < 0, and halving down from half the unconstrained fraction
// reaches a strictly feasible start in a few steps.
//
// Contracts: as Bet, plus λ ≥ 0 and finite (ErrRiskAversion).
func RiskConstrained(p, b, lambda float64) (*BetResult, error) {
	if err := validateGame(p, b); err != nil {
		return nil, err
	}
	if math.IsNaN(lambda) || math.IsInf(lambda, 0) || lambda < 0 {
		return nil, ErrRiskAversion
	}
	if lambda == 0 {
		return Bet(p, b)
	}
	if p*b <= 1-p {
		return &BetResult{Fraction: 0, LogGrowth: 0}, nil
	}

	risk := riskFunc{p: p, b: b, lambda: lambda}

	x0 := Analytic(p, b) / 2
	for i := 0; risk.Value([]float64{x0}) >= 0; i++ {
		if i == startHalvings {
			// Numerically, no positive fraction clears the bound.
			return &BetResult{Fraction: 0, LogGrowth: 0}, nil
		}
		x0 /= 2
	}

	prob := convex.Problem{
		Objective: negGrowthFunc{p: p, b: b},
		Ineqs:     []convex.Func{risk},
	}
	res, err := convex.Minimize(prob, []float64{x0})
	if err != nil {
		return nil, err
	}
	return &BetResult{Fraction: res.X[0], LogGrowth: -res.Value}, nil
}

// validateGame runs the entry checks shared by Bet, RiskConstrained and
// Simulate.
func validateGame(p, b float64) error {
	if math.IsNaN(p) || p <= 0 || p >= 1 {
		return ErrProbability
	}
	if math.IsNaN(b) || math.IsInf(b, 0) || b <= 0 {
		return ErrOdds
	}
	return nil
}

// negGrowthFunc is −[p·log(1+bw) + (1−p)·log(1−w)], read as +Inf outside
// the domain −1/b < w < 1.
type negGrowthFunc struct{ p, b float64 }

func (f negGrowthFunc) Value(x []float64) float64 {
	up, down := 1+f.b*x[0], 1-x[0]
	if up <= 0 || down <= 0 {
		return math.Inf(1)
	}
	return -(f.p*math.Log(up) + (1-f.p)*math.Log(down))
}

func (f negGrowthFunc) Grad(dst, x []float64) {
	up, down := 1+f.b*x[0], 1-x[0]
	dst[0] = -f.p*f.b/up + (1-f.p)/down
}

func (f negGrowthFunc) Hess(dst *mat.SymDense, x []float64) {
	up, down := 1+f.b*x[0], 1-x[0]
	dst.SetSym(0, 0, f.p*f.b*f.b/(up*up)+(1-f.p)/(down*down))
}

// riskFunc is g(w) = p(1+bw)^{−λ} + (1−p)(1−w)^{−λ} − 1, the two-outcome
// form of E[R^{−λ}] ≤ 1, with derivatives
//
//	g'  = λ·[−pb(1+bw)^{−λ−1} + (1−p)(1−w)^{−λ−1}]
//	g'' = λ(λ+1)·[pb²(1+bw)^{−λ−2} + (1−p)(1−w)^{−λ−2}]
type riskFunc struct{ p, b, lambda float64 }

func (f riskFunc) Value(x []float64) float64 {
	up, down := 1+f.b*x[0], 1-x[0]
	if up <= 0 || down <= 0 {
		return math.Inf(1)
	}
	return f.p*math.Pow(up, -f.lambda) + (1-f.p)*math.Pow(down, -f.lambda) - 1
}

func (f riskFunc) Grad(dst, x []float64) {
	up, down := 1+f.b*x[0], 1-x[0]
	dst[0] = f.lambda * (-f.p*f.b*math.Pow(up, -f.lambda-1) + (1-f.p)*math.Pow(down, -f.lambda-1))
}

func (f riskFunc) Hess(dst *mat.SymDense, x []float64) {
	up, down := 1+f.b*x[0], 1-x[0]
	dst.SetSym(0, 0, f.lambda*(f.lambda+1)*(f.p*f.b*f.b*math.Pow(up, -f.lambda-2)+(1-f.p)*math.Pow(down, -f.lambda-2)))
}
