// Package portfolio: the budget-of-uncertainty formulation and its Γ sweep.

package portfolio

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlopt/model"
	"github.com/katalvlaran/lvlopt/solver"
)

// Asset describes one investable asset: the nominal return rate and the
// half-width of the interval the realized rate may deviate within. The
// realized return is anywhere in [Nominal−Deviation, Nominal+Deviation].
type Asset struct {
	Nominal   float64
	Deviation float64
}

// DefaultAssets returns the 100-asset broker instance: asset j (1-based)
// has nominal return 1.15 + 0.05·j/100 and deviation (0.05/300)·√(45300·j).
// Nominal returns grow with j while deviations grow faster, so the
// risk-ignorant plan buys asset 100 and the fully conservative plan buys
// asset 1; intermediate budgets spread in between.
func DefaultAssets() []Asset {
	const n = 100
	out := make([]Asset, n)
	for i := 0; i < n; i++ {
		j := float64(i + 1)
		out[i] = Asset{
			Nominal:   1.15 + 0.05*j/100,
			Deviation: 0.05 / 300 * math.Sqrt(45300*j),
		}
	}
	return out
}

// RobustResult is the output of MaxReturnRobust.
type RobustResult struct {
	// Weights is the capital allocated per asset, in input order; the
	// entries sum to the invested capital.
	Weights []float64
	// Return is the guaranteed final wealth: the worst case over every
	// realization in which at most Γ budget-weighted deviations hit at once.
	Return float64
	// Gamma echoes the protection level the solve used.
	Gamma float64
}

// MaxReturnRobust maximizes the worst-case return of a portfolio whose
// asset returns may each deviate from nominal, with the total (scaled)
// deviation capped by the budget Γ. The tractable robust counterpart is
// the linear program
//
//	max  w
//	s.t. Σ_j x_j = C
//	     w − Σ_j r_j x_j + Γλ + Σ_j z_j ≤ 0
//	     z_j ≥  s_j x_j − λ      (j = 1..n)
//	     z_j ≥ −s_j x_j − λ      (j = 1..n)
//	     x, z, λ, w ≥ 0
//
// where λ prices the deviation budget and z_j buys per-asset protection.
// Γ=0 recovers the nominal LP (all capital on the best nominal return);
// Γ≥n recovers full conservatism (all capital on the best worst case).
//
// Contracts:
//   - assets must be non-empty with finite nominals and non-negative finite
//     deviations (ErrNoAssets, ErrAssetData);
//   - capital must be positive and finite (ErrBudget);
//   - gamma must be non-negative and finite (ErrGamma).
//
// Complexity: one LP solve with 2n+2 variables and 2n+2 rows.
func MaxReturnRobust(assets []Asset, capital, gamma float64) (*RobustResult, error) {
	if err := validateRobust(assets, capital, gamma); err != nil {
		return nil, err
	}

	n := len(assets)
	m := model.New("robust-portfolio", model.Maximize)

	x := make([]model.Var, n)
	z := make([]model.Var, n)
	for j := range assets {
		x[j] = m.NewVar(fmt.Sprintf("x%d", j+1))
	}
	for j := range assets {
		z[j] = m.NewVar(fmt.Sprintf("z%d", j+1))
	}
	lambda := m.NewVar("lambda")
	w := m.NewVar("w")

	m.SetObjective(model.NewExpr().Term(1, w))

	m.AddEq("budget", model.Sum(x...), capital)

	// The return can drop to Σ r_j x_j − Γλ − Σ z_j in the worst case;
	// w must stay below that.
	worst := model.NewExpr().Term(1, w).Term(gamma, lambda)
	for j, a := range assets {
		worst.Term(-a.Nominal, x[j]).Term(1, z[j])
	}
	m.AddLe("worst-case return", worst, 0)

	for j, a := range assets {
		m.AddGe(fmt.Sprintf("protect upper %d", j+1),
			model.NewExpr().Term(1, z[j]).Term(-a.Deviation, x[j]).Term(1, lambda), 0)
		m.AddGe(fmt.Sprintf("protect lower %d", j+1),
			model.NewExpr().Term(1, z[j]).Term(a.Deviation, x[j]).Term(1, lambda), 0)
	}

	sol, err := solver.Solve(m)
	if err != nil {
		return nil, err
	}

	weights := make([]float64, n)
	for j := range x {
		weights[j] = sol.Value(x[j])
	}
	return &RobustResult{Weights: weights, Return: sol.Objective, Gamma: gamma}, nil
}

// Frontier solves MaxReturnRobust once per Γ in gammas and returns the
// results in the same order. The sweep traces the price of robustness: the
// guaranteed return is non-increasing in Γ, and flat once Γ exceeds the
// number of assets.
func Frontier(assets []Asset, capital float64, gammas []float64) ([]RobustResult, error) {
	if len(gammas) == 0 {
		return nil, ErrNoGammas
	}
	out := make([]RobustResult, 0, len(gammas))
	for _, g := range gammas {
		r, err := MaxReturnRobust(assets, capital, g)
		if err != nil {
			return nil, fmt.Errorf("gamma %v: %w", g, err)
		}
		out = append(out, *r)
	}
	return out, nil
}

// validateRobust runs the staged entry checks shared by MaxReturnRobust
// and Frontier.
func validateRobust(assets []Asset, capital, gamma float64) error {
	if len(assets) == 0 {
		return ErrNoAssets
	}
	for j, a := range assets {
		if math.IsNaN(a.Nominal) || math.IsInf(a.Nominal, 0) ||
			math.IsNaN(a.Deviation) || math.IsInf(a.Deviation, 0) || a.Deviation < 0 {
			return fmt.Errorf("asset %d: %w", j+1, ErrAssetData)
		}
	}
	if math.IsNaN(capital) || math.IsInf(capital, 0) || capital <= 0 {
		return ErrBudget
	}
	if math.IsNaN(gamma) || math.IsInf(gamma, 0) || gamma < 0 {
		return ErrGamma
	}
	return nil
}
