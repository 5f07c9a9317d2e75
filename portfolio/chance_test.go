package portfolio_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlopt/convex"
	"github.com/katalvlaran/lvlopt/portfolio"
)

func TestMaxReturnChance_DefaultInstance(t *testing.T) {
	mean, cov, alpha, beta := portfolio.DefaultChanceInstance()

	res, err := portfolio.MaxReturnChance(mean, cov, alpha, beta)
	require.NoError(t, err)
	require.Len(t, res.Weights, 3)

	// Fully invested, long only.
	sum := 0.0
	for _, w := range res.Weights {
		require.Greater(t, w, 0.0)
		sum += w
	}
	require.InDelta(t, 1, sum, 1e-8)

	// The risk bound is what stops the return: the constraint binds, and
	// the optimum beats the uniform portfolio (return 1.1667) while staying
	// below the best single asset (1.30).
	require.GreaterOrEqual(t, res.Margin, 0.0)
	require.Less(t, res.Margin, 1e-3)
	require.Greater(t, res.Return, 1.2)
	require.Less(t, res.Return, 1.3)

	// Asset 1 has the worst return and couples with the volatile asset 3;
	// the optimal mix all but drops it.
	require.Less(t, res.Weights[0], 0.05)
	require.Greater(t, res.Weights[2], res.Weights[0])
}

func TestMaxReturnChance_LooseCapIsNominal(t *testing.T) {
	mean, cov, alpha, _ := portfolio.DefaultChanceInstance()

	// β = ½ gives κ = Φ⁻¹(½) = 0: the cone constraint degenerates to
	// "return ≥ α", which never binds here, so the best plan is everything
	// on the highest expected return.
	res, err := portfolio.MaxReturnChance(mean, cov, alpha, 0.5)
	require.NoError(t, err)
	require.InDelta(t, 1.30, res.Return, 1e-6)
	require.Greater(t, res.Weights[2], 0.999)
}

func TestMaxReturnChance_TighterCapCostsReturn(t *testing.T) {
	mean, cov, alpha, _ := portfolio.DefaultChanceInstance()

	// Both caps keep the uniform start feasible; β below ≈0.29 would not.
	relaxed, err := portfolio.MaxReturnChance(mean, cov, alpha, 0.4)
	require.NoError(t, err)
	tight, err := portfolio.MaxReturnChance(mean, cov, alpha, 0.3)
	require.NoError(t, err)

	require.Greater(t, relaxed.Return, tight.Return)
}

func TestMaxReturnChance_InfeasibleStart(t *testing.T) {
	mean, cov, _, beta := portfolio.DefaultChanceInstance()

	// A wealth threshold above the uniform portfolio's return leaves the
	// start point outside the cone.
	res, err := portfolio.MaxReturnChance(mean, cov, 1.2, beta)
	require.ErrorIs(t, err, convex.ErrInfeasibleStart)
	require.Nil(t, res)
}

func TestMaxReturnChance_ValidationSentinels(t *testing.T) {
	mean, cov, alpha, beta := portfolio.DefaultChanceInstance()

	_, err := portfolio.MaxReturnChance(nil, cov, alpha, beta)
	require.ErrorIs(t, err, portfolio.ErrNoAssets)

	_, err = portfolio.MaxReturnChance(mean, nil, alpha, beta)
	require.ErrorIs(t, err, portfolio.ErrDimensionMismatch)

	_, err = portfolio.MaxReturnChance(mean, mat.NewSymDense(2, nil), alpha, beta)
	require.ErrorIs(t, err, portfolio.ErrDimensionMismatch)

	_, err = portfolio.MaxReturnChance([]float64{1, math.NaN(), 1}, cov, alpha, beta)
	require.ErrorIs(t, err, portfolio.ErrAssetData)

	for _, bad := range []float64{0, -0.1, 0.51, 1, math.NaN()} {
		_, err = portfolio.MaxReturnChance(mean, cov, alpha, bad)
		require.ErrorIs(t, err, portfolio.ErrRiskLevel, "beta=%v", bad)
	}

	_, err = portfolio.MaxReturnChance(mean, cov, math.NaN(), beta)
	require.ErrorIs(t, err, portfolio.ErrRiskLevel)

	// Indefinite covariance: eigenvalues 3 and -1.
	bad := mat.NewSymDense(2, []float64{1, 2, 2, 1})
	_, err = portfolio.MaxReturnChance([]float64{1.1, 1.2}, bad, alpha, beta)
	require.ErrorIs(t, err, portfolio.ErrCovariance)
}
