package portfolio_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/portfolio"
)

func TestDefaultAssets_Table(t *testing.T) {
	assets := portfolio.DefaultAssets()
	require.Len(t, assets, 100)

	require.InDelta(t, 1.1505, assets[0].Nominal, 1e-12)
	require.InDelta(t, 1.20, assets[99].Nominal, 1e-12)
	require.InDelta(t, 0.05/300*math.Sqrt(45300), assets[0].Deviation, 1e-12)

	// Deviations grow with the index faster than nominals do.
	for j := 1; j < len(assets); j++ {
		require.Greater(t, assets[j].Nominal, assets[j-1].Nominal)
		require.Greater(t, assets[j].Deviation, assets[j-1].Deviation)
	}
}

func TestMaxReturnRobust_NoProtection(t *testing.T) {
	// Γ=0 ignores deviations: everything goes on the best nominal return,
	// asset 100 at rate 1.20.
	res, err := portfolio.MaxReturnRobust(portfolio.DefaultAssets(), 1000, 0)
	require.NoError(t, err)
	require.InDelta(t, 1200, res.Return, 1e-6)
	require.InDelta(t, 1000, res.Weights[99], 1e-6)
	require.InDelta(t, 0, res.Gamma, 0)
}

func TestMaxReturnRobust_FullProtection(t *testing.T) {
	// Γ=100 lets every return hit its worst case: everything goes on the
	// best guaranteed rate, asset 1 at 1.1505 − s₁.
	assets := portfolio.DefaultAssets()
	res, err := portfolio.MaxReturnRobust(assets, 1000, 100)
	require.NoError(t, err)

	want := 1000 * (assets[0].Nominal - assets[0].Deviation)
	require.InDelta(t, want, res.Return, 1e-6)
	require.InDelta(t, 1115.027, res.Return, 1e-2)
	require.InDelta(t, 1000, res.Weights[0], 1e-6)
}

func TestFrontier_PriceOfRobustness(t *testing.T) {
	assets := portfolio.DefaultAssets()
	gammas := []float64{0, 5, 10, 20, 35, 50}

	results, err := portfolio.Frontier(assets, 1000, gammas)
	require.NoError(t, err)
	require.Len(t, results, len(gammas))

	// The guaranteed return starts at the nominal optimum and decreases as
	// the adversary's budget grows, never dropping below full conservatism.
	require.InDelta(t, 1200, results[0].Return, 1e-6)
	for i := 1; i < len(results); i++ {
		require.LessOrEqual(t, results[i].Return, results[i-1].Return+1e-9)
		require.Greater(t, results[i].Return, 1115.0)
	}

	// Intermediate budgets sit strictly between the two extremes.
	require.Less(t, results[3].Return, 1200.0)
	require.Greater(t, results[3].Return, 1115.03)

	// Every plan invests the full capital.
	for _, r := range results {
		sum := 0.0
		for _, w := range r.Weights {
			sum += w
		}
		require.InDelta(t, 1000, sum, 1e-6)
	}
}

func TestMaxReturnRobust_ValidationSentinels(t *testing.T) {
	assets := portfolio.DefaultAssets()

	_, err := portfolio.MaxReturnRobust(nil, 1000, 0)
	require.ErrorIs(t, err, portfolio.ErrNoAssets)

	_, err = portfolio.MaxReturnRobust([]portfolio.Asset{{Nominal: math.NaN()}}, 1000, 0)
	require.ErrorIs(t, err, portfolio.ErrAssetData)

	_, err = portfolio.MaxReturnRobust([]portfolio.Asset{{Nominal: 1.1, Deviation: -0.2}}, 1000, 0)
	require.ErrorIs(t, err, portfolio.ErrAssetData)

	for _, bad := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		_, err = portfolio.MaxReturnRobust(assets, bad, 0)
		require.ErrorIs(t, err, portfolio.ErrBudget, "capital=%v", bad)
	}

	for _, bad := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err = portfolio.MaxReturnRobust(assets, 1000, bad)
		require.ErrorIs(t, err, portfolio.ErrGamma, "gamma=%v", bad)
	}

	_, err = portfolio.Frontier(assets, 1000, nil)
	require.ErrorIs(t, err, portfolio.ErrNoGammas)

	_, err = portfolio.Frontier(assets, 1000, []float64{0, -3})
	require.ErrorIs(t, err, portfolio.ErrGamma)
}
