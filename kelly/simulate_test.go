package kelly_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/kelly"
)

func TestSimulate_StructureAndGrowth(t *testing.T) {
	const p, b, f = 0.51, 2.0, 0.265
	rate := p*math.Log(1+b*f) + (1-p)*math.Log(1-f)

	sim, err := kelly.Simulate(p, b, f, kelly.DefaultSimOptions())
	require.NoError(t, err)

	// Auto horizon: the rounds over which the mean path gains one decade.
	wantSteps := int(math.Ceil(math.Ln10 / rate))
	require.Len(t, sim.Wealth, kelly.DefaultSimPaths)
	for _, path := range sim.Wealth {
		require.Len(t, path, wantSteps+1)
		require.Equal(t, 1.0, path[0])
		for _, w := range path {
			require.Greater(t, w, 0.0)
		}
	}

	// The empirical growth tracks the theoretical rate; 100 paths keep the
	// estimate within a few standard errors.
	require.InDelta(t, rate, sim.MeanLogGrowth, 0.03)

	// Any loss taken at a running peak already draws down by the bet
	// fraction, and loss runs go deeper.
	require.LessOrEqual(t, sim.MinWealth, 1.0)
	require.Greater(t, sim.MinWealth, 0.0)
	require.Greater(t, sim.MaxDrawdown, 0.2)
	require.Less(t, sim.MaxDrawdown, 1.0)
}

func TestSimulate_DeterministicPerSeed(t *testing.T) {
	opts := kelly.SimOptions{Steps: 40, Paths: 8, Seed: 7}

	a, err := kelly.Simulate(0.51, 2, 0.2, opts)
	require.NoError(t, err)
	b, err := kelly.Simulate(0.51, 2, 0.2, opts)
	require.NoError(t, err)
	require.Equal(t, a.Wealth, b.Wealth)
	require.Equal(t, a.MeanLogGrowth, b.MeanLogGrowth)

	opts.Seed = 8
	c, err := kelly.Simulate(0.51, 2, 0.2, opts)
	require.NoError(t, err)
	require.NotEqual(t, a.Wealth[0], c.Wealth[0])
}

func TestSimulate_ZeroFraction(t *testing.T) {
	sim, err := kelly.Simulate(0.51, 2, 0, kelly.DefaultSimOptions())
	require.NoError(t, err)

	// No bet, no motion: flat paths over the fallback horizon.
	for _, path := range sim.Wealth {
		require.Len(t, path, 81)
		for _, w := range path {
			require.Equal(t, 1.0, w)
		}
	}
	require.Zero(t, sim.MeanLogGrowth)
	require.Equal(t, 1.0, sim.MinWealth)
	require.Zero(t, sim.MaxDrawdown)
}

func TestSimulate_SmallerBetSmallerDrawdown(t *testing.T) {
	// The risk-constrained fraction trades growth for calmer paths; with a
	// shared outcome stream the drawdown comparison is exact, not lucky.
	opts := kelly.DefaultSimOptions()
	opts.Steps = 80

	full, err := kelly.Simulate(0.51, 2, 0.265, opts)
	require.NoError(t, err)
	safe, err := kelly.Simulate(0.51, 2, 0.131, opts)
	require.NoError(t, err)

	require.Less(t, safe.MaxDrawdown, full.MaxDrawdown)
	require.Greater(t, safe.MinWealth, full.MinWealth)
}

func TestSimulate_ValidationSentinels(t *testing.T) {
	opts := kelly.DefaultSimOptions()

	for _, bad := range []float64{-0.1, 1, 1.5, math.NaN()} {
		_, err := kelly.Simulate(0.51, 2, bad, opts)
		require.ErrorIs(t, err, kelly.ErrFraction, "fraction=%v", bad)
	}

	_, err := kelly.Simulate(0, 2, 0.1, opts)
	require.ErrorIs(t, err, kelly.ErrProbability)

	_, err = kelly.Simulate(0.51, 0, 0.1, opts)
	require.ErrorIs(t, err, kelly.ErrOdds)

	_, err = kelly.Simulate(0.51, 2, 0.1, kelly.SimOptions{Steps: -1, Paths: 10})
	require.ErrorIs(t, err, kelly.ErrBadSteps)

	_, err = kelly.Simulate(0.51, 2, 0.1, kelly.SimOptions{Steps: 10, Paths: 0})
	require.ErrorIs(t, err, kelly.ErrBadPaths)
}
