package robust_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/robust"
)

func TestCCG_ConvergesOnBookInstance(t *testing.T) {
	p := robust.NewProblem()
	u := robust.DefaultUncertainty()

	res, err := p.CCG(u, robust.DefaultCCGOptions())
	require.NoError(t, err)

	require.True(t, res.Converged)
	require.GreaterOrEqual(t, res.Iterations, 2)
	require.Len(t, res.Thetas, res.Iterations)
	require.Len(t, res.Scenarios, res.Iterations)

	// The loop starts from the nominal scenario and first finds the
	// 25-hour labor-B overdraw; at the end no violation above tolerance
	// is left.
	require.Equal(t, robust.Nominal(), res.Scenarios[0])
	require.InDelta(t, 25, res.Thetas[0], 1e-6)
	require.Less(t, res.Thetas[len(res.Thetas)-1], robust.DefaultTolerance)
	for _, s := range res.Scenarios[1:] {
		require.True(t, u.Contains(s), "%+v", s)
	}

	// Robustness costs: the order drops below the nominal 740 and the
	// guarantee below the nominal 2600, but both stay sensible.
	require.Greater(t, res.X, 200.0)
	require.Less(t, res.X, 740.0)
	require.Greater(t, res.WorstCase, 500.0)
	require.Less(t, res.WorstCase, 2600.0)
}

func TestCCG_GuaranteeHoldsOnItsPool(t *testing.T) {
	p := robust.NewProblem()

	res, err := p.CCG(robust.DefaultUncertainty(), robust.DefaultCCGOptions())
	require.NoError(t, err)
	require.True(t, res.Converged)

	// Re-solving the recourse for every pooled scenario at the robust
	// order can only improve on the master's plans, so each net profit
	// clears the worst-case value.
	ev, err := p.EvaluatePlan(res.X, res.Scenarios)
	require.NoError(t, err)
	require.Len(t, ev.Net, len(res.Scenarios))
	require.GreaterOrEqual(t, ev.Min, res.WorstCase-1e-6)
	require.GreaterOrEqual(t, ev.Max, ev.Mean)
	require.GreaterOrEqual(t, ev.Mean, ev.Min)
}

func TestCCG_FirstRoundMatchesManualSteps(t *testing.T) {
	p := robust.NewProblem()
	u := robust.DefaultUncertainty()
	opts := robust.DefaultCCGOptions()

	master, err := p.MaxMin([]robust.Scenario{robust.Nominal()})
	require.NoError(t, err)
	theta, worst, err := p.Pessimize(master.Plans, u, opts)
	require.NoError(t, err)

	res, err := p.CCG(u, opts)
	require.NoError(t, err)

	// The driver is plain alternation, so its first round reproduces the
	// hand-run master and pessimization bit for bit.
	require.Equal(t, theta, res.Thetas[0])
	require.Equal(t, worst, res.Scenarios[1])
}

func TestCCG_ZeroBudgetConvergesImmediately(t *testing.T) {
	p := robust.NewProblem()
	u := robust.DefaultUncertainty()
	u.Gamma = 0

	res, err := p.CCG(u, robust.DefaultCCGOptions())
	require.NoError(t, err)

	// With no deviation budget the nominal plan is already robust.
	require.True(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
	require.Len(t, res.Scenarios, 1)
	require.InDelta(t, 740, res.X, 1e-6)
	require.InDelta(t, 2600, res.WorstCase, 1e-6)
}

func TestCCG_RespectsIterationCap(t *testing.T) {
	p := robust.NewProblem()
	opts := robust.DefaultCCGOptions()
	opts.MaxIterations = 1

	res, err := p.CCG(robust.DefaultUncertainty(), opts)
	require.NoError(t, err)

	// One round: the nominal master, one violation found, no convergence.
	require.False(t, res.Converged)
	require.Equal(t, 1, res.Iterations)
	require.Len(t, res.Scenarios, 2)
	require.InDelta(t, 25, res.Thetas[0], 1e-6)
	require.InDelta(t, 740, res.X, 1e-6)
	require.InDelta(t, 2600, res.WorstCase, 1e-6)
}

func TestCCG_ValidationSentinels(t *testing.T) {
	p := robust.NewProblem()
	u := robust.DefaultUncertainty()
	opts := robust.DefaultCCGOptions()

	bad := robust.NewProblem()
	bad.Orders = math.NaN()
	_, err := bad.CCG(u, opts)
	require.ErrorIs(t, err, robust.ErrProblemData)

	badU := u
	badU.ZDMax = -0.25
	_, err = p.CCG(badU, opts)
	require.ErrorIs(t, err, robust.ErrUncertainty)

	badOpts := opts
	badOpts.Tolerance = math.NaN()
	_, err = p.CCG(u, badOpts)
	require.ErrorIs(t, err, robust.ErrBadTolerance)

	badOpts = opts
	badOpts.MaxIterations = -3
	_, err = p.CCG(u, badOpts)
	require.ErrorIs(t, err, robust.ErrBadIterations)
}
