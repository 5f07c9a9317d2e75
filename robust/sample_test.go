package robust_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/robust"
)

func TestSampleScenarios_StayInsideTheSet(t *testing.T) {
	u := robust.DefaultUncertainty()

	scenarios, err := robust.SampleScenarios(500, u, 7)
	require.NoError(t, err)
	require.Len(t, scenarios, 500)

	for i, s := range scenarios {
		require.True(t, u.Contains(s), "sample %d: %+v", i, s)
	}

	// The sampler covers both signs of each component.
	var negA, posA, negD, posD int
	for _, s := range scenarios {
		switch {
		case s.ZA < 0:
			negA++
		case s.ZA > 0:
			posA++
		}
		switch {
		case s.ZD < 0:
			negD++
		case s.ZD > 0:
			posD++
		}
	}
	require.Positive(t, negA)
	require.Positive(t, posA)
	require.Positive(t, negD)
	require.Positive(t, posD)
}

func TestSampleScenarios_DeterministicPerSeed(t *testing.T) {
	u := robust.DefaultUncertainty()

	a, err := robust.SampleScenarios(50, u, 11)
	require.NoError(t, err)
	b, err := robust.SampleScenarios(50, u, 11)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := robust.SampleScenarios(50, u, 12)
	require.NoError(t, err)
	require.NotEqual(t, a[0], c[0])

	// Seed zero is an alias for the default seed.
	d, err := robust.SampleScenarios(50, u, 0)
	require.NoError(t, err)
	e, err := robust.SampleScenarios(50, u, robust.DefaultSampleSeed)
	require.NoError(t, err)
	require.Equal(t, d, e)
}

func TestSampleScenarios_EmptySetFails(t *testing.T) {
	u := robust.DefaultUncertainty()
	u.Gamma = 0

	// A zero budget shrinks the set to a point the box draws never hit.
	_, err := robust.SampleScenarios(1, u, 1)
	require.ErrorIs(t, err, robust.ErrSampling)
}

func TestSampleScenarios_ValidationSentinels(t *testing.T) {
	u := robust.DefaultUncertainty()

	for _, n := range []int{0, -5} {
		_, err := robust.SampleScenarios(n, u, 1)
		require.ErrorIs(t, err, robust.ErrSampleSize, "n=%d", n)
	}

	bad := u
	bad.ZBMax = 0
	_, err := robust.SampleScenarios(10, bad, 1)
	require.ErrorIs(t, err, robust.ErrUncertainty)
}
