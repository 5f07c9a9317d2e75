package solver_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/model"
	"github.com/katalvlaran/lvlopt/solver"
)

// knapsack builds the classic 0/1 instance
// max 8a + 11b + 6c + 4d s.t. 5a + 7b + 4c + 3d <= 14, all binary.
// LP relaxation peaks at 22 (c fractional); the unique integer optimum is
// (0, 1, 1, 1) with value 21.
func knapsack() (*model.Model, []model.Var) {
	m := model.New("knapsack", model.Maximize)
	vars := make([]model.Var, 4)
	names := []string{"a", "b", "c", "d"}
	for i, n := range names {
		vars[i] = m.NewBinaryVar(n)
	}
	values := []float64{8, 11, 6, 4}
	weights := []float64{5, 7, 4, 3}
	obj := model.NewExpr()
	load := model.NewExpr()
	for i, v := range vars {
		obj.Term(values[i], v)
		load.Term(weights[i], v)
	}
	m.SetObjective(obj)
	m.AddLe("capacity", load, 14)
	return m, vars
}

func TestSolve_KnapsackMILP(t *testing.T) {
	m, vars := knapsack()

	sol, err := solver.Solve(m)
	require.NoError(t, err)
	require.True(t, sol.IsOptimal())
	require.InDelta(t, 21.0, sol.Objective, 1e-9)
	require.Equal(t, 0.0, sol.Value(vars[0]))
	require.Equal(t, 1.0, sol.Value(vars[1]))
	require.Equal(t, 1.0, sol.Value(vars[2]))
	require.Equal(t, 1.0, sol.Value(vars[3]))
	require.GreaterOrEqual(t, sol.Nodes, 3)
}

func TestSolve_MILPIsDeterministic(t *testing.T) {
	m1, _ := knapsack()
	m2, _ := knapsack()

	s1, err := solver.Solve(m1)
	require.NoError(t, err)
	s2, err := solver.Solve(m2)
	require.NoError(t, err)

	require.Equal(t, s1.Nodes, s2.Nodes)
	require.Equal(t, s1.X, s2.X)
	require.Equal(t, s1.Objective, s2.Objective)
}

func TestSolve_MixedInteger(t *testing.T) {
	m := model.New("mixed", model.Maximize)
	x := m.NewBoundedVar("x", 0, 3.7)
	z := m.NewBinaryVar("z")
	m.SetObjective(model.NewExpr().Term(1, x).Term(10, z))
	m.AddLe("link", model.NewExpr().Term(1, x).Term(4, z), 5)

	sol, err := solver.Solve(m)
	require.NoError(t, err)
	require.InDelta(t, 11.0, sol.Objective, 1e-9)
	require.InDelta(t, 1.0, sol.Value(x), 1e-9)
	require.Equal(t, 1.0, sol.Value(z))
}

func TestSolve_MILPInfeasibleRoot(t *testing.T) {
	m := model.New("toomuch", model.Maximize)
	a := m.NewBinaryVar("a")
	b := m.NewBinaryVar("b")
	m.SetObjective(model.Sum(a, b))
	m.AddGe("three", model.Sum(a, b), 3)

	sol, err := solver.Solve(m)
	require.ErrorIs(t, err, solver.ErrInfeasible)
	require.Nil(t, sol)
}

func TestSolve_NoIntegerPointInDomain(t *testing.T) {
	m := model.New("gap", model.Maximize)
	x := m.NewBoundedVar("x", 0.2, 0.8)
	m.MarkInteger(x)
	m.SetObjective(model.Sum(x))

	sol, err := solver.Solve(m)
	require.ErrorIs(t, err, solver.ErrNoIntegerSolution)
	require.Nil(t, sol)
}

func TestSolve_NodeLimit(t *testing.T) {
	m, _ := knapsack()

	sol, err := solver.Solve(m, solver.WithNodeLimit(1))
	require.ErrorIs(t, err, solver.ErrNodeLimit)
	// The root relaxation is fractional, so one node yields no incumbent.
	require.Nil(t, sol)
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { solver.WithNodeLimit(0) })
	require.Panics(t, func() { solver.WithIntTolerance(0.5) })
	require.Panics(t, func() { solver.WithIntTolerance(0) })
	require.Panics(t, func() { solver.WithTolerance(-1) })
}
