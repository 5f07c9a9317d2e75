package model_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlopt/model"
)

// buildPlanModel assembles a small production-style model used across tests:
// maximize 270u + 210v - 10m subject to 10u + 9v <= m, u + v <= 80, u <= 40.
func buildPlanModel() (*model.Model, model.Var, model.Var, model.Var) {
	m := model.New("plan", model.Maximize)
	xm := m.NewVar("x_M")
	u := m.NewBoundedVar("y_U", 0, 40)
	v := m.NewVar("y_V")
	m.SetObjective(model.NewExpr().Term(270, u).Term(210, v).Term(-10, xm))
	m.AddLe("raw", model.NewExpr().Term(10, u).Term(9, v).Term(-1, xm), 0)
	m.AddLe("labor", model.NewExpr().Term(1, u).Term(1, v), 80)
	return m, xm, u, v
}

func TestModel_BuilderAndAccessors(t *testing.T) {
	m, xm, u, v := buildPlanModel()

	require.Equal(t, "plan", m.Name())
	require.Equal(t, model.Maximize, m.Sense())
	require.Equal(t, 3, m.NumVars())
	require.Equal(t, 2, m.NumConstraints())
	require.Equal(t, "x_M", m.VarName(xm))
	require.Equal(t, "y_U", m.VarName(u))

	lo, hi := m.Bounds()
	require.Equal(t, []float64{0, 0, 0}, lo)
	require.Equal(t, math.Inf(1), hi[xm])
	require.Equal(t, 40.0, hi[u])
	require.Equal(t, math.Inf(1), hi[v])

	c, konst := m.ObjectiveVector()
	require.Equal(t, []float64{-10, 270, 210}, c)
	require.Zero(t, konst)

	require.Equal(t, "raw", m.RowName(0))
	require.Equal(t, model.LE, m.RowRelation(0))
	require.Equal(t, 0.0, m.RowRHS(0))
	require.Equal(t, []model.Entry{{Coef: 10, Var: u}, {Coef: 9, Var: v}, {Coef: -1, Var: xm}}, m.RowEntries(0))
}

func TestModel_ExprCoalescingAndConstantFolding(t *testing.T) {
	m := model.New("fold", model.Minimize)
	x := m.NewVar("x")
	y := m.NewVar("y")
	m.SetObjective(model.Sum(x, y))

	// x appears twice: entries must coalesce to a single 3x term.
	e := model.NewExpr().Term(1, x).Term(5, y).Term(2, x).Const(7)
	m.AddLe("mixed", e, 10)

	require.Equal(t, []model.Entry{{Coef: 3, Var: x}, {Coef: 5, Var: y}}, m.RowEntries(0))
	// e + 7 <= 10 folds to e <= 3.
	require.Equal(t, 3.0, m.RowRHS(0))
}

func TestModel_ExpressionsAreCopiedOnIngestion(t *testing.T) {
	m := model.New("copy", model.Minimize)
	x := m.NewVar("x")
	e := model.NewExpr().Term(1, x)
	m.SetObjective(e)
	m.AddGe("floor", e, 2)

	// Mutating the builder afterwards must not leak into the model.
	e.Term(100, x).Const(50)

	c, konst := m.ObjectiveVector()
	require.Equal(t, []float64{1}, c)
	require.Zero(t, konst)
	require.Equal(t, 2.0, m.RowRHS(0))
	require.Equal(t, []model.Entry{{Coef: 1, Var: x}}, m.RowEntries(0))
}

func TestModel_SumAndAdd(t *testing.T) {
	m := model.New("sum", model.Maximize)
	a := m.NewVar("a")
	b := m.NewVar("b")

	e := model.Sum(a, b).Add(model.NewExpr().Term(2, a).Const(1))
	m.SetObjective(e)

	c, konst := m.ObjectiveVector()
	require.Equal(t, []float64{3, 1}, c)
	require.Equal(t, 1.0, konst)
}

func TestModel_IntegralityPlumbing(t *testing.T) {
	m := model.New("ints", model.Maximize)
	x := m.NewVar("x")
	zb := m.NewBinaryVar("pick")
	require.False(t, m.IsInteger(x))
	require.True(t, m.IsInteger(zb))
	require.True(t, m.HasIntegers())

	lo, hi := m.Bounds()
	require.Equal(t, 0.0, lo[zb])
	require.Equal(t, 1.0, hi[zb])

	m.MarkInteger(x)
	require.Equal(t, []bool{true, true}, m.IntegerMask())
}

func TestModel_SenseAndRelationStrings(t *testing.T) {
	require.Equal(t, "minimize", model.Minimize.String())
	require.Equal(t, "maximize", model.Maximize.String())
	require.Equal(t, "<=", model.LE.String())
	require.Equal(t, ">=", model.GE.String())
	require.Equal(t, "=", model.EQ.String())
}

func TestModel_BuilderPanicsOnProgrammerErrors(t *testing.T) {
	m := model.New("panics", model.Minimize)
	x := m.NewVar("x")
	m.SetObjective(model.Sum(x))

	require.Panics(t, func() { model.NewExpr().Term(1, model.Var(-1)) })
	require.Panics(t, func() { m.SetBounds(model.Var(99), 0, 1) })
	require.Panics(t, func() { m.SetBounds(x, 2, 1) })
	require.Panics(t, func() { m.NewBoundedVar("bad", math.NaN(), 1) })
	require.Panics(t, func() { m.SetObjective(nil) })
	require.Panics(t, func() { m.AddLe("nil", nil, 0) })
}

func TestValidate_HappyPath(t *testing.T) {
	m, _, _, _ := buildPlanModel()
	require.NoError(t, m.Validate())
}

func TestValidate_SentinelPriority(t *testing.T) {
	var nilModel *model.Model
	require.ErrorIs(t, nilModel.Validate(), model.ErrNilModel)

	noObj := model.New("noobj", model.Minimize)
	noObj.NewVar("x")
	require.ErrorIs(t, noObj.Validate(), model.ErrNoObjective)

	empty := model.New("empty", model.Minimize)
	x := empty.NewVar("x")
	empty.SetObjective(model.Sum(x))
	empty.AddLe("void", model.NewExpr(), 1)
	require.ErrorIs(t, empty.Validate(), model.ErrEmptyExpression)

	foreign := model.New("foreign", model.Minimize)
	y := foreign.NewVar("y")
	foreign.SetObjective(model.Sum(y))
	foreign.AddLe("alien", model.NewExpr().Term(1, model.Var(5)), 1)
	require.ErrorIs(t, foreign.Validate(), model.ErrUnknownVar)

	infRHS := model.New("inf", model.Minimize)
	z := infRHS.NewVar("z")
	infRHS.SetObjective(model.Sum(z))
	infRHS.AddLe("open", model.Sum(z), math.Inf(1))
	require.ErrorIs(t, infRHS.Validate(), model.ErrNotFinite)

	nanCoef := model.New("nan", model.Minimize)
	w := nanCoef.NewVar("w")
	nanCoef.SetObjective(model.NewExpr().Term(math.NaN(), w))
	require.ErrorIs(t, nanCoef.Validate(), model.ErrNotFinite)
}

func TestModel_AutoNames(t *testing.T) {
	m := model.New("auto", model.Minimize)
	v0 := m.NewVar("")
	m.SetObjective(model.Sum(v0))
	m.AddLe("", model.Sum(v0), 1)

	require.Equal(t, "v0", m.VarName(v0))
	require.Equal(t, "r0", m.RowName(0))
}
