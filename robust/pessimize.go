// Package robust: the pessimization subproblem.

package robust

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/model"
	"github.com/katalvlaran/lvlopt/solver"
)

// violationRow linearizes "this plan's constraint k is violated by at
// least θ" as lA·z_A + lB·z_B + lD·z_D − θ ≥ r, active while its binary
// switch stays down. Proxy rows (profit) may always be switched off:
// violating them never breaks a plan's feasibility, only its bookkeeping,
// and chasing them would slow convergence for nothing.
type violationRow struct {
	name       string
	lA, lB, lD float64
	r          float64
	proxy      bool
}

// violationRows derives the four rows from a plan, in the fixed order
// profit, demand, labor A, labor B.
func (p *Problem) violationRows(pl Plan) [4]violationRow {
	hoursA := p.HoursAU*pl.U + p.HoursAV*pl.V
	hoursB := p.HoursBU*pl.U + p.HoursBV*pl.V
	return [4]violationRow{
		{
			name:  "profit",
			lA:    p.CostA * hoursA,
			lB:    p.CostB * hoursB,
			r:     p.profitU(Nominal())*pl.U + p.profitV(Nominal())*pl.V - pl.Profit,
			proxy: true,
		},
		{name: "demand", lD: p.Orders, r: pl.U - p.Orders},
		{name: "labor A", lA: hoursA, r: p.AvailA - hoursA},
		{name: "labor B", lB: hoursB, r: p.AvailB - hoursB},
	}
}

// Pessimize hunts the scenario that hurts the incumbent plans most: the
// largest θ such that some z in the set violates a genuine feasibility
// row (demand or labor) of every plan by at least θ. A θ* below the
// stopping tolerance certifies the plans robust to that tolerance. The
// search is a big-M MILP with one binary switch per plan row; |z| enters
// the budget through split variables.
func (p *Problem) Pessimize(plans []Plan, u Uncertainty, opts CCGOptions) (float64, Scenario, error) {
	if err := p.validate(); err != nil {
		return 0, Scenario{}, err
	}
	if err := u.validate(); err != nil {
		return 0, Scenario{}, err
	}
	if err := opts.validate(); err != nil {
		return 0, Scenario{}, err
	}
	if len(plans) == 0 {
		return 0, Scenario{}, ErrNoPlans
	}
	for i, pl := range plans {
		if err := pl.validate(); err != nil {
			return 0, Scenario{}, fmt.Errorf("plan %d: %w", i, err)
		}
	}

	m := model.New("robust-pessimize", model.Maximize)

	zA := m.NewBoundedVar("z_A", -u.ZAMax, u.ZAMax)
	zB := m.NewBoundedVar("z_B", -u.ZBMax, u.ZBMax)
	zD := m.NewBoundedVar("z_D", -u.ZDMax, u.ZDMax)
	theta := m.NewFreeVar("theta")
	m.SetObjective(model.NewExpr().Term(1, theta))

	// |z| split feeding the budget row.
	absA := m.NewVar("abs z_A")
	absB := m.NewVar("abs z_B")
	absD := m.NewVar("abs z_D")
	links := []struct {
		name string
		z, a model.Var
	}{{"z_A", zA, absA}, {"z_B", zB, absB}, {"z_D", zD, absD}}
	for _, l := range links {
		m.AddGe("abs "+l.name+" upper", model.NewExpr().Term(1, l.a).Term(-1, l.z), 0)
		m.AddGe("abs "+l.name+" lower", model.NewExpr().Term(1, l.a).Term(1, l.z), 0)
	}
	m.AddLe("budget", model.NewExpr().
		Term(1/u.ZAMax, absA).
		Term(1/u.ZBMax, absB).
		Term(1/u.ZDMax, absD), u.Gamma)

	for i, pl := range plans {
		tag := fmt.Sprintf(" #%d", i)
		card := model.NewExpr()
		genuine := 0
		for _, row := range p.violationRows(pl) {
			sw := m.NewBinaryVar("off " + row.name + tag)
			m.AddGe(row.name+tag, model.NewExpr().
				Term(row.lA, zA).
				Term(row.lB, zB).
				Term(row.lD, zD).
				Term(-1, theta).
				Term(opts.BigM, sw), row.r)
			if !row.proxy {
				card.Term(1, sw)
				genuine++
			}
		}
		// At least one genuine feasibility row stays active per plan.
		m.AddLe("one violated"+tag, card, float64(genuine-1))
	}

	sol, err := solver.Solve(m)
	if err != nil {
		return 0, Scenario{}, err
	}
	worst := Scenario{ZA: sol.Value(zA), ZB: sol.Value(zB), ZD: sol.Value(zD)}
	return sol.Objective, worst, nil
}
