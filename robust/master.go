// Package robust: the scenario-pool master problem.

package robust

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/model"
	"github.com/katalvlaran/lvlopt/solver"
)

// recourse bundles one scenario block's second-stage variables.
type recourse struct {
	yU, yV, yP model.Var
}

// addScenario appends one scenario block to m: variables y_U, y_V, y_P ≥ 0
// and the five recourse rows. The caller seeds raw with the first-stage
// side of the raw-materials row (−x as a variable, or nothing when the
// order is fixed in rawCap) and tags the names so blocks stay apart.
func (p *Problem) addScenario(m *model.Model, tag string, s Scenario, raw *model.Expr, rawCap float64) recourse {
	r := recourse{
		yU: m.NewVar("y_U" + tag),
		yV: m.NewVar("y_V" + tag),
		yP: m.NewVar("y_P" + tag),
	}

	// y_P ≤ profit earned, so the objective stays free of uncertainty.
	m.AddLe("profit"+tag, model.NewExpr().
		Term(-p.profitU(s), r.yU).
		Term(-p.profitV(s), r.yV).
		Term(1, r.yP), 0)

	// Committed orders scale with z_D.
	m.AddGe("demand"+tag, model.NewExpr().Term(1, r.yU), p.Orders*(1+s.ZD))

	// Labor hours scale with z_A and z_B.
	m.AddLe("labor A"+tag, model.NewExpr().
		Term((1+s.ZA)*p.HoursAU, r.yU).
		Term((1+s.ZA)*p.HoursAV, r.yV), p.AvailA)
	m.AddLe("labor B"+tag, model.NewExpr().
		Term((1+s.ZB)*p.HoursBU, r.yU).
		Term((1+s.ZB)*p.HoursBV, r.yV), p.AvailB)

	// Production draws on the first-stage raw order.
	m.AddLe("raw materials"+tag, raw.Term(p.RawU, r.yU).Term(p.RawV, r.yV), rawCap)

	return r
}

// MaxMin solves the scenario-pool master problem
//
//	max  −RawCost·x + τ
//	s.t. τ ≤ y_P^s  plus the five recourse rows, for every scenario s
//	     x, y^s ≥ 0, τ free
//
// returning the order whose worst profit over the pool is largest. Solver
// sentinels (infeasible, unbounded) pass through unchanged.
func (p *Problem) MaxMin(scenarios []Scenario) (*MasterSolution, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	for i, s := range scenarios {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
	}

	m := model.New("robust-maxmin", model.Maximize)
	x := m.NewVar("x")
	tau := m.NewFreeVar("tau")
	m.SetObjective(model.NewExpr().Term(-p.RawCost, x).Term(1, tau))

	blocks := make([]recourse, len(scenarios))
	for i, s := range scenarios {
		tag := fmt.Sprintf(" #%d", i)
		blocks[i] = p.addScenario(m, tag, s, model.NewExpr().Term(-1, x), 0)
		m.AddGe("worst case"+tag, model.NewExpr().Term(1, blocks[i].yP).Term(-1, tau), 0)
	}

	sol, err := solver.Solve(m)
	if err != nil {
		return nil, err
	}

	out := &MasterSolution{
		X:     sol.Value(x),
		Tau:   sol.Value(tau),
		Value: sol.Objective,
		Plans: make([]Plan, len(blocks)),
	}
	for i, b := range blocks {
		out.Plans[i] = Plan{U: sol.Value(b.yU), V: sol.Value(b.yV), Profit: sol.Value(b.yP)}
	}
	return out, nil
}
