// Package robust: sample-average counterpart of the master.

package robust

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/model"
	"github.com/katalvlaran/lvlopt/solver"
)

// MaxExpected solves the sample-average problem: one recourse plan per
// scenario exactly as in MaxMin, but maximizing −RawCost·x plus the mean
// of the block profits instead of the worst. Comparing its order with the
// robust one shows what the worst-case guarantee costs on average.
func (p *Problem) MaxExpected(scenarios []Scenario) (*ExpectedSolution, error) {
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

	m := model.New("robust-expected", model.Maximize)
	x := m.NewVar("x")
	obj := model.NewExpr().Term(-p.RawCost, x)

	weight := 1 / float64(len(scenarios))
	blocks := make([]recourse, len(scenarios))
	for i, s := range scenarios {
		tag := fmt.Sprintf(" #%d", i)
		blocks[i] = p.addScenario(m, tag, s, model.NewExpr().Term(-1, x), 0)
		obj.Term(weight, blocks[i].yP)
	}
	m.SetObjective(obj)

	sol, err := solver.Solve(m)
	if err != nil {
		return nil, err
	}

	out := &ExpectedSolution{
		X:     sol.Value(x),
		Value: sol.Objective,
		Plans: make([]Plan, len(blocks)),
	}
	for i, b := range blocks {
		out.Plans[i] = Plan{U: sol.Value(b.yU), V: sol.Value(b.yV), Profit: sol.Value(b.yP)}
	}
	return out, nil
}
