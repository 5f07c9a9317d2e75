// Package robust: recourse of a fixed order and its scenario summary.

package robust

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvlopt/model"
	"github.com/katalvlaran/lvlopt/solver"
)

// SecondStage solves the recourse problem of a fixed first-stage order
// under a single scenario: maximize the second-stage profit with the
// raw-materials row capped at x. An order too small to serve the
// scenario's committed orders wraps solver.ErrInfeasible with the
// offending data.
func (p *Problem) SecondStage(x float64, s Scenario) (Plan, error) {
	if err := p.validate(); err != nil {
		return Plan{}, err
	}
	if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return Plan{}, fmt.Errorf("x = %v: %w", x, ErrFirstStage)
	}
	if err := s.validate(); err != nil {
		return Plan{}, err
	}

	m := model.New("robust-recourse", model.Maximize)
	b := p.addScenario(m, "", s, model.NewExpr(), x)
	m.SetObjective(model.NewExpr().Term(1, b.yP))

	sol, err := solver.Solve(m)
	if errors.Is(err, solver.ErrInfeasible) {
		return Plan{}, fmt.Errorf("order %g cannot serve scenario %+v: %w", x, s, err)
	}
	if err != nil {
		return Plan{}, err
	}
	return Plan{U: sol.Value(b.yU), V: sol.Value(b.yV), Profit: sol.Value(b.yP)}, nil
}

// EvaluatePlan prices a fixed order across scenarios: each one is solved
// with SecondStage and reported net of the raw bill, with mean, min and
// max alongside. This is the average-case lens on a robust decision.
func (p *Problem) EvaluatePlan(x float64, scenarios []Scenario) (*Evaluation, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, fmt.Errorf("x = %v: %w", x, ErrFirstStage)
	}
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	net := make([]float64, len(scenarios))
	for i, s := range scenarios {
		pl, err := p.SecondStage(x, s)
		if err != nil {
			return nil, fmt.Errorf("scenario %d: %w", i, err)
		}
		net[i] = -p.RawCost*x + pl.Profit
	}
	return &Evaluation{
		Net:  net,
		Mean: stat.Mean(net, nil),
		Min:  floats.Min(net),
		Max:  floats.Max(net),
	}, nil
}
