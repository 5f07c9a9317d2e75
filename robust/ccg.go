// Package robust: the column-and-constraint generation loop.

package robust

import "fmt"

// CCG runs column-and-constraint generation: starting from the nominal
// scenario alone, alternate the MaxMin master with Pessimize and append
// each violating scenario to the pool, until the best achievable
// violation falls below opts.Tolerance or opts.MaxIterations masters have
// been solved. On convergence the pool carries exactly one scenario per
// iteration; otherwise it ends one longer, holding the still-unserved
// violation.
func (p *Problem) CCG(u Uncertainty, opts CCGOptions) (*CCGResult, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if err := u.validate(); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	res := &CCGResult{Scenarios: []Scenario{Nominal()}}
	for res.Iterations < opts.MaxIterations {
		master, err := p.MaxMin(res.Scenarios)
		if err != nil {
			return nil, fmt.Errorf("iteration %d master: %w", res.Iterations, err)
		}
		res.X, res.WorstCase = master.X, master.Value

		theta, worst, err := p.Pessimize(master.Plans, u, opts)
		if err != nil {
			return nil, fmt.Errorf("iteration %d pessimization: %w", res.Iterations, err)
		}
		res.Iterations++
		res.Thetas = append(res.Thetas, theta)

		if theta < opts.Tolerance {
			res.Converged = true
			break
		}
		res.Scenarios = append(res.Scenarios, worst)
	}
	return res, nil
}
