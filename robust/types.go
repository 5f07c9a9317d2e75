// Package robust: problem data, uncertainty set and result types.

package robust

import (
	"fmt"
	"math"
)

// containsTol absorbs solver round-off when testing set membership.
const containsTol = 1e-9

// Problem carries the production economics: two products (U and V) made
// from one raw material and two labor types. The raw material is bought in
// the first stage at RawCost per unit; production is decided in the second
// stage once the deviations are known. The zero value is not usable —
// start from NewProblem and adjust fields.
type Problem struct {
	// Selling prices per unit.
	PriceU, PriceV float64
	// First-stage cost and per-unit consumption of the raw material.
	RawCost, RawU, RawV float64
	// Hourly labor rates.
	CostA, CostB float64
	// Labor hours per unit produced, at nominal productivity.
	HoursAU, HoursAV float64
	HoursBU, HoursBV float64
	// Nominal labor availability, in hours.
	AvailA, AvailB float64
	// Committed orders for product U that must be served.
	Orders float64
}

// NewProblem returns the book instance:
//
//	product  raw  labor A  labor B  price
//	U        10   1 h      2 h      270
//	V        9    1 h      1 h      210
//
// with raw cost 10 per unit, labor rates 50/h (A) and 40/h (B),
// availability 80 h (A) and 100 h (B), and 20 committed orders for U.
func NewProblem() *Problem {
	return &Problem{
		PriceU: 270, PriceV: 210,
		RawCost: 10, RawU: 10, RawV: 9,
		CostA: 50, CostB: 40,
		HoursAU: 1, HoursAV: 1,
		HoursBU: 2, HoursBV: 1,
		AvailA: 80, AvailB: 100,
		Orders: 20,
	}
}

// profitU is the second-stage profit per unit of U under scenario s: the
// price minus scenario-scaled labor costs. The raw material is paid for in
// the first stage and does not enter.
func (p *Problem) profitU(s Scenario) float64 {
	return p.PriceU - p.CostA*p.HoursAU*(1+s.ZA) - p.CostB*p.HoursBU*(1+s.ZB)
}

// profitV is the same for product V.
func (p *Problem) profitV(s Scenario) float64 {
	return p.PriceV - p.CostA*p.HoursAV*(1+s.ZA) - p.CostB*p.HoursBV*(1+s.ZB)
}

// validate rejects negative or non-finite problem data.
func (p *Problem) validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"PriceU", p.PriceU}, {"PriceV", p.PriceV},
		{"RawCost", p.RawCost}, {"RawU", p.RawU}, {"RawV", p.RawV},
		{"CostA", p.CostA}, {"CostB", p.CostB},
		{"HoursAU", p.HoursAU}, {"HoursAV", p.HoursAV},
		{"HoursBU", p.HoursBU}, {"HoursBV", p.HoursBV},
		{"AvailA", p.AvailA}, {"AvailB", p.AvailB},
		{"Orders", p.Orders},
	}
	for _, f := range fields {
		if f.value < 0 || math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s = %v: %w", f.name, f.value, ErrProblemData)
		}
	}
	return nil
}

// Scenario is one realization of the deviation vector: z_A scales both
// labor-A hour coefficients, z_B both labor-B coefficients and z_D the
// committed orders.
type Scenario struct {
	ZA, ZB, ZD float64
}

// Nominal returns the zero scenario: no deviations.
func Nominal() Scenario { return Scenario{} }

// validate rejects non-finite components.
func (s Scenario) validate() error {
	for _, v := range [...]float64{s.ZA, s.ZB, s.ZD} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%+v: %w", s, ErrBadScenario)
		}
	}
	return nil
}

// Uncertainty is the budgeted deviation set
//
//	Z = { z : |z_A| ≤ ZAMax, |z_B| ≤ ZBMax, |z_D| ≤ ZDMax,
//	          |z_A|/ZAMax + |z_B|/ZBMax + |z_D|/ZDMax ≤ Gamma }.
type Uncertainty struct {
	ZAMax, ZBMax, ZDMax float64
	Gamma               float64
}

// DefaultUncertainty returns the chapter's set: 15% labor-A, 25% labor-B
// and 25% demand deviations, with at most two of them (in scaled terms)
// active at once.
func DefaultUncertainty() Uncertainty {
	return Uncertainty{ZAMax: 0.15, ZBMax: 0.25, ZDMax: 0.25, Gamma: 2}
}

// Contains reports whether s lies inside the set, with a small tolerance
// for solver round-off. The receiver must be a valid set (positive box
// half-widths).
func (u Uncertainty) Contains(s Scenario) bool {
	if math.Abs(s.ZA) > u.ZAMax+containsTol ||
		math.Abs(s.ZB) > u.ZBMax+containsTol ||
		math.Abs(s.ZD) > u.ZDMax+containsTol {
		return false
	}
	budget := math.Abs(s.ZA)/u.ZAMax + math.Abs(s.ZB)/u.ZBMax + math.Abs(s.ZD)/u.ZDMax
	return budget <= u.Gamma+containsTol
}

// validate rejects non-positive box half-widths and a negative or
// non-finite budget.
func (u Uncertainty) validate() error {
	widths := []struct {
		name  string
		value float64
	}{{"ZAMax", u.ZAMax}, {"ZBMax", u.ZBMax}, {"ZDMax", u.ZDMax}}
	for _, w := range widths {
		if w.value <= 0 || math.IsNaN(w.value) || math.IsInf(w.value, 0) {
			return fmt.Errorf("%s = %v: %w", w.name, w.value, ErrUncertainty)
		}
	}
	if u.Gamma < 0 || math.IsNaN(u.Gamma) || math.IsInf(u.Gamma, 0) {
		return fmt.Errorf("Gamma = %v: %w", u.Gamma, ErrUncertainty)
	}
	return nil
}

// Plan is one scenario's second-stage decision: units produced and the
// second-stage profit they earn (before the first-stage raw bill).
type Plan struct {
	U, V   float64
	Profit float64
}

// validate rejects negative or non-finite quantities and a non-finite
// profit.
func (pl Plan) validate() error {
	if pl.U < 0 || pl.V < 0 ||
		math.IsNaN(pl.U) || math.IsInf(pl.U, 0) ||
		math.IsNaN(pl.V) || math.IsInf(pl.V, 0) ||
		math.IsNaN(pl.Profit) || math.IsInf(pl.Profit, 0) {
		return fmt.Errorf("%+v: %w", pl, ErrBadPlan)
	}
	return nil
}

// MasterSolution is the outcome of one max-min master solve.
type MasterSolution struct {
	// X is the raw material ordered in the first stage.
	X float64
	// Tau is the guaranteed second-stage profit: every pooled scenario
	// admits a plan earning at least Tau.
	Tau float64
	// Value is the objective −RawCost·X + Tau.
	Value float64
	// Plans holds one recourse plan per scenario, in input order.
	Plans []Plan
}

// ExpectedSolution is the outcome of a sample-average solve.
type ExpectedSolution struct {
	X float64
	// Value is −RawCost·X plus the mean second-stage profit.
	Value float64
	Plans []Plan
}

// Evaluation summarizes a fixed first-stage order across scenarios.
type Evaluation struct {
	// Net holds the per-scenario net profit −RawCost·x + Q(x, z).
	Net []float64

	Mean, Min, Max float64
}

// CCGResult is the outcome of the column-and-constraint generation loop.
type CCGResult struct {
	// X and WorstCase are the final master's order and objective value.
	X, WorstCase float64
	// Scenarios is the final pool, the nominal scenario first.
	Scenarios []Scenario
	// Thetas records each iteration's best achievable constraint
	// violation; the loop stops once it drops below the tolerance.
	Thetas []float64
	// Iterations counts master solves. When Converged is false the
	// iteration cap was hit with violations still above tolerance.
	Iterations int
	Converged  bool
}
