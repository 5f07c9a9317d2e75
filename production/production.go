// Package production: data model, validation and the two solve forms.

package production

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlopt/model"
	"github.com/katalvlaran/lvlopt/solver"
)

// Sentinel errors returned by Optimize and OptimizeTutorial.
var (
	// ErrNoProducts signals an empty product table.
	ErrNoProducts = errors.New("production: no products")
	// ErrNoResources signals an empty resource table.
	ErrNoResources = errors.New("production: no resources")
	// ErrDuplicateName signals a product or resource name used twice.
	ErrDuplicateName = errors.New("production: duplicate name")
	// ErrUnknownName signals a usage entry referencing a name absent from
	// the product or resource tables.
	ErrUnknownName = errors.New("production: unknown name in usage table")
	// ErrNegativeData signals a negative price, cost, demand, availability
	// or usage coefficient.
	ErrNegativeData = errors.New("production: negative data")
)

// Product describes one sellable good. Demand is the market cap on units
// sold; use math.Inf(1) for unlimited demand.
type Product struct {
	Name   string
	Price  float64
	Demand float64
}

// Resource describes one purchasable input. Available caps the acquirable
// amount; use math.Inf(1) for unlimited supply.
type Resource struct {
	Name      string
	Cost      float64
	Available float64
}

// Usage maps product name → resource name → amount of the resource consumed
// per unit of the product. Missing entries mean zero consumption.
type Usage map[string]map[string]float64

// Plan is the optimized production decision.
type Plan struct {
	// Produce holds units per product; Use holds acquired amount per
	// resource.
	Produce map[string]float64
	Use     map[string]float64

	Revenue float64
	Expense float64
	Profit  float64
}

// DefaultInstance returns the book's two-product instance: products U and V
// made from raw material M and two labor types.
//
//	product  raw M  labor A  labor B  price  demand
//	U        10     1        2        270    40
//	V        9      1        1        210    unlimited
//
//	resource  available  cost
//	M         unlimited  10
//	labor A   80         50
//	labor B   100        40
func DefaultInstance() ([]Product, []Resource, Usage) {
	products := []Product{
		{Name: "U", Price: 270, Demand: 40},
		{Name: "V", Price: 210, Demand: math.Inf(1)},
	}
	resources := []Resource{
		{Name: "M", Cost: 10, Available: math.Inf(1)},
		{Name: "labor A", Cost: 50, Available: 80},
		{Name: "labor B", Cost: 40, Available: 100},
	}
	usage := Usage{
		"U": {"M": 10, "labor A": 1, "labor B": 2},
		"V": {"M": 9, "labor A": 1, "labor B": 1},
	}
	return products, resources, usage
}

// Optimize builds and solves the indexed planning model:
//
//	max  Σ price_p·y_p − Σ cost_r·x_r
//	s.t. Σ_p usage[p][r]·y_p <= x_r      for every resource r
//	     0 <= y_p <= demand_p, 0 <= x_r <= available_r
//
// Unbounded instances (a profitable product consuming only unlimited
// resources) surface solver.ErrUnbounded unchanged.
func Optimize(products []Product, resources []Resource, usage Usage) (*Plan, error) {
	if err := validateInstance(products, resources, usage); err != nil {
		return nil, err
	}

	m := model.New("production", model.Maximize)

	produce := make([]model.Var, len(products))
	obj := model.NewExpr()
	for i, p := range products {
		produce[i] = m.NewBoundedVar("y_"+p.Name, 0, p.Demand)
		obj.Term(p.Price, produce[i])
	}
	acquire := make([]model.Var, len(resources))
	for i, r := range resources {
		acquire[i] = m.NewBoundedVar("x_"+r.Name, 0, r.Available)
		obj.Term(-r.Cost, acquire[i])
	}
	m.SetObjective(obj)

	for i, r := range resources {
		row := model.NewExpr()
		for j, p := range products {
			if amount := usage[p.Name][r.Name]; amount != 0 {
				row.Term(amount, produce[j])
			}
		}
		row.Term(-1, acquire[i])
		m.AddLe(r.Name, row, 0)
	}

	sol, err := solver.Solve(m)
	if err != nil {
		return nil, err
	}
	return buildPlan(products, resources, produce, acquire, sol), nil
}

// OptimizeTutorial solves the default instance in the longhand scalar form:
// five named variables, three explicit rows, exactly as the problem is
// introduced on paper. The result matches Optimize on DefaultInstance.
func OptimizeTutorial() (*Plan, error) {
	m := model.New("production-tutorial", model.Maximize)

	xM := m.NewVar("x_M")
	xA := m.NewBoundedVar("x_A", 0, 80)
	xB := m.NewBoundedVar("x_B", 0, 100)
	yU := m.NewBoundedVar("y_U", 0, 40)
	yV := m.NewVar("y_V")

	// profit = revenue - expense
	profit := model.NewExpr().
		Term(270, yU).Term(210, yV).
		Term(-10, xM).Term(-50, xA).Term(-40, xB)
	m.SetObjective(profit)

	m.AddLe("raw material", model.NewExpr().Term(10, yU).Term(9, yV).Term(-1, xM), 0)
	m.AddLe("labor A", model.NewExpr().Term(1, yU).Term(1, yV).Term(-1, xA), 0)
	m.AddLe("labor B", model.NewExpr().Term(2, yU).Term(1, yV).Term(-1, xB), 0)

	sol, err := solver.Solve(m)
	if err != nil {
		return nil, err
	}

	products, resources, _ := DefaultInstance()
	return buildPlan(products, resources,
		[]model.Var{yU, yV}, []model.Var{xM, xA, xB}, sol), nil
}

// buildPlan reads a solution back into the named Plan form.
func buildPlan(products []Product, resources []Resource, produce, acquire []model.Var, sol *solver.Solution) *Plan {
	plan := &Plan{
		Produce: make(map[string]float64, len(products)),
		Use:     make(map[string]float64, len(resources)),
	}
	for i, p := range products {
		amount := sol.Value(produce[i])
		plan.Produce[p.Name] = amount
		plan.Revenue += p.Price * amount
	}
	for i, r := range resources {
		amount := sol.Value(acquire[i])
		plan.Use[r.Name] = amount
		plan.Expense += r.Cost * amount
	}
	plan.Profit = sol.Objective
	return plan
}

// validateInstance checks the tables in stages: presence, name uniqueness,
// sign constraints, and usage references.
func validateInstance(products []Product, resources []Resource, usage Usage) error {
	// Stage 1 - presence.
	if len(products) == 0 {
		return ErrNoProducts
	}
	if len(resources) == 0 {
		return ErrNoResources
	}

	// Stage 2 - names and signs.
	productNames := make(map[string]bool, len(products))
	for _, p := range products {
		if productNames[p.Name] {
			return fmt.Errorf("product %q: %w", p.Name, ErrDuplicateName)
		}
		productNames[p.Name] = true
		if p.Price < 0 || p.Demand < 0 || math.IsNaN(p.Price) || math.IsNaN(p.Demand) {
			return fmt.Errorf("product %q: %w", p.Name, ErrNegativeData)
		}
	}
	resourceNames := make(map[string]bool, len(resources))
	for _, r := range resources {
		if resourceNames[r.Name] {
			return fmt.Errorf("resource %q: %w", r.Name, ErrDuplicateName)
		}
		resourceNames[r.Name] = true
		if r.Cost < 0 || r.Available < 0 || math.IsNaN(r.Cost) || math.IsNaN(r.Available) {
			return fmt.Errorf("resource %q: %w", r.Name, ErrNegativeData)
		}
	}

	// Stage 3 - usage references and signs, in sorted order so the first
	// reported violation is deterministic.
	for _, pname := range sortedKeys(usage) {
		if !productNames[pname] {
			return fmt.Errorf("usage product %q: %w", pname, ErrUnknownName)
		}
		row := usage[pname]
		for _, rname := range sortedKeys(row) {
			if !resourceNames[rname] {
				return fmt.Errorf("usage resource %q: %w", rname, ErrUnknownName)
			}
			if amount := row[rname]; amount < 0 || math.IsNaN(amount) {
				return fmt.Errorf("usage %s/%s: %w", pname, rname, ErrNegativeData)
			}
		}
	}
	return nil
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
