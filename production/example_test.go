// Package production_test: runnable documentation for the planning model.
//
// Contents:
//  1. ExampleOptimize         — the indexed form on the default instance.
//  2. ExampleOptimizeTutorial — the longhand scalar form, same numbers.
package production_test

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/production"
)

// ExampleOptimize solves the default two-product instance and prints the
// plan. Labor is the scarce input: both pools are fully used, while raw
// material is bought exactly as needed.
func ExampleOptimize() {
	products, resources, usage := production.DefaultInstance()

	plan, err := production.Optimize(products, resources, usage)
	if err != nil {
		fmt.Println("optimize failed:", err)
		return
	}

	fmt.Printf("produce U: %.0f units\n", plan.Produce["U"])
	fmt.Printf("produce V: %.0f units\n", plan.Produce["V"])
	fmt.Printf("raw material: %.0f g\n", plan.Use["M"])
	fmt.Printf("labor A: %.0f h, labor B: %.0f h\n", plan.Use["labor A"], plan.Use["labor B"])
	fmt.Printf("profit: %.0f\n", plan.Profit)
	// Output:
	// produce U: 20 units
	// produce V: 60 units
	// raw material: 740 g
	// labor A: 80 h, labor B: 100 h
	// profit: 2600
}

// ExampleOptimizeTutorial runs the scalar walk-through; the optimum matches
// the indexed form exactly.
func ExampleOptimizeTutorial() {
	plan, err := production.OptimizeTutorial()
	if err != nil {
		fmt.Println("optimize failed:", err)
		return
	}

	fmt.Printf("profit: %.0f\n", plan.Profit)
	fmt.Printf("revenue: %.0f, expense: %.0f\n", plan.Revenue, plan.Expense)
	// Output:
	// profit: 2600
	// revenue: 18000, expense: 15400
}
