// Package kelly_test: runnable documentation for bet sizing.
//
// Contents:
//  1. ExampleAnalytic        — the closed form on the classic 51% game.
//  2. ExampleBet             — the solver reproduces the closed form.
//  3. ExampleRiskConstrained — dialing risk aversion shrinks the bet.
package kelly_test

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/kelly"
)

// ExampleAnalytic evaluates the closed-form fraction for a 51% win
// probability at 2:1 odds.
func ExampleAnalytic() {
	fmt.Printf("%.4f\n", kelly.Analytic(0.51, 2))
	// Output:
	// 0.2650
}

// ExampleBet solves the same game numerically; the smooth objective hands
// Newton's method the exact optimum of the closed form.
func ExampleBet() {
	res, err := kelly.Bet(0.51, 2)
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}
	fmt.Printf("bet %.3f of wealth\n", res.Fraction)
	// Output:
	// bet 0.265 of wealth
}

// ExampleRiskConstrained shows the price of protection: the bound
// E[R^{−λ}] ≤ 1 moves the bet from full Kelly down to safer sizes as λ
// grows.
func ExampleRiskConstrained() {
	for _, lambda := range []float64{0, 2, 3} {
		res, err := kelly.RiskConstrained(0.51, 2, lambda)
		if err != nil {
			fmt.Println("solve failed:", err)
			return
		}
		fmt.Printf("lambda %.0f: bet %.3f\n", lambda, res.Fraction)
	}
	// Output:
	// lambda 0: bet 0.265
	// lambda 2: bet 0.175
	// lambda 3: bet 0.131
}
