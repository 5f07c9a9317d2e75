// Package kelly sizes repeated bets on a two-outcome game for maximal
// long-run growth: the Kelly criterion, its risk-constrained variant, and a
// Monte Carlo simulator to watch both in action.
//
// 🚀 What is the Kelly criterion?
//
//	A wager of one unit returns 1+b with probability p and nothing
//	otherwise.  Betting a fraction w of wealth each round multiplies
//	wealth by 1+bw on a win and 1−w on a loss, so after many rounds
//	wealth grows like exp(E[log R]·rounds).  Kelly's insight: maximize
//	the expected log return
//	  E[log R] = p·log(1+bw) + (1−p)·log(1−w)
//	and wealth almost surely outgrows any other fixed-fraction policy.
//	The famous closed form is w* = p − (1−p)/b.
//
// ✨ Key features:
//   - Analytic: the bare closed-form fraction for quick reference
//   - Bet: the same optimum computed by Newton's method on the smooth
//     objective, a template for games without a closed form
//   - RiskConstrained: the Busseti–Ryu–Boyd bound E[R^{−λ}] ≤ 1 tames the
//     notorious volatility of full Kelly; λ dials the protection
//   - Simulate: reproducible wealth paths with growth, minimum-wealth and
//     maximum-drawdown summaries
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/kelly"
//
//	full, err := kelly.Bet(0.51, 2)            // ≈ 0.265
//	safe, err := kelly.RiskConstrained(0.51, 2, 3) // ≈ 0.131
//
//	sim, err := kelly.Simulate(0.51, 2, safe.Fraction, kelly.DefaultSimOptions())
//	// sim.MeanLogGrowth tracks safe.LogGrowth; drawdowns shrink vs full Kelly
//
// Performance: Bet and RiskConstrained are one-dimensional Newton solves;
// Simulate is O(Paths·Steps).
//
// See example_test.go for complete walkthroughs.
package kelly
