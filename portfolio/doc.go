// Package portfolio selects asset weights under uncertain returns, in two
// classic formulations: a chance constraint on the final wealth and a
// budget-of-uncertainty hedge against return deviations.
//
// 🚀 What is portfolio selection under uncertainty?
//
//	Returns are never known in advance.  A plan that maximizes the expected
//	outcome can still lose badly when returns come in low, so both models
//	here trade some expected return for protection:
//	  • MaxReturnChance keeps the probability of ending below a wealth
//	    threshold at or under a chosen risk level, assuming returns are
//	    jointly normal.  The normality assumption turns the probabilistic
//	    statement into a second-order cone constraint, solved with the
//	    log-barrier method.
//	  • MaxReturnRobust assumes only that each return lives in an interval
//	    around its nominal value and that at most Γ of them (in scaled
//	    terms) deviate at once.  The protection term is linearized with
//	    auxiliary variables, so the whole model stays a linear program.
//
// ✨ Key features:
//   - chance constraint Prob(return < α) ≤ β via the Φ⁻¹ quantile of the
//     standard normal, for any β in (0, ½]
//   - robust counterpart with per-asset deviations and a tunable budget Γ,
//     from Γ=0 (plain LP) to full conservatism
//   - Frontier sweeps Γ and reports the price of robustness curve
//   - DefaultChanceInstance and DefaultAssets carry ready-made data sets
//     for experiments and the runnable examples
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/portfolio"
//
//	mean, cov, alpha, beta := portfolio.DefaultChanceInstance()
//	cr, err := portfolio.MaxReturnChance(mean, cov, alpha, beta)
//	// cr.Weights sum to one; cr.Margin ≈ 0 when the constraint binds
//
//	rr, err := portfolio.MaxReturnRobust(portfolio.DefaultAssets(), 1000, 10)
//	// rr.Return is the guaranteed worst-case final wealth
//
// Performance: MaxReturnChance is one barrier solve over n weights;
// MaxReturnRobust is one LP with 2n+2 variables and 2n+2 rows; Frontier is
// one LP per Γ value.
//
// See example_test.go for complete walkthroughs.
package portfolio
