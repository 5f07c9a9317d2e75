// Package robust plans production under uncertain labor productivity and
// demand, maximizing the worst-case profit over a budgeted uncertainty set
// with the column-and-constraint generation (CCG) algorithm.
//
// 🚀 What is two-stage robust planning?
//
//	Raw material must be ordered before anything else is known (first
//	stage); the production plan is decided only after labor productivity
//	and demand reveal themselves (second stage).  The uncertain data is a
//	deviation vector z = (z_A, z_B, z_D) scaling labor-A hours, labor-B
//	hours and the committed orders.  Each component lives in a box, and a
//	budget Γ limits how many components (in scaled terms) may deviate at
//	once.  The goal is the ordering decision whose worst realization over
//	the whole set is as profitable as possible.
//
//	Enumerating the set is hopeless, so CCG grows a small pool of bad
//	scenarios instead: solve a master problem robust against the pool,
//	then a pessimization problem hunting a scenario that breaks every plan
//	in the incumbent solution.  When no scenario achieves a violation
//	above tolerance, every deviation in the set is served by some pooled
//	plan and the loop stops.
//
// ✨ Key features:
//   - MaxMin — scenario-pool master: one first-stage order, one recourse
//     plan per pooled scenario, worst-case objective
//   - Pessimize — big-M mixed-integer search for the most violating
//     scenario, with the budget handled through |z| splitting
//   - CCG — the full loop with per-iteration violation bookkeeping
//   - MaxExpected — sample-average optimization of the mean profit, for
//     comparing the robust order against the stochastic one
//   - SecondStage and EvaluatePlan — recourse of a fixed order under one
//     scenario, and its profit summary over many
//   - SampleScenarios — seeded rejection sampling from the set
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/robust"
//
//	p := robust.NewProblem()
//	res, err := p.CCG(robust.DefaultUncertainty(), robust.DefaultCCGOptions())
//	// res.X is the robust raw-material order, res.WorstCase its profit
//	// guarantee; res.Thetas traces how fast the violations die out.
//
//	scenarios, err := robust.SampleScenarios(1000, robust.DefaultUncertainty(), 1)
//	ev, err := p.EvaluatePlan(res.X, scenarios)
//	// ev.Mean vs res.WorstCase: the price paid for the guarantee.
//
// Performance: each master is an LP with one block of three recourse
// variables per pooled scenario; each pessimization is a small MILP with
// four binaries per plan.  The loop typically converges in a handful of
// iterations, far fewer than the hundreds of samples a scenario sweep
// needs for comparable protection.
//
// See example_test.go for complete walkthroughs.
package robust
