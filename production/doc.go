// Package production solves the classic two-product production planning
// problem: how much raw material and labor to buy, and how much of each
// product to make, to maximize profit.
//
// 🚀 What is production planning?
//
//	A factory makes products from limited resources.  Each product has a
//	market price and possibly a demand cap; each resource has a unit cost
//	and possibly limited availability.  The plan decides:
//	  • how many units of each product to produce
//	  • how much of each resource to acquire
//	so that resource usage stays within what was acquired and profit
//	(revenue − expense) is maximal.  This is the door-opener model of
//	linear optimization.
//
// ✨ Key features:
//   - data-driven form (Optimize): any number of products and resources
//     described by tables, in the spirit of indexed algebraic models
//   - tutorial form (OptimizeTutorial): the same default instance written
//     out variable by variable, for reading alongside the data-driven one
//   - unlimited quantities expressed with math.Inf(1), no magic numbers
//   - staged validation with sentinel errors before any solve
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlopt/production"
//
//	products, resources, usage := production.DefaultInstance()
//	plan, err := production.Optimize(products, resources, usage)
//	// plan.Produce["U"] == 20, plan.Profit == 2600 on the default data
//
// Performance: one LP solve; size is (products + resources) variables and
// one row per resource.
//
// See example_test.go for a complete walkthrough.
package production
