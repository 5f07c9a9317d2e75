// Package solver provides linear and mixed-integer linear optimization on
// top of gonum's simplex method.
//
// It consumes models built with the model package and offers one entry
// point:
//
//   - Solve — routes by integrality: pure LPs go straight to the simplex
//     core, models with integer variables run branch-and-bound over LP
//     relaxations.
//
// Internals, in the order they run:
//
//   - assemble converts a model into simplex standard form
//     (min cᵀx, Ax = b, x >= 0): finite lower bounds are shifted out,
//     upper-only bounds mirrored, free variables split into positive and
//     negative parts, and every inequality receives its own slack column.
//   - lp.Simplex solves the standard form; its failures map onto this
//     package's sentinel errors.
//   - branch-and-bound explores a depth-first stack of bound-tightened
//     subproblems, keeps the best integer incumbent and prunes nodes whose
//     relaxation cannot beat it.
//
// Determinism: branching always picks the most fractional variable with
// ties broken by the lowest index, and children are explored floor-first,
// so identical models yield identical solutions and node counts.
//
// Integer variables without finite bounds may branch forever on pathological
// models; the node limit (WithNodeLimit) converts runaway searches into
// ErrNodeLimit instead.
package solver
