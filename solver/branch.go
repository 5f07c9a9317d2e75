// Package solver — branch-and-bound over LP relaxations.
//
// Rationale (succinct):
//  1. Each node is just a pair of bound vectors; the model itself is never
//     mutated, so nodes are independent and the search needs no undo logic.
//  2. DFS (explicit stack) reaches integer incumbents quickly, and a good
//     incumbent is what makes bound pruning bite.
//  3. Branching picks the most fractional integer variable (distance to the
//     nearest integer), lowest index on ties; children split the domain at
//     floor/ceil of the relaxation value. Floor is explored first.
//  4. A node is pruned when its relaxation is infeasible, when its bound
//     cannot beat the incumbent, or when a branch child gets an empty
//     domain (floor below the lower bound after earlier tightening).
//  5. The node limit converts pathological searches (free integer
//     variables, huge domains) into ErrNodeLimit with the best incumbent
//     attached instead of spinning forever.
//
// Complexity:
//   - Worst case exponential in the number of integer variables; every node
//     costs one simplex solve.
//   - Memory: O(depth · V) for the stack's bound vectors.

package solver

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlopt/model"
)

// pruneEps separates "beats the incumbent" from floating-point noise; it
// matches the 1e-9 objective stabilization grid.
const pruneEps = 1e-9

// bbNode is one subproblem: the original model under tightened bounds.
type bbNode struct {
	lo, hi []float64
}

// branchAndBound runs the search and returns the best integer solution.
func branchAndBound(m *model.Model, lo, hi []float64, o Options) (*Solution, error) {
	mask := m.IntegerMask()
	sense := m.Sense()

	stack := []bbNode{{lo: lo, hi: hi}}
	var best *Solution
	nodes := 0

	for len(stack) > 0 {
		if nodes >= o.nodeLimit {
			if best != nil {
				best.Status = StatusFeasible
				best.Nodes = nodes
				return best, ErrNodeLimit
			}
			return nil, ErrNodeLimit
		}
		nd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nodes++

		x, obj, err := solveRelaxation(m, nd.lo, nd.hi, o)
		switch {
		case errors.Is(err, ErrInfeasible):
			if nodes == 1 {
				// Nothing satisfies even the relaxation.
				return nil, ErrInfeasible
			}
			continue // pruned: empty subproblem
		case err != nil:
			// Unboundedness can only appear at the root (children restrict
			// the feasible set); numerical failures abort outright.
			return nil, err
		}

		if best != nil && !improves(sense, obj, best.Objective) {
			continue // pruned: bound cannot beat the incumbent
		}

		j := mostFractional(x, mask, o.intTol)
		if j < 0 {
			best = integerIncumbent(m, x, mask, nodes)
			continue
		}

		// Push ceil first so the floor child is explored next (LIFO).
		fl := math.Floor(x[j])
		if up := fl + 1; up <= nd.hi[j] {
			clo := append([]float64(nil), nd.lo...)
			clo[j] = up
			stack = append(stack, bbNode{lo: clo, hi: nd.hi})
		}
		if fl >= nd.lo[j] {
			chi := append([]float64(nil), nd.hi...)
			chi[j] = fl
			stack = append(stack, bbNode{lo: nd.lo, hi: chi})
		}
	}

	if best == nil {
		return nil, ErrNoIntegerSolution
	}
	best.Nodes = nodes
	return best, nil
}

// improves reports whether candidate strictly beats incumbent in the given
// sense, beyond floating-point noise.
func improves(sense model.Sense, candidate, incumbent float64) bool {
	if sense == model.Maximize {
		return candidate > incumbent+pruneEps
	}
	return candidate < incumbent-pruneEps
}

// mostFractional returns the integer variable farthest from integrality, or
// -1 when every marked variable is within tol of an integer.
func mostFractional(x []float64, mask []bool, tol float64) int {
	pick, worst := -1, tol
	for j := range x {
		if !mask[j] {
			continue
		}
		f := x[j] - math.Floor(x[j])
		if d := math.Min(f, 1-f); d > worst {
			pick, worst = j, d
		}
	}
	return pick
}

// integerIncumbent snaps integer variables onto the lattice and rebuilds the
// objective from the snapped point, so incumbents compare and print cleanly.
func integerIncumbent(m *model.Model, x []float64, mask []bool, nodes int) *Solution {
	snapped := append([]float64(nil), x...)
	for j := range snapped {
		if mask[j] {
			snapped[j] = math.Round(snapped[j])
		}
	}
	return &Solution{
		Status:    StatusOptimal,
		X:         snapped,
		Objective: userObjective(m, snapped),
		Nodes:     nodes,
	}
}
