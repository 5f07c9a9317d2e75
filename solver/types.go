// Package solver: result types shared by the LP and MILP paths.

package solver

import (
	"fmt"

	"github.com/katalvlaran/lvlopt/model"
)

// Status describes the quality of a returned solution.
type Status int

const (
	// StatusOptimal marks a solution proven optimal.
	StatusOptimal Status = iota
	// StatusFeasible marks an integer-feasible incumbent returned alongside
	// ErrNodeLimit: valid, not proven optimal.
	StatusFeasible
)

// String returns "optimal" or "feasible"; unknown values render as
// "status(<n>)".
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Solution is the solver output in user variable space.
type Solution struct {
	// Status reports whether optimality was proven.
	Status Status
	// X holds one value per model variable, indexed by handle.
	X []float64
	// Objective is the objective value in the model's own sense, with the
	// expression constant included, stabilized to 1e-9.
	Objective float64
	// Nodes counts LP relaxations solved: 1 for a pure LP, the number of
	// explored branch-and-bound nodes for integer models.
	Nodes int
}

// Value returns the solved value of v. Panics when v is outside the
// solution vector (foreign handle).
func (s *Solution) Value(v model.Var) float64 {
	if v < 0 || int(v) >= len(s.X) {
		panic(panicSolutionVar)
	}
	return s.X[v]
}

// IsOptimal reports proven optimality.
func (s *Solution) IsOptimal() bool { return s.Status == StatusOptimal }

const panicSolutionVar = "solver: Solution.Value: variable handle out of range"
