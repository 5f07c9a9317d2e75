// Package robust: configuration for the CCG loop.

package robust

import (
	"fmt"
	"math"
)

// Defaults for CCGOptions, in one place.
const (
	// DefaultTolerance stops the loop once no scenario violates the
	// incumbent plans by more than this much. 0.1 is acceptably small
	// against labor availabilities of 80 and 100 hours.
	DefaultTolerance = 0.1

	// DefaultBigM deactivates pessimizer rows whose binary switch is
	// raised. 1000 safely dominates every attainable row residual of the
	// book instance.
	DefaultBigM = 1000.0

	// DefaultMaxIterations hard-caps the number of master solves.
	DefaultMaxIterations = 50
)

// CCGOptions tunes the column-and-constraint generation loop.
//
// Fields:
//   - Tolerance     — pessimization stopping threshold: once the best
//     achievable violation θ* falls below it, the incumbent is declared
//     robust and the loop stops.
//   - BigM          — constant that switches pessimizer rows off when
//     their binary is raised. Must dominate every attainable residual;
//     too small silently cuts off violations, too large invites
//     round-off.
//   - MaxIterations — hard cap on master solves, converged or not.
type CCGOptions struct {
	Tolerance     float64
	BigM          float64
	MaxIterations int
}

// DefaultCCGOptions returns the chapter's settings: stop below 0.1,
// deactivate with M = 1000, give up after 50 rounds.
func DefaultCCGOptions() CCGOptions {
	return CCGOptions{
		Tolerance:     DefaultTolerance,
		BigM:          DefaultBigM,
		MaxIterations: DefaultMaxIterations,
	}
}

// validate rejects non-positive or non-finite knobs.
func (o CCGOptions) validate() error {
	if o.Tolerance <= 0 || math.IsNaN(o.Tolerance) || math.IsInf(o.Tolerance, 0) {
		return fmt.Errorf("tolerance = %v: %w", o.Tolerance, ErrBadTolerance)
	}
	if o.BigM <= 0 || math.IsNaN(o.BigM) || math.IsInf(o.BigM, 0) {
		return fmt.Errorf("big-M = %v: %w", o.BigM, ErrBadBigM)
	}
	if o.MaxIterations <= 0 {
		return fmt.Errorf("max iterations = %d: %w", o.MaxIterations, ErrBadIterations)
	}
	return nil
}
