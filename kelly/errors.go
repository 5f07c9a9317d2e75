// Package kelly: sentinel error set.
// All entry points MUST return these sentinels (or pass convex sentinels
// through untouched) and tests MUST check them via errors.Is.

package kelly

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "kelly: ..." for consistency and to allow
// easy grepping across logs.

var (
	// ErrProbability signals a win probability outside the open interval
	// (0, 1). Degenerate games (p = 0 or p = 1) have no betting problem.
	ErrProbability = errors.New("kelly: win probability must lie strictly between 0 and 1")

	// ErrOdds signals odds that are not positive and finite.
	ErrOdds = errors.New("kelly: odds must be positive and finite")

	// ErrRiskAversion signals a risk-aversion parameter that is negative
	// or not finite.
	ErrRiskAversion = errors.New("kelly: risk aversion must be non-negative and finite")

	// ErrFraction signals a bet fraction outside [0, 1). Betting the whole
	// bankroll loses it all on the first miss.
	ErrFraction = errors.New("kelly: bet fraction must lie in [0, 1)")

	// ErrBadPaths signals a non-positive path count in SimOptions.
	ErrBadPaths = errors.New("kelly: Paths must be positive")

	// ErrBadSteps signals a negative step count in SimOptions.
	ErrBadSteps = errors.New("kelly: Steps must be non-negative")
)
