// Package solver: functional configuration for the LP/MILP engine.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies user options over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package solver

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the pivot tolerance handed to the simplex core.
	// Zero selects gonum's internal default, which is the right choice for
	// well-scaled models; raise it only for badly conditioned data.
	DefaultTolerance = 0.0

	// DefaultIntTolerance is the distance from the nearest integer below
	// which a variable counts as integral during branch-and-bound.
	DefaultIntTolerance = 1e-6

	// DefaultNodeLimit caps the number of branch-and-bound nodes explored.
	DefaultNodeLimit = 200_000
)

// Panic messages for option constructors (programmer errors).
const (
	panicTolerance    = "solver: WithTolerance: tol must be finite and >= 0"
	panicIntTolerance = "solver: WithIntTolerance: tol must be in (0, 0.5)"
	panicNodeLimit    = "solver: WithNodeLimit: limit must be positive"
)

// Options carries the resolved engine configuration. Construct via
// NewSolverOptions (or implicitly through Solve's variadic arguments); the
// zero value is NOT a valid configuration.
type Options struct {
	tol       float64 // simplex pivot tolerance (0 = gonum default)
	intTol    float64 // integrality tolerance for branch-and-bound
	nodeLimit int     // max branch-and-bound nodes
}

// Option mutates Options during gathering.
type Option func(*Options)

// WithTolerance sets the simplex pivot tolerance. Zero keeps gonum's
// default. Panics on negative or non-finite values.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicTolerance)
	}
	return func(o *Options) { o.tol = tol }
}

// WithIntTolerance sets the integrality tolerance. Values must stay inside
// (0, 0.5): at 0.5 every value would round to an integer and branching
// could never trigger. Panics outside that interval.
func WithIntTolerance(tol float64) Option {
	if math.IsNaN(tol) || tol <= 0 || tol >= 0.5 {
		panic(panicIntTolerance)
	}
	return func(o *Options) { o.intTol = tol }
}

// WithNodeLimit caps branch-and-bound nodes. Panics on non-positive limits.
func WithNodeLimit(limit int) Option {
	if limit <= 0 {
		panic(panicNodeLimit)
	}
	return func(o *Options) { o.nodeLimit = limit }
}

// NewSolverOptions resolves user options over the documented defaults.
func NewSolverOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions fills the defaults and applies user options in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:       DefaultTolerance,
		intTol:    DefaultIntTolerance,
		nodeLimit: DefaultNodeLimit,
	}
	for _, fn := range user {
		fn(&o)
	}
	return o
}
