// Package convex: functional configuration for the barrier solver.
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

package convex

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultGapTolerance stops the outer loop once the duality-gap bound
	// m/t drops below it.
	DefaultGapTolerance = 1e-8

	// DefaultBarrierGrowth is the factor multiplying t between centerings.
	// The classic trade-off: larger values mean fewer centerings with more
	// Newton steps each.
	DefaultBarrierGrowth = 10.0

	// DefaultInitialT is the first barrier weight.
	DefaultInitialT = 1.0

	// DefaultNewtonTolerance stops a centering once the Newton decrement
	// satisfies λ²/2 <= tol.
	DefaultNewtonTolerance = 1e-10

	// DefaultMaxNewtonIters caps Newton steps per centering.
	DefaultMaxNewtonIters = 100
)

// Backtracking line-search parameters (Armijo fraction and step shrink).
// Fixed: every textbook pair in (0, 0.5)×(0, 1) works and exposing them
// would be a dead switch.
const (
	lsAlpha = 0.01
	lsBeta  = 0.5
	lsFloor = 1e-12 // smallest step before declaring no progress
)

// Panic messages for option constructors (programmer errors).
const (
	panicGapTolerance = "convex: WithGapTolerance: tol must be finite and > 0"
	panicGrowth       = "convex: WithBarrierGrowth: mu must be finite and > 1"
	panicInitialT     = "convex: WithInitialT: t0 must be finite and > 0"
	panicNewtonTol    = "convex: WithNewtonTolerance: tol must be finite and > 0"
	panicNewtonIters  = "convex: WithMaxNewtonIters: limit must be positive"
)

// Options carries the resolved solver configuration; construct via
// NewConvexOptions or the variadic arguments of Minimize.
type Options struct {
	gapTol    float64
	mu        float64
	t0        float64
	newtonTol float64
	maxNewton int
}

// Option mutates Options during gathering.
type Option func(*Options)

// WithGapTolerance sets the duality-gap stop. Panics on non-positive or
// non-finite values.
func WithGapTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicGapTolerance)
	}
	return func(o *Options) { o.gapTol = tol }
}

// WithBarrierGrowth sets the outer multiplier mu. Panics unless mu > 1.
func WithBarrierGrowth(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) || mu <= 1 {
		panic(panicGrowth)
	}
	return func(o *Options) { o.mu = mu }
}

// WithInitialT sets the first barrier weight. Panics unless t0 > 0.
func WithInitialT(t0 float64) Option {
	if math.IsNaN(t0) || math.IsInf(t0, 0) || t0 <= 0 {
		panic(panicInitialT)
	}
	return func(o *Options) { o.t0 = t0 }
}

// WithNewtonTolerance sets the decrement stop λ²/2 <= tol. Panics on
// non-positive or non-finite values.
func WithNewtonTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicNewtonTol)
	}
	return func(o *Options) { o.newtonTol = tol }
}

// WithMaxNewtonIters caps Newton steps per centering. Panics on
// non-positive limits.
func WithMaxNewtonIters(limit int) Option {
	if limit <= 0 {
		panic(panicNewtonIters)
	}
	return func(o *Options) { o.maxNewton = limit }
}

// NewConvexOptions resolves user options over the documented defaults.
func NewConvexOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions fills the defaults and applies user options in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		gapTol:    DefaultGapTolerance,
		mu:        DefaultBarrierGrowth,
		t0:        DefaultInitialT,
		newtonTol: DefaultNewtonTolerance,
		maxNewton: DefaultMaxNewtonIters,
	}
	for _, fn := range user {
		fn(&o)
	}
	return o
}
