// Package robust: sentinel error set.
// All entry points MUST return these sentinels (or pass solver sentinels
// through untouched) and tests MUST check them via errors.Is.

package robust

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "robust: ..." for consistency and to
// allow easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX)
// when context is essential; callers match with errors.Is.

var (
	// ErrProblemData signals a negative or non-finite field in Problem.
	ErrProblemData = errors.New("robust: problem data out of range")

	// ErrUncertainty signals uncertainty-set parameters out of range: box
	// half-widths must be positive and finite, the budget Γ non-negative
	// and finite.
	ErrUncertainty = errors.New("robust: uncertainty set parameters out of range")

	// ErrNoScenarios signals an empty scenario list.
	ErrNoScenarios = errors.New("robust: no scenarios")

	// ErrBadScenario signals a scenario with a non-finite component.
	ErrBadScenario = errors.New("robust: non-finite scenario")

	// ErrNoPlans signals an empty plan list passed to Pessimize.
	ErrNoPlans = errors.New("robust: no plans to pessimize against")

	// ErrBadPlan signals a plan with a negative or non-finite component.
	ErrBadPlan = errors.New("robust: invalid plan data")

	// ErrFirstStage signals a first-stage order that is negative or not
	// finite.
	ErrFirstStage = errors.New("robust: first-stage order out of range")

	// ErrBadTolerance signals a CCG stopping tolerance that is not
	// positive and finite.
	ErrBadTolerance = errors.New("robust: tolerance must be positive and finite")

	// ErrBadBigM signals a row-deactivation constant that is not positive
	// and finite.
	ErrBadBigM = errors.New("robust: big-M must be positive and finite")

	// ErrBadIterations signals a non-positive CCG iteration cap.
	ErrBadIterations = errors.New("robust: iteration cap must be positive")

	// ErrSampleSize signals a non-positive sample count.
	ErrSampleSize = errors.New("robust: sample size must be positive")

	// ErrSampling signals rejection sampling that exhausted its attempt
	// budget without hitting the uncertainty set (the set is empty or
	// vanishingly thin, e.g. Γ = 0).
	ErrSampling = errors.New("robust: sampling failed to hit the uncertainty set")
)
