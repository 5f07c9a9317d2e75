// Package portfolio: sentinel error set.
// All entry points MUST return these sentinels (or pass solver/convex
// sentinels through untouched) and tests MUST check them via errors.Is.

package portfolio

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "portfolio: ..." for consistency and to
// allow easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX)
// when context is essential; callers match with errors.Is.

var (
	// ErrNoAssets signals an empty mean vector or asset table.
	ErrNoAssets = errors.New("portfolio: no assets")

	// ErrDimensionMismatch signals a covariance matrix whose order differs
	// from the number of assets.
	ErrDimensionMismatch = errors.New("portfolio: covariance size does not match assets")

	// ErrRiskLevel signals risk parameters out of range: the wealth
	// threshold α must be finite and the shortfall probability β must lie
	// in (0, 0.5].
	ErrRiskLevel = errors.New("portfolio: risk parameters out of range")

	// ErrCovariance signals a covariance matrix that is not positive
	// definite (Cholesky factorization failed).
	ErrCovariance = errors.New("portfolio: covariance not positive definite")

	// ErrAssetData signals a non-finite nominal return or a negative or
	// non-finite deviation in the asset table.
	ErrAssetData = errors.New("portfolio: invalid asset data")

	// ErrBudget signals a capital amount that is not positive and finite.
	ErrBudget = errors.New("portfolio: capital must be positive and finite")

	// ErrGamma signals a protection level Γ that is negative or not finite.
	ErrGamma = errors.New("portfolio: gamma must be non-negative and finite")

	// ErrNoGammas signals an empty Γ list passed to Frontier.
	ErrNoGammas = errors.New("portfolio: no gamma values to sweep")
)
