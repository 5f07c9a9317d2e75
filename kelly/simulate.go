// Package kelly: Monte Carlo simulation of repeated betting.

package kelly

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Simulation defaults (single source of truth).
const (
	// DefaultSimPaths is the number of Monte Carlo wealth paths.
	DefaultSimPaths = 100

	// DefaultSimSeed seeds the outcome stream; SimOptions.Seed == 0
	// selects it, keeping runs reproducible by default.
	DefaultSimSeed uint64 = 1

	// fallbackSteps is the horizon used when the growth rate is zero or
	// negative, where a tenfold-growth horizon does not exist.
	fallbackSteps = 80

	// maxAutoSteps caps the automatic horizon for near-break-even
	// fractions, whose tenfold-growth horizon diverges.
	maxAutoSteps = 10000
)

// SimOptions configures Simulate. The zero value of each field selects a
// default rather than being used literally:
//
//   - Steps == 0 asks for the horizon over which the mean path gains one
//     decade, ceil(log 10 / log growth), capped at 10000 rounds; when the
//     growth rate is not positive the fallback horizon of 80 rounds is used.
//   - Seed == 0 selects DefaultSimSeed.
type SimOptions struct {
	Steps int
	Paths int
	Seed  uint64
}

// DefaultSimOptions returns the canonical setup: automatic horizon, 100
// paths, the default seed.
func DefaultSimOptions() SimOptions {
	return SimOptions{Steps: 0, Paths: DefaultSimPaths, Seed: DefaultSimSeed}
}

// validate reports the first broken option as a sentinel.
func (o SimOptions) validate() error {
	if o.Steps < 0 {
		return ErrBadSteps
	}
	if o.Paths < 1 {
		return ErrBadPaths
	}
	return nil
}

// SimResult is the output of Simulate.
type SimResult struct {
	// Wealth holds one path per row: Steps+1 levels starting at 1.
	Wealth [][]float64
	// MeanLogGrowth is the mean over paths of log(final wealth)/Steps, the
	// empirical per-round log growth.
	MeanLogGrowth float64
	// MinWealth is the lowest level any path ever touches.
	MinWealth float64
	// MaxDrawdown is the worst peak-to-trough loss fraction seen across
	// all paths, in [0, 1).
	MaxDrawdown float64
}

// Simulate plays the game along independent wealth paths, betting the given
// fixed fraction each round. Each round multiplies wealth by 1+b·fraction
// with probability p and by 1−fraction otherwise.
//
// Contracts:
//   - p and b as in Bet (ErrProbability, ErrOdds);
//   - fraction must lie in [0, 1): ErrFraction;
//   - opts.Steps ≥ 0 and opts.Paths ≥ 1 (ErrBadSteps, ErrBadPaths).
//
// Runs are deterministic per seed.
// Complexity: O(Paths·Steps) draws and multiplications.
func Simulate(p, b, fraction float64, opts SimOptions) (*SimResult, error) {
	if err := validateGame(p, b); err != nil {
		return nil, err
	}
	if math.IsNaN(fraction) || fraction < 0 || fraction >= 1 {
		return nil, ErrFraction
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	up := 1 + b*fraction
	down := 1 - fraction
	rate := p*math.Log(up) + (1-p)*math.Log(down)

	steps := opts.Steps
	if steps == 0 {
		steps = fallbackSteps
		if rate > 0 {
			if horizon := math.Ln10 / rate; horizon < maxAutoSteps {
				steps = int(math.Ceil(horizon))
			} else {
				steps = maxAutoSteps
			}
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSimSeed
	}
	bern := distuv.Bernoulli{P: p, Src: rand.NewSource(seed)}

	wealth := make([][]float64, opts.Paths)
	perPath := make([]float64, opts.Paths)
	minWealth := 1.0
	maxDrawdown := 0.0
	for i := range wealth {
		path := make([]float64, steps+1)
		path[0] = 1
		peak := 1.0
		for k := 1; k <= steps; k++ {
			r := down
			if bern.Rand() == 1 {
				r = up
			}
			path[k] = path[k-1] * r
			if path[k] > peak {
				peak = path[k]
			}
			if dd := 1 - path[k]/peak; dd > maxDrawdown {
				maxDrawdown = dd
			}
			if path[k] < minWealth {
				minWealth = path[k]
			}
		}
		wealth[i] = path
		perPath[i] = math.Log(path[steps]) / float64(steps)
	}

	return &SimResult{
		Wealth:        wealth,
		MeanLogGrowth: stat.Mean(perPath, nil),
		MinWealth:     minWealth,
		MaxDrawdown:   maxDrawdown,
	}, nil
}
