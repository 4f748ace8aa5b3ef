// Package builder provides edge-weight generators for weighted worlds.
package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Returns ErrOptionViolation if value is negative or not finite.
func ConstantWeightFn(value float64) (WeightFn, error) {
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return nil, fmt.Errorf("ConstantWeightFn: value=%g: %w", value, ErrOptionViolation)
	}

	return func(_ *rand.Rand) float64 { return value }, nil
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// With a nil RNG it yields DefaultEdgeWeight.
// Returns ErrOptionViolation unless 0 <= min <= max and both are finite.
func UniformWeightFn(min, max float64) (WeightFn, error) {
	if !(min >= 0 && min <= max) || math.IsInf(max, 1) {
		return nil, fmt.Errorf("UniformWeightFn: require 0 <= min <= max, got min=%g max=%g: %w",
			min, max, ErrOptionViolation)
	}
	span := max - min

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if span == 0 {
			return min
		}

		return min + rng.Float64()*span
	}, nil
}

// DistanceWeightFn returns a WeightFn modelling travel cost between places:
// a log-normal draw exp(N(mu, sigma)), always positive.
// With a nil RNG it yields exp(mu).
// Returns ErrOptionViolation if sigma is negative or either input is not finite.
func DistanceWeightFn(mu, sigma float64) (WeightFn, error) {
	if !(sigma >= 0) || math.IsInf(sigma, 0) || math.IsNaN(mu) || math.IsInf(mu, 0) {
		return nil, fmt.Errorf("DistanceWeightFn: mu=%g sigma=%g: %w", mu, sigma, ErrOptionViolation)
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return math.Exp(mu)
		}

		return math.Exp(mu + sigma*rng.NormFloat64())
	}, nil
}
