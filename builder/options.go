// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for the builder package.
//
// Options never panic. Nil functions and RNGs are ignored so the default
// stays in place; numeric series knobs are stored as given and rejected by
// BuildSeries with stochastic.ErrInvalidParameter.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the vertex ID generator. Nil keeps DefaultIDFn.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.idFn = fn
		}
	}
}

// WithRand shares an explicit RNG across constructors and BuildSeries.
// Nil is ignored.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator used on weighted
// graphs. Nil keeps DefaultWeightFn.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithInitial sets the series starting value.
func WithInitial(v float64) BuilderOption {
	return func(c *builderConfig) { c.initial = v }
}

// WithTrend sets the per-step drift (slope).
func WithTrend(k float64) BuilderOption {
	return func(c *builderConfig) { c.trendK = k }
}

// WithNoise sets the Gaussian noise standard deviation (>= 0).
func WithNoise(sigma float64) BuilderOption {
	return func(c *builderConfig) { c.noiseSigma = sigma }
}

// WithAmplitude sets the seasonal amplitude.
func WithAmplitude(a float64) BuilderOption {
	return func(c *builderConfig) { c.amplitude = a }
}

// WithFrequency sets the seasonal frequency in cycles per step.
func WithFrequency(f float64) BuilderOption {
	return func(c *builderConfig) { c.frequency = f }
}

// WithPhase sets the seasonal phase in radians.
func WithPhase(phi float64) BuilderOption {
	return func(c *builderConfig) { c.phase = phi }
}

// WithSmoothing sets the smoothing factor, 0 < alpha < 1.
func WithSmoothing(alpha float64) BuilderOption {
	return func(c *builderConfig) { c.smoothing = alpha }
}

// WithBounds clamps the smoothed series to [lower, upper].
func WithBounds(lower, upper float64) BuilderOption {
	return func(c *builderConfig) { c.lower, c.upper = lower, upper }
}
