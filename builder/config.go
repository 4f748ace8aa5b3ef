// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Defaults:
//   - idFn      = DefaultIDFn   ("0","1","2",...)
//   - rng       = nil           (deterministic unless seeded)
//   - weightFn  = DefaultWeightFn
//   - series    = initial 0, trend 0, noise 0, no seasonality,
//     smoothing 0.5, unbounded

package builder

import (
	"math"
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	// Series knobs, validated by stochastic.SeriesConfig.Validate.
	initial    float64
	trendK     float64
	noiseSigma float64
	amplitude  float64
	frequency  float64
	phase      float64
	smoothing  float64
	lower      float64
	upper      float64
}

const (
	defaultInitial   = 0.0
	defaultTrend     = 0.0
	defaultNoise     = 0.0
	defaultSmoothing = 0.5
)

// newBuilderConfig applies options in order over the defaults; last wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		weightFn:   DefaultWeightFn,
		initial:    defaultInitial,
		trendK:     defaultTrend,
		noiseSigma: defaultNoise,
		smoothing:  defaultSmoothing,
		lower:      math.Inf(-1),
		upper:      math.Inf(1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by seed.
func rngFrom(cfg builderConfig, seed int64) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(seed))
}
