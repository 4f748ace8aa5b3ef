// SPDX-License-Identifier: MIT
// Package: builder
//
// series.go - BuildSeries, the environment-series entry point.
//
// Mapping:
//   - WithInitial   -> SeriesConfig.InitialValue
//   - WithTrend     -> Slope
//   - WithNoise     -> NoiseScale
//   - WithAmplitude / WithFrequency / WithPhase -> seasonal term
//   - WithSmoothing -> SmoothingFactor
//   - WithBounds    -> LowerBound / UpperBound
//
// Noise is drawn from rngFrom(cfg, seed): the shared RNG when WithRand or
// WithSeed was given, otherwise a local stream seeded by seed.

package builder

import (
	"fmt"

	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/stochastic"
)

const methodBuildSeries = "BuildSeries"

// BuildSeries returns horizon+1 smoothed, clamped samples.
// Errors: ErrBadSize for horizon < 0; otherwise errors from
// stochastic.Generate (e.g. stochastic.ErrInvalidParameter) wrapped with
// the method name.
func BuildSeries(horizon int, seed int64, opts ...BuilderOption) ([]float64, error) {
	if horizon < 0 {
		return nil, builderErrorf(methodBuildSeries, "horizon=%d < 0: %w", horizon, ErrBadSize)
	}
	sc, src := seriesConfig(horizon, seed, newBuilderConfig(opts...))

	out, err := stochastic.Generate(sc, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodBuildSeries, err)
	}

	return out, nil
}

// seriesConfig resolves the stochastic config and noise source. The RNG is
// only touched when noise is requested; a noiseless series leaves a shared
// stream where it was.
func seriesConfig(horizon int, seed int64, cfg builderConfig) (stochastic.SeriesConfig, stochastic.RandomSource) {
	sc := stochastic.NewSeriesConfig(cfg.initial, horizon, cfg.trendK, cfg.smoothing, cfg.noiseSigma,
		stochastic.WithSeasonality(cfg.amplitude, cfg.frequency, cfg.phase),
		stochastic.WithBounds(cfg.lower, cfg.upper),
	)
	var src stochastic.RandomSource
	if cfg.noiseSigma > 0 {
		src = stochastic.FromRand(rngFrom(cfg, seed))
	}

	return sc, src
}
