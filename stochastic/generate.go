// SPDX-License-Identifier: MIT
// Package: stochastic
//
// generate.go - the seasonal random walk and its smoothed, clamped view.
//
// Contract:
//   - Validate first; no sample is drawn for an invalid config.
//   - One noise draw per step t=1..Horizon, in order; none when NoiseScale == 0.
//   - Raw[0] == Smoothed[0] == InitialValue; len == Horizon+1.
//   - Only Smoothed is clamped.
//
// Complexity: O(Horizon) time, O(Horizon) memory. The recurrence is
// sequential in t.

package stochastic

import (
	"fmt"
	"math"

	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/smoothing"
)

const twoPi = 2 * math.Pi

// Trace holds both states of one generated series.
type Trace struct {
	Raw      []float64 // unclamped, unsmoothed walk
	Smoothed []float64 // filtered, clamped series
}

// Generate returns the smoothed series for cfg, drawing noise from src.
//
// cfg is validated first, so even a zero horizon fails when cfg is invalid;
// in particular InitialValue must lie within [LowerBound, UpperBound] since
// it is returned unclamped at index 0.
func Generate(cfg SeriesConfig, src RandomSource) ([]float64, error) {
	tr, err := GenerateTrace(cfg, src)
	if err != nil {
		return nil, err
	}

	return tr.Smoothed, nil
}

// GenerateTrace runs the recurrence and returns both the raw walk and the
// smoothed series. src may be nil when cfg.NoiseScale is 0 or cfg.Horizon
// is 0; no draw happens in either case.
func GenerateTrace(cfg SeriesConfig, src RandomSource) (Trace, error) {
	if err := cfg.Validate(); err != nil {
		return Trace{}, err
	}
	noisy := cfg.NoiseScale > 0
	if noisy && src == nil && cfg.Horizon > 0 {
		return Trace{}, invalid("RandomSource", "required when NoiseScale > 0", cfg.NoiseScale)
	}

	filter, err := smoothing.New(cfg.SmoothingFactor, cfg.LowerBound, cfg.UpperBound)
	if err != nil {
		return Trace{}, fmt.Errorf("GenerateTrace: %w", err)
	}

	n := cfg.Len()
	raw := make([]float64, n)
	sm := make([]float64, n)
	raw[0] = cfg.InitialValue
	sm[0] = cfg.InitialValue
	filter.Prime(cfg.InitialValue)

	var (
		eps    float64
		season float64
	)
	for t := 1; t < n; t++ {
		season = SeasonalTerm(cfg, t)

		eps = 0
		if noisy {
			if eps, err = src.SampleNormal(0, cfg.NoiseScale); err != nil {
				return Trace{}, err
			}
		}

		raw[t] = cfg.Slope + raw[t-1] + season + eps
		sm[t] = filter.Observe(raw[t])
	}

	return Trace{Raw: raw, Smoothed: sm}, nil
}

// SeasonalTerm returns A·sin(2π·f·t + φ) for step t. It is exactly 0 when the
// amplitude is 0; with f == 0 it is the constant A·sin(φ).
func SeasonalTerm(cfg SeriesConfig, t int) float64 {
	if cfg.SeasonalAmplitude == 0 {
		return 0
	}
	return cfg.SeasonalAmplitude * math.Sin(twoPi*cfg.SeasonalFrequency*float64(t)+cfg.SeasonalPhase)
}
