// SPDX-License-Identifier: MIT
// Package: stochastic
//
// config.go - SeriesConfig, its defaults and validation.
//
// Design:
//   - Optional fields are resolved once in NewSeriesConfig (no sentinel values).
//   - Options only assign; Validate is the single place that rejects values.
//   - Validation order is fixed so the first reported field is deterministic.

package stochastic

import (
	"fmt"
	"math"
)

// SeriesConfig fully describes one generated series.
// Build it with NewSeriesConfig so optional fields receive their defaults;
// a literal SeriesConfig{} has bounds [0,0] rather than (-Inf,+Inf).
type SeriesConfig struct {
	InitialValue    float64 // state at t=0
	Horizon         int     // last time index; output length Horizon+1
	Slope           float64 // additive drift per step
	SmoothingFactor float64 // weight of the newest raw value, in (0,1)
	NoiseScale      float64 // stddev of the per-step Gaussian term, >= 0

	SeasonalAmplitude float64 // 0 disables the seasonal term
	SeasonalFrequency float64 // oscillations per unit time
	SeasonalPhase     float64 // radians

	LowerBound float64 // minimum smoothed value
	UpperBound float64 // maximum smoothed value
}

// SeriesOption adjusts an optional SeriesConfig field.
type SeriesOption func(*SeriesConfig)

// MaxHorizon is the largest accepted Horizon; a series holds at most
// MaxHorizon+1 samples.
const MaxHorizon = 1<<28 - 1

// Defaults for the optional fields.
const (
	DefaultSeasonalAmplitude = 0.0
	DefaultSeasonalFrequency = 0.0
	DefaultSeasonalPhase     = 0.0
)

// NewSeriesConfig returns a config with the required fields set and every
// optional field at its default, then applies opts in order (last wins).
func NewSeriesConfig(initial float64, horizon int, slope, smoothing, noise float64, opts ...SeriesOption) SeriesConfig {
	cfg := SeriesConfig{
		InitialValue:      initial,
		Horizon:           horizon,
		Slope:             slope,
		SmoothingFactor:   smoothing,
		NoiseScale:        noise,
		SeasonalAmplitude: DefaultSeasonalAmplitude,
		SeasonalFrequency: DefaultSeasonalFrequency,
		SeasonalPhase:     DefaultSeasonalPhase,
		LowerBound:        math.Inf(-1),
		UpperBound:        math.Inf(1),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeasonality sets the sinusoidal term A·sin(2π·f·t + φ).
func WithSeasonality(amplitude, frequency, phase float64) SeriesOption {
	return func(c *SeriesConfig) {
		c.SeasonalAmplitude = amplitude
		c.SeasonalFrequency = frequency
		c.SeasonalPhase = phase
	}
}

// WithBounds sets the clamp range of the smoothed series.
func WithBounds(lower, upper float64) SeriesOption {
	return func(c *SeriesConfig) {
		c.LowerBound = lower
		c.UpperBound = upper
	}
}

// WithLowerBound sets only the floor.
func WithLowerBound(lower float64) SeriesOption {
	return func(c *SeriesConfig) { c.LowerBound = lower }
}

// WithUpperBound sets only the ceiling.
func WithUpperBound(upper float64) SeriesOption {
	return func(c *SeriesConfig) { c.UpperBound = upper }
}

// Bounded reports whether at least one bound is finite.
func (c SeriesConfig) Bounded() bool {
	return !math.IsInf(c.LowerBound, -1) || !math.IsInf(c.UpperBound, 1)
}

// Seasonal reports whether the seasonal term can be non-zero.
func (c SeriesConfig) Seasonal() bool {
	return c.SeasonalAmplitude != 0
}

// Len returns the length of the generated series.
func (c SeriesConfig) Len() int {
	return c.Horizon + 1
}

// Validate checks every field and returns the first violation as a
// *ParameterError. NaN fails every range check.
//
// Beyond the ranges, the initial value must lie inside the bounds: index 0
// is returned as-is, and every element of the output stays within
// [LowerBound, UpperBound].
func (c SeriesConfig) Validate() error {
	if c.Horizon < 0 {
		return invalid(FieldHorizon, "must be >= 0", float64(c.Horizon))
	}
	if c.Horizon > MaxHorizon {
		return invalid(FieldHorizon, fmt.Sprintf("must be <= %d", MaxHorizon), float64(c.Horizon))
	}
	if !(c.SmoothingFactor > 0 && c.SmoothingFactor < 1) {
		return invalid(FieldSmoothingFactor, "must be in (0,1)", c.SmoothingFactor)
	}
	if !(c.NoiseScale >= 0) || math.IsInf(c.NoiseScale, 1) {
		return invalid(FieldNoiseScale, "must be finite and >= 0", c.NoiseScale)
	}
	if !(c.LowerBound <= c.UpperBound) {
		return invalid(FieldBounds, "lower bound must not exceed upper bound", c.LowerBound, c.UpperBound)
	}
	if !finite(c.InitialValue) {
		return invalid(FieldInitialValue, "must be finite", c.InitialValue)
	}
	if c.InitialValue < c.LowerBound || c.InitialValue > c.UpperBound {
		return invalid(FieldInitialValue, "must lie within the bounds", c.InitialValue)
	}
	if !finite(c.Slope) {
		return invalid(FieldSlope, "must be finite", c.Slope)
	}
	if !finite(c.SeasonalAmplitude) {
		return invalid(FieldSeasonalAmplitude, "must be finite", c.SeasonalAmplitude)
	}
	if !finite(c.SeasonalFrequency) {
		return invalid(FieldSeasonalFrequency, "must be finite", c.SeasonalFrequency)
	}
	if !finite(c.SeasonalPhase) {
		return invalid(FieldSeasonalPhase, "must be finite", c.SeasonalPhase)
	}

	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
