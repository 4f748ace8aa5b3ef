// Package stochastic generates bounded, smoothed, seasonally modulated random
// walks for the world simulation.
//
// A series is driven by two coupled states, both seeded with the initial
// value at t=0:
//
//	raw[t]  = slope + raw[t-1] + A·sin(2π·f·t + φ) + ε_t,   ε_t ~ N(0, σ)
//	sm[t]   = clamp(α·raw[t] + (1-α)·sm[t-1], lower, upper)
//
// Only the smoothed state is the public series. The raw state is never
// clamped, so drift and noise keep accumulating underneath a saturated
// bound and the smoothed series leaves the bound only once the raw walk
// has come back.
//
// Configuration:
//
//	cfg := stochastic.NewSeriesConfig(0.5, 365, 0.001, 0.2, 0.05,
//		stochastic.WithSeasonality(0.1, 1.0/365, 0),
//		stochastic.WithBounds(0, 1),
//	)
//	series, err := stochastic.Generate(cfg, stochastic.NewSeededSource(42))
//
// Optional fields default to "off": zero seasonality and bounds of
// (-Inf, +Inf). With default bounds the generator is a plain exponential
// smoother over a seasonal random walk, so there is no separate unclamped
// variant.
//
// Errors:
//
// Every configuration problem is reported before any computation as a
// *ParameterError that matches ErrInvalidParameter under errors.Is and names
// the offending field. Errors from the RandomSource are returned unchanged.
//
// Concurrency:
//
// Generate keeps all state local to the call. Concurrent calls are safe when
// each uses its own RandomSource; a shared source must be serialized by the
// caller.
package stochastic
