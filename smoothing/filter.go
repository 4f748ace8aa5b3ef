// SPDX-License-Identifier: MIT
// Package: smoothing
//
// filter.go - stateful bounded exponential smoothing.
//
// Contract:
//   - 0 < alpha < 1 and lower <= upper, validated once in New.
//   - Observe never fails; all validation happens up front.
//   - The level is clamped after every update; the input is not.

package smoothing

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidAlpha indicates a smoothing weight outside the open interval (0,1).
	ErrInvalidAlpha = errors.New("smoothing: alpha must be in (0,1)")

	// ErrInvalidBounds indicates lower > upper or a NaN bound.
	ErrInvalidBounds = errors.New("smoothing: lower bound exceeds upper bound")
)

// Filter is a bounded exponential-smoothing filter.
type Filter struct {
	alpha  float64
	lower  float64
	upper  float64
	level  float64
	seen   int
	primed bool
}

// New returns a Filter with weight alpha and the closed range [lower, upper].
// Use math.Inf(-1) / math.Inf(1) for an unbounded side.
func New(alpha, lower, upper float64) (*Filter, error) {
	if !(alpha > 0 && alpha < 1) {
		return nil, fmt.Errorf("New: alpha=%v: %w", alpha, ErrInvalidAlpha)
	}
	if !(lower <= upper) {
		return nil, fmt.Errorf("New: lower=%v upper=%v: %w", lower, upper, ErrInvalidBounds)
	}

	return &Filter{alpha: alpha, lower: lower, upper: upper}, nil
}

// Unbounded returns a Filter with no clamping.
func Unbounded(alpha float64) (*Filter, error) {
	return New(alpha, math.Inf(-1), math.Inf(1))
}

// Alpha returns the smoothing weight.
func (f *Filter) Alpha() float64 { return f.alpha }

// Bounds returns the clamp range.
func (f *Filter) Bounds() (lower, upper float64) { return f.lower, f.upper }

// Prime seeds the level without smoothing. The seed is clamped.
func (f *Filter) Prime(level float64) {
	f.level = Clamp(level, f.lower, f.upper)
	f.primed = true
	if f.seen == 0 {
		f.seen = 1
	}
}

// Observe folds x into the level and returns the new, clamped level.
// On an unprimed filter the first observation becomes the level.
func (f *Filter) Observe(x float64) float64 {
	if !f.primed {
		f.Prime(x)
		return f.level
	}
	f.level = Clamp(f.alpha*x+(1-f.alpha)*f.level, f.lower, f.upper)
	f.seen++

	return f.level
}

// Value returns the current level and whether the filter has been primed.
func (f *Filter) Value() (float64, bool) {
	return f.level, f.primed
}

// Seen returns how many values (prime included) have shaped the level.
func (f *Filter) Seen() int {
	return f.seen
}

// Reset drops the level; alpha and bounds are kept.
func (f *Filter) Reset() {
	f.level = 0
	f.seen = 0
	f.primed = false
}

// Clone returns an independent copy of the filter state.
func (f *Filter) Clone() Filter {
	return *f
}

// Clamp restricts x to [lower, upper].
func Clamp(x, lower, upper float64) float64 {
	if x < lower {
		return lower
	}
	if x > upper {
		return upper
	}

	return x
}
