// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Context is attached with %w via builderErrorf, never baked into the
//     sentinel text.
//   - Validation order: size, probability, RNG, then construction.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is below the minimum for the constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that all permitted attempts were exhausted
// without meeting the constructor's invariants (e.g. connectivity).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates an invalid size that is not a vertex count: k in the
// lattice constructors, tries, or a negative series horizon.
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrOptionViolation indicates a weight helper received meaningless bounds.
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf prefixes a formatted message with the method name.
// Wrap sentinels with %w in format to keep errors.Is working.
func builderErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
