// SPDX-License-Identifier: MIT
// Package: stochastic
//
// errors.go - sentinel errors and the field-carrying ParameterError.
//
// Error policy:
//   - Validation failures are *ParameterError values that unwrap to ErrInvalidParameter.
//   - Callers branch with errors.Is / errors.As, never on message text.
//   - Random source failures are passed through untouched.

package stochastic

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter marks a configuration value outside its documented domain.
// It is a programming error at the call site, not a condition to retry.
var ErrInvalidParameter = errors.New("stochastic: invalid parameter")

// ErrSourceExhausted is returned by a ScriptedSource that has no samples left.
var ErrSourceExhausted = errors.New("stochastic: random source exhausted")

// ErrNilRand is returned by a FromRand source built around a nil *rand.Rand.
var ErrNilRand = errors.New("stochastic: nil *rand.Rand")

// Field names reported by ParameterError.
const (
	FieldInitialValue      = "InitialValue"
	FieldHorizon           = "Horizon"
	FieldSlope             = "Slope"
	FieldSmoothingFactor   = "SmoothingFactor"
	FieldNoiseScale        = "NoiseScale"
	FieldSeasonalAmplitude = "SeasonalAmplitude"
	FieldSeasonalFrequency = "SeasonalFrequency"
	FieldSeasonalPhase     = "SeasonalPhase"
	FieldBounds            = "LowerBound/UpperBound"
)

// ParameterError identifies the configuration field that failed validation.
type ParameterError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ParameterError) Error() string {
	if e == nil {
		return ErrInvalidParameter.Error()
	}
	return fmt.Sprintf("%s: %s=%s: %s", ErrInvalidParameter.Error(), e.Field, e.Value, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidParameter) succeed.
func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

func invalid(field, reason string, value ...float64) error {
	v := ""
	switch len(value) {
	case 0:
	case 1:
		v = fmt.Sprintf("%v", value[0])
	default:
		v = fmt.Sprintf("%v", value)
	}

	return &ParameterError{Field: field, Value: v, Reason: reason}
}
