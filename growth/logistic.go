// SPDX-License-Identifier: MIT
// Package: growth
//
// logistic.go - discrete logistic population update.
//
// Contract:
//   - carryingCap != 0 and all inputs finite, else ErrInvalidParameter.
//   - The real-valued update is rounded half-to-even.
//   - Results that do not fit in int64 are rejected rather than wrapped.

package growth

import (
	"math"
)

const (
	methodLogisticStep       = "LogisticStep"
	methodLogisticTrajectory = "LogisticTrajectory"
)

// LogisticStep advances a population by one logistic step with growth rate r
// and carrying capacity carryingCap.
func LogisticStep(previous int64, r, carryingCap float64) (int64, error) {
	if carryingCap == 0 {
		return 0, growthErrorf(methodLogisticStep, "carryingCap=0")
	}
	if !finite(r) || !finite(carryingCap) {
		return 0, growthErrorf(methodLogisticStep, "r=%v carryingCap=%v must be finite", r, carryingCap)
	}

	p := float64(previous)
	next := math.RoundToEven(p + r*p*(1-p/carryingCap))
	if !finite(next) || next >= math.MaxInt64 || next < math.MinInt64 {
		return 0, growthErrorf(methodLogisticStep, "result %v overflows int64", next)
	}

	return int64(next), nil
}

// LogisticTrajectory iterates LogisticStep steps times from initial.
// The result has length steps+1 and starts with initial.
func LogisticTrajectory(initial int64, r, carryingCap float64, steps int) ([]int64, error) {
	if steps < 0 {
		return nil, growthErrorf(methodLogisticTrajectory, "steps=%d < 0", steps)
	}

	out := make([]int64, steps+1)
	out[0] = initial
	var err error
	for i := 1; i <= steps; i++ {
		if out[i], err = LogisticStep(out[i-1], r, carryingCap); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
