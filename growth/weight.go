// SPDX-License-Identifier: MIT
// Package: growth
//
// weight.go - exponential weighting curve through (0,1) and (1,0).
//
// Evaluation form:
//   - b > 0: y = expm1(b(x-1)) / expm1(-b)
//   - b < 0: y = (expm1(b) - expm1(bx)) / expm1(b)
//   Both equal a·exp(bx) + c; the denominators never overflow, and at
//   x=0 / x=1 they reduce to d/d = 1 and 0/d = 0 exactly.

package growth

import (
	"math"
)

const methodWeight0More = "Weight0More"

// WeightCurve is the exponential curve for a fixed, validated shape b.
type WeightCurve struct {
	b     float64
	denom float64
}

// NewWeightCurve validates b (non-zero, finite) and precomputes the curve.
func NewWeightCurve(b float64) (WeightCurve, error) {
	if b == 0 {
		return WeightCurve{}, growthErrorf(methodWeight0More, "b=0 leaves c undefined")
	}
	if !finite(b) {
		return WeightCurve{}, growthErrorf(methodWeight0More, "b=%v must be finite", b)
	}
	if b > 0 {
		return WeightCurve{b: b, denom: math.Expm1(-b)}, nil
	}

	return WeightCurve{b: b, denom: math.Expm1(b)}, nil
}

// Shape returns b.
func (w WeightCurve) Shape() float64 { return w.b }

// Coefficients returns a and c of y = a·exp(b·x) + c.
// c = e^b/(e^b - 1) is computed as -1/expm1(-b) so large |b| stays finite.
func (w WeightCurve) Coefficients() (a, c float64) {
	c = -1 / math.Expm1(-w.b)
	return 1 - c, c
}

// At evaluates the curve at x. x is intended to lie in [0,1] but any finite
// value is accepted.
func (w WeightCurve) At(x float64) float64 {
	var y float64
	if w.b > 0 {
		y = math.Expm1(w.b*(x-1)) / w.denom
	} else {
		y = (w.denom - math.Expm1(w.b*x)) / w.denom
	}
	if y == 0 {
		// normalize -0 at x=1
		return 0
	}

	return y
}

// Weight0More returns y at x for the curve with shape b, favouring x near 0
// when b > 0.
func Weight0More(x, b float64) (float64, error) {
	w, err := NewWeightCurve(b)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) {
		return 0, growthErrorf(methodWeight0More, "x is NaN")
	}

	return w.At(x), nil
}
