// Package growth holds the closed-form population and weighting formulas that
// sit next to the stochastic generator in the world simulation.
//
// Logistic growth:
//
//	next = round_half_even(prev + r·prev·(1 - prev/K))
//
// Populations are whole numbers, so every step rounds; ties go to the even
// neighbour (52.5 → 52).
//
// Weighting curve:
//
//	y = a·exp(b·x) + c,  c = e^b/(e^b - 1),  a = 1 - c
//
// This is the only exponential through (0,1) and (1,0). b > 0 bends it
// concave-down on [0,1] (weight stays high, then drops); b < 0 bends it
// concave-up (weight drops early). The curve is evaluated in an expm1 form
// that hits both anchor points exactly and does not overflow for large |b|.
//
// All functions are pure. Invalid parameters return errors matching
// ErrInvalidParameter.
package growth
