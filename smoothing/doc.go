// Package smoothing implements a bounded exponential-smoothing filter.
//
// The filter keeps a single level S and blends every new observation x into
// it with a fixed weight α:
//
//	S_t = clamp(α·x_t + (1-α)·S_{t-1}, lower, upper)
//
// α is the weight given to the newest observation; 1-α is the weight kept
// from the previous level. Bounds default to (-Inf, +Inf), in which case the
// clamp is a no-op and the filter is a plain low-pass filter.
//
// Usage:
//
//	f, err := smoothing.New(0.5, 0, 100)
//	if err != nil {
//		// errors.Is(err, smoothing.ErrInvalidAlpha) / ErrInvalidBounds
//	}
//	f.Prime(50)
//	s := f.Observe(70) // 60
//
// A Filter is a small mutable value; it is not safe for concurrent use.
// Clone gives an independent copy when a caller needs to branch the state.
package smoothing
