// Package builder constructs deterministic worlds and environment series.
//
// Graphs:
//
// A world is a core.Graph assembled by BuildGraph from one or more
// Constructor closures. Each closure validates its parameters, adds vertices
// through the configured ID scheme and emits edges in a documented order, so
// the same options and seed always produce the same world.
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.ConnectedWattsStrogatz(100, 5, 0.5, 100),
//	)
//
// Constructors:
//
//   - RingLattice(n, k): every vertex joined to its k/2 nearest neighbours on
//     each side.
//   - WattsStrogatz(n, k, p): a ring lattice whose edges are rewired with
//     probability p.
//   - ConnectedWattsStrogatz(n, k, p, tries): repeats WattsStrogatz until the
//     result is connected.
//   - RandomSparse(n, p): independent edges with probability p.
//
// Series:
//
// BuildSeries maps the series options (WithInitial, WithTrend, WithNoise,
// WithAmplitude, WithFrequency, WithPhase, WithSmoothing, WithBounds) onto a
// stochastic.SeriesConfig and draws its noise from the builder RNG.
//
// Errors:
//
// Constructors return the sentinels in errors.go wrapped with the method
// name; compare with errors.Is. Option constructors never panic: a nil
// function or RNG leaves the default in place, and series knobs are
// validated when BuildSeries runs.
package builder
