// Package doegroupproject holds the numeric building blocks of a seeded
// world simulation.
//
// Packages:
//
//	stochastic/ - bounded, smoothed random-walk series with optional seasonality
//	smoothing/  - the clamped exponential filter behind those series
//	growth/     - discrete logistic growth and the 0→1 weighting curve
//	core/       - thread-safe undirected world graph
//	bfs/        - traversal, connectivity and small-world diagnostics
//	dijkstra/   - cheapest travel cost across weighted worlds
//	builder/    - deterministic Watts–Strogatz worlds and series from options
//	config/     - TOML/YAML configuration for the worldgen command
//	cmd/worldgen - end-to-end demo run
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(42)},
//		builder.ConnectedWattsStrogatz(100, 5, 0.5, builder.DefaultConnectTries))
//
//	cfg := stochastic.NewSeriesConfig(500, 100, 0, 0.3, 25,
//		stochastic.WithBounds(0, 1000))
//	series, _ := stochastic.Generate(cfg, stochastic.NewSeededSource(42))
package doegroupproject
