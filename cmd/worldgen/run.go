package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/phuslu/log"
	"gonum.org/v1/gonum/stat"

	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/bfs"
	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/builder"
	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/config"
	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/core"
	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/dijkstra"
	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/growth"
)

// configFiles collects repeated -config flags.
type configFiles []string

func (c *configFiles) String() string { return strings.Join(*c, ",") }

func (c *configFiles) Set(v string) error {
	*c = append(*c, v)
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	var files configFiles
	fs := flag.NewFlagSet("worldgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&files, "config", "Configuration file path (repeatable; later files override earlier ones)")
	seed := fs.Int64("seed", 0, "World seed (overrides config)")
	level := fs.String("log-level", "", "Log level: trace, debug, info, warn, error (overrides config)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadFromFiles(files...)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.World.Seed = *seed
		case "log-level":
			cfg.Logging.Level = strings.ToLower(*level)
		}
	})
	if err = cfg.Validate(); err != nil {
		return err
	}

	logger := log.Logger{
		Level:  log.ParseLevel(cfg.Logging.Level),
		Writer: &log.ConsoleWriter{Writer: stderr},
	}
	runID := uuid.New().String()
	logger.Info().Str("run", runID).Int64("seed", cfg.World.Seed).Msg("worldgen starting")

	world, err := buildWorld(cfg)
	if err != nil {
		return fmt.Errorf("build world: %w", err)
	}
	apl, err := bfs.AveragePathLength(world)
	if err != nil {
		return fmt.Errorf("world diagnostics: %w", err)
	}
	ecc, err := bfs.Eccentricity(world, world.Vertices()[0])
	if err != nil {
		return fmt.Errorf("world diagnostics: %w", err)
	}
	if world.Weighted() {
		costs, err := dijkstra.Dijkstra(world, world.Vertices()[0])
		if err != nil {
			return fmt.Errorf("world diagnostics: %w", err)
		}
		far, cost := costs.Farthest()
		logger.Debug().Str("run", runID).Str("from", costs.Source).Str("to", far).
			Float64("cost", cost).Msg("costliest trip")
	}
	logger.Info().Str("run", runID).
		Int("places", world.VertexCount()).
		Int("roads", world.EdgeCount()).
		Float64("avg_path", apl).
		Int("eccentricity", ecc).
		Msg("world built")

	series, err := buildSeries(cfg)
	if err != nil {
		return fmt.Errorf("build series: %w", err)
	}
	mean, std := stat.MeanStdDev(series, nil)
	logger.Info().Str("run", runID).
		Int("samples", len(series)).
		Float64("mean", mean).
		Float64("stddev", std).
		Msg("environment series generated")

	curve, err := growth.NewWeightCurve(cfg.Growth.WeightShape)
	if err != nil {
		return fmt.Errorf("weight curve: %w", err)
	}

	w := bufio.NewWriter(stdout)
	fmt.Fprintln(w, "step\tcapacity\tpopulation\theadroom")
	pop := cfg.Growth.Population
	for t, capacity := range series {
		if t > 0 {
			prev := pop
			if pop, err = advance(pop, cfg.Growth.Rate, capacity); err != nil {
				return fmt.Errorf("step %d: %w", t, err)
			}
			if pop == 0 && prev > 0 {
				logger.Debug().Str("run", runID).Int("step", t).Msg("population extinct")
			}
		}
		fmt.Fprintf(w, "%d\t%.4f\t%d\t%.4f\n", t, capacity, pop, curve.At(occupancy(pop, capacity)))
	}
	if err = w.Flush(); err != nil {
		return err
	}

	logger.Info().Str("run", runID).Int64("final_population", pop).Msg("worldgen finished")

	return nil
}

func buildWorld(cfg *config.Config) (*core.Graph, error) {
	wc := cfg.World
	opts := []builder.BuilderOption{
		builder.WithSeed(wc.Seed),
		builder.WithIDScheme(idScheme(wc.IDScheme)),
	}
	var gopts []core.GraphOption
	if wc.Weighted {
		cost, err := builder.DistanceWeightFn(wc.CostMu, wc.CostSigma)
		if err != nil {
			return nil, err
		}
		gopts = append(gopts, core.WithWeighted())
		opts = append(opts, builder.WithWeightFn(cost))
	}

	return builder.BuildGraph(gopts, opts,
		builder.ConnectedWattsStrogatz(wc.Places, wc.Neighbours, wc.Rewire, wc.Tries))
}

// buildSeries seeds the series stream with seed+1, apart from the world stream.
func buildSeries(cfg *config.Config) ([]float64, error) {
	sc := cfg.SeriesConfig()

	return builder.BuildSeries(sc.Horizon, cfg.World.Seed+1,
		builder.WithInitial(sc.InitialValue),
		builder.WithTrend(sc.Slope),
		builder.WithNoise(sc.NoiseScale),
		builder.WithAmplitude(sc.SeasonalAmplitude),
		builder.WithFrequency(sc.SeasonalFrequency),
		builder.WithPhase(sc.SeasonalPhase),
		builder.WithSmoothing(sc.SmoothingFactor),
		builder.WithBounds(sc.LowerBound, sc.UpperBound),
	)
}

func idScheme(name string) builder.IDFn {
	switch name {
	case "place":
		return builder.PlaceIDFn
	case "excel":
		return builder.ExcelColumnIDFn
	default:
		return builder.DefaultIDFn
	}
}

// advance applies one logistic step. A non-positive capacity wipes the
// population out; results never go below zero.
func advance(pop int64, rate, capacity float64) (int64, error) {
	if capacity <= 0 || pop == 0 {
		return 0, nil
	}
	next, err := growth.LogisticStep(pop, rate, capacity)
	if err != nil {
		return 0, err
	}
	if next < 0 {
		next = 0
	}

	return next, nil
}

// occupancy is pop/capacity clamped to [0, 1]; empty capacity counts as full.
func occupancy(pop int64, capacity float64) float64 {
	if capacity <= 0 {
		return 1
	}
	x := float64(pop) / capacity
	if x > 1 {
		return 1
	}

	return x
}
