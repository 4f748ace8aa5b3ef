// Package config loads worldgen settings from TOML or YAML files layered
// over defaults, applies WORLDGEN_* environment overrides and validates
// the result.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/iamgiddyaboutgit-schoolwork/doe-group-project/stochastic"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("config: unsupported file format")

	// ErrInvalidConfig wraps validation failures.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Format identifies a configuration encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// Config is the full worldgen configuration.
type Config struct {
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	World   WorldConfig   `toml:"world" yaml:"world"`
	Series  SeriesSection `toml:"series" yaml:"series"`
	Growth  GrowthConfig  `toml:"growth" yaml:"growth"`
}

// LoggingConfig controls the console logger.
type LoggingConfig struct {
	Level string `toml:"level" yaml:"level" validate:"oneof=trace debug info warn error"`
}

// WorldConfig describes the small-world map.
type WorldConfig struct {
	Places     int     `toml:"places" yaml:"places" validate:"min=1"`
	Neighbours int     `toml:"neighbours" yaml:"neighbours" validate:"min=0,ltefield=Places"`
	Rewire     float64 `toml:"rewire" yaml:"rewire" validate:"gte=0,lte=1"`
	Tries      int     `toml:"tries" yaml:"tries" validate:"min=1"`
	Seed       int64   `toml:"seed" yaml:"seed"`
	IDScheme   string  `toml:"id_scheme" yaml:"id_scheme" validate:"oneof=decimal place excel"`
	// Weighted roads carry a log-normal travel cost exp(N(CostMu, CostSigma)).
	Weighted  bool    `toml:"weighted" yaml:"weighted"`
	CostMu    float64 `toml:"cost_mu" yaml:"cost_mu"`
	CostSigma float64 `toml:"cost_sigma" yaml:"cost_sigma" validate:"gte=0"`
}

// SeriesSection describes the environment series. Nil bounds are unbounded.
type SeriesSection struct {
	Initial   float64  `toml:"initial" yaml:"initial"`
	Horizon   int      `toml:"horizon" yaml:"horizon" validate:"min=0"`
	Slope     float64  `toml:"slope" yaml:"slope"`
	Smoothing float64  `toml:"smoothing" yaml:"smoothing" validate:"gt=0,lt=1"`
	Noise     float64  `toml:"noise" yaml:"noise" validate:"gte=0"`
	Amplitude float64  `toml:"amplitude" yaml:"amplitude"`
	Frequency float64  `toml:"frequency" yaml:"frequency"`
	Phase     float64  `toml:"phase" yaml:"phase"`
	Lower     *float64 `toml:"lower,omitempty" yaml:"lower,omitempty"`
	Upper     *float64 `toml:"upper,omitempty" yaml:"upper,omitempty"`
}

// GrowthConfig drives the demo population run.
type GrowthConfig struct {
	Population  int64   `toml:"population" yaml:"population" validate:"min=1"`
	Rate        float64 `toml:"rate" yaml:"rate"`
	WeightShape float64 `toml:"weight_shape" yaml:"weight_shape" validate:"ne=0"`
}

// NewDefaultConfig returns the documented defaults: a 100-place world with
// k=5, p=0.5 and a 100-step series bounded to [0, 1000].
func NewDefaultConfig() *Config {
	lower, upper := 0.0, 1000.0

	return &Config{
		Logging: LoggingConfig{Level: "info"},
		World: WorldConfig{
			Places:     100,
			Neighbours: 5,
			Rewire:     0.5,
			Tries:      100,
			Seed:       1,
			IDScheme:   "decimal",
			Weighted:   true,
			CostMu:     0,
			CostSigma:  0.5,
		},
		Series: SeriesSection{
			Initial:   500,
			Horizon:   100,
			Slope:     0,
			Smoothing: 0.3,
			Noise:     25,
			Amplitude: 100,
			Frequency: 1.0 / 25,
			Phase:     0,
			Lower:     &lower,
			Upper:     &upper,
		},
		Growth: GrowthConfig{
			Population:  50,
			Rate:        0.2,
			WeightShape: 3,
		},
	}
}

// LoadFromFiles loads configuration with priority defaults -> files in
// order -> environment. Empty paths are skipped. The result is validated.
func LoadFromFiles(paths ...string) (*Config, error) {
	cfg := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}
		format, err := FormatOf(path)
		if err != nil {
			return nil, err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err = decode(data, format, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes data over the defaults and validates the result.
// Environment overrides are not applied.
func Parse(data []byte, format Format) (*Config, error) {
	cfg := NewDefaultConfig()
	if err := decode(data, format, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FormatOf picks the decoder from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

func decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatTOML:
		return toml.Unmarshal(data, cfg)
	case FormatYAML:
		return yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// applyEnvOverrides applies WORLDGEN_* environment variables. Malformed
// numbers are ignored.
func applyEnvOverrides(cfg *Config) {
	if level := os.Getenv("WORLDGEN_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if seed := os.Getenv("WORLDGEN_SEED"); seed != "" {
		if v, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.World.Seed = v
		}
	}
	if places := os.Getenv("WORLDGEN_PLACES"); places != "" {
		if v, err := strconv.Atoi(places); err == nil {
			cfg.World.Places = v
		}
	}
	if horizon := os.Getenv("WORLDGEN_HORIZON"); horizon != "" {
		if v, err := strconv.Atoi(horizon); err == nil {
			cfg.Series.Horizon = v
		}
	}
}

// Validate checks struct tags, then the cross-field series rules.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.SeriesConfig().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// SeriesConfig converts the [series] section; unset bounds become ±Inf.
func (c *Config) SeriesConfig() stochastic.SeriesConfig {
	s := c.Series
	lower, upper := math.Inf(-1), math.Inf(1)
	if s.Lower != nil {
		lower = *s.Lower
	}
	if s.Upper != nil {
		upper = *s.Upper
	}

	return stochastic.NewSeriesConfig(s.Initial, s.Horizon, s.Slope, s.Smoothing, s.Noise,
		stochastic.WithSeasonality(s.Amplitude, s.Frequency, s.Phase),
		stochastic.WithBounds(lower, upper),
	)
}
