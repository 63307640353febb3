// Package config loads randgraph run settings from a TOML file.
//
// A file only needs the keys it changes; everything else keeps the value
// from Default. Unknown keys are rejected so that typos surface:
//
//	seed         = 42
//	max_attempts = 500
//	stats        = ["apl", "cc"]
//	format       = "json"
//
//	[watts_strogatz]
//	n = 200
//	k = 3
//	p = 0.05
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/randgraph/builder"
	"github.com/katalvlaran/randgraph/sampler"
)

// ErrInvalidConfig is returned for values that cannot drive a run.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// MaxSampleSize bounds sample_size. Larger values would make every graph
// with fewer than about 1400 vertices measure all of its pairs.
const MaxSampleSize = 1_000_000

// Config holds every setting of one CLI run.
type Config struct {
	// Seed fixes the RNG; nil draws a time-derived seed.
	Seed        *int64   `toml:"seed"`
	MaxAttempts int      `toml:"max_attempts"`
	SampleSize  int      `toml:"sample_size"`
	Stats       []string `toml:"stats"`
	Exact       bool     `toml:"exact"`
	Format      string   `toml:"format"`
	LogLevel    string   `toml:"log_level"`
	LogFile     string   `toml:"log_file"`
	MetricsFile string   `toml:"metrics_file"`

	Gilbert       Gilbert       `toml:"gilbert"`
	WattsStrogatz WattsStrogatz `toml:"watts_strogatz"`
}

// Gilbert holds the G(n,p) parameters.
type Gilbert struct {
	N           int     `toml:"n"`
	P           float64 `toml:"p"`
	SingleTrial bool    `toml:"single_trial"`
}

// WattsStrogatz holds the small-world parameters.
type WattsStrogatz struct {
	N int     `toml:"n"`
	K int     `toml:"k"`
	P float64 `toml:"p"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		MaxAttempts:   builder.DefaultMaxAttempts,
		SampleSize:    sampler.SampleSize,
		Stats:         []string{"all"},
		Format:        FormatText,
		LogLevel:      "info",
		Gilbert:       Gilbert{N: 100, P: 0.05},
		WattsStrogatz: WattsStrogatz{N: 100, K: 2, P: 0.1},
	}
}

// Load decodes path over Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s", ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the run-wide settings. Model parameters are checked by
// the builder package when the graph is generated.
func (c Config) Validate() error {
	if c.MaxAttempts < 1 {
		return fmt.Errorf("%w: max_attempts=%d < 1", ErrInvalidConfig, c.MaxAttempts)
	}
	if c.SampleSize < 1 {
		return fmt.Errorf("%w: sample_size=%d < 1", ErrInvalidConfig, c.SampleSize)
	}
	if c.SampleSize > MaxSampleSize {
		return fmt.Errorf("%w: sample_size=%d > %d", ErrInvalidConfig, c.SampleSize, MaxSampleSize)
	}
	switch c.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: format %q", ErrInvalidConfig, c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return lvl, nil
}

// StatList joins Stats for randgraph.ParseStats.
func (c Config) StatList() string {
	return strings.Join(c.Stats, ",")
}
