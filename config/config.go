// Package config loads the benchmark configuration.
//
// Sources, lowest priority first:
//
//  1. built-in defaults (bench.DefaultConfig and the log/output defaults below);
//  2. an optional file, YAML (.yaml, .yml) or TOML (.toml);
//  3. environment variables prefixed LVLPATH_, where the first underscore
//     separates the section: LVLPATH_BENCH_MIN_LENGTH → bench.min_length;
//  4. explicit overrides, typically command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lvlpath/bench"
)

// Sentinel errors for configuration loading.
var (
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	ErrInvalid           = errors.New("config: invalid configuration")
)

// Config is the full configuration of one lvlpath invocation.
type Config struct {
	Bench  bench.Config `koanf:"bench"`
	Log    LogConfig    `koanf:"log"`
	Output OutputConfig `koanf:"output"`
}

// LogConfig controls the charmbracelet logger and optional file rotation.
type LogConfig struct {
	Level      string `koanf:"level"`
	File       string `koanf:"file"`
	MaxSize    int    `koanf:"max_size"` // megabytes
	MaxBackups int    `koanf:"max_backups"`
	MaxAge     int    `koanf:"max_age"` // days
	Compress   bool   `koanf:"compress"`
}

// OutputConfig says where benchmark results go.
type OutputConfig struct {
	Dir         string `koanf:"dir"`
	JSON        bool   `koanf:"json"`
	MetricsFile string `koanf:"metrics_file"`
}

// Validate checks every section.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Bench.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level))
	}
	if c.Log.MaxSize < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAge < 0 {
		errs = append(errs, fmt.Errorf("%w: log rotation limits must be >= 0", ErrInvalid))
	}
	if c.Output.Dir == "" {
		errs = append(errs, fmt.Errorf("%w: output.dir is empty", ErrInvalid))
	}

	return errors.Join(errs...)
}

func defaults() map[string]any {
	b := bench.DefaultConfig()

	return map[string]any{
		"bench.size":           b.Size,
		"bench.density":        b.Density,
		"bench.start":          b.Start,
		"bench.end":            b.End,
		"bench.min_length":     b.MinLength,
		"bench.max_length":     b.MaxLength,
		"bench.runs":           b.Runs,
		"bench.warm_up":        b.WarmUp,
		"bench.seed":           b.Seed,
		"bench.algorithms":     b.Algorithms,
		"bench.timeout":        b.Timeout,
		"bench.max_candidates": b.MaxCandidates,

		"log.level":       "info",
		"log.file":        "",
		"log.max_size":    100,
		"log.max_backups": 3,
		"log.max_age":     28,
		"log.compress":    false,

		"output.dir":          "target",
		"output.json":         false,
		"output.metrics_file": "",
	}
}
