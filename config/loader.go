package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "LVLPATH_"

// Loader merges defaults, file, environment and overrides into a Config.
type Loader struct {
	k         *koanf.Koanf
	path      string
	envPrefix string
	overrides map[string]any
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithFile loads path after the defaults. The extension selects the parser.
func WithFile(path string) LoaderOption {
	return func(l *Loader) {
		l.path = path
	}
}

// WithEnvPrefix replaces EnvPrefix.
func WithEnvPrefix(prefix string) LoaderOption {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithOverrides applies dotted keys ("bench.size") last.
func WithOverrides(values map[string]any) LoaderOption {
	return func(l *Loader) {
		for k, v := range values {
			l.overrides[k] = v
		}
	}
}

// NewLoader returns a Loader with the default env prefix and no file.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: EnvPrefix,
		overrides: make(map[string]any),
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load merges every source, unmarshals and validates.
func (l *Loader) Load() (*Config, error) {
	if err := l.k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: defaults: %w", err)
	}
	if l.path != "" {
		parser, err := parserFor(l.path)
		if err != nil {
			return nil, err
		}
		if err := l.k.Load(file.Provider(l.path), parser); err != nil {
			return nil, fmt.Errorf("config: %s: %w", l.path, err)
		}
	}
	if err := l.loadEnv(); err != nil {
		return nil, fmt.Errorf("config: env: %w", err)
	}
	if len(l.overrides) > 0 {
		if err := l.k.Load(confmap.Provider(l.overrides, "."), nil); err != nil {
			return nil, fmt.Errorf("config: overrides: %w", err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadEnv maps LVLPATH_BENCH_MIN_LENGTH to bench.min_length: the first
// underscore after the prefix separates the section from the field.
func (l *Loader) loadEnv() error {
	return l.k.Load(env.ProviderWithValue(l.envPrefix, ".", func(envKey, value string) (string, interface{}) {
		key := strings.ToLower(strings.TrimPrefix(envKey, l.envPrefix))
		section, field, ok := strings.Cut(key, "_")
		if !ok {
			return "", nil
		}
		key = section + "." + field
		if key == "bench.algorithms" {
			return key, splitAndTrim(value)
		}

		return key, value
	}), nil)
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".toml":
		return TOML(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}
