package bench

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig is returned by Config.Validate and NewRunner.
var ErrInvalidConfig = errors.New("bench: invalid config")

// Config describes one benchmark: the random graph, the endpoints, the range of
// target lengths and how often each length is measured.
type Config struct {
	Size          int           `koanf:"size" json:"size"`
	Density       float64       `koanf:"density" json:"density"`
	Start         int           `koanf:"start" json:"start"`
	End           int           `koanf:"end" json:"end"`
	MinLength     int           `koanf:"min_length" json:"min_length"`
	MaxLength     int           `koanf:"max_length" json:"max_length"`
	Runs          int           `koanf:"runs" json:"runs"`
	WarmUp        int           `koanf:"warm_up" json:"warm_up"`
	Seed          int64         `koanf:"seed" json:"seed"`
	Algorithms    []string      `koanf:"algorithms" json:"algorithms"`
	Timeout       time.Duration `koanf:"timeout" json:"timeout"`
	MaxCandidates int           `koanf:"max_candidates" json:"max_candidates"`
}

// DefaultConfig mirrors the reference driver: G(1000, 0.1), 0→1, lengths 1..100,
// ten rounds per length, a hundred warm-up iterations.
func DefaultConfig() Config {
	return Config{
		Size:          1000,
		Density:       0.1,
		Start:         0,
		End:           1,
		MinLength:     1,
		MaxLength:     100,
		Runs:          10,
		WarmUp:        100,
		Seed:          79544948,
		Algorithms:    []string{"yen", "fls"},
		Timeout:       0,
		MaxCandidates: 4096,
	}
}

// Validate reports every field outside its domain.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.Size > 0, "size must be positive, got %d", c.Size)
	check(c.Density >= 0 && c.Density <= 1, "density must lie in [0,1], got %v", c.Density)
	check(c.Start >= 0 && c.Start < c.Size, "start=%d not in [0,%d)", c.Start, c.Size)
	check(c.End >= 0 && c.End < c.Size, "end=%d not in [0,%d)", c.End, c.Size)
	check(c.MinLength >= 1, "min_length must be >= 1, got %d", c.MinLength)
	check(c.MaxLength >= c.MinLength, "max_length=%d below min_length=%d", c.MaxLength, c.MinLength)
	check(c.Runs >= 1, "runs must be >= 1, got %d", c.Runs)
	check(c.WarmUp >= 0, "warm_up must be >= 0, got %d", c.WarmUp)
	check(len(c.Algorithms) > 0, "no algorithms selected")
	check(c.Timeout >= 0, "timeout must be >= 0, got %v", c.Timeout)
	check(c.MaxCandidates > 0, "max_candidates must be positive, got %d", c.MaxCandidates)

	seen := make(map[string]bool, len(c.Algorithms))
	for _, name := range c.Algorithms {
		check(!seen[name], "algorithm %q listed twice", name)
		seen[name] = true
	}

	return errors.Join(errs...)
}
