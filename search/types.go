package search

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Sentinel errors shared by every fixed-length path algorithm.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrVertexOutOfRange is returned when start or end lies outside [0, n).
	ErrVertexOutOfRange = errors.New("search: vertex index out of range")

	// ErrInvalidLength is returned when the requested vertex count is zero or negative.
	ErrInvalidLength = errors.New("search: path length must be positive")

	// ErrBudgetExceeded is returned when the caller's step budget runs out before
	// the search is decided.
	ErrBudgetExceeded = errors.New("search: step budget exceeded")

	// ErrUnknownAlgorithm is returned by Lookup for an unregistered name.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// DefaultMaxCandidates bounds the number of candidate paths a deviation search
// may generate before giving up.
const DefaultMaxCandidates = 4096

// checkInterval is how many steps pass between cancellation checks.
const checkInterval = 4096

// Result is the outcome of one search call.
type Result struct {
	// Path is the vertex sequence found, nil when Found is false.
	Path []int

	// Found reports whether a path of the exact length was produced.
	Found bool

	// Capped reports that the algorithm stopped on its own work cap,
	// so "not found" is a bounded answer rather than a proof of absence.
	Capped bool

	// Steps is the number of expansions performed; useful for comparing strategies
	// independently of wall-clock noise.
	Steps int
}

// Func is the signature every registered algorithm implements.
type Func func(g core.Reader, start, end, length int, opts ...Option) (Result, error)

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by Resolve.
type Option func(*Options)

// Options holds the tunables shared by the algorithms.
type Options struct {
	// Ctx is polled every few thousand steps; cancellation aborts the search.
	Ctx context.Context

	// MaxSteps, if > 0, aborts the search with ErrBudgetExceeded after that many steps.
	MaxSteps int

	// MaxCandidates caps candidate generation for deviation search.
	MaxCandidates int

	err error
}

// DefaultOptions returns background context, unlimited steps and
// DefaultMaxCandidates.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxSteps:      0,
		MaxCandidates: DefaultMaxCandidates,
	}
}

// WithContext sets the context polled for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithMaxSteps sets the step budget. Zero means unlimited.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithMaxCandidates sets the deviation-search candidate cap; n must be positive.
func WithMaxCandidates(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxCandidates must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCandidates = n
	}
}

// Resolve applies opts over DefaultOptions and returns the first recorded violation.
func Resolve(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
