package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// Validate rejects contract violations before any search work is done.
// Length beyond the vertex count is not a violation; Trivial answers it.
func Validate(g core.Reader, start, end, length int) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.VertexCount()
	if start < 0 || start >= n {
		return fmt.Errorf("start=%d not in [0,%d): %w", start, n, ErrVertexOutOfRange)
	}
	if end < 0 || end >= n {
		return fmt.Errorf("end=%d not in [0,%d): %w", end, n, ErrVertexOutOfRange)
	}
	if length <= 0 {
		return fmt.Errorf("length=%d: %w", length, ErrInvalidLength)
	}

	return nil
}

// Trivial resolves the cases both strategies answer without searching.
// decided is false when the caller must run its algorithm.
func Trivial(g core.Reader, start, end, length int) (path []int, decided bool) {
	switch {
	case length > g.VertexCount():
		return nil, true
	case start == end:
		if length == 1 {
			return []int{start}, true
		}

		return nil, true
	case length == 1:
		return nil, true
	}

	return nil, false
}

// Meter counts search steps, enforces MaxSteps and polls the context
// every checkInterval steps.
type Meter struct {
	ctx   context.Context
	max   int
	steps int
}

// NewMeter returns a Meter bound to the budget in o.
func NewMeter(o Options) *Meter {
	return &Meter{ctx: o.Ctx, max: o.MaxSteps}
}

// Tick records one step. It returns ErrBudgetExceeded or the wrapped context
// error once the search must stop.
func (m *Meter) Tick() error {
	m.steps++
	if m.max > 0 && m.steps > m.max {
		return fmt.Errorf("%d steps: %w", m.max, ErrBudgetExceeded)
	}
	if m.steps&(checkInterval-1) == 0 {
		if err := m.ctx.Err(); err != nil {
			return fmt.Errorf("after %d steps: %w", m.steps, err)
		}
	}

	return nil
}

// Steps returns the number of recorded steps.
func (m *Meter) Steps() int { return m.steps }
