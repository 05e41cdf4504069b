// SPDX-License-Identifier: MIT
//
// File: fill.go
// Role: FillUndirected, the G(n,p) random edge fill.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidDensity). NaN is rejected, never clamped.
//   - rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Adds to the current edge set; callers Clear between rounds.
//   - Never creates self-loops.
//
// Determinism:
//   - Stable trial order: for each u asc, v asc with v > u.
//   - Exactly one rng.Float64() draw per unordered pair when 0 < p < 1,
//     so a fixed seed reproduces the same topology.

package core

import (
	"fmt"
	"math/rand"
)

const (
	methodFillUndirected = "FillUndirected"
	densityMin           = 0.0
	densityMax           = 1.0
)

// FillUndirected adds each edge {u,v}, u≠v, independently with probability density.
// The random source belongs to the caller so benchmark rounds are replayable.
func (g *Graph) FillUndirected(density float64, rng *rand.Rand) error {
	// !(a && b) also catches NaN.
	if !(density >= densityMin && density <= densityMax) {
		return fmt.Errorf("%s: density=%g not in [%.1f,%.1f]: %w",
			methodFillUndirected, density, densityMin, densityMax, ErrInvalidDensity)
	}
	if density == densityMin {
		return nil
	}
	if density == densityMax {
		g.fillComplete()
		return nil
	}
	if rng == nil {
		return fmt.Errorf("%s: %w", methodFillUndirected, ErrNeedRandSource)
	}

	var u, v int
	for u = 0; u < g.n; u++ {
		for v = u + 1; v < g.n; v++ {
			if rng.Float64() < density && !g.HasEdge(u, v) {
				g.set(u, v)
				g.set(v, u)
				g.edges++
			}
		}
	}

	return nil
}

// fillComplete adds every missing edge u–v, u≠v, without consuming randomness.
func (g *Graph) fillComplete() {
	var u, v int
	for u = 0; u < g.n; u++ {
		for v = u + 1; v < g.n; v++ {
			if !g.HasEdge(u, v) {
				g.set(u, v)
				g.set(v, u)
				g.edges++
			}
		}
	}
}
