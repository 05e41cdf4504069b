// SPDX-License-Identifier: MIT
//
// File: topology.go
// Role: deterministic topology constructors.
// Determinism:
//   - Edges are emitted in ascending vertex order; Random draws from its own seed.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvlpath/core"
)

const (
	methodPath      = "Path"
	methodCycle     = "Cycle"
	methodStar      = "Star"
	methodWheel     = "Wheel"
	methodComplete  = "Complete"
	methodBipartite = "CompleteBipartite"
	methodGrid      = "Grid"
	methodRandom    = "Random"

	minPathNodes   = 2
	minCycleNodes  = 3
	minStarNodes   = 2
	minWheelNodes  = 4
	minCompleteN   = 1
	minPartSize    = 1
	minGridSide    = 1
	hubVertex      = 0
	firstRimVertex = 1
)

// Path builds P_n on vertices 0..n-1: edges i–(i+1).
func Path(n int) Constructor {
	return func(g *core.Graph) error {
		if err := checkSize(g, methodPath, n, minPathNodes, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := link(g, methodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n on vertices 0..n-1: Path(n) plus (n-1)–0.
func Cycle(n int) Constructor {
	return func(g *core.Graph) error {
		if err := checkSize(g, methodCycle, n, minCycleNodes, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a star with hub 0 and leaves 1..n-1.
func Star(n int) Constructor {
	return func(g *core.Graph) error {
		if err := checkSize(g, methodStar, n, minStarNodes, n); err != nil {
			return err
		}
		for leaf := firstRimVertex; leaf < n; leaf++ {
			if err := link(g, methodStar, hubVertex, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: hub 0 joined to every vertex of the rim cycle 1..n-1.
func Wheel(n int) Constructor {
	return func(g *core.Graph) error {
		if err := checkSize(g, methodWheel, n, minWheelNodes, n); err != nil {
			return err
		}
		rim := n - firstRimVertex
		for i := 0; i < rim; i++ {
			u := firstRimVertex + i
			if err := link(g, methodWheel, hubVertex, u); err != nil {
				return err
			}
			if err := link(g, methodWheel, u, firstRimVertex+(i+1)%rim); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n on vertices 0..n-1.
func Complete(n int) Constructor {
	return func(g *core.Graph) error {
		if err := checkSize(g, methodComplete, n, minCompleteN, n); err != nil {
			return err
		}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if err := link(g, methodComplete, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{a,b} with left part 0..a-1 and right part a..a+b-1.
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph) error {
		if err := checkSize(g, methodBipartite, min(a, b), minPartSize, a+b); err != nil {
			return err
		}
		for u := 0; u < a; u++ {
			for v := a; v < a+b; v++ {
				if err := link(g, methodBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood grid; cell (r,c) is vertex r*cols+c.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph) error {
		if err := checkSize(g, methodGrid, min(rows, cols), minGridSide, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := link(g, methodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, methodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// Random fills the whole graph as G(n, density) from its own seeded source.
// The same (density, seed) on the same n always yields the same edges.
func Random(density float64, seed int64) Constructor {
	return func(g *core.Graph) error {
		if err := g.FillUndirected(density, rand.New(rand.NewSource(seed))); err != nil {
			return fmt.Errorf("%s: %w", methodRandom, err)
		}

		return nil
	}
}
