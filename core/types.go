// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Reader, sentinel errors and the New constructor.
// Policy:
//   - Sentinels are never wrapped at definition site; callers branch with errors.Is.
//   - No method in this package panics on caller input.

package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeSize indicates New was called with n < 0.
	ErrNegativeSize = errors.New("core: negative vertex count")

	// ErrTooManyVertices indicates the adjacency bitset for n vertices cannot be indexed by int.
	ErrTooManyVertices = errors.New("core: vertex count overflows index arithmetic")

	// ErrVertexOutOfRange indicates a mutation referenced a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrInvalidDensity indicates an edge probability outside the closed interval [0,1].
	ErrInvalidDensity = errors.New("core: density out of range")

	// ErrNeedRandSource indicates a stochastic fill was requested without an RNG.
	ErrNeedRandSource = errors.New("core: rng is required")
)

// wordBits is the number of adjacency bits held by one storage word.
const wordBits = 64

// Reader is the read-only query surface search algorithms depend on.
//
// Implementations must return false from HasEdge for out-of-range indices and must
// yield neighbors from ForEachNeighbor in a stable order; iteration stops as soon
// as fn returns false.
type Reader interface {
	VertexCount() int
	HasEdge(u, v int) bool
	ForEachNeighbor(u int, fn func(v int) bool)
}

// Graph is a fixed-size undirected graph over vertices 0..n-1 backed by one
// adjacency bitset row per vertex.
type Graph struct {
	n     int      // vertex count, fixed at construction
	words int      // uint64 words per adjacency row
	rows  []uint64 // n*words words; bit v of row u set iff u–v exists
	edges int      // undirected edge count, a loop counts once
}

// compile-time check that *Graph satisfies Reader.
var _ Reader = (*Graph)(nil)

// New returns a graph with n vertices and no edges.
// n == 0 is a valid, empty graph.
//
// Complexity: O(n²/64) time and space for the zeroed bitset.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrNegativeSize)
	}
	if n > math.MaxInt-(wordBits-1) {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrTooManyVertices)
	}
	words := (n + wordBits - 1) / wordBits
	if n > 0 && words > math.MaxInt/n {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrTooManyVertices)
	}

	return &Graph{
		n:     n,
		words: words,
		rows:  make([]uint64, n*words),
	}, nil
}

// VertexCount returns n, the number of vertices fixed at construction.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of undirected edges currently stored.
// A self-loop counts as one edge.
func (g *Graph) EdgeCount() int { return g.edges }

// inRange reports whether v is a valid vertex index.
func (g *Graph) inRange(v int) bool { return uint(v) < uint(g.n) }

// row returns the adjacency words of vertex u. u must be in range.
func (g *Graph) row(u int) []uint64 { return g.rows[u*g.words : (u+1)*g.words] }
