// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Degree.
// Determinism:
//   - Every mutation touches both (u,v) and (v,u); the relation stays symmetric.
// Concurrency:
//   - No locking; see doc.go for the caller-side contract.

package core

import (
	"fmt"
	"math/bits"
)

// AddEdge inserts the undirected edge u–v. Adding an existing edge is a no-op.
// u == v stores a self-loop.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("AddEdge(%d,%d) n=%d: %w", u, v, g.n, ErrVertexOutOfRange)
	}
	if g.HasEdge(u, v) {
		return nil
	}
	g.set(u, v)
	g.set(v, u)
	g.edges++

	return nil
}

// RemoveEdge deletes the undirected edge u–v. Removing a missing edge is a no-op.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return fmt.Errorf("RemoveEdge(%d,%d) n=%d: %w", u, v, g.n, ErrVertexOutOfRange)
	}
	if !g.HasEdge(u, v) {
		return nil
	}
	g.unset(u, v)
	g.unset(v, u)
	g.edges--

	return nil
}

// HasEdge reports whether the edge u–v exists.
// Out-of-range indices report false; HasEdge never panics.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}

	return g.rows[u*g.words+v/wordBits]&(1<<(uint(v)%wordBits)) != 0
}

// Degree returns the number of neighbors of u (a self-loop counts once).
// Out-of-range u returns ErrVertexOutOfRange.
//
// Complexity: O(n/64).
func (g *Graph) Degree(u int) (int, error) {
	if !g.inRange(u) {
		return 0, fmt.Errorf("Degree(%d) n=%d: %w", u, g.n, ErrVertexOutOfRange)
	}
	d := 0
	for _, w := range g.row(u) {
		d += bits.OnesCount64(w)
	}

	return d, nil
}

func (g *Graph) set(u, v int) {
	g.rows[u*g.words+v/wordBits] |= 1 << (uint(v) % wordBits)
}

func (g *Graph) unset(u, v int) {
	g.rows[u*g.words+v/wordBits] &^= 1 << (uint(v) % wordBits)
}
