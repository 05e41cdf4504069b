// File: methods_clone.go
// Role: Deep copy and whole-graph reset.

package core

// Clone returns an independent copy of g; later mutations of either graph do not
// affect the other.
//
// Complexity: O(n²/64).
func (g *Graph) Clone() *Graph {
	rows := make([]uint64, len(g.rows))
	copy(rows, g.rows)

	return &Graph{n: g.n, words: g.words, rows: rows, edges: g.edges}
}

// Clear removes every edge. The vertex count is unchanged and repeated calls are
// harmless.
//
// Complexity: O(n²/64).
func (g *Graph) Clear() {
	clear(g.rows)
	g.edges = 0
}
