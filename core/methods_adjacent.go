// File: methods_adjacent.go
// Role: Neighbor iteration in ascending index order.
// Determinism:
//   - Words are scanned low to high and bits least-significant first,
//     so neighbors always come out sorted by index.

package core

import "math/bits"

// ForEachNeighbor calls fn for every neighbor v of u in ascending order and stops
// early when fn returns false. Out-of-range u yields nothing.
//
// Complexity: O(n/64 + deg(u)), no allocations.
func (g *Graph) ForEachNeighbor(u int, fn func(v int) bool) {
	if !g.inRange(u) {
		return
	}
	var (
		base int
		w    uint64
	)
	for i, word := range g.row(u) {
		base = i * wordBits
		for w = word; w != 0; w &= w - 1 {
			if !fn(base + bits.TrailingZeros64(w)) {
				return
			}
		}
	}
}

// Neighbors returns the neighbors of u in ascending order as a fresh slice.
// Out-of-range u returns nil.
func (g *Graph) Neighbors(u int) []int {
	if !g.inRange(u) {
		return nil
	}
	d, _ := g.Degree(u)
	out := make([]int, 0, d)
	g.ForEachNeighbor(u, func(v int) bool {
		out = append(out, v)
		return true
	})

	return out
}
