// Package bfs provides a breadth-first search over a core.Reader,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: vertex → distance (edges) from start, Unreachable if not reached
//   - Parent: vertex → predecessor in the BFS tree
//   - Distances(g, src) and ShortestPath(g, src, dst) are the two shortcuts the
//     fixed-length searches use: reverse distances to the end vertex for pruning,
//     and spur paths under per-candidate exclusions.
//   - Exclusions never touch the graph: WithBlocked masks vertices and
//     WithFilterNeighbor drops single edges curr→neighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Determinism
//
//	core.Reader yields neighbors in a stable order and BFS enqueues them in that
//	order, so the visit sequence and every reconstructed path are reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E) for adjacency-list readers, O(V²/64 + E) for core.Graph bitsets
//   - Memory: O(V)     (queue, Depth, Parent)
//
// Usage
//
//	dist, err := bfs.Distances(g, end)
//	path, err := bfs.ShortestPath(g, spur, end,
//	    bfs.WithBlocked(rootMask),
//	    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return !used[nbr] || curr != spur }),
//	    bfs.WithMaxDepth(budget),
//	)
//
// Errors
//
//   - ErrGraphNil             if the graph is nil.
//   - ErrStartVertexNotFound  if the start index is out of range.
//   - ErrOptionViolation      for invalid options (negative MaxDepth, bad mask length, bad target).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
