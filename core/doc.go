// Package core defines the central Graph type used by every search strategy in
// lvlpath: a fixed-size, undirected, unweighted graph over integer vertex
// indices [0, n) with O(1) edge lookup.
//
// What
//
//   - New(n) allocates n vertices and no edges.
//   - AddEdge / RemoveEdge mutate single undirected edges.
//   - FillUndirected(p, rng) samples every unordered pair {u,v}, u<v, independently
//     with probability p (an Erdős–Rényi G(n,p) fill) using a caller-owned RNG.
//   - Clear removes every edge and keeps the vertex count.
//   - HasEdge, ForEachNeighbor, Neighbors, Degree and EdgeCount are the read-only
//     queries; the Reader interface bundles the subset algorithms depend on.
//
// Storage
//
//	Each vertex owns one bitset row of ceil(n/64) words. Bit v of row u is set iff
//	the edge u–v exists; undirected edges set both (u,v) and (v,u). Self-loops are
//	neither required nor forbidden: AddEdge(u,u) stores one, FillUndirected never
//	creates one.
//
// Determinism
//
//	ForEachNeighbor and Neighbors always yield neighbors in ascending index order,
//	and FillUndirected consumes the RNG in ascending (u,v) order, so a fixed seed
//	reproduces both the topology and every traversal built on top of it.
//
// Range policy
//
//	Queries never panic: HasEdge and Degree treat out-of-range indices as absent.
//	Mutations reject them with ErrVertexOutOfRange. Algorithms validate their own
//	arguments at entry and fail fast there.
//
// Concurrency
//
//	Graph has no internal lock. Any number of goroutines may query it at once, but
//	mutations (AddEdge, RemoveEdge, FillUndirected, Clear) must not overlap with
//	any other call. Callers serialize fill/search/clear phases or guard the graph
//	with their own sync.RWMutex.
//
// Complexity
//
//   - HasEdge:          O(1)
//   - ForEachNeighbor:  O(n/64 + deg)
//   - FillUndirected:   O(n²) Bernoulli trials
//   - Clear:            O(n²/64)
//   - Memory:           n·ceil(n/64)·8 bytes (≈125 KiB for n = 1000)
//
// Errors
//
//   - ErrNegativeSize       if New receives n < 0.
//   - ErrTooManyVertices    if the bitset size would overflow int.
//   - ErrVertexOutOfRange   if a mutation references an index outside [0, n).
//   - ErrInvalidDensity     if FillUndirected receives p ∉ [0,1] (or NaN).
//   - ErrNeedRandSource     if FillUndirected needs random draws but rng is nil.
package core
