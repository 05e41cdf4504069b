// Package yen finds a simple path of an exact vertex count by deviation search:
// Yen's k-shortest loopless paths, generalised from "next cheapest" to
// "next shortest until the target length".
//
// Algorithm
//
//  1. Seed: one BFS shortest path start→end. None within L-1 hops → not found.
//  2. Candidates live in a min-heap ordered by vertex count, ties by insertion
//     sequence, so the pop order is deterministic.
//  3. Pop the shortest candidate p and accept it.
//     - len(p) == L → success.
//     - len(p) >  L → not found (every pending candidate is at least as long).
//     - otherwise deviate: for each spur index i, root = p[:i+1]; the root's
//     vertices other than the spur are blocked, and so is every edge
//     spur→q[i+1] of an accepted path q sharing that root. A BFS from the spur
//     to end, limited to L-1-i hops, yields the spur path; root+spur becomes a
//     new candidate unless it was seen before.
//  4. Stop with Result.Capped once more than MaxCandidates candidates were generated.
//
// Exclusions are per-spur masks handed to bfs; the graph is never mutated, so
// concurrent searches on one graph are safe while no mutation is in flight.
//
// Complexity
//
//   - Each spur is one BFS: O(V²/64 + E) on core.Graph.
//   - At most MaxCandidates·L spur searches before the cap trips.
//   - Memory: O(MaxCandidates·L) for pending paths and the seen-set.
package yen
