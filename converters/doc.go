// Package converters provides two-way adapters between core.Graph and gonum's
// graph interfaces (gonum.org/v1/gonum/graph).
//
//   - ToGonum copies any core.Reader into a *simple.UndirectedGraph with node i
//     for vertex i, so gonum's traversal, path and encoding packages apply.
//   - FromGonum copies a graph.Undirected whose node IDs are exactly 0..n-1
//     into a *core.Graph.
//   - Reader serves a graph.Undirected directly as a core.Reader, so yen, fls
//     and verify run on gonum graphs without a copy of the edge set.
//   - WriteDOT renders a core.Reader in Graphviz DOT via gonum's encoding/dot.
//
// Self-loops do not survive ToGonum: simple graphs reject them. They never
// change a search result, since a loop cannot extend a simple path.
package converters
