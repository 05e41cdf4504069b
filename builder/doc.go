// SPDX-License-Identifier: MIT

// Package builder assembles deterministic test and demo topologies on top of
// core.Graph.
//
// One orchestrator, BuildGraph(n, cons...), allocates an n-vertex graph and
// applies constructors in order. Every constructor names its vertices by index
// from 0 and fails with ErrGraphTooSmall when the graph cannot hold them, so
// composition stays explicit:
//
//	g, err := builder.BuildGraph(9, builder.Grid(3, 3))
//	g, err := builder.BuildGraph(6, builder.CompleteBipartite(3, 3))
//	g, err := builder.BuildGraph(1000, builder.Random(0.1, 79544948))
//
// Vertex layout:
//
//	Path, Cycle, Complete   0..n-1 in order
//	Star, Wheel             hub 0, leaves / rim 1..n-1
//	CompleteBipartite(a,b)  left 0..a-1, right a..a+b-1
//	Grid(r,c)               row-major, vertex r*cols+c
//
// Same arguments, same edges: Random seeds its own *rand.Rand and consumes it
// exactly as core.FillUndirected documents.
package builder
