// Package lvlpath finds simple paths of an exact length between two vertices
// of an undirected graph, and measures how two very different searches behave
// on the same random graphs.
//
// 🚀 What is lvlpath?
//
//	A small, deterministic toolkit that brings together:
//		• Core primitive: a dense bitset adjacency graph with seeded G(n, p) fill
//		• Traversal: BFS with depth limit, neighbor filter and hooks
//		• Deviation search (yen): enumerate simple paths by length until one
//		  has exactly L vertices
//		• Pruned backtracking (fls): depth-first extension cut by BFS distance
//		  to the end vertex
//		• Verification: an independent checker for every returned path
//		• Benchmark harness: warm-up, shuffled per-round call order, per-call
//		  timeouts, time files, JSON report and Prometheus textfile
//
// ✨ Guarantees
//
//   - Every returned path is simple, starts at start, ends at end, has exactly
//     L vertices and uses only graph edges
//   - A nil path with a nil error means "not found"; failures are errors
//   - Same seed, same graph, same paths
//   - Searches never mutate the graph and may run concurrently on it
//
// Packages:
//
//	core/     Graph, Reader and the seeded random fill
//	builder/  deterministic topologies for fixtures and demos
//	bfs/      breadth-first traversal, ShortestPath, Distances
//	search/   shared Result, Options, validation, step meter, registry
//	yen/      deviation search over simple paths in length order
//	fls/      distance-pruned depth-first search
//	verify/   path checker
//	converters/ gonum adapters and Graphviz DOT export
//	bench/    benchmark configuration, runner and report model
//	config/   koanf loader: defaults, YAML/TOML file, env, flags
//	report/   "<algorithm>_times" files and JSON reports
//	metrics/  Prometheus collectors for searches
//
// Quick ASCII example, L = 4 from 0 to 3:
//
//	    0───1
//	    │   │
//	    3───2
//
//	yen and fls both answer 0 → 1 → 2 → 3; L = 2 gives 0 → 3; L = 3 gives none.
//
//	go install github.com/katalvlaran/lvlpath/cmd/lvlpath@latest
package lvlpath
