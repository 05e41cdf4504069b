// Package search defines the contract shared by the fixed-length path algorithms:
// argument validation, boundary cases, tunable options, the Result record and a
// name → algorithm registry used by the benchmark driver and the CLI.
//
// Problem
//
//	Given an undirected graph, vertices start and end, and a length L counted in
//	vertices, find a simple path of exactly L vertices from start to end.
//
// Outcomes
//
//   - Contract violations (nil graph, index outside [0,n), L <= 0) are returned as
//     sentinel errors before any work is done.
//   - Exhaustion is not an error: Result.Found is false and Result.Path is nil.
//   - A caller-imposed budget (WithMaxSteps, WithContext) that runs out surfaces as
//     ErrBudgetExceeded or the context error; callers treat it as "not found".
//
// Boundary cases (Trivial)
//
//   - L > n             → not found (a simple path cannot repeat a vertex).
//   - start == end      → [start] iff L == 1, otherwise not found.
//   - L == 1, start≠end → not found.
//
// Registry
//
//	Algorithms register under a stable name from their package init:
//
//	    import _ "github.com/katalvlaran/lvlpath/yen"
//	    run, err := search.Lookup("yen")
//	    res, err := run(g, 0, 1, 12)
package search
