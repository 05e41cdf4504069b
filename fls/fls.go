// Package fls finds a simple path of an exact vertex count by pruned
// backtracking ("fixed-length search").
//
// Algorithm
//
//  1. dist := BFS distances from end (the graph is undirected, so these are the
//     hop counts from every vertex to end).
//  2. dist[start] unreachable or > L-1 → not found without searching.
//  3. Depth-first search from start over ascending neighbours. With k vertices
//     placed, the current vertex cur is viable only if dist[cur] <= L-k; reaching
//     end is a success iff k == L and a dead end otherwise.
//  4. Vertices are marked visited on descent and unmarked on backtrack; the first
//     complete path is returned.
//
// Complexity
//
//   - Worst case exponential in L on dense graphs without a path of the exact
//     length; the distance bound only prunes branches that cannot close in time.
//   - Memory: O(V) for the distance vector, visited mask and current path.
package fls

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/bfs"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/search"
)

// Name is the registry key of this algorithm.
const Name = "fls"

func init() {
	search.Register(Name, Run)
}

// Search returns a simple start→end path of exactly length vertices, or nil when
// the search space is exhausted.
func Search(g core.Reader, start, end, length int, opts ...search.Option) ([]int, error) {
	res, err := Run(g, start, end, length, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Run is Search with the full Result. Capped is always false: the only bounds
// are the caller's step budget and context.
func Run(g core.Reader, start, end, length int, opts ...search.Option) (search.Result, error) {
	if err := search.Validate(g, start, end, length); err != nil {
		return search.Result{}, fmt.Errorf("fls: %w", err)
	}
	o, err := search.Resolve(opts...)
	if err != nil {
		return search.Result{}, fmt.Errorf("fls: %w", err)
	}
	if path, ok := search.Trivial(g, start, end, length); ok {
		return search.Result{Path: path, Found: path != nil}, nil
	}

	dist, err := bfs.Distances(g, end)
	if err != nil {
		return search.Result{}, fmt.Errorf("fls: %w", err)
	}
	if d := dist[start]; d == bfs.Unreachable || d > length-1 {
		return search.Result{}, nil
	}

	w := &walker{
		graph:   g,
		end:     end,
		length:  length,
		dist:    dist,
		visited: make([]bool, g.VertexCount()),
		path:    make([]int, 0, length),
		meter:   search.NewMeter(o),
	}
	w.visited[start] = true
	w.path = append(w.path, start)

	found, err := w.extend(start)
	res := search.Result{Steps: w.meter.Steps()}
	if err != nil {
		return res, fmt.Errorf("fls: %w", err)
	}
	if found {
		res.Path, res.Found = w.path, true
	}

	return res, nil
}

// walker holds the reversible state of one backtracking search.
type walker struct {
	graph   core.Reader
	end     int
	length  int
	dist    []int
	visited []bool
	path    []int
	meter   *search.Meter
}

// extend tries to complete the current path, whose last vertex is cur.
// On success w.path holds the answer; on failure it is restored to its entry state.
func (w *walker) extend(cur int) (bool, error) {
	if err := w.meter.Tick(); err != nil {
		return false, err
	}
	if cur == w.end {
		return len(w.path) == w.length, nil
	}
	if d := w.dist[cur]; d == bfs.Unreachable || d > w.length-len(w.path) {
		return false, nil
	}

	var (
		found bool
		err   error
	)
	w.graph.ForEachNeighbor(cur, func(nbr int) bool {
		if w.visited[nbr] {
			return true
		}
		w.visited[nbr] = true
		w.path = append(w.path, nbr)
		if found, err = w.extend(nbr); found || err != nil {
			return false
		}
		w.path = w.path[:len(w.path)-1]
		w.visited[nbr] = false

		return true
	})

	return found, err
}
