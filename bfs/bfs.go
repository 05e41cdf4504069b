package bfs

import (
	"fmt"

	"github.com/katalvlaran/lvlpath/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph core.Reader
	opts  BFSOptions
	queue []int
	head  int
	res   *Result
	done  bool
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g core.Reader, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.VertexCount()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartVertexNotFound, start, n)
	}
	if o.Blocked != nil && len(o.Blocked) != n {
		return nil, fmt.Errorf("%w: blocked mask has %d entries, graph has %d vertices",
			ErrOptionViolation, len(o.Blocked), n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for i := range w.res.Depth {
		w.res.Depth[i] = Unreachable
		w.res.Parent[i] = Unreachable
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, Unreachable)

	return w.res, w.loop()
}

// Distances returns the hop distance from src to every vertex, Unreachable where
// src cannot reach. It accepts the same options as BFS.
func Distances(g core.Reader, src int, opts ...Option) ([]int, error) {
	res, err := BFS(g, src, opts...)
	if err != nil {
		return nil, err
	}

	return res.Depth, nil
}

// ShortestPath returns one shortest path src→dst, or nil when dst is unreachable
// under the given options. Ties are broken by ascending neighbor order.
func ShortestPath(g core.Reader, src, dst int, opts ...Option) ([]int, error) {
	if g != nil && (dst < 0 || dst >= g.VertexCount()) {
		return nil, fmt.Errorf("%w: target %d not in [0,%d)", ErrOptionViolation, dst, g.VertexCount())
	}
	all := make([]Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, WithTarget(dst))
	res, err := BFS(g, src, all...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(dst), nil
}

// enqueue marks v discovered at depth d, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.queue = append(w.queue, v)
	if v == w.opts.Target {
		w.done = true
	}
}

// loop processes the queue until empty, target discovered, or hook error.
func (w *walker) loop() error {
	for w.head < len(w.queue) && !w.done {
		v := w.queue[w.head]
		w.head++
		if err := w.visit(v); err != nil {
			return err
		}
		w.enqueueNeighbors(v)
	}

	return nil
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(v int) error {
	w.res.Order = append(w.res.Order, v)
	if err := w.opts.OnVisit(v, w.res.Depth[v]); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", v, err)
	}

	return nil
}

// enqueueNeighbors applies blocking, filtering and MaxDepth,
// and enqueues each unseen neighbor of v.
func (w *walker) enqueueNeighbors(v int) {
	nextDepth := w.res.Depth[v] + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	w.graph.ForEachNeighbor(v, func(nbr int) bool {
		if w.res.Depth[nbr] != Unreachable {
			return true
		}
		if w.opts.Blocked != nil && w.opts.Blocked[nbr] {
			return true
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(v, nbr) {
			return true
		}
		w.enqueue(nbr, nextDepth, v)

		return !w.done
	})
}
