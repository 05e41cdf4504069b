package bfs

import (
	"errors"
	"fmt"
)

// Unreachable marks a vertex that the search did not reach in Result.Depth and
// in the slice returned by Distances.
const Unreachable = -1

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start index is outside [0, n).
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// OnVisit is called when visiting a vertex. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(v, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth (in edges).
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool

	// Blocked, if non-nil, marks vertices the search must never enter.
	// The start vertex is entered even when blocked.
	Blocked []bool

	// Target, if ≥ 0, stops the search as soon as that vertex is discovered.
	Target int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no filtering, no blocked vertices, no early target
//   - no-op OnVisit hook.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		OnVisit:        func(int, int) error { return nil },
		MaxDepth:       0,
		FilterNeighbor: nil,
		Blocked:        nil,
		Target:         Unreachable,
		err:            nil,
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(v, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *BFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithBlocked excludes every vertex v with blocked[v] == true.
// The mask is read, never written; its length must equal the vertex count.
func WithBlocked(blocked []bool) Option {
	return func(o *BFSOptions) {
		o.Blocked = blocked
	}
}

// WithTarget stops the traversal once v has been discovered.
func WithTarget(v int) Option {
	return func(o *BFSOptions) {
		if v < 0 {
			o.err = fmt.Errorf("%w: Target cannot be negative (%d)", ErrOptionViolation, v)
			return
		}
		o.Target = v
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: vertices visited, in visit sequence.
//   - Depth: distance (in edges) from the start, Unreachable where not reached.
//   - Parent: predecessor in the BFS tree, Unreachable for the start and unreached vertices.
type Result struct {
	Start  int
	Order  []int
	Depth  []int
	Parent []int
}

// PathTo reconstructs the path from the start vertex to dest.
// Returns nil if dest was not reached.
func (r *Result) PathTo(dest int) []int {
	if dest < 0 || dest >= len(r.Depth) || r.Depth[dest] == Unreachable {
		return nil
	}
	path := make([]int, r.Depth[dest]+1)
	for i, cur := len(path)-1, dest; i >= 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}

	return path
}
