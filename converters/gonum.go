package converters

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/lvlpath/core"
)

var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrNodeID indicates node IDs that are not exactly 0..n-1.
	ErrNodeID = errors.New("converters: node IDs must be 0..n-1")
)

// ToGonum copies g into a new simple undirected graph. Vertex i becomes
// simple.Node(i); self-loops are dropped.
func ToGonum(g core.Reader) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := simple.NewUndirectedGraph()
	n := g.VertexCount()
	for v := 0; v < n; v++ {
		out.AddNode(simple.Node(v))
	}
	for u := 0; u < n; u++ {
		g.ForEachNeighbor(u, func(v int) bool {
			if u < v {
				out.SetEdge(out.NewEdge(simple.Node(u), simple.Node(v)))
			}
			return true
		})
	}

	return out, nil
}

// FromGonum copies src into a core.Graph with vertex i for node ID i.
func FromGonum(src graph.Undirected) (*core.Graph, error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	nodes, err := denseNodes(src)
	if err != nil {
		return nil, err
	}
	g, err := core.New(len(nodes))
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	for _, u := range nodes {
		to := src.From(u.ID())
		for to.Next() {
			if err := g.AddEdge(int(u.ID()), int(to.Node().ID())); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return g, nil
}

// Reader serves a gonum undirected graph through core.Reader. Neighbor lists
// are sorted once at construction; the source must not change afterwards.
type Reader struct {
	src graph.Undirected
	adj [][]int
}

// compile-time check that *Reader satisfies core.Reader.
var _ core.Reader = (*Reader)(nil)

// NewReader indexes src, whose node IDs must be exactly 0..n-1.
func NewReader(src graph.Undirected) (*Reader, error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	nodes, err := denseNodes(src)
	if err != nil {
		return nil, err
	}
	adj := make([][]int, len(nodes))
	for _, u := range nodes {
		var list []int
		to := src.From(u.ID())
		for to.Next() {
			list = append(list, int(to.Node().ID()))
		}
		sort.Ints(list)
		adj[u.ID()] = list
	}

	return &Reader{src: src, adj: adj}, nil
}

// VertexCount returns the number of nodes.
func (r *Reader) VertexCount() int { return len(r.adj) }

// HasEdge reports whether u–v exists; out-of-range indices report false.
func (r *Reader) HasEdge(u, v int) bool {
	n := len(r.adj)
	if u < 0 || u >= n || v < 0 || v >= n {
		return false
	}

	return r.src.HasEdgeBetween(int64(u), int64(v))
}

// ForEachNeighbor yields the neighbors of u in ascending order until fn returns false.
func (r *Reader) ForEachNeighbor(u int, fn func(v int) bool) {
	if u < 0 || u >= len(r.adj) {
		return
	}
	for _, v := range r.adj[u] {
		if !fn(v) {
			return
		}
	}
}

// WriteDOT writes g as an undirected Graphviz graph called name.
func WriteDOT(w io.Writer, g core.Reader, name string) error {
	gg, err := ToGonum(g)
	if err != nil {
		return err
	}
	b, err := dot.Marshal(gg, name, "", "\t")
	if err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}

	return nil
}

// denseNodes returns the nodes of src and checks their IDs cover 0..n-1.
// IDs are unique, so n IDs inside [0, n) are exactly 0..n-1.
func denseNodes(src graph.Graph) ([]graph.Node, error) {
	nodes := graph.NodesOf(src.Nodes())
	n := int64(len(nodes))
	for _, u := range nodes {
		if id := u.ID(); id < 0 || id >= n {
			return nil, fmt.Errorf("node %d with %d nodes: %w", id, n, ErrNodeID)
		}
	}

	return nodes, nil
}
