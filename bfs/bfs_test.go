package bfs_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/lvlpath/bfs"
	"github.com/katalvlaran/lvlpath/core"
)

// newGraph builds an n-vertex graph with the given undirected edges.
func newGraph(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g, err := core.New(n)
	if err != nil {
		t.Fatalf("core.New(%d): %v", n, err)
	}
	for _, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("AddEdge(%d,%d): %v", e[0], e[1], err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := newGraph(t, 3)
	// start vertex not found
	for _, s := range []int{-1, 3} {
		if _, err := bfs.BFS(g, s); !errors.Is(err, bfs.ErrStartVertexNotFound) {
			t.Errorf("start %d: want ErrStartVertexNotFound, got %v", s, err)
		}
	}
	// negative MaxDepth is a violation
	if _, err := bfs.BFS(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	// mask length must match
	if _, err := bfs.BFS(g, 0, bfs.WithBlocked(make([]bool, 2))); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("short mask: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.ShortestPath(g, 0, 7); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("target out of range: want ErrOptionViolation, got %v", err)
	}
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	// 0–1–2–3–0 undirected cycle
	g := newGraph(t, 4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 0})

	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 3, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 2, 1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if got := res.Parent[0]; got != bfs.Unreachable {
		t.Errorf("Parent[start] = %d; want Unreachable", got)
	}
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := newGraph(t, 4, [2]int{0, 1}, [2]int{2, 3})

	dist, err := bfs.Distances(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, bfs.Unreachable, bfs.Unreachable}; !reflect.DeepEqual(dist, want) {
		t.Errorf("Distances = %v; want %v", dist, want)
	}
	path, err := bfs.ShortestPath(g, 0, 3)
	if err != nil || path != nil {
		t.Errorf("ShortestPath across components = %v, %v; want nil, nil", path, err)
	}
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := newGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	cases := []struct {
		depth int
		want  []int
	}{
		{1, []int{0, 1}},
		{0, []int{0, 1, 2}},
		{10, []int{0, 1, 2}},
	}
	for _, tc := range cases {
		res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(tc.depth))
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(res.Order, tc.want) {
			t.Errorf("MaxDepth=%d: got %v; want %v", tc.depth, res.Order, tc.want)
		}
	}
}

// TestBFS_FilterAndBlocked shows how exclusions prune edges and vertices without mutating the graph.
func TestBFS_FilterAndBlocked(t *testing.T) {
	// 0–1–3 and 0–2–3: two routes of equal length
	g := newGraph(t, 4, [2]int{0, 1}, [2]int{1, 3}, [2]int{0, 2}, [2]int{2, 3})

	path, _ := bfs.ShortestPath(g, 0, 3)
	if want := []int{0, 1, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("unfiltered: got %v; want %v (ascending tie-break)", path, want)
	}

	path, _ = bfs.ShortestPath(g, 0, 3, bfs.WithFilterNeighbor(func(curr, nbr int) bool {
		return !(curr == 0 && nbr == 1)
	}))
	if want := []int{0, 2, 3}; !reflect.DeepEqual(path, want) {
		t.Errorf("filtered edge 0→1: got %v; want %v", path, want)
	}

	blocked := []bool{false, true, true, false}
	path, _ = bfs.ShortestPath(g, 0, 3, bfs.WithBlocked(blocked))
	if path != nil {
		t.Errorf("both middles blocked: got %v; want nil", path)
	}
	if !g.HasEdge(0, 1) || !g.HasEdge(2, 3) {
		t.Error("exclusions must not mutate the graph")
	}
}

// TestBFS_StartBlocked confirms the start vertex is entered even if masked.
func TestBFS_StartBlocked(t *testing.T) {
	g := newGraph(t, 2, [2]int{0, 1})
	path, err := bfs.ShortestPath(g, 0, 1, bfs.WithBlocked([]bool{true, false}))
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(path, want) {
		t.Errorf("got %v; want %v", path, want)
	}
}

// TestBFS_SelfLoopIgnored ensures a loop neither enqueues twice nor shortens paths.
func TestBFS_SelfLoopIgnored(t *testing.T) {
	g := newGraph(t, 2, [2]int{0, 0}, [2]int{0, 1})
	res, _ := bfs.BFS(g, 0)
	if want := []int{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("got %v; want %v", res.Order, want)
	}
}

// TestBFS_OnVisitAbort asserts that hook errors abort and are wrapped.
func TestBFS_OnVisitAbort(t *testing.T) {
	g := newGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	stop := errors.New("stop")
	var seen []int
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(v, d int) error {
		seen = append(seen, v)
		if d == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Fatalf("want wrapped stop error, got %v", err)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(seen, want) {
		t.Errorf("visited %v; want %v", seen, want)
	}
}

// TestResult_PathTo covers trivial (start→start), reachable and unreachable targets.
func TestResult_PathTo(t *testing.T) {
	g := newGraph(t, 4, [2]int{0, 1}, [2]int{1, 2})
	res, _ := bfs.BFS(g, 0)
	if got := res.PathTo(0); !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("PathTo start: got %v; want [0]", got)
	}
	if got := res.PathTo(2); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("PathTo 2: got %v; want [0 1 2]", got)
	}
	if got := res.PathTo(3); got != nil {
		t.Errorf("PathTo unreachable: got %v; want nil", got)
	}
	if got := res.PathTo(99); got != nil {
		t.Errorf("PathTo out of range: got %v; want nil", got)
	}
}

// TestBFS_ConcurrentSafety ensures concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := newGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() { _, err := bfs.Distances(g, i%3); errs <- err }()
	}
	for i := 0; i < 4; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}
