package yen

import (
	"container/heap"
	"encoding/binary"
	"fmt"

	"github.com/katalvlaran/lvlpath/bfs"
	"github.com/katalvlaran/lvlpath/core"
	"github.com/katalvlaran/lvlpath/search"
)

// Name is the registry key of this algorithm.
const Name = "yen"

func init() {
	search.Register(Name, Run)
}

// Search returns a simple start→end path of exactly length vertices, or nil when
// none was found within the candidate cap.
func Search(g core.Reader, start, end, length int, opts ...search.Option) ([]int, error) {
	res, err := Run(g, start, end, length, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Run is Search with the full Result: found flag, cap flag and step count.
func Run(g core.Reader, start, end, length int, opts ...search.Option) (search.Result, error) {
	if err := search.Validate(g, start, end, length); err != nil {
		return search.Result{}, fmt.Errorf("yen: %w", err)
	}
	o, err := search.Resolve(opts...)
	if err != nil {
		return search.Result{}, fmt.Errorf("yen: %w", err)
	}
	if path, ok := search.Trivial(g, start, end, length); ok {
		return search.Result{Path: path, Found: path != nil}, nil
	}

	n := g.VertexCount()
	d := &deviator{
		graph:    g,
		end:      end,
		length:   length,
		maxCand:  o.MaxCandidates,
		meter:    search.NewMeter(o),
		seen:     make(map[string]struct{}),
		blocked:  make([]bool, n),
		excluded: make([]bool, n),
	}
	res, err := d.run(start)
	if err != nil {
		return res, fmt.Errorf("yen: %w", err)
	}

	return res, nil
}

// deviator holds the per-call state of one deviation search.
type deviator struct {
	graph   core.Reader
	end     int
	length  int
	maxCand int
	meter   *search.Meter

	pending   candidateQueue
	accepted  [][]int
	seen      map[string]struct{}
	seq       int
	generated int

	blocked  []bool // root vertices of the current spur
	excluded []bool // next hops banned at the current spur
}

// run seeds the queue and pops candidates until one has the target length,
// the queue runs dry, or the cap trips.
func (d *deviator) run(start int) (search.Result, error) {
	seed, err := bfs.ShortestPath(d.graph, start, d.end, bfs.WithMaxDepth(d.length-1))
	if err != nil {
		return search.Result{}, err
	}
	if seed == nil {
		return d.result(nil, false), nil
	}
	d.offer(seed)

	for d.pending.Len() > 0 {
		if err = d.meter.Tick(); err != nil {
			return d.result(nil, false), err
		}
		p := heap.Pop(&d.pending).(*candidate).path
		if len(p) == d.length {
			return d.result(p, false), nil
		}
		if len(p) > d.length {
			break
		}
		d.accepted = append(d.accepted, p)

		capped, err := d.deviate(p)
		if err != nil {
			return d.result(nil, false), err
		}
		if capped {
			return d.result(nil, true), nil
		}
	}

	return d.result(nil, false), nil
}

// deviate generates one candidate per spur vertex of p.
// It reports capped once more than maxCand candidates have been generated.
func (d *deviator) deviate(p []int) (bool, error) {
	for i := 0; i < len(p)-1; i++ {
		budget := d.length - 1 - i
		if budget < 1 {
			break
		}
		if err := d.meter.Tick(); err != nil {
			return false, err
		}

		spur, root := p[i], p[:i+1]
		spurPath, err := d.spurPath(spur, root, budget)
		if err != nil {
			return false, err
		}
		if spurPath == nil {
			continue
		}

		cand := make([]int, 0, i+len(spurPath))
		cand = append(cand, root[:i]...)
		cand = append(cand, spurPath...)
		if d.offer(cand) && d.generated > d.maxCand {
			return true, nil
		}
	}

	return false, nil
}

// spurPath runs the exclusion-masked BFS from spur to end within budget hops.
// Masks are restored before returning.
func (d *deviator) spurPath(spur int, root []int, budget int) ([]int, error) {
	i := len(root) - 1
	for _, v := range root[:i] {
		d.blocked[v] = true
	}
	var banned []int
	for _, q := range d.accepted {
		if len(q) > i+1 && samePrefix(q, root) && !d.excluded[q[i+1]] {
			d.excluded[q[i+1]] = true
			banned = append(banned, q[i+1])
		}
	}

	path, err := bfs.ShortestPath(d.graph, spur, d.end,
		bfs.WithBlocked(d.blocked),
		bfs.WithFilterNeighbor(func(curr, nbr int) bool {
			return curr != spur || !d.excluded[nbr]
		}),
		bfs.WithMaxDepth(budget),
	)

	for _, v := range root[:i] {
		d.blocked[v] = false
	}
	for _, v := range banned {
		d.excluded[v] = false
	}

	return path, err
}

// offer enqueues p unless it was seen before or is longer than the target.
func (d *deviator) offer(p []int) bool {
	if len(p) > d.length {
		return false
	}
	key := pathKey(p)
	if _, dup := d.seen[key]; dup {
		return false
	}
	d.seen[key] = struct{}{}
	heap.Push(&d.pending, &candidate{path: p, seq: d.seq})
	d.seq++
	d.generated++

	return true
}

func (d *deviator) result(path []int, capped bool) search.Result {
	return search.Result{
		Path:   path,
		Found:  path != nil,
		Capped: capped,
		Steps:  d.meter.Steps(),
	}
}

// samePrefix reports whether q starts with root.
func samePrefix(q, root []int) bool {
	for j, v := range root {
		if q[j] != v {
			return false
		}
	}

	return true
}

// pathKey encodes p as a compact map key.
func pathKey(p []int) string {
	buf := make([]byte, 0, len(p)*2)
	for _, v := range p {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return string(buf)
}
