package yen

// candidate is one pending path in the deviation queue.
type candidate struct {
	path []int
	seq  int // insertion order; breaks length ties deterministically
}

// candidateQueue is a min-heap of *candidate ordered by vertex count, then seq.
type candidateQueue []*candidate

// Len returns the number of pending candidates.
func (q candidateQueue) Len() int { return len(q) }

// Less orders shorter paths first; equal lengths pop in insertion order.
func (q candidateQueue) Less(i, j int) bool {
	if len(q[i].path) != len(q[j].path) {
		return len(q[i].path) < len(q[j].path)
	}

	return q[i].seq < q[j].seq
}

// Swap swaps two elements in the heap.
func (q candidateQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

// Push is called by heap.Push; x must be *candidate.
func (q *candidateQueue) Push(x any) { *q = append(*q, x.(*candidate)) }

// Pop is called by heap.Pop.
func (q *candidateQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]

	return item
}
