// SPDX-License-Identifier: MIT
//
// File: pq.go
// Role: Dijkstra over an indexed binary min-heap with true decrease-key.
// Policy:
//   - The heap starts with every node, keyed by its current distance.
//   - Each item remembers its heap index, so an improved distance is pushed
//     up with heap.Fix in O(log V) instead of inserting a duplicate.

package dijkstra

import (
	"container/heap"

	"github.com/justagist/dijkstra-graph-manipulation/core"
)

// pqRunner holds the mutable state for a single priority-queue query.
type pqRunner struct {
	view      core.View        // read-only adjacency
	source    int              // start node
	target    int              // stop once finalized
	dist      map[int]int64    // node → best-known distance
	prev      map[int]int      // node → predecessor
	items     map[int]*pqItem  // node → its heap entry
	finalized map[int]struct{} // nodes whose distance is final
	pq        indexedPQ
}

func newPQRunner(v core.View, source, target int) *pqRunner {
	n := v.NodeCount()

	return &pqRunner{
		view:      v,
		source:    source,
		target:    target,
		dist:      make(map[int]int64, n),
		prev:      make(map[int]int, n),
		items:     make(map[int]*pqItem, n),
		finalized: make(map[int]struct{}, n),
		pq:        make(indexedPQ, 0, n),
	}
}

// init keys every node at Infinity except the source at 0.
func (r *pqRunner) init() {
	for _, id := range r.view.Nodes() {
		d := Infinity
		if id == r.source {
			d = 0
		}
		r.dist[id] = d
		it := &pqItem{node: id, dist: d, index: len(r.pq)}
		r.items[id] = it
		r.pq = append(r.pq, it)
	}
	heap.Init(&r.pq)
}

// run extracts the closest non-finalized node until target is finalized,
// the queue is empty or only unreachable nodes remain.
func (r *pqRunner) run() trace {
	r.init()

	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*pqItem)
		if it.dist == Infinity {
			break
		}
		u := it.node
		r.finalized[u] = struct{}{}
		if u == r.target {
			break
		}
		r.relax(u, it.dist)
	}

	return trace{dist: r.dist, prev: r.prev, settled: len(r.finalized)}
}

// relax improves the neighbours of the just-finalized node u.
func (r *pqRunner) relax(u int, du int64) {
	for _, e := range r.view.Edges(u) {
		if _, done := r.finalized[e.To]; done {
			continue
		}
		nd, ok := relaxed(du, e.Weight)
		if !ok || nd >= r.dist[e.To] {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		if it := r.items[e.To]; it != nil {
			r.pq.decreaseKey(it, nd)
		}
	}
}

// pqItem is a node with its current key and its position in the heap.
type pqItem struct {
	node  int
	dist  int64
	index int // -1 once popped
}

// indexedPQ is a min-heap of *pqItem ordered by dist, then node id so that
// ties are broken deterministically.
type indexedPQ []*pqItem

func (pq indexedPQ) Len() int { return len(pq) }

func (pq indexedPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].node < pq[j].node
}

func (pq indexedPQ) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

// Push is called by heap.Push; x must be *pqItem.
func (pq *indexedPQ) Push(x interface{}) {
	it := x.(*pqItem)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

// Pop is called by heap.Pop.
func (pq *indexedPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]

	return it
}

// decreaseKey lowers the key of it to d and restores the heap order.
// it must still be in the heap.
func (pq *indexedPQ) decreaseKey(it *pqItem, d int64) {
	if it.index < 0 || d >= it.dist {
		return
	}
	it.dist = d
	heap.Fix(pq, it.index)
}
