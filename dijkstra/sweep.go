// SPDX-License-Identifier: MIT
//
// File: sweep.go
// Role: Naive relaxation sweep kept as a comparison baseline.

package dijkstra

import "github.com/justagist/dijkstra-graph-manipulation/core"

// sweep visits each node exactly once in ascending id order and relaxes all
// of its edges. Nodes still at Infinity when visited have nothing to offer
// and are skipped. This is not Dijkstra: a node visited before its distance
// is final propagates a stale value.
func sweep(v core.View, source int) trace {
	nodes := v.Nodes()
	dist := make(map[int]int64, len(nodes))
	prev := make(map[int]int, len(nodes))
	for _, id := range nodes {
		dist[id] = Infinity
	}
	dist[source] = 0

	for _, u := range nodes {
		du := dist[u]
		for _, e := range v.Edges(u) {
			nd, ok := relaxed(du, e.Weight)
			if !ok || nd >= dist[e.To] {
				continue
			}
			dist[e.To] = nd
			prev[e.To] = u
		}
	}

	return trace{dist: dist, prev: prev, settled: len(nodes)}
}
