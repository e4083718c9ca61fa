// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Deep copy of a graph.

package core

// Clone returns an independent deep copy of g with the same configuration
// (logger and id policy). Edge order per node is preserved.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		sequential: g.sequential,
		log:        g.log,
		adjacency:  make(map[int][]Edge, len(g.adjacency)),
		nextID:     g.nextID,
	}
	for id, edges := range g.adjacency {
		cp := make([]Edge, len(edges))
		copy(cp, edges)
		clone.adjacency[id] = cp
	}

	return clone
}
