// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Node queries and the sequential-id policy.
// Determinism:
//   - Nodes() and ContractibleNodes() return ids sorted ascending.

package core

import "fmt"

// HasNode reports whether id is a key of the adjacency map.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[id]

	return ok
}

// Nodes returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedNodesLocked()
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency)
}

// ContractibleNodes returns, in ascending order, the ids of nodes that
// ContractNodeWithTwoEdges would accept right now: exactly two stored
// edges, neither of them pointing back to the node itself.
func (g *Graph) ContractibleNodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []int
	for _, id := range g.sortedNodesLocked() {
		edges := g.adjacency[id]
		if len(edges) == 2 && edges[0].To != id && edges[1].To != id {
			out = append(out, id)
		}
	}

	return out
}

// checkSequentialLocked verifies that the ids of an edge about to be added
// introduce new nodes only at g.nextID, one past the largest id ever seen.
// The lower id is introduced first. Caller holds the write lock.
func (g *Graph) checkSequentialLocked(node1, node2 int) error {
	lo, hi := node1, node2
	if lo > hi {
		lo, hi = hi, lo
	}

	next := g.nextID
	for i, id := range [2]int{lo, hi} {
		if i == 1 && id == lo {
			break
		}
		if _, ok := g.adjacency[id]; ok {
			continue
		}
		if id != next {
			return fmt.Errorf("%w: got %d, next is %d", ErrNonSequentialNode, id, next)
		}
		next++
	}

	return nil
}
