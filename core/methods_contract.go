// SPDX-License-Identifier: MIT
//
// File: methods_contract.go
// Role: Node contraction (degree-2 bypass).
// Policy:
//   - All preconditions are checked before the first write; a failed
//     contraction leaves the graph untouched.

package core

import (
	"fmt"
	"math"
	"slices"

	"go.uber.org/zap"
)

// ContractNodeWithTwoEdges removes a node X that has exactly two edges,
// X–A with distance a and X–B with distance b, and splices a new edge A–B
// with distance a+b. Shortest-path distances between the remaining nodes
// are preserved. Pre-existing A–B edges are left alone, so the result may
// hold parallel A–B edges.
//
// Exactly one back-edge {X, a} is removed from A and one {X, b} from B,
// matched by value. When A == B both back-edges are removed from A and the
// spliced edge is the self-loop A–A with distance a+b.
//
// Errors:
//   - ErrNodeNotFound if node is absent.
//   - ErrInvalidDegree if node does not have exactly two edges.
//   - ErrSelfLoop if either edge of node leads back to node.
//   - ErrWeightOverflow if a+b reaches math.MaxInt64.
//
// Complexity: O(deg(A) + deg(B)).
func (g *Graph) ContractNodeWithTwoEdges(node int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	edges, ok := g.adjacency[node]
	if !ok {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, node)
	}
	if len(edges) != 2 {
		return fmt.Errorf("%w: node %d has %d", ErrInvalidDegree, node, len(edges))
	}
	first, second := edges[0], edges[1]
	if first.To == node || second.To == node {
		return fmt.Errorf("%w: node %d", ErrSelfLoop, node)
	}
	if first.Weight >= math.MaxInt64-second.Weight {
		return fmt.Errorf("%w: %d + %d", ErrWeightOverflow, first.Weight, second.Weight)
	}

	// Locate both back-edges before touching anything.
	i := indexOfEdge(g.adjacency[first.To], Edge{To: node, Weight: first.Weight}, -1)
	skip := -1
	if second.To == first.To {
		skip = i
	}
	j := indexOfEdge(g.adjacency[second.To], Edge{To: node, Weight: second.Weight}, skip)
	if i < 0 || j < 0 {
		return fmt.Errorf("core: adjacency out of sync around node %d", node)
	}

	delete(g.adjacency, node)
	if first.To == second.To {
		hi, lo := max(i, j), min(i, j)
		g.adjacency[first.To] = slices.Delete(g.adjacency[first.To], hi, hi+1)
		g.adjacency[first.To] = slices.Delete(g.adjacency[first.To], lo, lo+1)
	} else {
		g.adjacency[first.To] = slices.Delete(g.adjacency[first.To], i, i+1)
		g.adjacency[second.To] = slices.Delete(g.adjacency[second.To], j, j+1)
	}

	spliced := first.Weight + second.Weight
	g.addEdgeLocked(first.To, second.To, spliced)

	g.log.Debug("node contracted",
		zap.Int("node", node),
		zap.Int("neighbor_a", first.To),
		zap.Int("neighbor_b", second.To),
		zap.Int64("distance", spliced),
	)

	return nil
}

// indexOfEdge returns the index of the first edge in edges equal to want,
// ignoring index skip, or -1.
func indexOfEdge(edges []Edge, want Edge, skip int) int {
	for i, e := range edges {
		if i != skip && e.Equal(want) {
			return i
		}
	}

	return -1
}
