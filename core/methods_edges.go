// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge, Connections, Neighbors, Degree, EdgeCount.
// Determinism:
//   - Connections() enumerates sources in ascending id order, then insertion order.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"
)

// AddEdge inserts the undirected edge node1–node2 with the given distance.
// Both halves {node2, distance} in adjacency[node1] and {node1, distance}
// in adjacency[node2] are appended under one lock; on error neither is.
// Missing node entries are created. Parallel edges and self-loops are kept.
//
// Errors:
//   - ErrNegativeDistance if distance < 0.
//   - ErrWeightOverflow if distance == math.MaxInt64.
//   - ErrInvalidNode if either id is negative.
//   - ErrNonSequentialNode if WithSequentialIDs is set and a new id leaves a gap.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(node1, node2 int, distance int64) error {
	if distance < 0 {
		return fmt.Errorf("%w: attempted to add %d–%d with distance %d", ErrNegativeDistance, node1, node2, distance)
	}
	if distance == math.MaxInt64 {
		return fmt.Errorf("%w: attempted to add %d–%d with distance %d", ErrWeightOverflow, node1, node2, distance)
	}
	if node1 < 0 || node2 < 0 {
		return fmt.Errorf("%w: %d–%d", ErrInvalidNode, node1, node2)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.sequential {
		if err := g.checkSequentialLocked(node1, node2); err != nil {
			return err
		}
	}
	g.addEdgeLocked(node1, node2, distance)

	return nil
}

// addEdgeLocked appends both halves. Caller holds the write lock and has
// validated the arguments.
func (g *Graph) addEdgeLocked(node1, node2 int, distance int64) {
	g.adjacency[node1] = append(g.adjacency[node1], Edge{To: node2, Weight: distance})
	g.adjacency[node2] = append(g.adjacency[node2], Edge{To: node1, Weight: distance})
	if node1 >= g.nextID {
		g.nextID = node1 + 1
	}
	if node2 >= g.nextID {
		g.nextID = node2 + 1
	}

	g.log.Debug("edge added",
		zap.Int("node1", node1),
		zap.Int("node2", node2),
		zap.Int64("distance", distance),
	)
}

// Connections returns every stored directed half as a Connection, i.e. two
// records per undirected edge. Sources are visited in ascending id order and
// each source's edges in insertion order.
// Complexity: O(V log V + E).
func (g *Graph) Connections() []Connection {
	g.mu.RLock()
	defer g.mu.RUnlock()

	total := 0
	for _, edges := range g.adjacency {
		total += len(edges)
	}
	out := make([]Connection, 0, total)
	for _, from := range g.sortedNodesLocked() {
		for _, e := range g.adjacency[from] {
			out = append(out, Connection{From: from, To: e.To, Weight: e.Weight})
		}
	}

	return out
}

// Neighbors returns a copy of the edges stored for id, in insertion order.
// Returns ErrNodeNotFound if id is absent.
func (g *Graph) Neighbors(id int) ([]Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	out := make([]Edge, len(edges))
	copy(out, edges)

	return out, nil
}

// Degree returns the number of edges stored for id. A self-loop counts twice.
// Returns ErrNodeNotFound if id is absent.
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return len(edges), nil
}

// EdgeCount returns the number of undirected edges (stored halves / 2).
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	halves := 0
	for _, edges := range g.adjacency {
		halves += len(edges)
	}

	return halves / 2
}

// sortedNodesLocked returns node ids ascending. Caller holds a lock.
func (g *Graph) sortedNodesLocked() []int {
	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}
