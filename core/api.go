// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructors and configuration getters.
// Policy:
//   - Construction never leaves a half-built graph visible to the caller.

package core

import (
	"fmt"
	"math"

	"go.uber.org/zap"
)

// connectionArity is the number of fields in an edge record.
const connectionArity = 3

// NewGraph creates an empty Graph. By default node identifiers may be
// sparse and logging is disabled.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		log:       zap.NewNop(),
		adjacency: make(map[int][]Edge),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// FromConnections builds a Graph from edge records of the form
// {node1, node2, distance}. Each record results in exactly one AddEdge call,
// so the reverse record must NOT be supplied as well.
//
// Errors:
//   - ErrInvalidEdgeArity if a record does not have exactly three fields.
//   - ErrInvalidNode if a node field is negative or does not fit in int.
//   - any error returned by AddEdge (ErrNegativeDistance, ErrNonSequentialNode).
//
// On error the returned graph is nil; a partially built graph is never exposed.
// Complexity: O(len(records)).
func FromConnections(records [][]int64, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)

	for i, rec := range records {
		if len(rec) != connectionArity {
			return nil, fmt.Errorf("%w: record %d has %d fields: %v", ErrInvalidEdgeArity, i, len(rec), rec)
		}
		from, err := nodeFromField(rec[0])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		to, err := nodeFromField(rec[1])
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		if err = g.AddEdge(from, to, rec[2]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	return g, nil
}

// nodeFromField converts an int64 record field into a node identifier.
func nodeFromField(v int64) (int, error) {
	if v < 0 || v > math.MaxInt {
		return 0, fmt.Errorf("%w: %d", ErrInvalidNode, v)
	}

	return int(v), nil
}

// SequentialIDs reports whether the graph was built with WithSequentialIDs.
func (g *Graph) SequentialIDs() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sequential
}
