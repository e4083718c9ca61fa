// SPDX-License-Identifier: MIT
//
// Package core defines the central Graph, Edge and Connection types,
// the GraphOption configuration hooks and the sentinel errors shared by
// every package that reads a Graph.
//
// The Graph is guarded by a single sync.RWMutex: mutations (AddEdge,
// ContractNodeWithTwoEdges) take the write lock, queries and views take
// the read lock.
//
// Errors:
//
//	ErrInvalidEdgeArity  - an edge record did not hold exactly three fields.
//	ErrNegativeDistance  - an edge insertion was attempted with a negative weight.
//	ErrInvalidNode       - a node identifier is negative.
//	ErrNonSequentialNode - a node identifier skips ahead under WithSequentialIDs.
//	ErrNodeNotFound      - a referenced node is absent from the graph.
//	ErrInvalidDegree     - contraction target does not have exactly two edges.
//	ErrSelfLoop          - contraction target is attached to itself.
//	ErrWeightOverflow    - a weight reaches math.MaxInt64, which is reserved.
package core

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidEdgeArity indicates an input edge record without exactly three fields.
	ErrInvalidEdgeArity = errors.New("core: edge record must have exactly 3 fields (node1, node2, distance)")

	// ErrNegativeDistance indicates an attempt to insert an edge with weight < 0.
	ErrNegativeDistance = errors.New("core: distance must be greater than or equal to 0")

	// ErrInvalidNode indicates a negative node identifier.
	ErrInvalidNode = errors.New("core: node identifier must be non-negative")

	// ErrNonSequentialNode indicates that a new node identifier would leave a gap
	// in a graph configured with WithSequentialIDs.
	ErrNonSequentialNode = errors.New("core: node identifier is not the next sequential id")

	// ErrNodeNotFound indicates an operation referenced a node absent from the graph.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrInvalidDegree indicates contraction of a node whose edge count is not two.
	ErrInvalidDegree = errors.New("core: node must have exactly 2 edges to be contracted")

	// ErrSelfLoop indicates contraction of a node whose edges lead back to itself.
	ErrSelfLoop = errors.New("core: cannot contract a node attached to itself")

	// ErrWeightOverflow indicates an edge weight, given or spliced, that is
	// not strictly below math.MaxInt64. That value marks "no path".
	ErrWeightOverflow = errors.New("core: weight must be below math.MaxInt64")
)

// Edge is one stored half of an undirected edge: the destination node and
// the weight of the link. Edges are plain values; two edges are equal iff
// both fields match.
type Edge struct {
	// To is the destination node identifier.
	To int

	// Weight is the non-negative distance to To.
	Weight int64
}

// NewEdge returns the Edge {to, weight}. No validation happens here;
// the Graph rejects negative weights on insertion.
func NewEdge(to int, weight int64) Edge {
	return Edge{To: to, Weight: weight}
}

// Equal reports whether e and other have the same destination and weight.
func (e Edge) Equal(other Edge) bool {
	return e.To == other.To && e.Weight == other.Weight
}

// edgeHashPrime is the multiplier used to fold fields into Edge.Hash.
const edgeHashPrime = 31

// Hash returns a stable hash of the edge value, folding Weight and then To
// with the prime 31 over a seed of 1. Equal edges always hash equally.
func (e Edge) Hash() uint64 {
	h := uint64(1)
	h = edgeHashPrime*h + uint64(e.Weight)
	h = edgeHashPrime*h + uint64(e.To)

	return h
}

// Connection is an exported record of one stored directed half of an edge,
// in the same (node1, node2, distance) shape accepted by FromConnections.
type Connection struct {
	From   int
	To     int
	Weight int64
}

// GraphOption configures a Graph at construction time.
type GraphOption func(g *Graph)

// WithLogger attaches a zap logger that receives Debug events for
// insertions and contractions. A nil logger keeps the no-op default.
func WithLogger(logger *zap.Logger) GraphOption {
	return func(g *Graph) {
		if logger != nil {
			g.log = logger
		}
	}
}

// WithSequentialIDs enforces dense node identifiers: a node that does not
// exist yet must have the identifier one past the largest id the graph has
// ever held, otherwise AddEdge fails with ErrNonSequentialNode.
func WithSequentialIDs() GraphOption {
	return func(g *Graph) { g.sequential = true }
}

// Graph is a weighted, undirected multigraph over integer node identifiers.
//
// adjacency maps a node to its stored edges in insertion order. For every
// edge {v, w} in adjacency[u] there is an edge {u, w} in adjacency[v];
// both halves are always inserted and removed together.
type Graph struct {
	mu sync.RWMutex // guards adjacency

	sequential bool        // reject gaps in node identifiers
	log        *zap.Logger // never nil

	adjacency map[int][]Edge
	nextID    int // one past the largest id ever inserted
}
