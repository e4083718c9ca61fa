// Package graphmanip is a small in-memory toolkit for weighted undirected
// graphs: build them from connection records, fold away pass-through nodes,
// and ask for shortest distances.
//
// The work is split into three subpackages:
//
//	core/     — Graph, Edge and Connection; AddEdge, GetConnections-style
//	            listing (Connections) and ContractNodeWithTwoEdges
//	dijkstra/ — single-pair distances: an indexed min-heap with decrease-key
//	            and a naive id-order relaxation sweep kept as a baseline
//	builder/  — deterministic topology generators (path, cycle, grid, star,
//	            complete, random sparse) used by tests and benchmarks
//
// Quick ASCII example:
//
//	  0 ──3── 1 ──4── 2        ContractNodeWithTwoEdges(1)        0 ──7── 2
//
// Node 1 has exactly two edges, so it is removed and its neighbours are
// joined by one edge whose distance is the sum. Every shortest distance
// between the remaining nodes is unchanged.
//
// Logging goes through go.uber.org/zap; both core.Graph and dijkstra queries
// accept a *zap.Logger option and default to a no-op logger.
//
//	go get github.com/justagist/dijkstra-graph-manipulation
package graphmanip
