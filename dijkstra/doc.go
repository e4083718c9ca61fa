// Package dijkstra computes single-pair shortest-path distances on a
// weighted, undirected core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Distance / ShortestPath answer "how far is target from source?".
//   - Two interchangeable strategies are provided:
//     StrategyPriorityQueue (default) is Dijkstra's algorithm over an indexed
//     min-heap with true decrease-key; StrategyRelaxationSweep is a naive
//     baseline that visits nodes once in id order.
//   - Queries stop as soon as the target is finalized.
//
// Priority queue with decrease-key:
//
//   - The heap is seeded with every node: the source keyed 0, the rest keyed
//     Infinity.
//   - Pop yields the closest non-finalized node u; u is finalized.
//   - For each edge u→v with v not finalized, if dist[u]+w < dist[v], dist[v]
//     is lowered and v's heap entry is moved up in place (heap.Fix on the
//     index the entry carries). No stale duplicates are ever pushed.
//   - Popping a node keyed Infinity means every remaining node is unreachable.
//
// Relaxation sweep:
//
//   - dist[source] = 0; every node is visited once in ascending id order and
//     all its edges are relaxed.
//   - This is NOT a general shortest-path algorithm. It is exact only when id
//     order is compatible with settling order from the source; on the
//     six-node example graph the query 2→3 yields 8 where the true distance
//     is 6. Keep it for comparison, never for answers.
//
// Performance and complexity:
//
//   - Priority queue: O((V + E) log V) time, O(V) space.
//   - Sweep: O(V log V + E) time, O(V) space.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        nil *core.Graph.
//   - core.ErrNodeNotFound: source or target absent (wrapped with its role).
//   - ErrUnreachable:     no path; the distance returned alongside is Infinity,
//     so "no path" can never be mistaken for distance 0.
//   - ErrUnknownStrategy: a strategy outside the declared constants.
//
// API reference:
//
//	func Distance(g *core.Graph, source, target int, opts ...Option) (int64, error)
//	func ShortestPath(g *core.Graph, source, target int, opts ...Option) (Result, error)
//	func PriorityQueue(g *core.Graph, source, target int) (int64, error)
//	func RelaxationSweep(g *core.Graph, source, target int) (int64, error)
//
//	  - WithStrategy(Strategy): choose the algorithm.
//	  - WithReturnPath():       fill Result.Path.
//	  - WithLogger(*zap.Logger): one Debug entry per completed query.
//
// Thread safety:
//
//   - A query holds the graph's read lock (core.Graph.Read) from start to
//     finish. Concurrent queries proceed in parallel; AddEdge and
//     ContractNodeWithTwoEdges wait until running queries return.
package dijkstra
