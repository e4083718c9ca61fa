// Package core provides a thread-safe, in-memory, weighted undirected graph
// over integer node identifiers, with node contraction.
//
// The Graph G = (V,E) is stored as an adjacency map:
//
//	adjacency[node] = []Edge{{To, Weight}, ...}   // insertion order
//
// Every undirected edge u–v with distance w is stored as two halves,
// {v, w} in adjacency[u] and {u, w} in adjacency[v]. Nodes are implicit:
// the node set is exactly the key set of the map.
//
// Behaviors:
//
//   - Parallel edges are kept independently (multigraph).
//   - Self-loops are stored as two halves in the same list.
//   - Distances must be non-negative (ErrNegativeDistance).
//   - Node ids are sparse by default; WithSequentialIDs rejects gaps.
//   - Deterministic iteration: Nodes(), Connections(), ContractibleNodes()
//     visit nodes in ascending id order.
//
// Core Methods:
//
//	// Construction
//	NewGraph(opts ...GraphOption) *Graph
//	FromConnections(records [][]int64, opts ...GraphOption) (*Graph, error)
//
//	// Edges
//	AddEdge(node1, node2 int, distance int64) error   // O(1) amortized
//	Connections() []Connection                        // O(V log V + E)
//	Neighbors(id int) ([]Edge, error)                 // copy
//	Degree(id int) (int, error)
//	EdgeCount() int
//
//	// Nodes
//	HasNode(id int) bool
//	Nodes() []int
//	NodeCount() int
//	ContractibleNodes() []int
//
//	// Topology reduction
//	ContractNodeWithTwoEdges(node int) error          // O(deg(A)+deg(B))
//
//	// Reading & copying
//	Read(fn func(View) error) error                   // read-locked view
//	Clone() *Graph
//
// Contraction:
//
// A node X with edges X–A (a) and X–B (b) is removed along with both
// back-edges, and A–B (a+b) is added. Any shortest path that went A→X→B
// keeps its length, so distances between the surviving nodes are unchanged.
//
//	A──a──X──b──B    ⇒    A────a+b────B
//
// Concurrency:
//
// A single sync.RWMutex guards the adjacency map. Readers (queries, Read)
// share the lock; AddEdge and ContractNodeWithTwoEdges take it exclusively,
// so a writer never interleaves with a reader mid-query.
//
// Logging:
//
// WithLogger attaches a *zap.Logger; insertions and contractions are logged
// at Debug level. The default logger is zap.NewNop().
package core
