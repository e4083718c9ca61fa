package core_test

import (
	"fmt"

	"github.com/justagist/dijkstra-graph-manipulation/core"
)

// ExampleFromConnections builds the graph from {node1, node2, distance}
// records; each undirected edge is listed once.
func ExampleFromConnections() {
	g, err := core.FromConnections([][]int64{
		{0, 1, 3},
		{1, 2, 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Both directions are stored.
	for _, c := range g.Connections() {
		fmt.Println(c.From, c.To, c.Weight)
	}
	// Output:
	// 0 1 3
	// 1 0 3
	// 1 2 4
	// 2 1 4
}

// ExampleGraph_ContractNodeWithTwoEdges bypasses node 1 of a path.
//
//	0──3──1──4──2    ⇒    0────7────2
func ExampleGraph_ContractNodeWithTwoEdges() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 3)
	_ = g.AddEdge(1, 2, 4)

	if err := g.ContractNodeWithTwoEdges(1); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Nodes(), g.HasNode(1))
	nbs, _ := g.Neighbors(0)
	fmt.Println(nbs)
	// Output:
	// [0 2] false
	// [{2 7}]
}
