// SPDX-License-Identifier: MIT
// Package dijkstra_test contains fixtures and a reference oracle shared by
// the shortest-path tests.

package dijkstra_test

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/justagist/dijkstra-graph-manipulation/core"
	"github.com/justagist/dijkstra-graph-manipulation/dijkstra"
)

// sixNodeEdges is the six-node example network.
var sixNodeEdges = [][]int64{
	{0, 1, 4},
	{0, 3, 2},
	{1, 2, 5},
	{1, 3, 1},
	{2, 3, 8},
	{2, 4, 1},
	{2, 5, 6},
	{3, 4, 9},
	{4, 5, 3},
}

// query is one expected answer in a fixture.
type query struct {
	Source      int   `yaml:"source"`
	Target      int   `yaml:"target"`
	Distance    int64 `yaml:"distance"`
	Unreachable bool  `yaml:"unreachable"`
}

// scenario is one graph with its expected answers.
type scenario struct {
	Name    string    `yaml:"name"`
	Edges   [][]int64 `yaml:"edges"`
	Queries []query   `yaml:"queries"`
}

// loadScenarios reads testdata/<name>.
func loadScenarios(t testing.TB, name string) []scenario {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	var doc struct {
		Scenarios []scenario `yaml:"scenarios"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Scenarios)

	return doc.Scenarios
}

// mustGraph builds a graph from records or fails the test.
func mustGraph(t testing.TB, records [][]int64) *core.Graph {
	t.Helper()
	g, err := core.FromConnections(records)
	require.NoError(t, err)

	return g
}

// randomRecords returns m random edges over nodes [0, n) with weights in
// [0, maxW]. Every node gets at least the chance of an edge; isolated nodes
// simply do not appear.
func randomRecords(rng *rand.Rand, n, m int, maxW int64) [][]int64 {
	out := make([][]int64, 0, m)
	for i := 0; i < m; i++ {
		u := rng.Intn(n)
		v := rng.Intn(n)
		out = append(out, []int64{int64(u), int64(v), rng.Int63n(maxW + 1)})
	}

	return out
}

// floydWarshall is an independent all-pairs oracle over the graph's nodes.
func floydWarshall(t testing.TB, g *core.Graph) map[int]map[int]int64 {
	t.Helper()
	nodes := g.Nodes()
	d := make(map[int]map[int]int64, len(nodes))
	for _, u := range nodes {
		d[u] = make(map[int]int64, len(nodes))
		for _, v := range nodes {
			d[u][v] = dijkstra.Infinity
		}
		d[u][u] = 0
	}
	for _, c := range g.Connections() {
		if c.Weight < d[c.From][c.To] {
			d[c.From][c.To] = c.Weight
		}
	}
	for _, k := range nodes {
		for _, i := range nodes {
			if d[i][k] == dijkstra.Infinity {
				continue
			}
			for _, j := range nodes {
				if d[k][j] == dijkstra.Infinity {
					continue
				}
				if s := d[i][k] + d[k][j]; s < d[i][j] {
					d[i][j] = s
				}
			}
		}
	}

	return d
}
