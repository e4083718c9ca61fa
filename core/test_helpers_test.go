// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/justagist/dijkstra-graph-manipulation/core"
)

// SixNodeEdges is the six-node example network used across packages.
var SixNodeEdges = [][]int64{
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

// Common concurrency sizes (avoid magic numbers in test bodies).
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// mustGraph builds a graph from records or fails the test.
func mustGraph(t testing.TB, records [][]int64, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.FromConnections(records, opts...)
	require.NoError(t, err)
	require.NotNil(t, g)

	return g
}

// countConn returns how many times c appears in conns.
func countConn(conns []core.Connection, c core.Connection) int {
	n := 0
	for _, x := range conns {
		if x == c {
			n++
		}
	}

	return n
}

// requireSymmetric asserts that every stored half has its mirror, with
// matching multiplicity.
func requireSymmetric(t testing.TB, g *core.Graph) {
	t.Helper()
	conns := g.Connections()
	for _, c := range conns {
		mirror := core.Connection{From: c.To, To: c.From, Weight: c.Weight}
		if c.From == c.To {
			// Both halves of a self-loop live in the same list.
			require.Zero(t, countConn(conns, c)%2, "self-loop %v stored an odd number of times", c)
			continue
		}
		require.Equal(t, countConn(conns, c), countConn(conns, mirror), "mirror of %v", c)
	}
}
