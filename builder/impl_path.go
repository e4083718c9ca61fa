// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go — Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2, edges (i-1)–i for i=1..n-1 in increasing order.
//   - Cycle: n ≥ 3, the path edges followed by the closing edge (n-1)–0.
//   - Every interior node has exactly two edges, so both topologies are
//     fully contractible down to their end points.

package builder

import (
	"fmt"

	"github.com/justagist/dijkstra-graph-manipulation/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n over ids 0..n-1.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n over ids 0..n-1.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodCycle, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return addEdge(methodCycle, g, cfg, n-1, 0)
	}
}
