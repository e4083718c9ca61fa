// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go — RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   - n ≥ 2, 0 ≤ p ≤ 1, rng required (WithSeed/WithRand).
//   - Pairs i < j are visited in lexicographic order; each becomes an edge
//     with probability p. Nodes that draw no edge do not appear in the graph.

package builder

import (
	"fmt"

	"github.com/justagist/dijkstra-graph-manipulation/core"
)

const (
	methodRandomSparse = "RandomSparse"
	minRandomNodes     = 2
)

// RandomSparse returns a Constructor for a G(n, p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomNodes, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addEdge(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
