// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_grid.go — Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1, cols ≥ 1, rows*cols ≥ 2.
//   - Node (r, c) has id r*cols + c (row-major).
//   - Edges in row-major order: for each cell, right neighbour then down neighbour.

package builder

import (
	"fmt"

	"github.com/justagist/dijkstra-graph-manipulation/core"
)

const (
	methodGrid   = "Grid"
	minGridNodes = 2
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood grid.
// With unit weights the distance between two cells is their Manhattan distance.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols < minGridNodes {
			return fmt.Errorf("%s: rows=%d cols=%d: %w", methodGrid, rows, cols, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c
				if c+1 < cols {
					if err := addEdge(methodGrid, g, cfg, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(methodGrid, g, cfg, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
