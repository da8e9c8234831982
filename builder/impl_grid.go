// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighborhood lattice.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r, c) has local index r*cols + c (row-major).
//   • For each cell, the Right edge is emitted before the Bottom edge.
//
// Row-major IDs make every contiguous partition a horizontal band, so only
// the first and last row of each band are boundary vertices.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Grid returns a Constructor for a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	// The returned closure captures (rows, cols); BuildGraph supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate dimensions before any vertex is added.
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		// 2) Add all cells in row-major order.
		if err := addVertices(g, cfg, MethodGrid, rows*cols); err != nil {
			return err
		}

		// 3) For each cell emit Right, then Bottom, when the neighbor exists.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := r*cols + c // local index of (r, c)
				if c+1 < cols { // right neighbor (r, c+1)
					if err := addEdge(g, cfg, MethodGrid, u, u+1); err != nil {
						return err
					}
				}
				if r+1 < rows { // bottom neighbor (r+1, c)
					if err := addEdge(g, cfg, MethodGrid, u, u+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
