// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_complete.go - Complete(n): K_n.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Edges emitted for i<j in lexicographic (i, j) order.
//
// Complexity: O(n) vertices + O(n²) edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Complete returns a Constructor for the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodComplete, n, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodComplete, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, MethodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
