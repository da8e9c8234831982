// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2): K_{n1,n2}.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side is local 0..n1-1, right side n1..n1+n2-1.
//   • Edges emitted left-major: for each left u, every right v ascending.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ 1): %w", MethodCompleteBipartite, n1, n2, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodCompleteBipartite, n1+n2); err != nil {
			return err
		}
		for u := 0; u < n1; u++ {
			for v := n1; v < n1+n2; v++ {
				if err := addEdge(g, cfg, MethodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
