// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_cycle.go - Cycle(n): C_n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Edges emitted i → (i+1)%n for i = 0..n-1.
//
// Complexity: O(n).
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Cycle returns a Constructor for the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodCycle, n); err != nil {
			return err
		}
		// i → i+1, with the last edge closing back to 0.
		for i := 0; i < n; i++ {
			if err := addEdge(g, cfg, MethodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
