// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_path.go - Path(n): P_n.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Edges emitted i → i+1 for i = 0..n-2.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Path returns a Constructor for the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodPath, n); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge(g, cfg, MethodPath, i, i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
