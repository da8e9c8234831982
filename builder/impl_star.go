// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_star.go - Star(n): hub plus n-1 leaves.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The hub is local index 0; leaves are 1..n-1, emitted ascending.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Star returns a Constructor for the star S_{n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodStar, n); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := addEdge(g, cfg, MethodStar, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
