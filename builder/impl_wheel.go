// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_wheel.go - Wheel(n): W_n = C_{n-1} plus a hub.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • The hub is local index 0; the rim is 1..n-1.
//   • Rim edges are emitted first (i → next), then spokes ascending.
//
// A wheel with an even rim needs 3 colors, with an odd rim 4; it is a handy
// budget-boundary fixture.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Wheel returns a Constructor for the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		if err := addVertices(g, cfg, MethodWheel, n); err != nil {
			return err
		}

		// Rim: local 1..n-1 form a cycle; the hub is local 0.
		rim := n - 1
		for i := 0; i < rim; i++ {
			u, v := 1+i, 1+(i+1)%rim
			if err := addEdge(g, cfg, MethodWheel, u, v); err != nil {
				return err
			}
		}
		// Spokes: hub to every rim vertex.
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, MethodWheel, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
