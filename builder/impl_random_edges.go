// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_random_edges.go - RandomEdges(n, m): n vertices and m random draws.
//
// Contract:
//   • n ≥ 2 when m > 0, n ≥ 1 otherwise (else ErrTooFewVertices); m ≥ 0.
//   • cfg.rng must be non-nil when m > 0 (else ErrNeedRandSource).
//   • Each draw picks u uniformly, then redraws v until v ≠ u. Draws that
//     hit an existing edge collapse into it, so the graph has at most m
//     edges.
//
// Complexity: O(n + m) expected.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// RandomEdges returns a Constructor adding n vertices and m random edges.
func RandomEdges(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate counts; an edge needs two distinct endpoints.
		if m < 0 {
			return fmt.Errorf("%s: m=%d < 0: %w", MethodRandomEdges, m, ErrTooFewVertices)
		}
		minN := 1
		if m > 0 {
			minN = 2
		}
		if n < minN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomEdges, n, minN, ErrTooFewVertices)
		}
		// RNG is only consulted when there is something to draw.
		if m > 0 && cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomEdges, ErrNeedRandSource)
		}
		if err := addVertices(g, cfg, MethodRandomEdges, n); err != nil {
			return err
		}

		// 2) Draw m endpoint pairs. A repeated pair collapses into the existing
		//    edge, so the final edge count may be below m.
		for k := 0; k < m; k++ {
			u := cfg.rng.Intn(n)
			v := cfg.rng.Intn(n)
			for v == u { // redraw until the edge is not a loop
				v = cfg.rng.Intn(n)
			}
			if err := addEdge(g, cfg, MethodRandomEdges, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
