// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdős–Rényi G(n, p).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Unordered pairs {i,j}, i<j, are visited in lexicographic order and
//     each is kept with probability p; exactly one draw per pair.
//
// Complexity: O(n²) draws.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// RandomSparse returns a Constructor for G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate n, p and the RNG before touching g.
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomSparse, n, ErrTooFewVertices)
		}
		if p < MinProbability || p > MaxProbability {
			return fmt.Errorf("%s: p=%.4f not in [%.1f,%.1f]: %w",
				MethodRandomSparse, p, MinProbability, MaxProbability, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomSparse, ErrNeedRandSource)
		}
		// 2) Vertices first, so isolated ones exist even when no edge is drawn.
		if err := addVertices(g, cfg, MethodRandomSparse, n); err != nil {
			return err
		}

		// 3) One Bernoulli trial per unordered pair, in (i, j) lexicographic
		//    order; the trial order fixes the outcome for a given seed.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p { // trial failed: no edge
					continue
				}
				if err := addEdge(g, cfg, MethodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
