// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// impl_random_regular.go - RandomRegular(n, d) via stub matching.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • Each attempt shuffles the stub list and validates the pairing (no
//     loops, no duplicate pairs) before touching g. After
//     maxStubMatchingAttempts invalid pairings → ErrConstructFailed.
//
// Complexity: O(n·d) per attempt; attempts are constant-bounded.
//
// Determinism: fixed attempt limit and trial order give identical outcomes
// for the same seed.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// RandomRegular returns a Constructor for a random d-regular simple graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", MethodRandomRegular, n, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomRegular, ErrNeedRandSource)
		}

		// 1) Build the stub list: vertex i appears d times.
		stubCount := n * d
		stubs := make([]int, 0, stubCount)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		// 2) Shuffle and pair consecutive stubs until the pairing is simple.
		//    g stays untouched until a valid pairing is found.
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(stubCount, func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !validPairing(stubs) {
				continue
			}

			// 3) Commit: vertices, then one edge per stub pair.
			if err := addVertices(g, cfg, MethodRandomRegular, n); err != nil {
				return err
			}
			for i := 0; i < stubCount; i += 2 {
				if err := addEdge(g, cfg, MethodRandomRegular, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}
			return nil
		}

		// Every attempt produced a loop or a duplicate pair.
		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// validPairing reports whether consecutive stub pairs form a simple graph.
func validPairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
