// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - base = 0   (vertex IDs are 0..n-1 per constructor)
//   - rng  = nil (no randomness unless seeded)
//
// Options are applied in order; later ones override earlier ones.
package builder

import "math/rand"

// builderConfig is passed by value to constructors.
type builderConfig struct {
	// base is added to every constructor-local index to form the vertex ID.
	base int
	// rng drives stochastic constructors; nil means none.
	rng *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a vertex ID.
func (c builderConfig) id(i int) int { return c.base + i }
