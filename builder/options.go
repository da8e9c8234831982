// SPDX-License-Identifier: MIT
// Package: lvcolor/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithIDOffset shifts every generated vertex ID by base, so several
// constructors can be composed in one BuildGraph without colliding.
// Panics on negative base.
func WithIDOffset(base int) BuilderOption {
	if base < 0 {
		panic("builder: WithIDOffset(base<0)")
	}
	return func(c *builderConfig) {
		c.base = base
	}
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
