// SPDX-License-Identifier: MIT
package builder

import "errors"

// Sentinel errors for builder constructors.
var (
	// ErrTooFewVertices indicates a size parameter (n, rows, cols, degree)
	// below the constructor's minimum or otherwise out of domain.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor without an RNG
	// (WithSeed or WithRand must be set).
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates the builder could not realize the topology
	// (exhausted retries, nil constructor).
	ErrConstructFailed = errors.New("builder: construction failed")
)
