// SPDX-License-Identifier: MIT
// Package coloring implements the greedy coloring rule, the shared-memory
// coordinator with its lock-ordering discipline, and the post-hoc validator.
package coloring

import "errors"

// Sentinel errors for coloring operations.
var (
	// ErrColorBudgetExhausted indicates every color in 1..budget is already
	// used by a neighbor. It is recovered locally: the vertex stays uncolored.
	ErrColorBudgetExhausted = errors.New("coloring: color budget exhausted")

	// ErrInvalidBudget indicates a color budget below 1.
	ErrInvalidBudget = errors.New("coloring: budget must be >= 1")

	// ErrInvalidWorkerCount indicates a worker count below 1.
	ErrInvalidWorkerCount = errors.New("coloring: worker count must be >= 1")

	// ErrUncolored indicates a vertex with no color after a run.
	ErrUncolored = errors.New("coloring: vertex uncolored")

	// ErrConflict indicates an edge whose endpoints share a color.
	ErrConflict = errors.New("coloring: adjacent vertices share a color")
)
