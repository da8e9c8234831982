// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for lvcolor/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep *testing.T out of goroutines (concurrency tests collect errors instead).

package core_test

import (
	"testing"

	"github.com/katalvlaran/lvcolor/core"
	"github.com/stretchr/testify/require"
)

// Common concurrency sizes used across core tests (avoid magic numbers in test bodies).
const (
	NConcurrentWriters = 64
	NReaders           = 32
	NVertices          = 200
)

// newTriangle returns K3 over {0,1,2}.
func newTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertices(0, 1, 2))
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 2))

	return g
}

// newPath returns the path 0-1-...-(n-1).
func newPath(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(i-1, i))
	}

	return g
}
