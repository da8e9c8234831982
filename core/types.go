// SPDX-License-Identifier: MIT
// Package core defines the central Graph, Vertex and Edge types, the sentinel
// errors, and the NewGraph constructor.
//
// All topology state is guarded by one sync.RWMutex (mu). Color slots live in
// the vertex arena and are accessed under the read lock only; see doc.go for
// the resulting contract.
package core

import (
	"errors"
	"sync"
)

// NoColor marks a vertex whose color slot is unset. Legal colors are >= 1.
const NoColor = 0

// Sentinel errors for core graph operations.
var (
	// ErrInvalidVertexID indicates a negative vertex ID.
	ErrInvalidVertexID = errors.New("core: vertex ID must be non-negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	// For AddEdge this is a precondition violation and callers treat it as fatal.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrInvalidColor indicates a negative color value.
	ErrInvalidColor = errors.New("core: color must be non-negative")
)

// Vertex is one arena record: identity plus its color slot.
//
// It is also the snapshot type exchanged by the distributed protocol, which is
// why it carries msgpack tags.
type Vertex struct {
	// ID is the unique, stable identifier; it is the sort and tie-break key.
	ID int `msgpack:"id"`

	// Color is the assigned color, or NoColor when unset.
	Color int `msgpack:"color"`
}

// Colored reports whether the color slot is set.
func (v Vertex) Colored() bool { return v.Color != NoColor }

// Edge is an undirected edge reported in canonical order (U < V).
type Edge struct {
	U int `msgpack:"u"`
	V int `msgpack:"v"`
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex arena and index for n vertices.
// Negative values are ignored.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.vertices = make([]Vertex, 0, n)
			g.adjacency = make([]map[int]struct{}, 0, n)
			g.index = make(map[int]int, n)
		}
	}
}

// Graph is the core in-memory undirected graph.
//
// vertices is the arena; index maps a vertex ID to its arena position;
// adjacency[i] is the neighbor set of vertices[i], keyed by arena index.
type Graph struct {
	mu sync.RWMutex // guards vertices (slice header), index, adjacency, edgeCount

	vertices  []Vertex
	index     map[int]int
	adjacency []map[int]struct{}
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1), or O(n) with WithCapacity(n).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		index: make(map[int]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
