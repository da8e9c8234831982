// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs sorted ascending.
//
// Concurrency:
//   - Arena, index and adjacency are protected by mu.
package core

import (
	"fmt"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate the ID (ErrInvalidVertexID for negative IDs).
//   - Stage 2: Under the write lock, append an uncolored record to the arena,
//     register its index and bootstrap an empty neighbor set.
//
// Returns:
//   - error: nil on success; ErrInvalidVertexID on invalid input.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return fmt.Errorf("AddVertex(%d): %w", id, ErrInvalidVertexID)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addVertexLocked(id)

	return nil
}

// AddVertices inserts every ID in order. All IDs are validated first, so on
// error nothing is added.
// Complexity: O(k) amortized.
func (g *Graph) AddVertices(ids ...int) error {
	for _, id := range ids {
		if id < 0 {
			return fmt.Errorf("AddVertices(%d): %w", id, ErrInvalidVertexID)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, id := range ids {
		g.addVertexLocked(id)
	}

	return nil
}

// addVertexLocked appends a vertex record; caller holds mu for writing.
func (g *Graph) addVertexLocked(id int) {
	if _, exists := g.index[id]; exists {
		return
	}
	g.index[id] = len(g.vertices)
	g.vertices = append(g.vertices, Vertex{ID: id, Color: NoColor})
	g.adjacency = append(g.adjacency, make(map[int]struct{}))
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[id]

	return ok
}

// Vertex returns a copy of the arena record for id.
func (g *Graph) Vertex(id int) (Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return Vertex{}, fmt.Errorf("Vertex(%d): %w", id, ErrVertexNotFound)
	}

	return g.vertices[i], nil
}

// Vertices returns all vertex IDs sorted ascending.
//
// Determinism:
//   - Stable ascending order; partitioning relies on it for reproducibility.
//
// Complexity:
//   - Time O(V·log V), Space O(V).
func (g *Graph) Vertices() []int {
	g.mu.RLock()
	ids := make([]int, len(g.vertices))
	for i := range g.vertices {
		ids[i] = g.vertices[i].ID
	}
	g.mu.RUnlock()

	sort.Ints(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of distinct neighbors of id.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return 0, fmt.Errorf("Degree(%d): %w", id, ErrVertexNotFound)
	}

	return len(g.adjacency[i]), nil
}

// MaxDegree returns the largest vertex degree, or 0 for an empty graph.
// A color budget of MaxDegree()+1 always suffices for a greedy coloring.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	maxDeg := 0
	for i := range g.adjacency {
		if d := len(g.adjacency[i]); d > maxDeg {
			maxDeg = d
		}
	}

	return maxDeg
}
