// File: methods_edges.go
// Role: Edge lifecycle, adjacency queries and edge enumeration.
//
// Determinism:
//   - Edges() is sorted by (U,V) with U < V.
//   - NeighborIDs() is sorted ascending.
package core

import (
	"fmt"
	"sort"
)

// AddEdge connects u and v (undirected). Both endpoints must already exist.
//
// Implementation:
//   - Stage 1: Reject self-loops (ErrLoopNotAllowed).
//   - Stage 2: Under the write lock, resolve both arena indices; a missing
//     endpoint is a precondition violation (ErrVertexNotFound).
//   - Stage 3: Insert v into u's neighbor set and u into v's. Re-adding an
//     existing edge is a no-op.
//
// Errors:
//   - ErrLoopNotAllowed: u == v.
//   - ErrVertexNotFound: u or v absent. Callers treat this as fatal.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return fmt.Errorf("AddEdge(%d,%d): %w", u, v, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	iu, ok := g.index[u]
	if !ok {
		return fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, u, ErrVertexNotFound)
	}
	iv, ok := g.index[v]
	if !ok {
		return fmt.Errorf("AddEdge(%d,%d): endpoint %d: %w", u, v, v, ErrVertexNotFound)
	}

	if _, dup := g.adjacency[iu][iv]; dup {
		return nil
	}
	g.adjacency[iu][iv] = struct{}{}
	g.adjacency[iv][iu] = struct{}{}
	g.edgeCount++

	return nil
}

// MustAddEdge is AddEdge for fixture code: any error is a programmer error
// and panics.
func (g *Graph) MustAddEdge(u, v int) {
	if err := g.AddEdge(u, v); err != nil {
		panic(err)
	}
}

// HasEdge reports whether u and v are adjacent. Missing vertices yield false.
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	iu, ok := g.index[u]
	if !ok {
		return false
	}
	iv, ok := g.index[v]
	if !ok {
		return false
	}
	_, ok = g.adjacency[iu][iv]

	return ok
}

// EdgeCount returns |E| (each undirected edge counted once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// NeighborIDs returns the IDs adjacent to id, sorted ascending.
// Complexity: O(d·log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("NeighborIDs(%d): %w", id, ErrVertexNotFound)
	}

	out := make([]int, 0, len(g.adjacency[i]))
	for j := range g.adjacency[i] {
		out = append(out, g.vertices[j].ID)
	}
	sort.Ints(out)

	return out, nil
}

// Edges returns every edge once, as (U,V) with U < V, sorted by U then V.
// Complexity: O(E·log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for i := range g.adjacency {
		a := g.vertices[i].ID
		for j := range g.adjacency[i] {
			b := g.vertices[j].ID
			if a < b {
				out = append(out, Edge{U: a, V: b})
			}
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(x, y int) bool {
		if out[x].U != out[y].U {
			return out[x].U < out[y].U
		}
		return out[x].V < out[y].V
	})

	return out
}
