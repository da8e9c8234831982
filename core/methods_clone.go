// File: methods_clone.go
// Role: Deep copies and the wire-friendly Topology form of a Graph.
//
// Determinism:
//   - Topology() lists vertices ascending and edges sorted by (U,V), so two
//     graphs with the same structure produce identical topologies.
package core

import "fmt"

// Topology is the adjacency of a Graph without colors: what the distributed
// coordinator broadcasts once to every worker.
type Topology struct {
	Vertices []int  `msgpack:"vertices"`
	Edges    []Edge `msgpack:"edges"`
}

// Clone returns a deep copy of g: same vertices, same colors, same edges.
// The copy shares no memory with g.
// Complexity: O(V+E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph(WithCapacity(len(g.vertices)))
	clone.vertices = append(clone.vertices, g.vertices...)
	for id, i := range g.index {
		clone.index[id] = i
	}
	for i := range g.adjacency {
		nbrs := make(map[int]struct{}, len(g.adjacency[i]))
		for j := range g.adjacency[i] {
			nbrs[j] = struct{}{}
		}
		clone.adjacency = append(clone.adjacency, nbrs)
	}
	clone.edgeCount = g.edgeCount

	return clone
}

// Topology returns the sorted vertex set and edge list of g.
// Complexity: O(V·log V + E·log E).
func (g *Graph) Topology() Topology {
	return Topology{
		Vertices: g.Vertices(),
		Edges:    g.Edges(),
	}
}

// FromTopology builds an uncolored Graph from t. An edge that names a vertex
// missing from t.Vertices is a precondition violation (ErrVertexNotFound).
// Complexity: O(V+E).
func FromTopology(t Topology) (*Graph, error) {
	g := NewGraph(WithCapacity(len(t.Vertices)))
	if err := g.AddVertices(t.Vertices...); err != nil {
		return nil, fmt.Errorf("FromTopology: %w", err)
	}
	for _, e := range t.Edges {
		if err := g.AddEdge(e.U, e.V); err != nil {
			return nil, fmt.Errorf("FromTopology: %w", err)
		}
	}

	return g, nil
}
