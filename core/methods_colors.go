// File: methods_colors.go
// Role: Color slot access, bulk snapshots and bulk application.
//
// Concurrency:
//   - Every method here takes only the read lock on mu: colors are not
//     topology. Concurrent writers of the SAME vertex must be serialized by
//     the caller (see coloring.LockManager); distinct vertices never conflict.
package core

import (
	"errors"
	"fmt"
)

// Color returns the color of id (NoColor when unset).
func (g *Graph) Color(id int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return NoColor, fmt.Errorf("Color(%d): %w", id, ErrVertexNotFound)
	}

	return g.vertices[i].Color, nil
}

// SetColor assigns color to id. NoColor clears the slot.
//
// Errors:
//   - ErrInvalidColor: color < 0.
//   - ErrVertexNotFound: id absent.
func (g *Graph) SetColor(id, color int) error {
	if color < 0 {
		return fmt.Errorf("SetColor(%d,%d): %w", id, color, ErrInvalidColor)
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return fmt.Errorf("SetColor(%d,%d): %w", id, color, ErrVertexNotFound)
	}
	g.vertices[i].Color = color

	return nil
}

// NeighborColors returns the colors currently assigned to the colored
// neighbors of id. Uncolored neighbors contribute nothing; duplicates are kept.
// Complexity: O(d).
func (g *Graph) NeighborColors(id int) ([]int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[id]
	if !ok {
		return nil, fmt.Errorf("NeighborColors(%d): %w", id, ErrVertexNotFound)
	}

	out := make([]int, 0, len(g.adjacency[i]))
	for j := range g.adjacency[i] {
		if c := g.vertices[j].Color; c != NoColor {
			out = append(out, c)
		}
	}

	return out, nil
}

// Snapshot returns (id, color) records for ids, in exactly the given order.
// Duplicated IDs are repeated. Any unknown ID fails the whole call.
// Complexity: O(k).
func (g *Graph) Snapshot(ids []int) ([]Vertex, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vertex, len(ids))
	for k, id := range ids {
		i, ok := g.index[id]
		if !ok {
			return nil, fmt.Errorf("Snapshot: id %d: %w", id, ErrVertexNotFound)
		}
		out[k] = g.vertices[i]
	}

	return out, nil
}

// ApplyColors writes every record's color into the matching vertex, in order,
// so a later record for the same ID wins. Records that name unknown IDs or
// negative colors are skipped and reported together via errors.Join; the
// valid records are still applied.
func (g *Graph) ApplyColors(vs []Vertex) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var errs []error
	for _, v := range vs {
		if v.Color < 0 {
			errs = append(errs, fmt.Errorf("ApplyColors: id %d color %d: %w", v.ID, v.Color, ErrInvalidColor))
			continue
		}
		i, ok := g.index[v.ID]
		if !ok {
			errs = append(errs, fmt.Errorf("ApplyColors: id %d: %w", v.ID, ErrVertexNotFound))
			continue
		}
		g.vertices[i].Color = v.Color
	}

	return errors.Join(errs...)
}

// Colors returns a map id → color for every vertex (NoColor included).
func (g *Graph) Colors() map[int]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[int]int, len(g.vertices))
	for i := range g.vertices {
		out[g.vertices[i].ID] = g.vertices[i].Color
	}

	return out
}

// ClearColors resets every color slot to NoColor.
// It takes the write lock, so it must not race with a running coloring.
func (g *Graph) ClearColors() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.vertices {
		g.vertices[i].Color = NoColor
	}
}
