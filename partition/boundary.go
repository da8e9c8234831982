package partition

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// ExternalNeighbors returns the neighbors of id that lie outside p, ascending.
// id itself need not belong to p.
func ExternalNeighbors(p Partition, g *core.Graph, id int) ([]int, error) {
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return nil, fmt.Errorf("ExternalNeighbors(%d): %w", id, err)
	}

	out := nbrs[:0]
	for _, n := range nbrs {
		if !p.Contains(n) {
			out = append(out, n)
		}
	}

	return out, nil
}

// Boundary returns {v ∈ p | some neighbor of v ∉ p}, ascending.
// Members missing from g are reported as ErrVertexNotFound.
// Complexity: O(Σ deg(v)) over members.
func Boundary(p Partition, g *core.Graph) ([]int, error) {
	boundary, _, err := Classify(p, g)
	return boundary, err
}

// Interior returns p minus Boundary(p, g), ascending.
func Interior(p Partition, g *core.Graph) ([]int, error) {
	_, interior, err := Classify(p, g)
	return interior, err
}

// Classify splits the members of p into boundary and interior IDs in one
// pass. Both results are ascending.
func Classify(p Partition, g *core.Graph) (boundary, interior []int, err error) {
	for _, id := range p.ids {
		ext, err := ExternalNeighbors(p, g, id)
		if err != nil {
			return nil, nil, err
		}
		if len(ext) > 0 {
			boundary = append(boundary, id)
		} else {
			interior = append(interior, id)
		}
	}

	return boundary, interior, nil
}
