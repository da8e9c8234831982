package coloring

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// Validate checks that every vertex is colored and no edge joins two vertices
// of the same color. Vertices are checked in ascending ID order; the first
// failure is returned wrapping ErrUncolored or ErrConflict.
// Read-only; call it after a run, not during one.
func Validate(g *core.Graph) error {
	colors := g.Colors()
	for _, id := range g.Vertices() {
		c := colors[id]
		if c == core.NoColor {
			return fmt.Errorf("Validate: vertex %d: %w", id, ErrUncolored)
		}
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return fmt.Errorf("Validate: %w", err)
		}
		for _, n := range nbrs {
			if n > id && colors[n] == c {
				return fmt.Errorf("Validate: edge (%d,%d) color %d: %w", id, n, c, ErrConflict)
			}
		}
	}

	return nil
}

// IsValid reports whether Validate(g) succeeds.
func IsValid(g *core.Graph) bool { return Validate(g) == nil }

// Conflicts lists every edge whose colored endpoints share a color, in
// canonical (U < V) ascending order. Uncolored endpoints never conflict.
func Conflicts(g *core.Graph) []core.Edge {
	colors := g.Colors()
	var out []core.Edge
	for _, e := range g.Edges() {
		if c := colors[e.U]; c != core.NoColor && c == colors[e.V] {
			out = append(out, e)
		}
	}

	return out
}

// ColorCount returns the number of distinct colors in use.
func ColorCount(g *core.Graph) int {
	seen := make(map[int]struct{})
	for _, c := range g.Colors() {
		if c != core.NoColor {
			seen[c] = struct{}{}
		}
	}

	return len(seen)
}
