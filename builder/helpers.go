package builder

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
)

// addVertices inserts cfg.id(0..n-1). Re-adding an existing ID is a no-op in
// core, so constructors compose over shared vertices.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.id(i)); err != nil {
			return fmt.Errorf("%s: AddVertex(%d): %w", method, cfg.id(i), err)
		}
	}

	return nil
}

// addEdge connects local indices u and v.
func addEdge(g *core.Graph, cfg builderConfig, method string, u, v int) error {
	if err := g.AddEdge(cfg.id(u), cfg.id(v)); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, cfg.id(u), cfg.id(v), err)
	}

	return nil
}
