package core

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Print writes one line per vertex, ascending by ID:
//
//	Vertex 3 (color: 2): 1, 4
//	Vertex 5 (color: none):
func (g *Graph) Print(w io.Writer) error {
	for _, id := range g.Vertices() {
		v, err := g.Vertex(id)
		if err != nil {
			return err
		}
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			return err
		}

		color := "none"
		if v.Colored() {
			color = strconv.Itoa(v.Color)
		}
		parts := make([]string, len(nbrs))
		for k, n := range nbrs {
			parts[k] = strconv.Itoa(n)
		}

		line := fmt.Sprintf("Vertex %d (color: %s):", id, color)
		if len(parts) > 0 {
			line += " " + strings.Join(parts, ", ")
		}
		if _, err = fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	return nil
}

// String renders the same dump as Print.
func (g *Graph) String() string {
	var sb strings.Builder
	_ = g.Print(&sb) // strings.Builder writes never fail

	return sb.String()
}
