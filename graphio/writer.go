package graphio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/lvcolor/core"
)

// ColoringHeader is the header row written by WriteColoring.
var ColoringHeader = []string{"vertex", "color"}

// WriteColoring writes one "vertex,color" row per vertex, ascending by ID.
// Uncolored vertices are written with color 0.
func WriteColoring(w io.Writer, g *core.Graph) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(ColoringHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	colors := g.Colors()
	for i, id := range g.Vertices() {
		row := []string{strconv.Itoa(id), strconv.Itoa(colors[id])}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}
	writer.Flush()

	return writer.Error()
}

// WriteColoringFile writes the coloring of g to path, creating parent
// directories as needed.
func WriteColoringFile(path string, g *core.Graph) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := WriteColoring(file, g); err != nil {
		_ = file.Close()
		return err
	}

	return file.Close()
}
