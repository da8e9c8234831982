package config

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/builder"
	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/graphio"
)

// Graph kinds.
const (
	KindRandomEdges   = "random-edges"
	KindRandomSparse  = "random-sparse"
	KindRandomRegular = "random-regular"
	KindComplete      = "complete"
	KindCycle         = "cycle"
	KindPath          = "path"
	KindStar          = "star"
	KindWheel         = "wheel"
	KindGrid          = "grid"
	KindFile          = "file"
)

func (g Graph) validate() error {
	switch g.Kind {
	case KindFile:
		if g.File == "" {
			return fmt.Errorf("graph.file is required for kind %q", KindFile)
		}
	case KindRandomEdges, KindRandomSparse, KindRandomRegular,
		KindComplete, KindCycle, KindPath, KindStar, KindWheel, KindGrid:
	default:
		return fmt.Errorf("unknown graph.kind %q", g.Kind)
	}

	return nil
}

// Build constructs the configured graph. Size errors come from the builder.
func (g Graph) Build() (*core.Graph, error) {
	if g.Kind == KindFile {
		return graphio.ReadEdgeListFile(g.File)
	}

	var ctor builder.Constructor
	switch g.Kind {
	case KindRandomEdges:
		ctor = builder.RandomEdges(g.Vertices, g.Edges)
	case KindRandomSparse:
		ctor = builder.RandomSparse(g.Vertices, g.Probability)
	case KindRandomRegular:
		ctor = builder.RandomRegular(g.Vertices, g.Degree)
	case KindComplete:
		ctor = builder.Complete(g.Vertices)
	case KindCycle:
		ctor = builder.Cycle(g.Vertices)
	case KindPath:
		ctor = builder.Path(g.Vertices)
	case KindStar:
		ctor = builder.Star(g.Vertices)
	case KindWheel:
		ctor = builder.Wheel(g.Vertices)
	case KindGrid:
		ctor = builder.Grid(g.Rows, g.Cols)
	default:
		return nil, fmt.Errorf("unknown graph.kind %q: %w", g.Kind, ErrInvalidConfig)
	}

	return builder.BuildGraph(
		[]core.GraphOption{core.WithCapacity(g.Vertices)},
		[]builder.BuilderOption{builder.WithSeed(g.Seed)},
		ctor,
	)
}
