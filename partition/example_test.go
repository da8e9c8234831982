package partition_test

import (
	"fmt"

	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/partition"
)

func ExampleSplitGraph() {
	g := core.NewGraph()
	_ = g.AddVertices(0, 1, 2, 3, 4)
	g.MustAddEdge(1, 2)
	g.MustAddEdge(3, 4)

	parts, _ := partition.SplitGraph(g, 2)
	for _, p := range parts {
		boundary, interior, _ := partition.Classify(p, g)
		fmt.Println(p.Index, p.IDs(), "boundary", boundary, "interior", interior)
	}

	// Output:
	// 0 [0 1 2] boundary [] interior [0 1 2]
	// 1 [3 4] boundary [] interior [3 4]
}
