package distributed_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/distributed"
	"github.com/katalvlaran/lvcolor/transport"
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	return ctx
}

func newGraph(t *testing.T, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithCapacity(n))
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

func gridGraph(t *testing.T, rows, cols int) *core.Graph {
	t.Helper()
	var edges [][2]int
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			if c+1 < cols {
				edges = append(edges, [2]int{id, id + 1})
			}
			if r+1 < rows {
				edges = append(edges, [2]int{id, id + cols})
			}
		}
	}

	return newGraph(t, rows*cols, edges...)
}

// runConcurrent runs every rank of a local cluster in parallel and returns
// the coordinator report.
func runConcurrent(t *testing.T, g *core.Graph, budget, size int) *distributed.Report {
	t.Helper()
	ctx := testContext(t)
	eps, err := transport.NewLocalCluster(size)
	require.NoError(t, err)

	reports := make([]*distributed.Report, size)
	eg, ctx := errgroup.WithContext(ctx)
	for r := range eps {
		tr := eps[r]
		eg.Go(func() error {
			rep, err := distributed.Run(ctx, tr, g, budget)
			reports[tr.Rank()] = rep
			return err
		})
	}
	require.NoError(t, eg.Wait())

	return reports[0]
}

// runSequential serves the coordinator in the background while workers run
// one after another, so no two boundary round trips overlap.
func runSequential(t *testing.T, g *core.Graph, budget int, eps []transport.Transport) (*distributed.Report, []*distributed.Report) {
	t.Helper()
	ctx := testContext(t)

	type result struct {
		rep *distributed.Report
		err error
	}
	coord := make(chan result, 1)
	go func() {
		rep, err := distributed.Run(ctx, eps[0], g, budget)
		coord <- result{rep, err}
	}()

	workers := make([]*distributed.Report, 0, len(eps)-1)
	for _, tr := range eps[1:] {
		rep, err := distributed.Run(ctx, tr, nil, budget)
		require.NoError(t, err)
		workers = append(workers, rep)
	}

	res := <-coord
	require.NoError(t, res.err)

	return res.rep, workers
}

func localEndpoints(t *testing.T, size int) []transport.Transport {
	t.Helper()
	eps, err := transport.NewLocalCluster(size)
	require.NoError(t, err)
	out := make([]transport.Transport, len(eps))
	for i, ep := range eps {
		out[i] = ep
	}

	return out
}
