package distributed_test

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/distributed"
	"github.com/katalvlaran/lvcolor/partition"
	"github.com/katalvlaran/lvcolor/transport"
	"github.com/katalvlaran/lvcolor/wire"
)

func TestRoleOf(t *testing.T) {
	assert.Equal(t, distributed.RoleCoordinator, distributed.RoleOf(0))
	assert.Equal(t, distributed.RoleWorker, distributed.RoleOf(1))
	assert.Equal(t, distributed.RoleWorker, distributed.RoleOf(7))
	assert.Equal(t, "worker", distributed.RoleWorker.String())
}

func TestRun_TooFewProcesses(t *testing.T) {
	eps := localEndpoints(t, 1)
	_, err := distributed.Run(testContext(t), eps[0], newGraph(t, 3), 3)
	require.ErrorIs(t, err, distributed.ErrTooFewProcesses)
}

func TestRun_TriangleSingleWorker(t *testing.T) {
	g := newGraph(t, 3, [2]int{0, 1}, [2]int{1, 2}, [2]int{0, 2})

	rep := runConcurrent(t, g, 3, 2)
	require.True(t, rep.Valid)
	assert.Equal(t, map[int]int{0: 1, 1: 2, 2: 3}, g.Colors())
	assert.Equal(t, 1, rep.Messages[wire.TagDone])
	assert.Equal(t, 1, rep.Messages[wire.TagUpdate], "interior colors travel in one update")
	assert.Zero(t, rep.Messages[wire.TagRequest], "a single partition has no boundary")
}

func TestRun_BudgetInsufficient(t *testing.T) {
	g := newGraph(t, 5, [2]int{0, 1})

	rep := runConcurrent(t, g, 1, 2)
	assert.False(t, rep.Valid)
	assert.Equal(t, []int{1}, rep.Uncolored)
	require.ErrorIs(t, coloring.Validate(g), coloring.ErrUncolored)
}

func TestRun_CrossPartitionEdge(t *testing.T) {
	g := newGraph(t, 4, [2]int{1, 2})

	rep, workers := runSequential(t, g, 2, localEndpoints(t, 3))
	require.True(t, rep.Valid)
	c1, _ := g.Color(1)
	c2, _ := g.Color(2)
	assert.NotEqual(t, c1, c2)

	require.Len(t, workers, 2)
	for _, w := range workers {
		assert.Equal(t, 1, w.Worker.Boundary)
		assert.Equal(t, 1, w.Worker.Requests)
	}
	assert.Equal(t, 2, rep.Messages[wire.TagRequest])
}

func TestRun_SequentialWorkersAlwaysValid(t *testing.T) {
	for _, size := range []int{2, 3, 4, 6} {
		g := gridGraph(t, 8, 9)
		rep, workers := runSequential(t, g, g.MaxDegree()+1, localEndpoints(t, size))
		require.True(t, rep.Valid, "size %d: %v", size, coloring.Validate(g))
		require.Len(t, workers, size-1)

		// Worker caches agree with the coordinator on their own partitions.
		parts, err := partition.SplitGraph(g, size-1)
		require.NoError(t, err)
		for i, w := range workers {
			for _, id := range parts[i].IDs() {
				want, _ := g.Color(id)
				got, err := w.Graph.Color(id)
				require.NoError(t, err)
				require.Equal(t, want, got, "size %d vertex %d", size, id)
			}
		}
	}
}

func TestRun_CrossPartitionEdgeConcurrent(t *testing.T) {
	for i := 0; i < 200; i++ {
		g := newGraph(t, 4, [2]int{1, 2})

		rep := runConcurrent(t, g, 2, 3)
		require.True(t, rep.Valid, "run %d: %v", i, coloring.Validate(g))
		c1, _ := g.Color(1)
		c2, _ := g.Color(2)
		require.NotEqual(t, c1, c2, "run %d", i)
	}
}

// TestRun_ConcurrentGridValid runs all ranks in parallel; reservations at
// the coordinator must keep every cross-partition edge conflict free.
func TestRun_ConcurrentGridValid(t *testing.T) {
	for _, size := range []int{3, 5, 8} {
		for i := 0; i < 30; i++ {
			g := gridGraph(t, 10, 10)

			rep := runConcurrent(t, g, g.MaxDegree()+1, size)
			require.True(t, rep.Valid, "size %d run %d: %v", size, i, coloring.Validate(g))
			require.Empty(t, rep.Uncolored)
			require.Equal(t, size-1, rep.Messages[wire.TagDone])
		}
	}
}

func TestCoordinator_OverlappingRequestWaitsForRelease(t *testing.T) {
	ctx := testContext(t)
	g := newGraph(t, 4, [2]int{1, 2})
	eps := localEndpoints(t, 3)

	type result struct {
		rep *distributed.Report
		err error
	}
	coord := make(chan result, 1)
	go func() {
		rep, err := distributed.NewCoordinator(eps[0], g).Run(ctx)
		coord <- result{rep, err}
	}()

	w1, w2 := eps[1], eps[2]
	for _, w := range []transport.Transport{w1, w2} {
		m, err := w.Recv(ctx)
		require.NoError(t, err)
		require.Equal(t, wire.TagPartition, m.Tag)
	}
	send := func(tr transport.Transport, m wire.Message) {
		t.Helper()
		m.Sender = tr.Rank()
		require.NoError(t, tr.Send(ctx, 0, m))
	}

	send(w1, wire.Message{Tag: wire.TagRequest, Vertices: []core.Vertex{{ID: 1}, {ID: 2}}})
	reply, err := w1.Recv(ctx)
	require.NoError(t, err)
	require.Equal(t, []core.Vertex{{ID: 1}, {ID: 2}}, reply.Vertices)

	// Vertex 1 and 2 are reserved for rank 1, so rank 2 gets no answer yet.
	send(w2, wire.Message{Tag: wire.TagRequest, Vertices: []core.Vertex{{ID: 2}, {ID: 1}}})
	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	_, err = w2.Recv(short)
	cancel()
	require.ErrorIs(t, err, context.DeadlineExceeded)

	send(w1, wire.Message{Tag: wire.TagUpdate, Vertices: []core.Vertex{{ID: 1, Color: 1}}})
	send(w1, wire.Message{Tag: wire.TagDone})

	reply, err = w2.Recv(ctx)
	require.NoError(t, err)
	require.Equal(t, wire.TagRequest, reply.Tag)
	require.Equal(t, []core.Vertex{{ID: 2}, {ID: 1, Color: 1}}, reply.Vertices, "released only after the update landed")

	send(w2, wire.Message{Tag: wire.TagUpdate, Vertices: []core.Vertex{{ID: 2, Color: 2}}})
	send(w2, wire.Message{Tag: wire.TagDone})

	res := <-coord
	require.NoError(t, res.err)
	assert.Equal(t, 1, res.rep.Deferred)
	assert.Equal(t, 2, res.rep.Messages[wire.TagRequest])
}

func TestCoordinator_PendingRequestsServedInArrivalOrder(t *testing.T) {
	ctx := testContext(t)
	g := newGraph(t, 6, [2]int{0, 1}, [2]int{1, 2})
	eps := localEndpoints(t, 4)

	coord := make(chan error, 1)
	go func() {
		_, err := distributed.NewCoordinator(eps[0], g).Run(ctx)
		coord <- err
	}()

	w1, w2, w3 := eps[1], eps[2], eps[3]
	for _, w := range []transport.Transport{w1, w2, w3} {
		_, err := w.Recv(ctx)
		require.NoError(t, err)
	}
	send := func(tr transport.Transport, m wire.Message) {
		t.Helper()
		m.Sender = tr.Rank()
		require.NoError(t, tr.Send(ctx, 0, m))
	}

	send(w1, wire.Message{Tag: wire.TagRequest, Vertices: []core.Vertex{{ID: 1}}})
	_, err := w1.Recv(ctx)
	require.NoError(t, err)

	// Rank 2 waits on rank 1; rank 3 wants 2 as well, which rank 2 is
	// waiting for, so it queues behind rank 2 even though 2 is free.
	send(w2, wire.Message{Tag: wire.TagRequest, Vertices: []core.Vertex{{ID: 1}, {ID: 2}}})
	send(w3, wire.Message{Tag: wire.TagRequest, Vertices: []core.Vertex{{ID: 2}}})
	short, cancel := context.WithTimeout(ctx, 50*time.Millisecond)
	_, err = w3.Recv(short)
	cancel()
	require.ErrorIs(t, err, context.DeadlineExceeded)

	send(w1, wire.Message{Tag: wire.TagDone})
	_, err = w2.Recv(ctx)
	require.NoError(t, err)

	send(w2, wire.Message{Tag: wire.TagDone})
	reply, err := w3.Recv(ctx)
	require.NoError(t, err)
	require.Equal(t, []core.Vertex{{ID: 2}}, reply.Vertices)

	send(w3, wire.Message{Tag: wire.TagDone})
	require.NoError(t, <-coord)
}

func TestCoordinator_ServesUntilEveryWorkerDone(t *testing.T) {
	ctx := testContext(t)
	g := newGraph(t, 4, [2]int{0, 3})
	eps := localEndpoints(t, 3)

	type result struct {
		rep *distributed.Report
		err error
	}
	coord := make(chan result, 1)
	go func() {
		rep, err := distributed.NewCoordinator(eps[0], g).Run(ctx)
		coord <- result{rep, err}
	}()

	w1, w2 := eps[1], eps[2]
	for _, w := range []transport.Transport{w1, w2} {
		m, err := w.Recv(ctx)
		require.NoError(t, err)
		require.Equal(t, wire.TagPartition, m.Tag)
		require.NotNil(t, m.Topology)
		require.Equal(t, []core.Edge{{U: 0, V: 3}}, m.Topology.Edges)
	}

	send := func(tr transport.Transport, m wire.Message) {
		t.Helper()
		m.Sender = tr.Rank()
		require.NoError(t, tr.Send(ctx, 0, m))
	}
	send(w1, wire.Message{Tag: wire.TagDone})
	send(w1, wire.Message{Tag: wire.TagDone})
	send(w1, wire.Message{Tag: wire.TagUpdate, Vertices: []core.Vertex{{ID: 0, Color: 5}, {ID: 99, Color: 1}}})
	send(w1, wire.Message{Tag: wire.TagUpdate, Vertices: []core.Vertex{{ID: 0, Color: 2}}})
	send(w1, wire.Message{Tag: wire.TagRequest, Vertices: []core.Vertex{{ID: 3}, {ID: 99}, {ID: 0}}})

	reply, err := w1.Recv(ctx)
	require.NoError(t, err)
	require.Equal(t, wire.TagRequest, reply.Tag)
	require.Equal(t, []core.Vertex{{ID: 3}, {ID: 0, Color: 2}}, reply.Vertices, "last write wins, request order kept")

	send(w1, wire.Message{Tag: wire.TagPartition})

	select {
	case res := <-coord:
		t.Fatalf("coordinator returned before every worker was done: %+v", res)
	default:
	}

	send(w2, wire.Message{Tag: wire.TagDone})
	res := <-coord
	require.NoError(t, res.err)
	assert.Equal(t, 3, res.rep.Messages[wire.TagDone])
	assert.Equal(t, 2, res.rep.Messages[wire.TagUpdate])
	assert.Equal(t, 1, res.rep.Messages[wire.TagRequest])
	assert.Equal(t, 1, res.rep.Messages[wire.TagPartition])
	assert.False(t, res.rep.Valid)
	assert.Equal(t, []int{1, 2, 3}, res.rep.Uncolored)
}

func TestWorker_UnexpectedFirstMessage(t *testing.T) {
	ctx := testContext(t)
	eps := localEndpoints(t, 2)
	require.NoError(t, eps[0].Send(ctx, 1, wire.Message{Tag: wire.TagDone}))

	w, err := distributed.NewWorker(eps[1], 3)
	require.NoError(t, err)
	_, err = w.Run(ctx)
	require.ErrorIs(t, err, distributed.ErrUnexpectedMessage)

	_, err = distributed.NewWorker(eps[1], 0)
	require.ErrorIs(t, err, coloring.ErrInvalidBudget)
}

func TestRun_TransportFailureAborts(t *testing.T) {
	ctx := testContext(t)
	eps := localEndpoints(t, 3)
	require.NoError(t, eps[2].Close())

	_, err := distributed.Run(ctx, eps[0], newGraph(t, 4), 2)
	require.ErrorIs(t, err, transport.ErrClosed)
}

func TestRun_OverTCP(t *testing.T) {
	ctx := testContext(t)
	const size = 3
	g := newGraph(t, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 5}, [2]int{5, 0}, [2]int{0, 3})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	eps := make([]transport.Transport, size)
	errs := make([]error, size)
	var wg sync.WaitGroup
	wg.Add(size)
	go func() {
		defer wg.Done()
		tr, err := transport.AcceptTCP(ctx, ln, size)
		if err == nil {
			eps[0] = tr
		}
		errs[0] = err
	}()
	for r := 1; r < size; r++ {
		go func(rank int) {
			defer wg.Done()
			tr, err := transport.DialTCP(ctx, ln.Addr().String(), rank, size)
			if err == nil {
				eps[rank] = tr
			}
			errs[rank] = err
		}(r)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}
	defer func() {
		for _, tr := range eps {
			_ = tr.Close()
		}
	}()

	rep, workers := runSequential(t, g, g.MaxDegree()+1, eps)
	require.True(t, rep.Valid, "%v", coloring.Validate(g))
	require.Empty(t, rep.Uncolored)
	assert.Equal(t, size-1, rep.Messages[wire.TagDone])
	require.Len(t, workers, size-1)
	assert.Equal(t, 2, workers[1].Rank)
}
