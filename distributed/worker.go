// File: worker.go
// Role: Worker state machine for ranks 1..N-1.
//
// States:
//   - await partition: the first message must be TagPartition with a
//     topology; anything else is ErrUnexpectedMessage.
//   - interior: color locally, then push every interior color in one Update.
//   - boundary: per vertex, Request → reply → merge → rule → Update.
//   - done: send Done and return.
package distributed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/metrics"
	"github.com/katalvlaran/lvcolor/partition"
	"github.com/katalvlaran/lvcolor/transport"
	"github.com/katalvlaran/lvcolor/wire"
)

// Worker colors one partition using a private copy of the topology.
type Worker struct {
	tr     transport.Transport
	budget int
	log    zerolog.Logger

	g *core.Graph
}

// NewWorker binds a worker rank endpoint. budget must be >= 1.
func NewWorker(tr transport.Transport, budget int, opts ...Option) (*Worker, error) {
	if budget < 1 {
		return nil, fmt.Errorf("NewWorker(budget=%d): %w", budget, coloring.ErrInvalidBudget)
	}
	o := applyOptions(opts)

	return &Worker{
		tr:     tr,
		budget: budget,
		log:    o.logger.With().Str("role", RoleWorker.String()).Int("rank", tr.Rank()).Logger(),
	}, nil
}

// Graph returns the worker's private graph; nil before the partition
// arrives.
func (w *Worker) Graph() *core.Graph { return w.g }

// Run executes the worker protocol to completion.
func (w *Worker) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	rank := w.tr.Rank()

	p, err := w.awaitPartition(ctx)
	if err != nil {
		return nil, err
	}

	boundary, interior, err := partition.Classify(p, w.g)
	if err != nil {
		return nil, fmt.Errorf("Worker.Run(rank=%d): %w", rank, err)
	}
	wr := &WorkerReport{Rank: rank, Interior: len(interior), Boundary: len(boundary)}
	w.log.Debug().Int("partition", p.Index).Int("interior", len(interior)).Int("boundary", len(boundary)).Msg("partition received")

	// Interior first: those colors never depend on another rank.
	if err := w.colorInterior(ctx, interior, wr); err != nil {
		return nil, err
	}
	for _, b := range boundary {
		if err := w.colorBoundary(ctx, p, b, wr); err != nil {
			return nil, err
		}
	}

	if err := w.tr.Send(ctx, CoordinatorRank, wire.Message{Tag: wire.TagDone, Sender: rank}); err != nil {
		return nil, fmt.Errorf("Worker.Run(rank=%d): done: %w", rank, err)
	}

	elapsed := time.Since(start)
	metrics.RunDuration.WithLabelValues(metrics.ModeDistributed, RoleWorker.String()).Observe(elapsed.Seconds())
	w.log.Debug().Int("requests", wr.Requests).Int("uncolored", len(wr.Uncolored)).Msg("worker done")

	return &Report{Role: RoleWorker, Rank: rank, Graph: w.g, Worker: wr, Duration: elapsed}, nil
}

func (w *Worker) awaitPartition(ctx context.Context) (partition.Partition, error) {
	rank := w.tr.Rank()
	m, err := w.tr.Recv(ctx)
	if err != nil {
		return partition.Partition{}, fmt.Errorf("Worker.Run(rank=%d): %w", rank, err)
	}
	if m.Tag != wire.TagPartition || m.Topology == nil {
		return partition.Partition{}, fmt.Errorf("Worker.Run(rank=%d): got %s while awaiting partition: %w", rank, m.Tag, ErrUnexpectedMessage)
	}

	g, err := core.FromTopology(*m.Topology)
	if err != nil {
		return partition.Partition{}, fmt.Errorf("Worker.Run(rank=%d): %w", rank, err)
	}
	w.g = g

	return partition.New(rank-1, m.Partition), nil
}

func (w *Worker) colorInterior(ctx context.Context, interior []int, wr *WorkerReport) error {
	update := make([]core.Vertex, 0, len(interior))
	for _, id := range interior {
		c, ok, err := w.colorLocal(id, "interior")
		if err != nil {
			return err
		}
		if !ok {
			wr.Uncolored = append(wr.Uncolored, id)
			continue
		}
		update = append(update, core.Vertex{ID: id, Color: c})
	}
	if len(update) == 0 {
		return nil
	}

	m := wire.Message{Tag: wire.TagUpdate, Sender: w.tr.Rank(), Vertices: update}
	if err := w.tr.Send(ctx, CoordinatorRank, m); err != nil {
		return fmt.Errorf("Worker.Run(rank=%d): interior update: %w", w.tr.Rank(), err)
	}

	return nil
}

func (w *Worker) colorBoundary(ctx context.Context, p partition.Partition, b int, wr *WorkerReport) error {
	rank := w.tr.Rank()
	ext, err := partition.ExternalNeighbors(p, w.g, b)
	if err != nil {
		return fmt.Errorf("Worker.Run(rank=%d): %w", rank, err)
	}

	// 1) Ask for b and its external neighbors. The coordinator holds these
	//    IDs for this rank until the next Request or Done.
	req := make([]core.Vertex, 0, len(ext)+1)
	req = append(req, core.Vertex{ID: b})
	for _, id := range ext {
		req = append(req, core.Vertex{ID: id})
	}
	if err := w.tr.Send(ctx, CoordinatorRank, wire.Message{Tag: wire.TagRequest, Sender: rank, Vertices: req}); err != nil {
		return fmt.Errorf("Worker.Run(rank=%d): request %d: %w", rank, b, err)
	}
	wr.Requests++

	// 2) The reply is the only message the coordinator sends mid-run.
	reply, err := w.tr.Recv(ctx)
	if err != nil {
		return fmt.Errorf("Worker.Run(rank=%d): reply %d: %w", rank, b, err)
	}
	if reply.Tag != wire.TagRequest {
		return fmt.Errorf("Worker.Run(rank=%d): got %s while awaiting reply for %d: %w", rank, reply.Tag, b, ErrUnexpectedMessage)
	}
	// 3) Merge into the local cache, then run the rule locally.
	if err := w.g.ApplyColors(reply.Vertices); err != nil {
		w.log.Warn().Err(err).Int("vertex", b).Msg("reply partially ignored")
	}

	c, ok, err := w.colorLocal(b, "boundary")
	if err != nil {
		return err
	}
	if !ok {
		wr.Uncolored = append(wr.Uncolored, b)
		return nil
	}

	// 4) Publish before the next Request so the coordinator applies it
	//    before releasing the reservation.
	m := wire.Message{Tag: wire.TagUpdate, Sender: rank, Vertices: []core.Vertex{{ID: b, Color: c}}}
	if err := w.tr.Send(ctx, CoordinatorRank, m); err != nil {
		return fmt.Errorf("Worker.Run(rank=%d): update %d: %w", rank, b, err)
	}

	return nil
}

// colorLocal applies the rule against the local cache. ok is false when the
// budget was exhausted, which is logged and not an error.
func (w *Worker) colorLocal(id int, kind string) (int, bool, error) {
	c, err := coloring.MinimalLegalColor(w.g, id, w.budget)
	if errors.Is(err, coloring.ErrColorBudgetExhausted) {
		w.log.Warn().Int("vertex", id).Str("kind", kind).Err(err).Msg("vertex left uncolored")
		metrics.BudgetExhausted.WithLabelValues(metrics.ModeDistributed).Inc()
		return core.NoColor, false, nil
	}
	if err != nil {
		return core.NoColor, false, fmt.Errorf("Worker.Run(rank=%d): %w", w.tr.Rank(), err)
	}
	if err := w.g.SetColor(id, c); err != nil {
		return core.NoColor, false, fmt.Errorf("Worker.Run(rank=%d): %w", w.tr.Rank(), err)
	}
	metrics.VerticesColored.WithLabelValues(metrics.ModeDistributed, kind).Inc()

	return c, true, nil
}
