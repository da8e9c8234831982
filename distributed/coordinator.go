// File: coordinator.go
// Role: Rank 0 state machine. Distributes partitions, then serializes every
// read and write of cross-partition colors through one receive loop.
//
// Termination:
//   - The loop exits once N-1 distinct ranks have sent Done. Request and
//     Update keep being served until then; repeated Done from one rank
//     counts once.
//
// Reservations:
//   - Answering a Request reserves its IDs for the sender until that
//     sender's next Request or Done. The worker's Update travels before
//     either, so it is applied before anyone else can read those IDs.
//   - A Request overlapping another rank's reservation, or an earlier
//     pending Request, waits in arrival order.
//   - A waiting worker holds no reservation, so the oldest pending Request
//     only ever waits on ranks that are still making progress.
package distributed

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/metrics"
	"github.com/katalvlaran/lvcolor/partition"
	"github.com/katalvlaran/lvcolor/transport"
	"github.com/katalvlaran/lvcolor/wire"
)

// Coordinator owns the authoritative graph on rank 0.
type Coordinator struct {
	tr  transport.Transport
	g   *core.Graph
	log zerolog.Logger

	messages map[wire.Tag]int
	done     map[int]struct{}

	reserved map[int]int   // vertex ID -> holding rank
	holds    map[int][]int // rank -> reserved IDs
	pending  []request
	deferred int
}

// request is a Request reduced to its known IDs, kept while it waits for a
// reservation.
type request struct {
	sender int
	ids    []int
}

// NewCoordinator binds g to the rank-0 endpoint tr.
func NewCoordinator(tr transport.Transport, g *core.Graph, opts ...Option) *Coordinator {
	o := applyOptions(opts)

	return &Coordinator{
		tr:       tr,
		g:        g,
		log:      o.logger.With().Str("role", RoleCoordinator.String()).Int("rank", tr.Rank()).Logger(),
		messages: make(map[wire.Tag]int),
		done:     make(map[int]struct{}),
		reserved: make(map[int]int),
		holds:    make(map[int][]int),
	}
}

// Run distributes the partitions and serves workers until all are done.
// Transport failures abort the run; malformed messages are logged and
// ignored.
func (c *Coordinator) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	size := c.tr.Size()
	if size < 2 {
		return nil, fmt.Errorf("Coordinator.Run(size=%d): %w", size, ErrTooFewProcesses)
	}

	if err := c.distribute(ctx, size); err != nil {
		return nil, err
	}

	for len(c.done) < size-1 {
		m, err := c.tr.Recv(ctx)
		if err != nil {
			return nil, fmt.Errorf("Coordinator.Run: %w", err)
		}
		if err := c.handle(ctx, m); err != nil {
			return nil, err
		}
	}

	rep := &Report{
		Role:     RoleCoordinator,
		Rank:     c.tr.Rank(),
		Graph:    c.g,
		Messages: c.messages,
		Deferred: c.deferred,
		Valid:    coloring.IsValid(c.g),
		Duration: time.Since(start),
	}
	for id, col := range c.g.Colors() {
		if col == core.NoColor {
			rep.Uncolored = append(rep.Uncolored, id)
		}
	}
	sort.Ints(rep.Uncolored)
	metrics.RunDuration.WithLabelValues(metrics.ModeDistributed, RoleCoordinator.String()).Observe(rep.Duration.Seconds())
	c.log.Info().Bool("valid", rep.Valid).Int("uncolored", len(rep.Uncolored)).Msg("all workers done")

	return rep, nil
}

// distribute sends worker rank r the full topology and partition r-1.
func (c *Coordinator) distribute(ctx context.Context, size int) error {
	parts, err := partition.SplitGraph(c.g, size-1)
	if err != nil {
		return fmt.Errorf("Coordinator.Run: %w", err)
	}
	topo := c.g.Topology()

	for _, p := range parts {
		rank := p.Index + 1
		m := wire.Message{Tag: wire.TagPartition, Sender: c.tr.Rank(), Partition: p.IDs(), Topology: &topo}
		if err := c.tr.Send(ctx, rank, m); err != nil {
			return fmt.Errorf("Coordinator.Run: partition to rank %d: %w", rank, err)
		}
		c.log.Debug().Int("partition", p.Index).Int("to", rank).Int("vertices", p.Len()).Msg("partition sent")
	}

	return nil
}

func (c *Coordinator) handle(ctx context.Context, m wire.Message) error {
	c.messages[m.Tag]++
	metrics.MessagesHandled.WithLabelValues(m.Tag.String()).Inc()
	log := c.log.With().Str("tag", m.Tag.String()).Int("from", m.Sender).Logger()

	if m.Sender <= CoordinatorRank || m.Sender >= c.tr.Size() {
		log.Warn().Msg("message from unknown rank ignored")
		return nil
	}

	switch m.Tag {
	case wire.TagRequest:
		// A new Request means the previous round trip is finished.
		c.release(m.Sender)
		c.pending = append(c.pending, request{sender: m.Sender, ids: c.knownIDs(m, log)})
		if err := c.drain(ctx); err != nil {
			return err
		}
		if c.isPending(m.Sender) {
			c.deferred++
			metrics.RequestsDeferred.Inc()
			log.Debug().Msg("request deferred behind a reservation")
		}
		return nil

	case wire.TagUpdate:
		if err := c.g.ApplyColors(m.Vertices); err != nil {
			log.Warn().Err(err).Msg("update partially ignored")
		}
		return nil

	case wire.TagDone:
		if _, dup := c.done[m.Sender]; dup {
			log.Warn().Msg("duplicate done ignored")
			return nil
		}
		c.done[m.Sender] = struct{}{}
		log.Debug().Int("done", len(c.done)).Int("expected", c.tr.Size()-1).Msg("worker done")
		c.release(m.Sender)
		return c.drain(ctx)

	default:
		log.Warn().Msg("unexpected tag ignored")
		return nil
	}
}

// knownIDs keeps the requested IDs present in the graph, in request order.
func (c *Coordinator) knownIDs(m wire.Message, log zerolog.Logger) []int {
	ids := make([]int, 0, len(m.Vertices))
	for _, v := range m.Vertices {
		if !c.g.HasVertex(v.ID) {
			log.Warn().Int("vertex", v.ID).Msg("request for unknown vertex ignored")
			continue
		}
		ids = append(ids, v.ID)
	}

	return ids
}

// release drops every reservation held by rank.
func (c *Coordinator) release(rank int) {
	for _, id := range c.holds[rank] {
		if c.reserved[id] == rank {
			delete(c.reserved, id)
		}
	}
	delete(c.holds, rank)
}

// drain answers pending requests in arrival order. A request is served
// when none of its IDs is reserved and none is wanted by an older request
// that is still waiting.
func (c *Coordinator) drain(ctx context.Context) error {
	waiting := make(map[int]struct{})
	kept := c.pending[:0]

	for _, req := range c.pending {
		if c.blocked(req, waiting) {
			for _, id := range req.ids {
				waiting[id] = struct{}{}
			}
			kept = append(kept, req)
			continue
		}
		if err := c.reply(ctx, req); err != nil {
			return err
		}
	}
	for i := len(kept); i < len(c.pending); i++ {
		c.pending[i] = request{}
	}
	c.pending = kept

	if n := len(c.pending); n > 0 {
		c.log.Debug().Int("pending", n).Msg("requests waiting on reservations")
	}

	return nil
}

func (c *Coordinator) isPending(rank int) bool {
	for _, req := range c.pending {
		if req.sender == rank {
			return true
		}
	}

	return false
}

func (c *Coordinator) blocked(req request, waiting map[int]struct{}) bool {
	for _, id := range req.ids {
		if holder, ok := c.reserved[id]; ok && holder != req.sender {
			return true
		}
		if _, ok := waiting[id]; ok {
			return true
		}
	}

	return false
}

// reply reserves the request's IDs for its sender and answers with their
// authoritative colors, in request order.
func (c *Coordinator) reply(ctx context.Context, req request) error {
	snap, err := c.g.Snapshot(req.ids)
	if err != nil {
		return fmt.Errorf("Coordinator.Run: %w", err)
	}
	for _, id := range req.ids {
		c.reserved[id] = req.sender
	}
	c.holds[req.sender] = req.ids

	out := wire.Message{Tag: wire.TagRequest, Sender: c.tr.Rank(), Vertices: snap}
	if err := c.tr.Send(ctx, req.sender, out); err != nil {
		return fmt.Errorf("Coordinator.Run: reply to rank %d: %w", req.sender, err)
	}

	return nil
}
