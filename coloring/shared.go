// File: shared.go
// Role: Shared-memory coordinator. One goroutine per partition colors its
// interior freely and its boundary under ascending-order vertex tokens.
//
// Concurrency:
//   - Interior vertices have no neighbor outside their partition, so no other
//     worker ever reads or writes them or their neighbors.
//   - A boundary vertex b is colored while holding tokens for b and every
//     external neighbor of b. Neighbors of those neighbors are not locked.
package coloring

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/metrics"
	"github.com/katalvlaran/lvcolor/partition"
)

// ColorShared colors g in place using workers goroutines.
//
// Implementation:
//   - Stage 1: Validate budget and workers.
//   - Stage 2: partition.SplitGraph(g, workers); build a LockManager.
//   - Stage 3: Run one worker per partition under an errgroup.
//   - Stage 4: Aggregate the per-worker reports in partition order.
//
// A vertex whose budget is exhausted is logged and left uncolored; that is
// never a returned error. Returned errors are argument errors or graph
// inconsistencies.
func ColorShared(g *core.Graph, budget, workers int, opts ...Option) (*Report, error) {
	if budget < 1 {
		return nil, fmt.Errorf("ColorShared(budget=%d): %w", budget, ErrInvalidBudget)
	}
	if workers < 1 {
		return nil, fmt.Errorf("ColorShared(workers=%d): %w", workers, ErrInvalidWorkerCount)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	parts, err := partition.SplitGraph(g, workers)
	if err != nil {
		return nil, fmt.Errorf("ColorShared: %w", err)
	}
	lm := NewLockManager(g)

	// Each worker writes only its own slot; no lock needed on reports.
	reports := make([]WorkerReport, len(parts))
	var eg errgroup.Group
	for i := range parts {
		p := parts[i]
		eg.Go(func() error {
			w := &sharedWorker{
				g:      g,
				p:      p,
				budget: budget,
				locks:  lm,
				log:    o.logger.With().Int("worker", p.Index).Logger(),
			}
			rep, err := w.run()
			reports[p.Index] = rep
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	elapsed := time.Since(start)
	metrics.RunDuration.WithLabelValues(metrics.ModeShared, "coordinator").Observe(elapsed.Seconds())

	return &Report{Workers: reports, Budget: budget, Duration: elapsed}, nil
}

type sharedWorker struct {
	g      *core.Graph
	p      partition.Partition
	budget int
	locks  *LockManager
	log    zerolog.Logger
}

func (w *sharedWorker) run() (WorkerReport, error) {
	rep := WorkerReport{Worker: w.p.Index}

	boundary, interior, err := partition.Classify(w.p, w.g)
	if err != nil {
		return rep, fmt.Errorf("worker %d: %w", w.p.Index, err)
	}
	rep.Interior, rep.Boundary = len(interior), len(boundary)
	w.log.Debug().Int("interior", len(interior)).Int("boundary", len(boundary)).Msg("partition classified")

	// 1) Interior: every neighbor lives in this partition, no tokens.
	for _, id := range interior {
		ok, err := w.colorOne(id, "interior")
		if err != nil {
			return rep, err
		}
		if !ok {
			rep.Uncolored = append(rep.Uncolored, id)
		}
	}

	// 2) Boundary: one token set per vertex, in ascending ID order.
	for _, b := range boundary {
		ok, err := w.colorBoundary(b)
		if err != nil {
			return rep, err
		}
		if !ok {
			rep.Uncolored = append(rep.Uncolored, b)
		}
	}

	sort.Ints(rep.Uncolored)

	return rep, nil
}

func (w *sharedWorker) colorBoundary(b int) (bool, error) {
	ext, err := partition.ExternalNeighbors(w.p, w.g, b)
	if err != nil {
		return false, fmt.Errorf("worker %d: %w", w.p.Index, err)
	}

	// Tokens for b and its external neighbors. Two adjacent boundary vertices
	// of different workers always share both tokens, so their rule
	// applications cannot interleave.
	held, err := w.locks.Acquire(append(ext, b)...)
	if err != nil {
		return false, fmt.Errorf("worker %d: %w", w.p.Index, err)
	}
	defer held.Release()
	metrics.LockSetSize.Observe(float64(len(held.ids)))

	return w.colorOne(b, "boundary")
}

// colorOne applies the rule to id and writes the result. It reports false
// when the budget was exhausted.
func (w *sharedWorker) colorOne(id int, kind string) (bool, error) {
	c, err := MinimalLegalColor(w.g, id, w.budget)
	if errors.Is(err, ErrColorBudgetExhausted) {
		w.log.Warn().Int("vertex", id).Str("kind", kind).Err(err).Msg("vertex left uncolored")
		metrics.BudgetExhausted.WithLabelValues(metrics.ModeShared).Inc()
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("worker %d: %w", w.p.Index, err)
	}
	if err := w.g.SetColor(id, c); err != nil {
		return false, fmt.Errorf("worker %d: %w", w.p.Index, err)
	}
	metrics.VerticesColored.WithLabelValues(metrics.ModeShared, kind).Inc()

	return true, nil
}
