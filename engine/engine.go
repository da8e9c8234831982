// SPDX-License-Identifier: MIT
// Package engine is the facade over one graph and one color budget. It runs
// shared-memory or distributed coloring and exposes validation and the
// adjacency/color dump.
package engine

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/distributed"
	"github.com/katalvlaran/lvcolor/transport"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger passed down to every coloring run.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine owns a graph and the color budget used to color it.
type Engine struct {
	g      *core.Graph
	budget int
	log    zerolog.Logger
}

// New creates an Engine over an empty graph.
func New(budget int, opts ...Option) (*Engine, error) {
	return NewWithGraph(core.NewGraph(), budget, opts...)
}

// NewWithGraph creates an Engine over g. A nil g starts from an empty graph.
func NewWithGraph(g *core.Graph, budget int, opts ...Option) (*Engine, error) {
	if budget < 1 {
		return nil, fmt.Errorf("engine: budget %d: %w", budget, coloring.ErrInvalidBudget)
	}
	if g == nil {
		g = core.NewGraph()
	}
	e := &Engine{g: g, budget: budget, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Graph returns the current graph. After a distributed run on a worker rank
// this is the worker's private copy.
func (e *Engine) Graph() *core.Graph { return e.g }

// Budget returns the color budget.
func (e *Engine) Budget() int { return e.budget }

// ColorShared colors the graph in place with workers goroutines.
func (e *Engine) ColorShared(workers int) (*coloring.Report, error) {
	return coloring.ColorShared(e.g, e.budget, workers, coloring.WithLogger(e.log))
}

// ColorDistributed runs this process's role in the distributed protocol;
// the role is taken from tr.Rank(). On worker ranks the engine's graph is
// replaced by the topology copy received from the coordinator.
func (e *Engine) ColorDistributed(ctx context.Context, tr transport.Transport) (*distributed.Report, error) {
	rep, err := distributed.Run(ctx, tr, e.g, e.budget, distributed.WithLogger(e.log))
	if err != nil {
		return nil, err
	}
	if rep.Graph != nil {
		e.g = rep.Graph
	}

	return rep, nil
}

// Validate reports the first uncolored vertex or conflicting edge.
func (e *Engine) Validate() error { return coloring.Validate(e.g) }

// IsValid reports whether every vertex is colored with no conflicts.
func (e *Engine) IsValid() bool { return coloring.IsValid(e.g) }

// Print writes the adjacency and color dump to w.
func (e *Engine) Print(w io.Writer) error { return e.g.Print(w) }

// String returns the dump produced by Print.
func (e *Engine) String() string { return e.g.String() }
