// Package app wires a validated config into a coloring run: it builds the
// graph, picks the transport for the configured mode, runs the engine and
// writes the summary, the optional CSV coloring and the optional dump.
package app

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvcolor/coloring"
	"github.com/katalvlaran/lvcolor/config"
	"github.com/katalvlaran/lvcolor/distributed"
	"github.com/katalvlaran/lvcolor/engine"
	"github.com/katalvlaran/lvcolor/graphio"
	"github.com/katalvlaran/lvcolor/transport"
)

// App holds one run's configuration and output sinks.
type App struct {
	outW       io.Writer
	cfg        *config.Config
	log        zerolog.Logger
	httpServer *http.Server
}

// New returns an App writing results to outW and logs to log.
func New(outW io.Writer, cfg *config.Config, log zerolog.Logger) *App {
	return &App{outW: outW, cfg: cfg, log: log}
}

// Run executes the configured mode. The metrics server, when enabled, lives
// for the duration of the call.
func (a *App) Run(ctx context.Context) error {
	a.startMetricsServer()
	defer a.closeMetricsServer(ctx)

	a.log.Info().Str("mode", a.cfg.Mode).Int("budget", a.cfg.ColorBudget).Msg("Run starting.")

	var (
		e   *engine.Engine
		err error
	)
	switch a.cfg.Mode {
	case config.ModeShared:
		e, err = a.runShared()
	case config.ModeLocalDistributed:
		e, err = a.runLocalDistributed(ctx)
	case config.ModeDistributed:
		e, err = a.runDistributed(ctx)
	default:
		err = fmt.Errorf("unknown mode %q: %w", a.cfg.Mode, config.ErrInvalidConfig)
	}
	if err != nil {
		return err
	}
	if e == nil {
		return nil
	}

	return a.emit(e)
}

func (a *App) newEngine() (*engine.Engine, error) {
	g, err := a.cfg.Graph.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build graph: %w", err)
	}
	a.log.Debug().Int("vertices", g.VertexCount()).Int("edges", g.EdgeCount()).Str("kind", a.cfg.Graph.Kind).Msg("Graph built.")

	return engine.NewWithGraph(g, a.cfg.ColorBudget, engine.WithLogger(a.log))
}

func (a *App) runShared() (*engine.Engine, error) {
	e, err := a.newEngine()
	if err != nil {
		return nil, err
	}

	rep, err := e.ColorShared(a.cfg.Workers)
	if err != nil {
		return nil, err
	}

	a.summary(e, len(rep.Workers), rep.Uncolored(), rep.Duration)
	return e, nil
}

// runLocalDistributed runs the coordinator and every worker in this process
// over an in-memory cluster.
func (a *App) runLocalDistributed(ctx context.Context) (*engine.Engine, error) {
	size := a.cfg.Transport.Size
	eps, err := transport.NewLocalCluster(size)
	if err != nil {
		return nil, err
	}
	defer func() {
		for _, ep := range eps {
			_ = ep.Close()
		}
	}()

	coord, err := a.newEngine()
	if err != nil {
		return nil, err
	}

	engines := make([]*engine.Engine, size)
	engines[distributed.CoordinatorRank] = coord
	for rank := 1; rank < size; rank++ {
		engines[rank], err = engine.New(a.cfg.ColorBudget, engine.WithLogger(a.log.With().Int("rank", rank).Logger()))
		if err != nil {
			return nil, err
		}
	}

	var coordRep *distributed.Report
	grp, gctx := errgroup.WithContext(ctx)
	for rank := range engines {
		grp.Go(func() error {
			rep, err := engines[rank].ColorDistributed(gctx, eps[rank])
			if err != nil {
				return fmt.Errorf("rank %d: %w", rank, err)
			}
			if rank == distributed.CoordinatorRank {
				coordRep = rep
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	a.summary(coord, size-1, coordRep.Uncolored, coordRep.Duration)
	return coord, nil
}

// runDistributed runs this process's rank over TCP. Only the coordinator
// builds the graph and emits results.
func (a *App) runDistributed(ctx context.Context) (*engine.Engine, error) {
	tc := a.cfg.Transport
	log := a.log.With().Int("rank", tc.Rank).Logger()

	var (
		e   *engine.Engine
		tr  *transport.TCP
		err error
	)
	if tc.Rank == distributed.CoordinatorRank {
		if e, err = a.newEngine(); err != nil {
			return nil, err
		}
		log.Info().Str("address", tc.Address).Int("workers", tc.Size-1).Msg("Waiting for workers.")
		tr, err = transport.ListenTCP(ctx, tc.Address, tc.Size)
	} else {
		if e, err = engine.New(a.cfg.ColorBudget, engine.WithLogger(log)); err != nil {
			return nil, err
		}
		log.Info().Str("address", tc.Address).Msg("Dialing coordinator.")
		tr, err = transport.DialTCP(ctx, tc.Address, tc.Rank, tc.Size)
	}
	if err != nil {
		return nil, err
	}
	defer tr.Close()

	rep, err := e.ColorDistributed(ctx, tr)
	if err != nil {
		return nil, err
	}

	if rep.Role == distributed.RoleWorker {
		w := rep.Worker
		fmt.Fprintf(a.outW, "worker %d: interior=%d boundary=%d requests=%d uncolored=%d duration=%s\n",
			w.Rank, w.Interior, w.Boundary, w.Requests, len(w.Uncolored), rep.Duration.Round(time.Microsecond))
		return nil, nil
	}

	a.summary(e, tc.Size-1, rep.Uncolored, rep.Duration)
	return e, nil
}

func (a *App) summary(e *engine.Engine, workers int, uncolored []int, d time.Duration) {
	g := e.Graph()
	fmt.Fprintf(a.outW, "mode=%s workers=%d vertices=%d edges=%d budget=%d colors=%d uncolored=%d valid=%t duration=%s\n",
		a.cfg.Mode, workers, g.VertexCount(), g.EdgeCount(), e.Budget(), coloring.ColorCount(g),
		len(uncolored), e.IsValid(), d.Round(time.Microsecond))

	if err := e.Validate(); err != nil {
		a.log.Warn().Err(err).Msg("Coloring is not valid.")
	}
}

// emit writes the CSV coloring and the dump when configured.
func (a *App) emit(e *engine.Engine) error {
	if a.cfg.Output != "" {
		if err := graphio.WriteColoringFile(a.cfg.Output, e.Graph()); err != nil {
			return err
		}
		a.log.Info().Str("path", a.cfg.Output).Msg("Coloring written.")
	}
	if a.cfg.Print {
		return e.Print(a.outW)
	}

	return nil
}
