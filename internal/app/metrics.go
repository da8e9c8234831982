package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/katalvlaran/lvcolor/metrics"
)

// startMetricsServer serves /metrics on cfg.MetricsAddress in the background.
func (a *App) startMetricsServer() {
	if a.cfg.MetricsAddress == "" {
		a.log.Debug().Msg("Metrics server not started: disabled.")
		return
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	a.httpServer = &http.Server{
		Addr:              a.cfg.MetricsAddress,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	srv := a.httpServer
	go func() {
		a.log.Info().Str("address", srv.Addr).Msg("Metrics server starting.")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error().Err(err).Msg("Metrics server failed unexpectedly.")
		}
	}()
}

func (a *App) closeMetricsServer(ctx context.Context) {
	if a.httpServer == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error().Err(err).Msg("Metrics server shutdown failed.")
		return
	}
	a.log.Debug().Msg("Metrics server shut down.")
}
