// Command lvcolor colors a generated or loaded graph with the greedy
// engine in shared-memory, in-process distributed or TCP distributed mode.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvcolor/internal/app"
	"github.com/katalvlaran/lvcolor/internal/cli"
	"github.com/katalvlaran/lvcolor/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, configures logging to logW and runs the app with results
// on outW.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, logW)
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	return app.New(outW, cfg, log).Run(ctx)
}
