package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/lvcolor/config"
)

// ExitError is an error carrying a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. The base configuration comes from
// -config when given, otherwise from LVCOLOR_* variables; explicitly set
// flags override it. It returns the validated config, whether the program
// should exit cleanly (help), or an ExitError.
func Parse(args []string, output io.Writer) (*config.Config, bool, error) {
	flagSet := flag.NewFlagSet("lvcolor", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
lvcolor - greedy graph coloring with shared-memory and distributed workers.

Usage:
  lvcolor [options]

Examples:
  lvcolor -mode shared -workers 4 -graph grid -rows 20 -cols 20 -budget 5
  lvcolor -mode local-distributed -size 4 -graph random-edges -n 1000 -m 5000
  lvcolor -mode distributed -rank 0 -size 3 -addr :7946 -graph file -file g.csv

Options:
`)
		flagSet.PrintDefaults()
	}

	d := config.Defaults()
	var (
		configPath  = flagSet.String("config", "", "Path to a YAML config file. Without it LVCOLOR_* variables are read.")
		mode        = flagSet.String("mode", d.Mode, "Execution mode: 'shared', 'distributed' or 'local-distributed'.")
		workers     = flagSet.Int("workers", d.Workers, "Worker goroutines in shared mode.")
		budget      = flagSet.Int("budget", d.ColorBudget, "Color budget; legal colors are 1..budget.")
		kind        = flagSet.String("graph", d.Graph.Kind, "Graph kind: random-edges, random-sparse, random-regular, complete, cycle, path, star, wheel, grid, file.")
		vertices    = flagSet.Int("n", d.Graph.Vertices, "Vertex count for generated graphs.")
		edges       = flagSet.Int("m", d.Graph.Edges, "Random edge draws for random-edges.")
		prob        = flagSet.Float64("p", d.Graph.Probability, "Edge probability for random-sparse.")
		degree      = flagSet.Int("degree", d.Graph.Degree, "Degree for random-regular.")
		rows        = flagSet.Int("rows", d.Graph.Rows, "Rows for grid.")
		cols        = flagSet.Int("cols", d.Graph.Cols, "Columns for grid.")
		seed        = flagSet.Int64("seed", d.Graph.Seed, "Seed for random graphs.")
		file        = flagSet.String("file", d.Graph.File, "CSV edge list for -graph file.")
		rank        = flagSet.Int("rank", d.Transport.Rank, "This process's rank in distributed mode (0 is the coordinator).")
		size        = flagSet.Int("size", d.Transport.Size, "Total ranks including the coordinator.")
		addr        = flagSet.String("addr", d.Transport.Address, "Coordinator TCP address in distributed mode.")
		logLevel    = flagSet.String("log-level", d.Log.Level, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
		logFormat   = flagSet.String("log-format", d.Log.Format, "Log output format. Options: 'text' or 'json'.")
		metricsAddr = flagSet.String("metrics-addr", d.MetricsAddress, "Serve Prometheus metrics on this address. Empty is disabled.")
		outputPath  = flagSet.String("output", d.Output, "Write the coloring as CSV to this path.")
		printDump   = flagSet.Bool("print", d.Print, "Print the adjacency and color dump.")
	)

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument %q", flagSet.Arg(0))}
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "workers":
			cfg.Workers = *workers
		case "budget":
			cfg.ColorBudget = *budget
		case "graph":
			cfg.Graph.Kind = *kind
		case "n":
			cfg.Graph.Vertices = *vertices
		case "m":
			cfg.Graph.Edges = *edges
		case "p":
			cfg.Graph.Probability = *prob
		case "degree":
			cfg.Graph.Degree = *degree
		case "rows":
			cfg.Graph.Rows = *rows
		case "cols":
			cfg.Graph.Cols = *cols
		case "seed":
			cfg.Graph.Seed = *seed
		case "file":
			cfg.Graph.File = *file
		case "rank":
			cfg.Transport.Rank = *rank
		case "size":
			cfg.Transport.Size = *size
		case "addr":
			cfg.Transport.Address = *addr
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log-format":
			cfg.Log.Format = *logFormat
		case "metrics-addr":
			cfg.MetricsAddress = *metricsAddr
		case "output":
			cfg.Output = *outputPath
		case "print":
			cfg.Print = *printDump
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return cfg, false, nil
}
