// Package lvcolor is a greedy graph-coloring engine with a color budget,
// run either by goroutines over one shared graph or by a coordinator and
// worker processes exchanging messages.
//
// Every vertex takes the smallest color in 1..budget that none of its
// neighbors hold. A vertex with no free color stays uncolored (color 0) and
// the run reports it instead of failing.
//
// Packages:
//
//	core/        - Graph, Vertex, Edge; colors live on vertices under the graph lock
//	builder/     - deterministic and seeded random topologies with integer IDs
//	graphio/     - CSV edge-list reader and coloring writer
//	partition/   - balanced contiguous split and boundary/interior classification
//	coloring/    - the greedy rule, ordered vertex locks, shared-memory runs, validation
//	wire/        - protocol messages and their msgpack codec
//	transport/   - in-process cluster and TCP star endpoints
//	distributed/ - coordinator and worker roles of the message protocol
//	engine/      - facade over one graph and one budget
//	config/      - YAML and LVCOLOR_* environment configuration
//	logging/     - zerolog construction
//	metrics/     - Prometheus collectors
//	cmd/lvcolor  - command-line entrypoint
//
// A 4-cycle with two colors:
//
//	1───2
//	│   │
//	4───3
//
// colors 1 and 3 with one color and 2 and 4 with the other.
//
//	go get github.com/katalvlaran/lvcolor
package lvcolor
