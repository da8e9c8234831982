package distributed

import (
	"time"

	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/wire"
)

// WorkerReport summarizes one worker rank.
type WorkerReport struct {
	Rank      int
	Interior  int
	Boundary  int
	Requests  int
	Uncolored []int
}

// Report is what Run returns on any rank.
type Report struct {
	Role Role
	Rank int

	// Graph is the graph this rank finished with: the authoritative graph on
	// the coordinator, the private topology copy on a worker.
	Graph *core.Graph

	// Messages counts handled messages per tag (coordinator only).
	Messages map[wire.Tag]int

	// Deferred counts Requests that waited on another rank's reservation
	// (coordinator only).
	Deferred int

	// Valid is the post-run validation result (coordinator only).
	Valid bool

	// Uncolored lists uncolored vertices of the authoritative graph
	// (coordinator only), ascending.
	Uncolored []int

	// Worker is set on worker ranks.
	Worker *WorkerReport

	Duration time.Duration
}
