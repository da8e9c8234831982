package coloring

import "time"

// WorkerReport summarizes one shared-memory worker.
type WorkerReport struct {
	// Worker is the partition index the worker owned.
	Worker int

	// Interior and Boundary count the vertices of each kind in the partition.
	Interior int
	Boundary int

	// Uncolored lists the vertices the worker could not color, ascending.
	Uncolored []int
}

// Report aggregates a ColorShared run.
type Report struct {
	Workers  []WorkerReport
	Budget   int
	Duration time.Duration
}

// Uncolored returns every vertex left uncolored by any worker, ascending.
// Partitions are contiguous and reported in index order, so concatenation
// keeps the order.
func (r *Report) Uncolored() []int {
	var out []int
	for _, w := range r.Workers {
		out = append(out, w.Uncolored...)
	}

	return out
}
