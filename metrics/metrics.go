// Package metrics holds the Prometheus collectors updated by the coloring
// engine. Collectors register on the default registry at init; Handler
// exposes them for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Mode label values.
const (
	ModeShared      = "shared"
	ModeDistributed = "distributed"
)

var (
	// VerticesColored counts successful color assignments.
	VerticesColored = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lvcolor",
		Name:      "vertices_colored_total",
		Help:      "Vertices assigned a color, by execution mode and vertex kind.",
	}, []string{"mode", "kind"})

	// BudgetExhausted counts vertices left uncolored because every color in
	// the budget was taken by a neighbor.
	BudgetExhausted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lvcolor",
		Name:      "budget_exhausted_total",
		Help:      "Vertices left uncolored because the color budget was exhausted.",
	}, []string{"mode"})

	// LockSetSize observes how many vertex tokens each boundary coloring held.
	LockSetSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lvcolor",
		Name:      "lock_set_size",
		Help:      "Number of vertex tokens acquired per boundary vertex.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	// MessagesHandled counts protocol messages processed by the coordinator.
	MessagesHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lvcolor",
		Name:      "coordinator_messages_total",
		Help:      "Messages handled by the distributed coordinator, by tag.",
	}, []string{"tag"})

	// RequestsDeferred counts boundary requests the coordinator queued behind
	// another worker's reservation.
	RequestsDeferred = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "lvcolor",
		Name:      "coordinator_requests_deferred_total",
		Help:      "Boundary requests queued behind another worker's reservation.",
	})

	// RunDuration observes wall time of complete coloring runs.
	RunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lvcolor",
		Name:      "run_duration_seconds",
		Help:      "Wall time of coloring runs.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode", "role"})
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
