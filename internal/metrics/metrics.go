// Package metrics collects Prometheus counters for lifecycle transitions.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records lifecycle activity into a Prometheus registry.
type Collector struct {
	transitions *prometheus.CounterVec
	voids       prometheus.Counter
	promotions  prometheus.Counter
	conflicts   *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics with reg.
// Metric names are prefixed with namespace.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	c := &Collector{
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_transitions_total",
			Help:      "State records entered, by state text id.",
		}, []string{"state"}),
		voids: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_voids_total",
			Help:      "State records voided.",
		}),
		promotions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_promotions_total",
			Help:      "Earlier records promoted to current after a void.",
		}),
		conflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "state_conflicts_total",
			Help:      "Concurrent update conflicts, by operation and whether the retry also failed.",
		}, []string{"operation", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Lifecycle operation latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}

	reg.MustRegister(c.transitions, c.voids, c.promotions, c.conflicts, c.duration)
	return c
}

// RecordTransition counts an entered state.
func (c *Collector) RecordTransition(stateTextID string) {
	c.transitions.WithLabelValues(stateTextID).Inc()
}

// RecordVoid counts a voided record and, if promoted, the promotion.
func (c *Collector) RecordVoid(promoted bool) {
	c.voids.Inc()
	if promoted {
		c.promotions.Inc()
	}
}

// RecordConflict counts a conflict. retried reports whether the operation
// was retried, false meaning the conflict reached the caller.
func (c *Collector) RecordConflict(operation string, retried bool) {
	outcome := "surfaced"
	if retried {
		outcome = "retried"
	}
	c.conflicts.WithLabelValues(operation, outcome).Inc()
}

// ObserveDuration records how long an operation took.
func (c *Collector) ObserveDuration(operation string, d time.Duration) {
	c.duration.WithLabelValues(operation).Observe(d.Seconds())
}

// WriteTextfile writes every metric in g to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
