// Package metrics exposes report generation counters as Prometheus metrics.
//
// Collector implements datasource.Recorder; pass it with
// datasource.WithRecorder. Metrics are registered on the caller's
// Registerer, never on the global default registry.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvreport/datasource"
)

// Outcome label values of column evaluations.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Collector holds the report metrics of one process or test.
type Collector struct {
	// NodesCreated counts created nodes by visibility ("true"/"false").
	NodesCreated *prometheus.CounterVec

	// NodesPruned counts nodes discarded as irrelevant.
	NodesPruned prometheus.Counter

	// ColumnEvaluations counts computed cells by column and outcome.
	ColumnEvaluations *prometheus.CounterVec

	// BuildDuration observes whole build-and-project runs, in seconds.
	BuildDuration prometheus.Histogram
}

var _ datasource.Recorder = (*Collector)(nil)

// NewCollector creates the metrics under namespace and registers them on reg.
func NewCollector(namespace string, reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		NodesCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_nodes_created_total",
				Help:      "Total number of report nodes created",
			},
			[]string{"visible"},
		),
		NodesPruned: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_nodes_pruned_total",
				Help:      "Total number of report nodes pruned as irrelevant",
			},
		),
		ColumnEvaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "report_column_evaluations_total",
				Help:      "Total number of computed report cells",
			},
			[]string{"column", "outcome"},
		),
		BuildDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_build_duration_seconds",
				Help:      "Report build and projection duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}

	for _, col := range []prometheus.Collector{c.NodesCreated, c.NodesPruned, c.ColumnEvaluations, c.BuildDuration} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("metrics: register: %w", err)
		}
	}

	return c, nil
}

// NodeCreated implements datasource.Recorder.
func (c *Collector) NodeCreated(visible bool) {
	c.NodesCreated.WithLabelValues(fmt.Sprint(visible)).Inc()
}

// NodePruned implements datasource.Recorder.
func (c *Collector) NodePruned() { c.NodesPruned.Inc() }

// ColumnEvaluated implements datasource.Recorder.
func (c *Collector) ColumnEvaluated(column string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	c.ColumnEvaluations.WithLabelValues(column, outcome).Inc()
}
