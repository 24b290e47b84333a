// Package metrics holds the Prometheus collectors of perception runs.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Status labels of MoleculesTotal.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Registry holds the perception metrics on a private Prometheus registry.
type Registry struct {
	MoleculesTotal     *prometheus.CounterVec
	AromaticBonds      *prometheus.HistogramVec
	RingsExamined      *prometheus.HistogramVec
	PerceptionDuration *prometheus.HistogramVec

	registry *prometheus.Registry
}

// NewRegistry creates a registry with all collectors registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initPerceptionMetrics()
	return r
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// RecordPerception records one perceived molecule. rings and bonds are
// only observed for successful runs.
func (r *Registry) RecordPerception(model, status string, duration time.Duration, rings, bonds int) {
	r.MoleculesTotal.WithLabelValues(model, status).Inc()
	r.PerceptionDuration.WithLabelValues(model).Observe(duration.Seconds())
	if status != StatusOK {
		return
	}
	r.RingsExamined.WithLabelValues(model).Observe(float64(rings))
	r.AromaticBonds.WithLabelValues(model).Observe(float64(bonds))
}

// WriteText writes every gathered family in the Prometheus text format.
func (r *Registry) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
