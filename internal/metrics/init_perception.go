package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initPerceptionMetrics() {
	r.MoleculesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "aromatic_molecules_total",
			Help: "Total number of molecules perceived",
		},
		[]string{"model", "status"},
	)

	r.AromaticBonds = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aromatic_bonds",
			Help:    "Number of aromatic bonds found per molecule",
			Buckets: []float64{0, 5, 6, 10, 20, 50, 100},
		},
		[]string{"model"},
	)

	r.RingsExamined = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aromatic_rings_examined",
			Help:    "Number of candidate rings examined per molecule",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 64, 256},
		},
		[]string{"model"},
	)

	r.PerceptionDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aromatic_perception_duration_seconds",
			Help:    "Perception duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 1},
		},
		[]string{"model"},
	)
}
