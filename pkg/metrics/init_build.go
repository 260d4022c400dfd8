package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initBuildMetrics() {
	r.BuildsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "collabgraph_builds_total",
			Help: "Total number of graph builds",
		},
		[]string{"mode", "status"},
	)

	r.BuildDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "collabgraph_build_duration_seconds",
			Help:    "Graph build duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
		},
		[]string{"mode"},
	)

	r.GraphVerticesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "collabgraph_vertices_total",
			Help: "Number of vertices in the most recently built graph",
		},
	)

	r.GraphEdgesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "collabgraph_edges_total",
			Help: "Number of directed edges in the most recently built graph",
		},
	)

	r.GraphDensity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "collabgraph_density",
			Help: "Density of the most recently built graph",
		},
	)
}
