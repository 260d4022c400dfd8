package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initAnalysisMetrics() {
	r.AnalysesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "collabgraph_analyses_total",
			Help: "Total number of analysis runs",
		},
		[]string{"status"},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "collabgraph_analysis_duration_seconds",
			Help:    "Full analysis run duration in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0, 120.0},
		},
	)

	r.StageDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "collabgraph_stage_duration_seconds",
			Help:    "Per-stage analysis duration in seconds",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0, 30.0},
		},
		[]string{"stage"},
	)

	r.SlowStages = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "collabgraph_slow_stages_total",
			Help: "Total number of slow analysis stages (>1s)",
		},
		[]string{"stage"},
	)

	r.CommunitiesDetected = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "collabgraph_communities_detected",
			Help: "Communities found by the most recent analysis",
		},
	)

	r.BridgingTiesTotal = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "collabgraph_bridging_ties_total",
			Help: "Bridging vertices found by the most recent analysis",
		},
	)

	r.Modularity = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "collabgraph_modularity",
			Help: "Modularity of the most recent community partition",
		},
	)

	r.PageRankMassLost = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "collabgraph_pagerank_mass_lost",
			Help: "PageRank mass lost to dangling vertices in the most recent analysis",
		},
	)
}
