package metrics

import (
	"time"
)

// RecordBuild records a graph build with its duration and resulting size
func (r *Registry) RecordBuild(mode, status string, duration time.Duration, vertices, edges int) {
	r.BuildsTotal.WithLabelValues(mode, status).Inc()
	r.BuildDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if status == "success" {
		r.GraphVerticesTotal.Set(float64(vertices))
		r.GraphEdgesTotal.Set(float64(edges))
	}
}

// RecordAnalysis records a completed analysis run
func (r *Registry) RecordAnalysis(status string, duration time.Duration) {
	r.AnalysesTotal.WithLabelValues(status).Inc()
	r.AnalysisDuration.Observe(duration.Seconds())
}

// RecordStage records one analysis stage
func (r *Registry) RecordStage(stage string, duration time.Duration) {
	r.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())

	if duration > time.Second {
		r.SlowStages.WithLabelValues(stage).Inc()
	}
}

// UpdateGraphMetrics updates the gauges describing the current graph
func (r *Registry) UpdateGraphMetrics(vertices, edges int, density float64) {
	r.GraphVerticesTotal.Set(float64(vertices))
	r.GraphEdgesTotal.Set(float64(edges))
	r.GraphDensity.Set(density)
}

// UpdateCommunityMetrics updates the gauges describing the latest partition
func (r *Registry) UpdateCommunityMetrics(communities, bridges int, modularity float64) {
	r.CommunitiesDetected.Set(float64(communities))
	r.BridgingTiesTotal.Set(float64(bridges))
	r.Modularity.Set(modularity)
}

// UpdatePageRankMetrics updates PageRank run gauges
func (r *Registry) UpdatePageRankMetrics(massLost float64) {
	r.PageRankMassLost.Set(massLost)
}
