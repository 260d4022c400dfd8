package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Registry holds all metrics for the application
type Registry struct {
	// Graph build metrics
	BuildsTotal        *prometheus.CounterVec
	BuildDuration      *prometheus.HistogramVec
	GraphVerticesTotal prometheus.Gauge
	GraphEdgesTotal    prometheus.Gauge
	GraphDensity       prometheus.Gauge

	// Analysis metrics
	AnalysesTotal       *prometheus.CounterVec
	AnalysisDuration    prometheus.Histogram
	StageDuration       *prometheus.HistogramVec
	SlowStages          *prometheus.CounterVec
	CommunitiesDetected prometheus.Gauge
	BridgingTiesTotal   prometheus.Gauge
	Modularity          prometheus.Gauge
	PageRankMassLost    prometheus.Gauge

	registry *prometheus.Registry
}

var (
	// Global registry instance
	defaultRegistry *Registry
	once            sync.Once
)

// DefaultRegistry returns the global metrics registry
func DefaultRegistry() *Registry {
	once.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// NewRegistry creates a new metrics registry with all metrics initialized
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	r := &Registry{
		registry: reg,
	}

	r.initBuildMetrics()
	r.initAnalysisMetrics()

	return r
}

// GetPrometheusRegistry returns the underlying Prometheus registry
func (r *Registry) GetPrometheusRegistry() *prometheus.Registry {
	return r.registry
}
