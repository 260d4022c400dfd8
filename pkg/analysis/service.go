package analysis

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Dan007p4/TpGrafos/pkg/algorithms"
	"github.com/Dan007p4/TpGrafos/pkg/config"
	"github.com/Dan007p4/TpGrafos/pkg/graph"
	"github.com/Dan007p4/TpGrafos/pkg/logging"
	"github.com/Dan007p4/TpGrafos/pkg/metrics"
)

// Stage names used in logs, stage durations and metric labels.
const (
	StageStructural = "structural"
	StageCentrality = "centrality"
	StageCommunity  = "communities"
)

// Service runs the full analysis over one graph snapshot. The analyzers
// only read the graph, so the three stages run concurrently. The snapshot
// must not be mutated while Run is in flight.
type Service struct {
	graph    graph.Graph
	labels   []string
	cfg      config.Analysis
	logger   logging.Logger
	registry *metrics.Registry
}

// NewService validates the configuration and assembles a Service. A nil
// logger disables logging and a nil registry falls back to the process
// default.
func NewService(g graph.Graph, labels []string, cfg config.Analysis, logger logging.Logger, registry *metrics.Registry) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if registry == nil {
		registry = metrics.DefaultRegistry()
	}
	return &Service{
		graph:    g,
		labels:   labels,
		cfg:      cfg,
		logger:   logger,
		registry: registry,
	}, nil
}

// Run executes all three analysis stages and assembles the Result.
func (s *Service) Run() *Result {
	started := time.Now()
	result := &Result{
		RunID:     uuid.New().String(),
		StartedAt: started,
		Vertices:  s.graph.VertexCount(),
		Edges:     s.graph.EdgeCount(),
		labels:    s.labels,
		topN:      s.cfg.TopN,
	}

	s.logger.Info("analysis started",
		logging.String("run_id", result.RunID),
		logging.Int("vertices", result.Vertices),
		logging.Int("edges", result.Edges),
	)

	durations := make(map[string]time.Duration, 3)
	var mu sync.Mutex
	var wg sync.WaitGroup

	stages := []struct {
		name string
		run  func()
	}{
		{StageStructural, func() { s.runStructural(result) }},
		{StageCentrality, func() { s.runCentrality(result) }},
		{StageCommunity, func() { s.runCommunities(result) }},
	}
	for _, stage := range stages {
		wg.Add(1)
		go func(name string, run func()) {
			defer wg.Done()

			timer := logging.StartTimer(s.logger, "analysis stage",
				logging.String("run_id", result.RunID),
				logging.String("stage", name),
			)
			stageStart := time.Now()
			run()
			elapsed := time.Since(stageStart)
			timer.End()

			s.registry.RecordStage(name, elapsed)
			mu.Lock()
			durations[name] = elapsed
			mu.Unlock()
		}(stage.name, stage.run)
	}
	wg.Wait()

	result.StageDurations = durations
	result.Duration = time.Since(started)

	s.registry.RecordAnalysis("success", result.Duration)
	s.registry.UpdateGraphMetrics(result.Vertices, result.Edges, result.Density)
	s.registry.UpdateCommunityMetrics(result.CommunityCount, len(result.BridgingTies), result.Modularity)
	s.registry.UpdatePageRankMetrics(result.PageRankMassLost)

	s.logger.Info("analysis finished",
		logging.String("run_id", result.RunID),
		logging.Duration("duration", result.Duration),
		logging.Int("communities", result.CommunityCount),
		logging.Int("bridging_ties", len(result.BridgingTies)),
		logging.Float64("modularity", result.Modularity),
	)
	return result
}

func (s *Service) runStructural(result *Result) {
	result.Density = algorithms.Density(s.graph)
	result.ClusteringCoefficient = algorithms.AverageClustering(s.graph)
	result.Diameter = algorithms.Diameter(s.graph)
	result.AverageDistance = algorithms.AverageDistance(s.graph)
	result.DegreeDistribution = algorithms.DegreeDistribution(s.graph)
	result.Assortativity = algorithms.Assortativity(s.graph)
	result.Connected = graph.IsConnected(s.graph)
}

func (s *Service) runCentrality(result *Result) {
	result.DegreeCentrality = algorithms.DegreeCentrality(s.graph)
	result.BetweennessCentrality = algorithms.BetweennessCentrality(s.graph)
	result.ClosenessCentrality = algorithms.ClosenessCentrality(s.graph)

	pr := algorithms.PageRank(s.graph, algorithms.PageRankOptions{
		DampingFactor: s.cfg.Damping,
		MaxIterations: s.cfg.PageRankIterations,
		Tolerance:     s.cfg.PageRankTolerance,
	})
	result.PageRank = pr.Scores
	result.PageRankIterations = pr.Iterations
	result.PageRankMassLost = pr.MassLost
}

func (s *Service) runCommunities(result *Result) {
	communities := algorithms.DetectCommunities(s.graph, s.cfg.CommunityIterations)
	result.Communities = communities
	result.CommunityCount = algorithms.CommunityCount(communities)
	result.CommunityMembers = algorithms.CommunityMembers(communities)
	result.Modularity = algorithms.Modularity(s.graph, communities)
	result.BridgingTies = algorithms.BridgingTies(s.graph, communities, s.cfg.BridgingThreshold)
	result.BridgingStrength = algorithms.BridgingStrength(s.graph, communities)
}
