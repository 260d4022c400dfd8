package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/Dan007p4/TpGrafos/pkg/analysis"
	"github.com/Dan007p4/TpGrafos/pkg/builder"
	"github.com/Dan007p4/TpGrafos/pkg/config"
	"github.com/Dan007p4/TpGrafos/pkg/graph"
	"github.com/Dan007p4/TpGrafos/pkg/interaction"
	"github.com/Dan007p4/TpGrafos/pkg/logging"
	"github.com/Dan007p4/TpGrafos/pkg/metrics"
)

func main() {
	developers := flag.Int("developers", 500, "Number of synthetic developers")
	interactions := flag.Int("interactions", 5000, "Number of synthetic interactions")
	teams := flag.Int("teams", 8, "Number of teams interactions cluster around")
	crossTeam := flag.Float64("cross-team", 0.05, "Probability an interaction crosses team boundaries")
	representation := flag.String("representation", "list", "Graph representation: list or matrix")
	seed := flag.Int64("seed", 42, "Random seed")
	report := flag.Bool("report", false, "Print the full analysis report")
	flag.Parse()

	fmt.Printf("Collaboration Graph - Analysis Benchmark\n")
	fmt.Printf("========================================\n\n")
	fmt.Printf("Configuration:\n")
	fmt.Printf("  Developers: %d\n", *developers)
	fmt.Printf("  Interactions: %d\n", *interactions)
	fmt.Printf("  Teams: %d\n", *teams)
	fmt.Printf("  Cross-team probability: %.2f\n", *crossTeam)
	fmt.Printf("  Representation: %s\n\n", *representation)

	rng := rand.New(rand.NewSource(*seed))

	// Synthesize a team-clustered interaction history.
	fmt.Printf("Generating %d interactions...\n", *interactions)
	start := time.Now()

	types := []interaction.Type{
		interaction.CommentIssue,
		interaction.CommentPR,
		interaction.IssueOpened,
		interaction.PRReview,
		interaction.PRApproval,
		interaction.PRMerge,
		interaction.IssueClose,
	}
	records := make([]interaction.Interaction, 0, *interactions)
	for i := 0; i < *interactions; i++ {
		team := rng.Intn(*teams)
		source := randomMember(rng, team, *teams, *developers)

		targetTeam := team
		if rng.Float64() < *crossTeam {
			targetTeam = rng.Intn(*teams)
		}
		target := randomMember(rng, targetTeam, *teams, *developers)
		if target == source {
			continue
		}

		records = append(records, interaction.Interaction{
			Source:    fmt.Sprintf("dev%04d", source),
			Target:    fmt.Sprintf("dev%04d", target),
			Type:      types[rng.Intn(len(types))],
			Timestamp: time.Now(),
			Context:   fmt.Sprintf("pr-%d", i),
		})
	}
	fmt.Printf("Generated %d interactions in %v\n\n", len(records), time.Since(start))

	// Build the collaboration graph.
	fmt.Printf("Building graph...\n")
	start = time.Now()

	registry := metrics.NewRegistry()
	ids := interaction.CollectIdentities(records)
	g, err := builder.Build(records, ids, builder.Options{
		Mode:           builder.Weighted,
		Representation: graph.Representation(*representation),
		Logger:         logging.NewNopLogger(),
		Metrics:        registry,
	})
	if err != nil {
		log.Fatalf("Build failed: %v", err)
	}
	fmt.Printf("Built graph with %d vertices and %d edges in %v\n\n",
		g.VertexCount(), g.EdgeCount(), time.Since(start))

	// Run the full analysis.
	fmt.Printf("Running analysis...\n")
	svc, err := analysis.NewService(g, ids.Labels(), config.Default(), logging.NewNopLogger(), registry)
	if err != nil {
		log.Fatalf("Failed to create analysis service: %v", err)
	}

	start = time.Now()
	result := svc.Run()
	fmt.Printf("Analysis completed in %v\n", time.Since(start))
	for stage, d := range result.StageDurations {
		fmt.Printf("  %s: %v\n", stage, d)
	}

	fmt.Printf("\nResults:\n")
	fmt.Printf("  Density: %.6f\n", result.Density)
	fmt.Printf("  Clustering coefficient: %.6f\n", result.ClusteringCoefficient)
	fmt.Printf("  Diameter: %d\n", result.Diameter)
	fmt.Printf("  Communities: %d (Q=%.4f)\n", result.CommunityCount, result.Modularity)
	fmt.Printf("  Bridging ties: %d\n", len(result.BridgingTies))
	fmt.Printf("  PageRank mass lost: %.6f\n", result.PageRankMassLost)

	fmt.Printf("\n  Top 5 by PageRank:\n")
	for i, entry := range result.TopByPageRank(5) {
		fmt.Printf("    %d. %s (score: %.6f)\n", i+1, result.Label(entry.Vertex), entry.Score)
	}

	if *report {
		fmt.Println()
		if err := result.WriteReport(os.Stdout); err != nil {
			log.Fatalf("Failed to write report: %v", err)
		}
	}
}

// randomMember picks a developer index from the given team's contiguous
// slice of the developer range.
func randomMember(rng *rand.Rand, team, teams, developers int) int {
	size := developers / teams
	if size == 0 {
		return rng.Intn(developers)
	}
	low := team * size
	high := low + size
	if team == teams-1 {
		high = developers
	}
	return low + rng.Intn(high-low)
}
