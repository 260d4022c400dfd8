package builder

import (
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/Dan007p4/TpGrafos/pkg/graph"
	"github.com/Dan007p4/TpGrafos/pkg/interaction"
	"github.com/Dan007p4/TpGrafos/pkg/metrics"
)

func sampleRecords() []interaction.Interaction {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return []interaction.Interaction{
		{Source: "alice", Target: "bob", Type: interaction.PRReview, Timestamp: ts, Context: "pr#1"},
		{Source: "alice", Target: "bob", Type: interaction.PRMerge, Timestamp: ts, Context: "pr#1"},
		{Source: "bob", Target: "carol", Type: interaction.CommentIssue, Timestamp: ts, Context: "issue#7"},
		{Source: "carol", Target: "alice", Type: interaction.IssueClose, Timestamp: ts, Context: "issue#7"},
		{Source: "bob", Target: "carol", Type: interaction.CommentPR, Timestamp: ts, Context: "pr#2"},
	}
}

func TestBuildIntegrated_SumsTypeWeights(t *testing.T) {
	records := sampleRecords()
	ids := interaction.CollectIdentities(records)

	g, err := BuildIntegrated(records, ids)
	if err != nil {
		t.Fatalf("BuildIntegrated: %v", err)
	}

	if g.VertexCount() != 3 {
		t.Fatalf("expected 3 vertices, got %d", g.VertexCount())
	}
	if g.EdgeCount() != 3 {
		t.Fatalf("expected 3 edges, got %d", g.EdgeCount())
	}

	aliceID, _ := ids.ID("alice")
	bobID, _ := ids.ID("bob")
	carolID, _ := ids.ID("carol")

	// alice->bob: PR review (4.0) + PR merge (5.0)
	w, err := g.EdgeWeight(aliceID, bobID)
	if err != nil {
		t.Fatalf("EdgeWeight: %v", err)
	}
	if w != 9.0 {
		t.Errorf("alice->bob weight = %v, want 9.0", w)
	}

	// bob->carol: two comments (2.0 each)
	w, _ = g.EdgeWeight(bobID, carolID)
	if w != 4.0 {
		t.Errorf("bob->carol weight = %v, want 4.0", w)
	}
}

func TestBuildByTypes_CountsFilteredRecords(t *testing.T) {
	records := sampleRecords()
	ids := interaction.CollectIdentities(records)

	g, err := BuildByTypes(records, ids, interaction.CommentIssue, interaction.CommentPR)
	if err != nil {
		t.Fatalf("BuildByTypes: %v", err)
	}

	if g.EdgeCount() != 1 {
		t.Fatalf("expected 1 edge in comment view, got %d", g.EdgeCount())
	}

	bobID, _ := ids.ID("bob")
	carolID, _ := ids.ID("carol")

	// Presence mode: weight is the record count, not the summed type weights.
	w, _ := g.EdgeWeight(bobID, carolID)
	if w != 2.0 {
		t.Errorf("bob->carol presence weight = %v, want 2.0", w)
	}
}

func TestBuildByType_SingleType(t *testing.T) {
	records := sampleRecords()
	ids := interaction.CollectIdentities(records)

	g, err := BuildByType(records, ids, interaction.IssueClose)
	if err != nil {
		t.Fatalf("BuildByType: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Fatalf("expected 1 edge in issue-close view, got %d", g.EdgeCount())
	}

	carolID, _ := ids.ID("carol")
	aliceID, _ := ids.ID("alice")
	has, _ := g.HasEdge(carolID, aliceID)
	if !has {
		t.Error("expected carol->alice edge in issue-close view")
	}
}

func TestBuild_AssignsLabelsFromIdentityMap(t *testing.T) {
	records := sampleRecords()
	ids := interaction.CollectIdentities(records)

	g, err := BuildIntegrated(records, ids)
	if err != nil {
		t.Fatalf("BuildIntegrated: %v", err)
	}

	for id, login := range ids.Labels() {
		label, err := g.VertexLabel(id)
		if err != nil {
			t.Fatalf("VertexLabel(%d): %v", id, err)
		}
		if label != login {
			t.Errorf("vertex %d label = %q, want %q", id, label, login)
		}
	}
}

func TestBuild_IsIdempotent(t *testing.T) {
	records := sampleRecords()
	ids := interaction.CollectIdentities(records)

	first, err := BuildIntegrated(records, ids)
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	second, err := BuildIntegrated(records, ids)
	if err != nil {
		t.Fatalf("second build: %v", err)
	}

	if first.EdgeCount() != second.EdgeCount() {
		t.Fatalf("edge counts diverge: %d vs %d", first.EdgeCount(), second.EdgeCount())
	}
	n := first.VertexCount()
	for u := 0; u < n; u++ {
		firstLabel, _ := first.VertexLabel(u)
		secondLabel, _ := second.VertexLabel(u)
		if firstLabel != secondLabel {
			t.Errorf("vertex %d labels diverge: %q vs %q", u, firstLabel, secondLabel)
		}
		for v := 0; v < n; v++ {
			fw, _ := first.EdgeWeight(u, v)
			sw, _ := second.EdgeWeight(u, v)
			if fw != sw {
				t.Errorf("weight (%d,%d) diverges: %v vs %v", u, v, fw, sw)
			}
		}
	}
}

func TestBuild_SkipsSelfPairs(t *testing.T) {
	records := []interaction.Interaction{
		{Source: "alice", Target: "alice", Type: interaction.CommentIssue},
		{Source: "alice", Target: "bob", Type: interaction.CommentIssue},
	}
	ids := interaction.CollectIdentities(records)

	g, err := BuildIntegrated(records, ids)
	if err != nil {
		t.Fatalf("BuildIntegrated: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("expected self-pair record skipped, edge count %d", g.EdgeCount())
	}
}

func TestBuild_FailsOnUnknownIdentity(t *testing.T) {
	records := sampleRecords()
	ids := interaction.NewIdentityMap()
	ids.Add("alice") // bob and carol missing

	if _, err := BuildIntegrated(records, ids); err == nil {
		t.Fatal("expected error for records outside the identity map")
	}
}

func TestBuild_MatrixRepresentation(t *testing.T) {
	records := sampleRecords()
	ids := interaction.CollectIdentities(records)

	g, err := Build(records, ids, Options{Mode: Weighted, Representation: graph.AdjacencyMatrix})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := g.(*graph.MatrixGraph); !ok {
		t.Errorf("expected MatrixGraph, got %T", g)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("expected 3 edges, got %d", g.EdgeCount())
	}
}

func TestBuild_RecordsMetrics(t *testing.T) {
	records := sampleRecords()
	ids := interaction.CollectIdentities(records)
	registry := metrics.NewRegistry()

	g, err := Build(records, ids, Options{Mode: Weighted, Metrics: registry})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var metric dto.Metric
	if err := registry.BuildsTotal.WithLabelValues("weighted", "success").Write(&metric); err != nil {
		t.Fatalf("reading builds counter: %v", err)
	}
	if got := metric.GetCounter().GetValue(); got != 1 {
		t.Errorf("builds_total{weighted,success} = %v, want 1", got)
	}

	var gauge dto.Metric
	if err := registry.GraphEdgesTotal.Write(&gauge); err != nil {
		t.Fatalf("reading edges gauge: %v", err)
	}
	if got := gauge.GetGauge().GetValue(); got != float64(g.EdgeCount()) {
		t.Errorf("edges gauge = %v, want %d", got, g.EdgeCount())
	}
}
