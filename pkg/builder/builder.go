// Package builder aggregates raw interaction records into a populated graph.
// Building is deterministic and idempotent: identical input always yields an
// identical graph, regardless of map iteration order, because accumulated
// edges are applied in sorted pair order.
package builder

import (
	"fmt"
	"sort"
	"time"

	"github.com/Dan007p4/TpGrafos/pkg/graph"
	"github.com/Dan007p4/TpGrafos/pkg/interaction"
	"github.com/Dan007p4/TpGrafos/pkg/logging"
	"github.com/Dan007p4/TpGrafos/pkg/metrics"
)

// Mode selects how accumulated records translate into edge weights.
type Mode int

const (
	// Weighted sums the per-record type weights for each ordered pair.
	Weighted Mode = iota
	// Presence counts records per ordered pair, ignoring type weights.
	// Used for type-filtered views of the collaboration network.
	Presence
)

// Options configures a build.
type Options struct {
	Mode           Mode
	Representation graph.Representation
	// Types restricts the build to the listed interaction types.
	// Empty means no filter.
	Types []interaction.Type
	// Logger receives a build summary. Nil disables logging.
	Logger logging.Logger
	// Metrics receives build counters and size gauges. Nil disables them.
	Metrics *metrics.Registry
}

// String returns the Prometheus label value for the mode.
func (m Mode) String() string {
	if m == Presence {
		return "presence"
	}
	return "weighted"
}

// Build aggregates records into a graph over the identity map's vertices.
// Every record's source and target must already be registered in the map;
// an unknown login is a programmer error and fails the build. Records whose
// source and target coincide are skipped: the store rejects self-loops.
func Build(records []interaction.Interaction, ids *interaction.IdentityMap, opts Options) (graph.Graph, error) {
	start := time.Now()
	g, err := build(records, ids, opts)
	if opts.Metrics != nil {
		if err != nil {
			opts.Metrics.RecordBuild(opts.Mode.String(), "failure", time.Since(start), 0, 0)
		} else {
			opts.Metrics.RecordBuild(opts.Mode.String(), "success", time.Since(start), g.VertexCount(), g.EdgeCount())
		}
	}
	return g, err
}

func build(records []interaction.Interaction, ids *interaction.IdentityMap, opts Options) (graph.Graph, error) {
	if ids.Len() == 0 {
		return nil, graph.ErrInvalidConfiguration
	}

	rep := opts.Representation
	if rep == "" {
		rep = graph.AdjacencyList
	}
	log := opts.Logger
	if log == nil {
		log = logging.NewNopLogger()
	}

	g, err := graph.New(rep, ids.Len())
	if err != nil {
		return nil, err
	}

	for id, login := range ids.Labels() {
		if err := g.SetVertexLabel(id, login); err != nil {
			return nil, err
		}
	}

	allowed := typeSet(opts.Types)

	weights := make(map[[2]int]float64)
	used, skipped := 0, 0
	for _, r := range records {
		if allowed != nil {
			if _, ok := allowed[r.Type]; !ok {
				continue
			}
		}

		source, ok := ids.ID(r.Source)
		if !ok {
			return nil, fmt.Errorf("interaction source %q not in identity map", r.Source)
		}
		target, ok := ids.ID(r.Target)
		if !ok {
			return nil, fmt.Errorf("interaction target %q not in identity map", r.Target)
		}
		if source == target {
			skipped++
			continue
		}

		pair := [2]int{source, target}
		switch opts.Mode {
		case Weighted:
			weights[pair] += r.Weight()
		case Presence:
			weights[pair] += 1.0
		}
		used++
	}

	pairs := make([][2]int, 0, len(weights))
	for pair := range weights {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i][0] != pairs[j][0] {
			return pairs[i][0] < pairs[j][0]
		}
		return pairs[i][1] < pairs[j][1]
	})

	for _, pair := range pairs {
		if err := g.AddEdge(pair[0], pair[1]); err != nil {
			return nil, err
		}
		if err := g.SetEdgeWeight(pair[0], pair[1], weights[pair]); err != nil {
			return nil, err
		}
	}

	log.Info("graph built",
		logging.Int("vertices", g.VertexCount()),
		logging.Int("edges", g.EdgeCount()),
		logging.Int("records_used", used),
		logging.Int("records_skipped", skipped),
	)

	return g, nil
}

// BuildIntegrated builds the weighted graph over all interaction types.
func BuildIntegrated(records []interaction.Interaction, ids *interaction.IdentityMap) (graph.Graph, error) {
	return Build(records, ids, Options{Mode: Weighted})
}

// BuildByType builds the presence graph restricted to a single type.
func BuildByType(records []interaction.Interaction, ids *interaction.IdentityMap, t interaction.Type) (graph.Graph, error) {
	return Build(records, ids, Options{Mode: Presence, Types: []interaction.Type{t}})
}

// BuildByTypes builds the presence graph restricted to a set of types.
func BuildByTypes(records []interaction.Interaction, ids *interaction.IdentityMap, types ...interaction.Type) (graph.Graph, error) {
	return Build(records, ids, Options{Mode: Presence, Types: types})
}

func typeSet(types []interaction.Type) map[interaction.Type]struct{} {
	if len(types) == 0 {
		return nil
	}
	set := make(map[interaction.Type]struct{}, len(types))
	for _, t := range types {
		set[t] = struct{}{}
	}
	return set
}
