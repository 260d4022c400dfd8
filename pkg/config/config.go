// Package config loads and validates analysis configuration.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is a singleton validator instance
var validate = validator.New()

// Analysis configures a full analysis run.
type Analysis struct {
	// Representation selects the graph store backing the run: "list" for
	// sparse collaboration networks, "matrix" for small dense ones.
	Representation string `yaml:"representation" validate:"required,oneof=list matrix"`

	// Damping is the PageRank damping factor.
	Damping float64 `yaml:"damping" validate:"gte=0,lte=1"`

	// PageRankIterations is the exact number of PageRank passes.
	PageRankIterations int `yaml:"pagerank_iterations" validate:"gt=0"`

	// PageRankTolerance is recorded on results for downstream consumers;
	// it does not trigger early termination.
	PageRankTolerance float64 `yaml:"pagerank_tolerance" validate:"gte=0"`

	// CommunityIterations caps community detection passes.
	CommunityIterations int `yaml:"community_iterations" validate:"gt=0"`

	// BridgingThreshold is the minimum inter-community edge fraction for a
	// vertex to count as a bridging tie.
	BridgingThreshold float64 `yaml:"bridging_threshold" validate:"gt=0,lte=1"`

	// TopN sizes the ranked centrality tables in reports.
	TopN int `yaml:"top_n" validate:"gt=0"`
}

// Default returns the standard analysis configuration.
func Default() Analysis {
	return Analysis{
		Representation:      "list",
		Damping:             0.85,
		PageRankIterations:  100,
		PageRankTolerance:   1e-6,
		CommunityIterations: 100,
		BridgingThreshold:   0.3,
		TopN:                10,
	}
}

// Validate checks the configuration against its struct tags.
func (a Analysis) Validate() error {
	if err := validate.Struct(a); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			first := errs[0]
			return fmt.Errorf("analysis config: field %s failed %s validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("analysis config: %w", err)
	}
	return nil
}

// Load reads a YAML file, lays it over the defaults and validates the
// result. Fields absent from the file keep their default values.
func Load(path string) (Analysis, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Analysis{}, fmt.Errorf("read analysis config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Analysis{}, fmt.Errorf("parse analysis config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Analysis{}, err
	}
	return cfg, nil
}
