package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds application settings (in-memory representation).
type Config struct {
	// PopularSystems are the staging/trade systems used for single-target
	// queries: "how far is X" is answered from each of these.
	PopularSystems []string `yaml:"popular_systems"`

	// PunctuationToStrip is a regexp of characters removed from stop names
	// and scanned words before resolution.
	PunctuationToStrip string `yaml:"punctuation_to_strip"`

	// FuzzyDenylist lists lowercase words that free-text scanning must never
	// fuzzy-match to a system name (common words that collide with prefixes).
	FuzzyDenylist []string `yaml:"fuzzy_denylist"`

	// NullEdgePenalty is the edge cost into a nullsec system in the
	// null-avoiding graph variant.
	NullEdgePenalty int `yaml:"null_edge_penalty"`

	// ITCCount and StationCount are how many nearby results the itc/station
	// queries return.
	ITCCount     int `yaml:"itc_count"`
	StationCount int `yaml:"station_count"`

	// GraphCache and SafeGraphCache are the snapshot file paths, relative to
	// the data directory.
	GraphCache     string `yaml:"graph_cache"`
	SafeGraphCache string `yaml:"safe_graph_cache"`

	// MaxStops caps multi-stop itineraries.
	MaxStops int `yaml:"max_stops"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		PopularSystems:     []string{"Jita", "Amarr", "Dodixie", "Rens", "Hek"},
		PunctuationToStrip: `[.,;:!?'"]`,
		FuzzyDenylist:      []string{"any", "new", "old", "gate", "dock", "fleet"},
		NullEdgePenalty:    10000,
		ITCCount:           3,
		StationCount:       3,
		GraphCache:         "graph.cache",
		SafeGraphCache:     "safe_graph.cache",
		MaxStops:           24,
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := Default()
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.NullEdgePenalty <= 0 {
		cfg.NullEdgePenalty = 10000
	}
	if cfg.MaxStops <= 0 {
		cfg.MaxStops = 24
	}
	return cfg, nil
}
