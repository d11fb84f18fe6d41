// Package engine composes name resolution, pathfinding and proximity search
// into the full query operations the API serves.
package engine

import (
	"regexp"
	"sync"

	"golang.org/x/sync/singleflight"

	"jumpbot/internal/config"
	"jumpbot/internal/graph"
	"jumpbot/internal/resolver"
	"jumpbot/internal/sde"
)

// Engine answers routing queries over one loaded star map. All referenced
// structures are immutable after construction except the nearest-safe memo,
// which is guarded and deduped.
type Engine struct {
	cfg      *config.Config
	data     *sde.Data
	universe *graph.Universe
	def      *graph.Graph
	safe     *graph.Graph
	resolver *resolver.Resolver
	punct    *regexp.Regexp

	safeMu      sync.RWMutex
	nearestSafe map[string]string
	group       singleflight.Group
}

// New wires an Engine over loaded data and both graph variants.
func New(cfg *config.Config, data *sde.Data, def, safe *graph.Graph, res *resolver.Resolver) *Engine {
	punct := regexp.MustCompile(cfg.PunctuationToStrip)
	return &Engine{
		cfg:         cfg,
		data:        data,
		universe:    data.Universe,
		def:         def,
		safe:        safe,
		resolver:    res,
		punct:       punct,
		nearestSafe: make(map[string]string),
	}
}

// Resolver exposes the engine's name resolver.
func (e *Engine) Resolver() *resolver.Resolver { return e.resolver }

func (e *Engine) graphFor(avoidNull bool) *graph.Graph {
	if avoidNull {
		return e.safe
	}
	return e.def
}

// stripPunct removes configured punctuation from a stop name or scanned word.
func (e *Engine) stripPunct(word string) string {
	return e.punct.ReplaceAllString(word, "")
}

// endpoint annotates a canonical system for output.
func (e *Engine) endpoint(name string) Endpoint {
	sec, _ := e.universe.RoundedSec(name)
	class, _ := e.universe.SecClassOf(name)
	return Endpoint{
		System:   name,
		Region:   e.universe.Region[name],
		Sec:      sec,
		SecClass: class,
	}
}

// buildHops annotates every system on a path with its displayed security,
// class and the local registries.
func (e *Engine) buildHops(path graph.Path) []Hop {
	hops := make([]Hop, 0, len(path))
	for _, name := range path {
		sec, _ := e.universe.RoundedSec(name)
		class, _ := e.universe.SecClassOf(name)
		_, itc := e.data.ITCs[name]
		hops = append(hops, Hop{
			System:   name,
			Sec:      sec,
			SecClass: class,
			Stations: e.data.StationCounts[name],
			ITC:      itc,
		})
	}
	return hops
}
