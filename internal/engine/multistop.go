package engine

import (
	"errors"
	"fmt"
	"strings"

	"jumpbot/internal/graph"
	"jumpbot/internal/resolver"
)

// Multistop builds an itinerary through an ordered list of stop names.
// Unresolvable stops are dropped with warnings, consecutive stops that
// resolve to the same system contribute no leg, and a leg across
// disconnected components is reported unreachable rather than failing the
// whole itinerary.
func (e *Engine) Multistop(stops []string, opts Options) (*Itinerary, error) {
	if len(stops) > e.cfg.MaxStops {
		return nil, fmt.Errorf("%w: %d stops, limit %d", ErrTooManyStops, len(stops), e.cfg.MaxStops)
	}

	itinerary := &Itinerary{}
	var resolved []string
	for _, stop := range stops {
		res := e.resolver.Resolve(e.stripPunct(stop))
		itinerary.Warnings = append(itinerary.Warnings, res.Warnings...)
		if res.OK() {
			resolved = append(resolved, res.System)
		}
	}
	itinerary.Warnings = dedupeWarnings(itinerary.Warnings)
	itinerary.Stops = resolved

	if len(resolved) < 2 {
		return nil, fmt.Errorf("%w: %d of %d stops resolved", ErrInsufficientStops, len(resolved), len(stops))
	}

	g := e.graphFor(opts.AvoidNull)
	for i := 0; i < len(resolved)-1; i++ {
		from, to := resolved[i], resolved[i+1]
		if from == to {
			continue // degenerate leg
		}
		leg := Leg{From: from, To: to}
		path, err := g.ShortestPath(from, to)
		switch {
		case errors.Is(err, graph.ErrNoPath):
			leg.Unreachable = true
		case err != nil:
			return nil, err
		default:
			leg.Jumps = path.Jumps()
			leg.Security = e.universe.TallySecurity(path)
			leg.Systems = path
			itinerary.TotalJumps += leg.Jumps
			itinerary.TotalNullsec += leg.Security.NullSec
		}
		itinerary.Legs = append(itinerary.Legs, leg)
	}

	if opts.IncludePath {
		itinerary.Hops = e.stitchHops(itinerary)
	}
	return itinerary, nil
}

// stitchHops concatenates leg paths into one annotated hop list, skipping
// each later leg's first system (it is the previous leg's last) and marking
// intermediate stops.
func (e *Engine) stitchHops(itinerary *Itinerary) []Hop {
	stopSet := make(map[string]bool, len(itinerary.Stops))
	for _, s := range itinerary.Stops[1 : len(itinerary.Stops)-1] {
		stopSet[s] = true
	}

	var combined graph.Path
	for i, leg := range itinerary.Legs {
		if leg.Unreachable {
			continue
		}
		systems := leg.Systems
		if i > 0 && len(combined) > 0 && len(systems) > 0 && combined[len(combined)-1] == systems[0] {
			systems = systems[1:]
		}
		combined = append(combined, systems...)
	}

	hops := e.buildHops(combined)
	for i := range hops {
		if i > 0 && i < len(hops)-1 && stopSet[hops[i].System] {
			hops[i].Stop = true
		}
	}
	return hops
}

// dedupeWarnings drops repeated warnings while preserving first-seen order.
func dedupeWarnings(warnings []resolver.Warning) []resolver.Warning {
	seen := make(map[string]bool, len(warnings))
	out := warnings[:0]
	for _, w := range warnings {
		key := string(w.Kind) + "\x00" + w.Input + "\x00" + w.Corrected + "\x00" + strings.Join(w.Candidates, ",")
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, w)
	}
	return out
}
