package engine

import "fmt"

// NearestSafe finds the closest non-nullsec system to a starting point,
// with the default-graph path to it. Results are memoized per start system
// for the lifetime of the star map; concurrent misses are deduped.
func (e *Engine) NearestSafe(start string, opts Options) (*ProximityResult, error) {
	result := &ProximityResult{}
	res := e.resolver.Resolve(start)
	result.Warnings = res.Warnings
	if !res.OK() {
		return result, nil
	}
	from := res.System
	result.From = e.endpoint(from)

	closest, err := e.nearestSafeTo(from)
	if err != nil {
		return result, err
	}
	if closest == "" {
		return result, fmt.Errorf("%w: no non-nullsec system reachable from %s", ErrNoMatch, from)
	}

	match, err := e.annotateMatch(from, closest, opts)
	if err != nil {
		return result, err
	}
	result.Matches = []ProximityMatch{match}
	return result, nil
}

func (e *Engine) nearestSafeTo(from string) (string, error) {
	e.safeMu.RLock()
	closest, ok := e.nearestSafe[from]
	e.safeMu.RUnlock()
	if ok {
		return closest, nil
	}

	v, err, _ := e.group.Do("safe:"+from, func() (interface{}, error) {
		closest, err := e.universe.NearestNonNull(from)
		if err != nil {
			return "", err
		}
		e.safeMu.Lock()
		e.nearestSafe[from] = closest
		e.safeMu.Unlock()
		return closest, nil
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// NearestITCs finds the closest systems hosting an inter-trade-zone channel.
func (e *Engine) NearestITCs(start string, count int, opts Options) (*ProximityResult, error) {
	if count <= 0 {
		count = e.cfg.ITCCount
	}
	return e.nearestByPredicate(start, count, opts, func(name string) bool {
		_, ok := e.data.ITCs[name]
		return ok
	})
}

// NearestStations finds the closest systems with NPC stations. A start
// system that itself has stations is reported via StartStations but still
// excluded from the matches.
func (e *Engine) NearestStations(start string, count int, opts Options) (*ProximityResult, error) {
	if count <= 0 {
		count = e.cfg.StationCount
	}
	result, err := e.nearestByPredicate(start, count, opts, func(name string) bool {
		return e.data.StationCounts[name] > 0
	})
	if result != nil && result.From.System != "" {
		result.StartStations = e.data.StationCounts[result.From.System]
		for i := range result.Matches {
			result.Matches[i].Stations = e.data.StationCounts[result.Matches[i].System]
		}
	}
	return result, err
}

func (e *Engine) nearestByPredicate(start string, count int, opts Options, pred func(string) bool) (*ProximityResult, error) {
	result := &ProximityResult{}
	res := e.resolver.Resolve(start)
	result.Warnings = res.Warnings
	if !res.OK() {
		return result, nil
	}
	from := res.System
	result.From = e.endpoint(from)

	matches, err := e.universe.NearestMatching(from, pred, count)
	if err != nil {
		return result, err
	}
	if len(matches) == 0 {
		return result, fmt.Errorf("%w: from %s", ErrNoMatch, from)
	}
	for _, name := range matches {
		match, err := e.annotateMatch(from, name, opts)
		if err != nil {
			return result, err
		}
		result.Matches = append(result.Matches, match)
	}
	return result, nil
}

// annotateMatch decorates a found system with its distance from the start.
func (e *Engine) annotateMatch(from, name string, opts Options) (ProximityMatch, error) {
	path, err := e.def.ShortestPath(from, name)
	if err != nil {
		// BFS found it over the same adjacency, so this cannot fail.
		return ProximityMatch{}, fmt.Errorf("annotate %s -> %s: %w", from, name, err)
	}
	sec, _ := e.universe.RoundedSec(name)
	class, _ := e.universe.SecClassOf(name)
	match := ProximityMatch{
		System:   name,
		Region:   e.universe.Region[name],
		Sec:      sec,
		SecClass: class,
		Jumps:    path.Jumps(),
	}
	if opts.IncludePath {
		match.Hops = e.buildHops(path)
	}
	return match, nil
}
