package engine

import (
	"fmt"

	"jumpbot/internal/graph"
	"jumpbot/internal/logger"
)

// Route resolves two endpoint names and computes the route between them.
// Resolution failures come back as warnings on the result, not as an error;
// a route between resolved endpoints in different components returns
// graph.ErrNoPath alongside the partially filled result.
func (e *Engine) Route(start, end string, opts Options) (*RouteResult, error) {
	result := &RouteResult{}

	startRes := e.resolver.Resolve(start)
	result.Warnings = append(result.Warnings, startRes.Warnings...)
	endRes := e.resolver.Resolve(end)
	result.Warnings = append(result.Warnings, endRes.Warnings...)
	if !startRes.OK() || !endRes.OK() {
		return result, nil
	}

	return e.routeBetween(startRes.System, endRes.System, opts, result)
}

// routeBetween computes the route between two already-canonical systems,
// filling the provided result.
func (e *Engine) routeBetween(from, to string, opts Options, result *RouteResult) (*RouteResult, error) {
	result.Start = e.endpoint(from)
	result.End = e.endpoint(to)

	if from == to {
		result.Systems = []string{from}
		return result, nil
	}

	path, err := e.graphFor(opts.AvoidNull).ShortestPath(from, to)
	if err != nil {
		return result, fmt.Errorf("route %s -> %s: %w", from, to, err)
	}
	result.Jumps = path.Jumps()
	result.Security = e.universe.TallySecurity(path)
	result.Systems = path
	if opts.IncludePath {
		result.Hops = e.buildHops(path)
	}

	if opts.AvoidNull {
		result.Comparison = e.compareToDefault(from, to, path)
	}
	return result, nil
}

// compareToDefault reports what the null-avoiding route cost and saved
// relative to the plain shortest route for the same endpoints.
func (e *Engine) compareToDefault(from, to string, safePath graph.Path) *Comparison {
	defPath, err := e.def.ShortestPath(from, to)
	if err != nil {
		// Connected on the safe variant but not the default one cannot
		// happen: both share the same adjacency.
		logger.Warn("ENGINE", fmt.Sprintf("default route %s -> %s failed during comparison: %v", from, to, err))
		return nil
	}

	safeNulls := e.universe.TallySecurity(safePath).NullSec
	defNulls := e.universe.TallySecurity(defPath).NullSec
	cmp := &Comparison{
		DefaultJumps:   defPath.Jumps(),
		DefaultNullsec: defNulls,
	}
	switch {
	case safeNulls < defNulls:
		cmp.FewerNullsec = defNulls - safeNulls
		cmp.ExtraJumps = safePath.Jumps() - defPath.Jumps()
	case safeNulls == defNulls:
		cmp.AlreadySafest = true
	default:
		// More nullsec on the penalized graph should be impossible; report
		// it rather than hiding it or crashing.
		cmp.Anomaly = true
		logger.Warn("ENGINE", fmt.Sprintf("null-avoiding route %s -> %s crossed more nullsec (%d) than default (%d)", from, to, safeNulls, defNulls))
	}
	return cmp
}
