package engine

import "errors"

var (
	// ErrNoMatch means a proximity search exhausted the reachable component
	// without a single match.
	ErrNoMatch = errors.New("no matching system found")
	// ErrInsufficientStops means fewer than two stops of an itinerary
	// resolved to systems.
	ErrInsufficientStops = errors.New("need at least two resolvable stops")
	// ErrTooManyStops means the itinerary exceeds the configured stop cap.
	ErrTooManyStops = errors.New("too many stops")
)
