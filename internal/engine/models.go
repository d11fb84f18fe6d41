package engine

import (
	"jumpbot/internal/graph"
	"jumpbot/internal/resolver"
)

// Options selects the graph variant and output shape for route queries.
type Options struct {
	// AvoidNull routes on the null-avoiding graph variant and adds a
	// comparison against the default route.
	AvoidNull bool
	// IncludePath populates the annotated hop list; totals-only callers
	// leave it off.
	IncludePath bool
}

// Endpoint is an annotated route endpoint.
type Endpoint struct {
	System   string         `json:"system"`
	Region   string         `json:"region"`
	Sec      float64        `json:"sec"`
	SecClass graph.SecClass `json:"sec_class"`
}

// Hop is one annotated system on a rendered path.
type Hop struct {
	System   string         `json:"system"`
	Sec      float64        `json:"sec"`
	SecClass graph.SecClass `json:"sec_class"`
	Stations int            `json:"stations,omitempty"`
	ITC      bool           `json:"itc,omitempty"`
	Stop     bool           `json:"stop,omitempty"` // an itinerary stop, not just a transit hop
}

// Comparison reports how a null-avoiding route relates to the default one
// for the same endpoints.
type Comparison struct {
	DefaultJumps   int  `json:"default_jumps"`
	DefaultNullsec int  `json:"default_nullsec"`
	FewerNullsec   int  `json:"fewer_nullsec"`
	ExtraJumps     int  `json:"extra_jumps"`
	AlreadySafest  bool `json:"already_safest"`
	// Anomaly flags the logically impossible case of the safe route crossing
	// more nullsec than the default one. Surfaced, never fatal.
	Anomaly bool `json:"anomaly,omitempty"`
}

// RouteResult is one end-to-end route. Systems is empty when either endpoint
// failed to resolve; Warnings say why.
type RouteResult struct {
	Start      Endpoint            `json:"start"`
	End        Endpoint            `json:"end"`
	Jumps      int                 `json:"jumps"`
	Security   graph.SecTally      `json:"security"`
	Systems    []string            `json:"systems,omitempty"`
	Hops       []Hop               `json:"hops,omitempty"`
	Warnings   []resolver.Warning  `json:"warnings,omitempty"`
	Comparison *Comparison         `json:"comparison,omitempty"`
}

// Resolved reports whether both endpoints resolved and a path was computed.
func (r *RouteResult) Resolved() bool { return len(r.Systems) > 0 }

// Leg is one segment of a multi-stop itinerary.
type Leg struct {
	From     string         `json:"from"`
	To       string         `json:"to"`
	Jumps    int            `json:"jumps"`
	Security graph.SecTally `json:"security"`
	Systems  []string       `json:"systems,omitempty"`
	// Unreachable marks endpoints in different connected components; the
	// itinerary carries on without this leg's totals.
	Unreachable bool `json:"unreachable,omitempty"`
}

// Itinerary is a resolved multi-stop route with aggregate totals.
type Itinerary struct {
	Stops        []string           `json:"stops"`
	Legs         []Leg              `json:"legs"`
	TotalJumps   int                `json:"total_jumps"`
	TotalNullsec int                `json:"total_nullsec"`
	Warnings     []resolver.Warning `json:"warnings,omitempty"`
	Hops         []Hop              `json:"hops,omitempty"`
}

// ProximityMatch is one nearby system found by BFS.
type ProximityMatch struct {
	System   string         `json:"system"`
	Region   string         `json:"region"`
	Sec      float64        `json:"sec"`
	SecClass graph.SecClass `json:"sec_class"`
	Jumps    int            `json:"jumps"`
	Stations int            `json:"stations,omitempty"`
	Hops     []Hop          `json:"hops,omitempty"`
}

// ProximityResult is the outcome of a nearest-X query.
type ProximityResult struct {
	From Endpoint `json:"from"`
	// StartStations is set when the start system itself hosts stations; the
	// start is still excluded from Matches.
	StartStations int                `json:"start_stations,omitempty"`
	Matches       []ProximityMatch   `json:"matches"`
	Warnings      []resolver.Warning `json:"warnings,omitempty"`
}

// PopularResult fans one target out to routes from each configured popular
// system.
type PopularResult struct {
	Target   Endpoint           `json:"target"`
	Routes   []*RouteResult     `json:"routes"`
	Warnings []resolver.Warning `json:"warnings,omitempty"`
}

// ScanResult lists the recognizable systems found in a free-text blob, each
// with routes from the popular systems.
type ScanResult struct {
	Matches []*PopularResult `json:"matches"`
}
