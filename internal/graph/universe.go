// Package graph owns the star map: stargate adjacency, security
// classification, the weighted graph variants and the searches over them.
package graph

import (
	"fmt"
	"sort"
)

// Universe holds the adjacency list of solar systems connected by stargates,
// plus per-system region, constellation and true security. It is built once
// at startup and never mutated afterwards, so it is safe for concurrent
// readers without locking.
type Universe struct {
	// Adj maps system name -> sorted list of neighboring system names.
	Adj map[string][]string
	// Region maps system name -> region name.
	Region map[string]string
	// Constellation maps system name -> constellation name.
	Constellation map[string]string
	// TrueSec maps system name -> raw 5-decimal security value.
	TrueSec map[string]float64

	finalized bool
}

// NewUniverse creates an empty Universe with initialized maps.
func NewUniverse() *Universe {
	return &Universe{
		Adj:           make(map[string][]string),
		Region:        make(map[string]string),
		Constellation: make(map[string]string),
		TrueSec:       make(map[string]float64),
	}
}

// AddGate adds one direction of a stargate connection. Source data lists the
// full neighbor set of every system, so both directions are inserted over the
// course of a load and the finished adjacency is symmetric.
func (u *Universe) AddGate(fromSystem, toSystem string) {
	u.Adj[fromSystem] = append(u.Adj[fromSystem], toSystem)
}

// SetSystem records a system's region, constellation and true security.
func (u *Universe) SetSystem(name, region, constellation string, trueSec float64) {
	u.Region[name] = region
	u.Constellation[name] = constellation
	u.TrueSec[name] = trueSec
}

// SetTrueSec overrides a system's raw security value. The dedicated truesec
// dataset carries more precision than the star list and wins when present.
func (u *Universe) SetTrueSec(name string, trueSec float64) {
	u.TrueSec[name] = trueSec
}

// Finalize sorts and de-duplicates every neighbor list so that all later
// traversal is deterministic. Must be called once after loading, before any
// search runs.
func (u *Universe) Finalize() {
	for name, neighbors := range u.Adj {
		sort.Strings(neighbors)
		deduped := neighbors[:0]
		for i, n := range neighbors {
			if i == 0 || n != neighbors[i-1] {
				deduped = append(deduped, n)
			}
		}
		u.Adj[name] = deduped
	}
	// Systems without gates still need an adjacency entry so lookups can
	// tell "isolated" apart from "unknown".
	for name := range u.TrueSec {
		if _, ok := u.Adj[name]; !ok {
			u.Adj[name] = nil
		}
	}
	u.finalized = true
}

// HasSystem reports whether name is a known system.
func (u *Universe) HasSystem(name string) bool {
	_, ok := u.TrueSec[name]
	return ok
}

// Neighbors returns the sorted neighbor list for a system.
func (u *Universe) Neighbors(name string) ([]string, error) {
	if !u.HasSystem(name) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSystem, name)
	}
	return u.Adj[name], nil
}

// SystemCount returns the number of known systems.
func (u *Universe) SystemCount() int {
	return len(u.TrueSec)
}

// GateCount returns the number of directed gate edges.
func (u *Universe) GateCount() int {
	n := 0
	for _, neighbors := range u.Adj {
		n += len(neighbors)
	}
	return n
}
