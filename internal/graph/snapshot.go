package graph

import (
	"encoding/json"
	"fmt"
	"os"
)

const snapshotVersion = 1

// snapshotFile is the on-disk form of one Graph variant. The counts exist so
// a stale snapshot from an older dataset is detected and rebuilt instead of
// silently serving wrong routes.
type snapshotFile struct {
	Version   int               `json:"version"`
	AvoidNull bool              `json:"avoid_null"`
	Systems   int               `json:"systems"`
	EdgeCount int               `json:"edges"`
	Adjacency map[string][]Edge `json:"adjacency"`
}

// SaveSnapshot writes a Graph variant to path. Failure to persist is not
// fatal to the caller; the graph is already built in memory.
func SaveSnapshot(g *Graph, path string) error {
	snap := snapshotFile{
		Version:   snapshotVersion,
		AvoidNull: g.AvoidNull,
		Systems:   len(g.Edges),
		EdgeCount: g.EdgeCount(),
		Adjacency: g.Edges,
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("write snapshot %s: %w", path, err)
	}
	return nil
}

// LoadSnapshot restores a Graph variant from path and validates it against
// the current universe. Any read, decode or consistency failure returns an
// error wrapping ErrBadSnapshot; the caller rebuilds from source.
func LoadSnapshot(path string, u *Universe, avoidNull bool) (*Graph, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrBadSnapshot, path, err)
	}
	var snap snapshotFile
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrBadSnapshot, path, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrBadSnapshot, snap.Version, snapshotVersion)
	}
	if snap.AvoidNull != avoidNull {
		return nil, fmt.Errorf("%w: variant mismatch", ErrBadSnapshot)
	}
	if snap.Systems != len(u.Adj) || snap.Systems != len(snap.Adjacency) {
		return nil, fmt.Errorf("%w: system count %d, universe has %d", ErrBadSnapshot, snap.Systems, len(u.Adj))
	}
	g := &Graph{AvoidNull: avoidNull, Edges: snap.Adjacency}
	if snap.EdgeCount != g.EdgeCount() {
		return nil, fmt.Errorf("%w: edge count mismatch", ErrBadSnapshot)
	}
	for system := range g.Edges {
		if !u.HasSystem(system) {
			return nil, fmt.Errorf("%w: snapshot system %s not in universe", ErrBadSnapshot, system)
		}
	}
	return g, nil
}

// LoadOrBuildGraph restores a variant from its snapshot when possible and
// rebuilds (and re-persists) it otherwise. The returned bool reports whether
// the snapshot was used.
func (u *Universe) LoadOrBuildGraph(path string, avoidNull bool, nullPenalty int) (*Graph, bool) {
	if g, err := LoadSnapshot(path, u, avoidNull); err == nil {
		return g, true
	}
	g := u.BuildGraph(avoidNull, nullPenalty)
	// Best effort; an unwritable cache dir just means a rebuild next start.
	_ = SaveSnapshot(g, path)
	return g, false
}
