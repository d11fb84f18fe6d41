package graph

// Edge is one weighted stargate connection in a Graph variant.
type Edge struct {
	To   string `json:"to"`
	Cost int    `json:"cost"`
}

// Graph is a weighted view over the Universe adjacency. Two variants exist:
// the default one (every edge cost 1) and the null-avoiding one (edges into
// a nullsec system carry a large penalty). Both are derived once from the
// same adjacency and never mutated, so concurrent reads need no locking.
type Graph struct {
	AvoidNull bool
	Edges     map[string][]Edge
}

// BuildGraph derives a Graph variant from the universe adjacency. With
// avoidNull set, edges into nullsec systems cost nullPenalty instead of 1,
// which biases shortest-path search away from them without forbidding them
// outright. Deterministic given the finalized (sorted) adjacency.
func (u *Universe) BuildGraph(avoidNull bool, nullPenalty int) *Graph {
	if nullPenalty <= 0 {
		nullPenalty = 10000
	}
	g := &Graph{
		AvoidNull: avoidNull,
		Edges:     make(map[string][]Edge, len(u.Adj)),
	}
	for system, neighbors := range u.Adj {
		edges := make([]Edge, 0, len(neighbors))
		for _, neighbor := range neighbors {
			cost := 1
			if avoidNull {
				if class, err := u.SecClassOf(neighbor); err == nil && class == NullSec {
					cost = nullPenalty
				}
			}
			edges = append(edges, Edge{To: neighbor, Cost: cost})
		}
		g.Edges[system] = edges
	}
	return g
}

// HasSystem reports whether the graph contains a system.
func (g *Graph) HasSystem(name string) bool {
	_, ok := g.Edges[name]
	return ok
}

// EdgeCount returns the number of directed edges in the graph.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, edges := range g.Edges {
		n += len(edges)
	}
	return n
}
