package graph

import (
	"container/heap"
	"fmt"
)

// Path is an ordered list of system names from source to destination,
// source included.
type Path []string

// Jumps returns the number of gate jumps along the path. The source is not
// itself a jump.
func (p Path) Jumps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// ShortestPath returns the minimum-weight path between two systems using
// Dijkstra over a priority frontier. Ties in accumulated weight settle in
// heap pop order, which is deterministic because neighbor lists are sorted
// at build time.
func (g *Graph) ShortestPath(origin, dest string) (Path, error) {
	if !g.HasSystem(origin) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSystem, origin)
	}
	if !g.HasSystem(dest) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSystem, dest)
	}
	if origin == dest {
		return Path{origin}, nil
	}

	dist := map[string]int{origin: 0}
	prev := make(map[string]string)

	pq := &priorityQueue{{system: origin, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if item.system == dest {
			return reconstruct(prev, origin, dest), nil
		}
		if d, ok := dist[item.system]; ok && item.dist > d {
			continue // stale queue entry
		}
		for _, e := range g.Edges[item.system] {
			nd := item.dist + e.Cost
			if d, ok := dist[e.To]; !ok || nd < d {
				dist[e.To] = nd
				prev[e.To] = item.system
				heap.Push(pq, pqItem{system: e.To, dist: nd})
			}
		}
	}
	return nil, fmt.Errorf("%w: %s -> %s", ErrNoPath, origin, dest)
}

func reconstruct(prev map[string]string, origin, dest string) Path {
	var reversed Path
	for at := dest; ; {
		reversed = append(reversed, at)
		if at == origin {
			break
		}
		at = prev[at]
	}
	path := make(Path, len(reversed))
	for i, s := range reversed {
		path[len(reversed)-1-i] = s
	}
	return path
}

// Priority queue for Dijkstra
type pqItem struct {
	system string
	dist   int
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int           { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
