package graph

import "fmt"

// NearestMatching runs a breadth-first search from start and returns up to
// limit systems satisfying pred, in discovery order (nondecreasing jump
// distance). The start system is never returned, even if it matches. When
// more than limit candidates sit in the same BFS layer, the result is
// truncated to the first limit found in traversal order; callers must not
// rely on fairness among tied candidates.
func (u *Universe) NearestMatching(start string, pred func(string) bool, limit int) ([]string, error) {
	if !u.HasSystem(start) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSystem, start)
	}
	if limit <= 0 {
		return nil, nil
	}

	visited := map[string]bool{start: true}
	queue := []string{start}
	var found []string

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range u.Adj[current] {
			if visited[neighbor] {
				continue
			}
			visited[neighbor] = true
			if pred(neighbor) {
				found = append(found, neighbor)
				if len(found) == limit {
					return found, nil
				}
			}
			queue = append(queue, neighbor)
		}
	}
	return found, nil
}

// NearestNonNull returns the closest system that is not nullsec, or "" if
// the whole reachable component is nullsec.
func (u *Universe) NearestNonNull(start string) (string, error) {
	matches, err := u.NearestMatching(start, func(name string) bool {
		class, err := u.SecClassOf(name)
		return err == nil && class != NullSec
	}, 1)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "", nil
	}
	return matches[0], nil
}
