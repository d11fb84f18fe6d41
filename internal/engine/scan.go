package engine

import (
	"strings"

	"jumpbot/internal/graph"
)

// FromPopular routes from every configured popular system to one target.
// The original single-argument query shape: "how far is X" answered from
// the staging systems people actually fly from.
func (e *Engine) FromPopular(target string) (*PopularResult, error) {
	result := &PopularResult{}
	res := e.resolver.Resolve(target)
	result.Warnings = res.Warnings
	if !res.OK() {
		return result, nil
	}
	to := res.System
	result.Target = e.endpoint(to)

	for _, popular := range e.cfg.PopularSystems {
		if !e.universe.HasSystem(popular) || popular == to {
			continue
		}
		route, err := e.routeBetween(popular, to, Options{}, &RouteResult{})
		if err != nil {
			// A popular system in another component contributes nothing.
			continue
		}
		result.Routes = append(result.Routes, route)
	}
	return result, nil
}

// ScanText picks recognizable system names out of a free-text blob and
// reports routes from the popular systems to each. Exact (or flat-index)
// names always count; fuzzy prefixes only count when they are at least
// three characters, not denylisted, unambiguous and point at a nullsec
// system. Anything looser matches ordinary words far too often.
func (e *Engine) ScanText(text string) *ScanResult {
	result := &ScanResult{}
	seen := make(map[string]bool)

	for _, word := range splitWords(text) {
		word = e.stripPunct(word)
		if word == "" {
			continue
		}
		target := e.scanCandidate(word)
		if target == "" || seen[target] {
			continue
		}
		seen[target] = true
		popular, err := e.FromPopular(target)
		if err != nil || len(popular.Routes) == 0 {
			continue
		}
		result.Matches = append(result.Matches, popular)
	}
	return result
}

// scanCandidate decides whether one scanned word names a routable system,
// returning its canonical name or "".
func (e *Engine) scanCandidate(word string) string {
	if e.resolver.IsKnown(word) {
		canonical, _ := e.resolver.Fixup(word)
		if e.isPopular(canonical) {
			return ""
		}
		return canonical
	}

	if len(word) < 3 || e.isDenylisted(word) {
		return ""
	}
	candidates := e.resolver.FuzzyCandidates(word)
	if len(candidates) != 1 {
		return ""
	}
	canonical := candidates[0]
	if e.isPopular(canonical) {
		return ""
	}
	if class, err := e.universe.SecClassOf(canonical); err != nil || class != graph.NullSec {
		return ""
	}
	return canonical
}

func (e *Engine) isPopular(name string) bool {
	for _, popular := range e.cfg.PopularSystems {
		if popular == name {
			return true
		}
	}
	return false
}

func (e *Engine) isDenylisted(word string) bool {
	lower := strings.ToLower(word)
	for _, denied := range e.cfg.FuzzyDenylist {
		if lower == denied {
			return true
		}
	}
	return false
}

// splitWords breaks a message into words across lines, preserving
// first-appearance order.
func splitWords(text string) []string {
	var words []string
	for _, line := range strings.Split(text, "\n") {
		words = append(words, strings.Fields(line)...)
	}
	return words
}
