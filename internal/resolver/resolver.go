// Package resolver maps free-form user text to canonical system names,
// tolerating case differences, O/0 mixups and unambiguous prefixes.
package resolver

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Inputs shorter than this never fuzzy-match; single characters would match
// half the star map.
const minFuzzyLen = 2

// WarningKind labels a resolution warning.
type WarningKind string

const (
	WarnUnknown   WarningKind = "unknown_system"
	WarnAmbiguous WarningKind = "ambiguous_name"
	WarnOhMixup   WarningKind = "oh_mixup"
)

// Warning is one human-relevant note produced during resolution. The
// presentation layer decides how to render it.
type Warning struct {
	Kind       WarningKind `json:"kind"`
	Input      string      `json:"input"`
	Corrected  string      `json:"corrected,omitempty"`
	Candidates []string    `json:"candidates,omitempty"`
}

// Result is the outcome of resolving one input. System is empty on failure;
// Warnings explain what happened either way.
type Result struct {
	System   string    `json:"system,omitempty"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// OK reports whether resolution produced a canonical system.
func (r Result) OK() bool { return r.System != "" }

// Flatten is the normalized form used for tolerant lookup: lower-cased with
// the digit 0 replaced by the letter o, because the two are practically
// interchangeable in system names as people type them.
func Flatten(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "0", "o")
}

type flatEntry struct {
	flat      string
	canonical string
}

// Resolver owns the normalized index and the append-only memo caches. The
// index is immutable; the memos are guarded and deduped, and stay valid for
// the lifetime of the loaded star map.
type Resolver struct {
	canonical map[string]bool
	flat      map[string]string // flattened -> canonical; no collisions in the dataset
	entries   []flatEntry       // sorted by canonical name, for deterministic candidate order

	mu     sync.RWMutex
	fuzzy  map[string][]string
	fixups map[string]string
	valid  map[string]bool
	group  singleflight.Group
}

// New builds a Resolver over the canonical system names.
func New(names []string) *Resolver {
	r := &Resolver{
		canonical: make(map[string]bool, len(names)),
		flat:      make(map[string]string, len(names)),
		entries:   make([]flatEntry, 0, len(names)),
		fuzzy:     make(map[string][]string),
		fixups:    make(map[string]string),
		valid:     make(map[string]bool),
	}
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	for _, name := range sorted {
		r.canonical[name] = true
		r.flat[Flatten(name)] = name
		r.entries = append(r.entries, flatEntry{flat: Flatten(name), canonical: name})
	}
	return r
}

// Resolve maps text to a canonical system name. Exact matches win, then the
// flattened index, then an unambiguous fuzzy prefix. Failures and
// corrections are reported as warnings on the result.
func (r *Resolver) Resolve(text string) Result {
	if r.canonical[text] {
		return Result{System: text}
	}

	if canonical, ok := r.Fixup(text); ok {
		res := Result{System: canonical}
		if ohMixup(text, canonical) {
			res.Warnings = append(res.Warnings, Warning{
				Kind: WarnOhMixup, Input: text, Corrected: canonical,
			})
		}
		return res
	}

	candidates := r.fuzzyMatch(text)
	switch len(candidates) {
	case 0:
		return Result{Warnings: []Warning{{Kind: WarnUnknown, Input: text}}}
	case 1:
		canonical := candidates[0]
		res := Result{System: canonical}
		merged := mergeFuzzy(text, canonical)
		if ohMixup(merged, canonical) {
			res.Warnings = append(res.Warnings, Warning{
				Kind: WarnOhMixup, Input: merged, Corrected: canonical,
			})
		}
		return res
	default:
		return Result{Warnings: []Warning{{
			Kind: WarnAmbiguous, Input: text, Candidates: candidates,
		}}}
	}
}

// IsKnown reports whether text names a system exactly or via the flattened
// index. Memoized; fuzzy prefixes do not count as known.
func (r *Resolver) IsKnown(text string) bool {
	r.mu.RLock()
	known, ok := r.valid[text]
	r.mu.RUnlock()
	if ok {
		return known
	}

	known = r.canonical[text]
	if !known {
		_, known = r.Fixup(text)
	}
	r.mu.Lock()
	r.valid[text] = known
	r.mu.Unlock()
	return known
}

// Fixup returns the canonical spelling for a case- or O/0-mangled name.
func (r *Resolver) Fixup(text string) (string, bool) {
	if r.canonical[text] {
		return text, true
	}

	r.mu.RLock()
	canonical, ok := r.fixups[text]
	r.mu.RUnlock()
	if ok {
		return canonical, true
	}

	canonical, ok = r.flat[Flatten(text)]
	if !ok {
		return "", false
	}
	r.mu.Lock()
	r.fixups[text] = canonical
	r.mu.Unlock()
	return canonical, true
}

// fuzzyMatch collects every canonical name whose flattened form starts with
// the flattened input. Results are memoized per raw input; concurrent misses
// for the same input are deduped.
func (r *Resolver) fuzzyMatch(text string) []string {
	if len(text) < minFuzzyLen {
		return nil
	}

	r.mu.RLock()
	cached, ok := r.fuzzy[text]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	v, _, _ := r.group.Do(text, func() (interface{}, error) {
		flat := Flatten(text)
		var candidates []string
		for _, e := range r.entries {
			if strings.HasPrefix(e.flat, flat) {
				candidates = append(candidates, e.canonical)
			}
		}
		r.mu.Lock()
		r.fuzzy[text] = candidates
		r.mu.Unlock()
		return candidates, nil
	})
	return v.([]string)
}

// FuzzyCandidates exposes the fuzzy match list for callers that want to scan
// free text themselves.
func (r *Resolver) FuzzyCandidates(text string) []string {
	return r.fuzzyMatch(text)
}

// Fixups returns a copy of the accumulated fixup memo, for persistence
// across restarts.
func (r *Resolver) Fixups() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.fixups))
	for k, v := range r.fixups {
		out[k] = v
	}
	return out
}

// WarmFixups preloads previously persisted fixups. Entries that no longer
// resolve in the current star map are dropped.
func (r *Resolver) WarmFixups(entries map[string]string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for input, canonical := range entries {
		if r.canonical[canonical] && r.flat[Flatten(input)] == canonical {
			r.fixups[input] = canonical
			n++
		}
	}
	return n
}

// mergeFuzzy combines the user's prefix with the completion's suffix, so a
// mixup in the typed prefix is still detectable against the canonical name.
func mergeFuzzy(submission, completion string) string {
	if len(submission) >= len(completion) {
		return submission
	}
	return submission + completion[len(submission):]
}

// ohMixup reports whether provided differs from the canonical spelling by
// more than letter case, i.e. a 0/o substitution happened somewhere.
func ohMixup(provided, canonical string) bool {
	return !strings.EqualFold(provided, canonical)
}
