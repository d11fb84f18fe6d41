package resolver

import (
	"sync"
	"testing"
)

func testResolver() *Resolver {
	return New([]string{
		"Jita", "Taisy", "Alpha1", "Alpha2", "D7-CL0", "X0-ABC", "UEJX-G", "New Caldari",
	})
}

func TestResolve_Exact(t *testing.T) {
	r := testResolver()
	res := r.Resolve("Jita")
	if res.System != "Jita" || len(res.Warnings) != 0 {
		t.Errorf("Resolve(Jita) = %+v, want clean Jita", res)
	}
}

func TestResolve_CaseInsensitiveNoWarning(t *testing.T) {
	r := testResolver()
	res := r.Resolve("jita")
	if res.System != "Jita" {
		t.Fatalf("Resolve(jita) = %+v, want Jita", res)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("case-only difference flagged warnings: %+v", res.Warnings)
	}
}

func TestResolve_OhMixup(t *testing.T) {
	r := testResolver()
	res := r.Resolve("D7-CLO") // letter O for the trailing zero
	if res.System != "D7-CL0" {
		t.Fatalf("Resolve(D7-CLO) = %+v, want D7-CL0", res)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Kind != WarnOhMixup {
		t.Fatalf("warnings = %+v, want one oh_mixup", res.Warnings)
	}
	if res.Warnings[0].Corrected != "D7-CL0" {
		t.Errorf("Corrected = %q, want D7-CL0", res.Warnings[0].Corrected)
	}
}

func TestResolve_FuzzyUnique(t *testing.T) {
	r := testResolver()
	res := r.Resolve("Tai")
	if res.System != "Taisy" || len(res.Warnings) != 0 {
		t.Errorf("Resolve(Tai) = %+v, want clean Taisy", res)
	}

	// Autocomplete across case and punctuation-heavy names.
	res = r.Resolve("uejx")
	if res.System != "UEJX-G" || len(res.Warnings) != 0 {
		t.Errorf("Resolve(uejx) = %+v, want clean UEJX-G", res)
	}
}

func TestResolve_FuzzyWithMixupInPrefix(t *testing.T) {
	r := testResolver()
	res := r.Resolve("xo-a") // typed o, canonical has 0
	if res.System != "X0-ABC" {
		t.Fatalf("Resolve(xo-a) = %+v, want X0-ABC", res)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Kind != WarnOhMixup {
		t.Errorf("warnings = %+v, want one oh_mixup", res.Warnings)
	}
}

func TestResolve_Ambiguous(t *testing.T) {
	r := testResolver()
	res := r.Resolve("Alph")
	if res.OK() {
		t.Fatalf("Resolve(Alph) resolved to %q, want failure", res.System)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Kind != WarnAmbiguous {
		t.Fatalf("warnings = %+v, want one ambiguous_name", res.Warnings)
	}
	got := res.Warnings[0].Candidates
	if len(got) != 2 || got[0] != "Alpha1" || got[1] != "Alpha2" {
		t.Errorf("candidates = %v, want [Alpha1 Alpha2]", got)
	}

	// The exact name still resolves cleanly despite the shared prefix.
	if res := r.Resolve("Alpha1"); res.System != "Alpha1" || len(res.Warnings) != 0 {
		t.Errorf("Resolve(Alpha1) = %+v, want clean Alpha1", res)
	}
}

func TestResolve_Unknown(t *testing.T) {
	r := testResolver()
	res := r.Resolve("Zzzzz")
	if res.OK() {
		t.Fatalf("Resolve(Zzzzz) = %+v, want failure", res)
	}
	if len(res.Warnings) != 1 || res.Warnings[0].Kind != WarnUnknown {
		t.Errorf("warnings = %+v, want one unknown_system", res.Warnings)
	}
}

func TestResolve_TooShortForFuzzy(t *testing.T) {
	r := testResolver()
	res := r.Resolve("J")
	if res.OK() {
		t.Errorf("single-letter input resolved to %q", res.System)
	}
}

func TestIsKnown(t *testing.T) {
	r := testResolver()
	tests := []struct {
		in   string
		want bool
	}{
		{"Jita", true},
		{"jita", true},
		{"D7-CLO", true},  // flat index hit
		{"Tai", false},    // fuzzy prefixes are not "known"
		{"Zzzzz", false},
	}
	for _, tt := range tests {
		if got := r.IsKnown(tt.in); got != tt.want {
			t.Errorf("IsKnown(%q) = %v, want %v", tt.in, got, tt.want)
		}
		// Second call hits the memo and must agree.
		if got := r.IsKnown(tt.in); got != tt.want {
			t.Errorf("IsKnown(%q) memoized = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFixupsPersistRoundTrip(t *testing.T) {
	r := testResolver()
	r.Resolve("d7-clo")
	fixups := r.Fixups()
	if fixups["d7-clo"] != "D7-CL0" {
		t.Fatalf("Fixups() = %v, want d7-clo -> D7-CL0", fixups)
	}

	fresh := testResolver()
	warmed := fresh.WarmFixups(map[string]string{
		"d7-clo": "D7-CL0",
		"stale":  "Gone",   // target not in this star map
		"jlta":   "Jita",   // flattened form doesn't actually map there
	})
	if warmed != 1 {
		t.Errorf("WarmFixups warmed %d entries, want 1", warmed)
	}
	if got, ok := fresh.Fixup("d7-clo"); !ok || got != "D7-CL0" {
		t.Errorf("Fixup(d7-clo) after warm = %q/%v", got, ok)
	}
}

func TestResolve_ConcurrentSameInput(t *testing.T) {
	r := testResolver()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if res := r.Resolve("Tai"); res.System != "Taisy" {
				t.Errorf("concurrent Resolve(Tai) = %+v", res)
			}
		}()
	}
	wg.Wait()
}
