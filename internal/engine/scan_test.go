package engine

import "testing"

func TestFromPopular(t *testing.T) {
	e := testEngine(t)
	result, err := e.FromPopular("Evati")
	if err != nil {
		t.Fatalf("FromPopular: %v", err)
	}
	if result.Target.System != "Evati" {
		t.Fatalf("target = %+v", result.Target)
	}
	if len(result.Routes) != 2 {
		t.Fatalf("routes = %d, want one from each popular system", len(result.Routes))
	}
	if result.Routes[0].Start.System != "Adra" || result.Routes[1].Start.System != "Bela" {
		t.Errorf("route starts = %s, %s, want Adra, Bela",
			result.Routes[0].Start.System, result.Routes[1].Start.System)
	}
}

func TestFromPopular_TargetIsPopular(t *testing.T) {
	e := testEngine(t)
	result, err := e.FromPopular("Adra")
	if err != nil {
		t.Fatalf("FromPopular: %v", err)
	}
	// The target itself is skipped; only the other popular system routes.
	if len(result.Routes) != 1 || result.Routes[0].Start.System != "Bela" {
		t.Errorf("routes = %+v, want just Bela -> Adra", result.Routes)
	}
}

func TestFromPopular_Unresolved(t *testing.T) {
	e := testEngine(t)
	result, err := e.FromPopular("Zzzzz")
	if err != nil {
		t.Fatalf("FromPopular: %v", err)
	}
	if len(result.Routes) != 0 || len(result.Warnings) != 1 {
		t.Errorf("result = %+v, want no routes and one warning", result)
	}
}

func TestScanText_ExactName(t *testing.T) {
	e := testEngine(t)
	result := e.ScanText("hostiles reported in Evati, forming now")
	if len(result.Matches) != 1 {
		t.Fatalf("matches = %d, want 1", len(result.Matches))
	}
	if result.Matches[0].Target.System != "Evati" {
		t.Errorf("target = %s, want Evati", result.Matches[0].Target.System)
	}
}

func TestScanText_FuzzyOnlyForNullsec(t *testing.T) {
	e := testEngine(t)
	// "N0-" fuzzy-matches the nullsec N0-XY uniquely; "Dor" would match
	// lowsec-adjacent Doria but fuzzy scan hits only count for nullsec.
	result := e.ScanText("ping N0- staging")
	if len(result.Matches) != 1 || result.Matches[0].Target.System != "N0-XY" {
		t.Fatalf("matches = %+v, want N0-XY", result.Matches)
	}

	result = e.ScanText("moving to Dor later")
	if len(result.Matches) != 0 {
		t.Errorf("fuzzy non-null match leaked: %+v", result.Matches)
	}
}

func TestScanText_DenylistAndShortWords(t *testing.T) {
	e := testEngine(t)
	// "gate" is denylisted even though it could fuzzy-match Gila... it
	// can't, but the filter runs first regardless; "Ev" is below the
	// 3-rune scan threshold.
	result := e.ScanText("take the gate at Ev")
	if len(result.Matches) != 0 {
		t.Errorf("matches = %+v, want none", result.Matches)
	}
}

func TestScanText_DuplicatesCollapse(t *testing.T) {
	e := testEngine(t)
	result := e.ScanText("Evati Evati evati\nEvati again")
	if len(result.Matches) != 1 {
		t.Errorf("matches = %d, want duplicates collapsed to 1", len(result.Matches))
	}
}

func TestScanText_PopularSystemsIgnored(t *testing.T) {
	e := testEngine(t)
	result := e.ScanText("form up in Adra")
	if len(result.Matches) != 0 {
		t.Errorf("popular system produced matches: %+v", result.Matches)
	}
}
