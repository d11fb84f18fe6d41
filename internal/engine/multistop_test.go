package engine

import (
	"errors"
	"testing"

	"jumpbot/internal/resolver"
)

func TestMultistop_Additivity(t *testing.T) {
	e := testEngine(t)
	itinerary, err := e.Multistop([]string{"Adra", "Ceru", "Evati"}, Options{})
	if err != nil {
		t.Fatalf("Multistop: %v", err)
	}
	if len(itinerary.Legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(itinerary.Legs))
	}

	legSum := itinerary.Legs[0].Jumps + itinerary.Legs[1].Jumps
	if itinerary.TotalJumps != legSum {
		t.Errorf("TotalJumps = %d, legs sum to %d", itinerary.TotalJumps, legSum)
	}
	nullSum := itinerary.Legs[0].Security.NullSec + itinerary.Legs[1].Security.NullSec
	if itinerary.TotalNullsec != nullSum {
		t.Errorf("TotalNullsec = %d, legs sum to %d", itinerary.TotalNullsec, nullSum)
	}

	// And the totals match the two direct routes computed independently.
	ab, _ := e.Route("Adra", "Ceru", Options{})
	bc, _ := e.Route("Ceru", "Evati", Options{})
	if itinerary.TotalJumps != ab.Jumps+bc.Jumps {
		t.Errorf("TotalJumps = %d, want %d", itinerary.TotalJumps, ab.Jumps+bc.Jumps)
	}
	if itinerary.TotalNullsec != ab.Security.NullSec+bc.Security.NullSec {
		t.Errorf("TotalNullsec = %d, want %d", itinerary.TotalNullsec, ab.Security.NullSec+bc.Security.NullSec)
	}
}

func TestMultistop_DropsUnresolvedAndDegenerate(t *testing.T) {
	e := testEngine(t)
	// "Zzzzz" never resolves; "adra." strips to a repeat of the first stop.
	itinerary, err := e.Multistop([]string{"Adra", "Zzzzz", "adra.", "Evati"}, Options{})
	if err != nil {
		t.Fatalf("Multistop: %v", err)
	}
	if len(itinerary.Stops) != 3 {
		t.Errorf("resolved stops = %v, want 3", itinerary.Stops)
	}
	// Adra->Adra is degenerate, so one real leg remains.
	if len(itinerary.Legs) != 1 {
		t.Fatalf("legs = %+v, want 1", itinerary.Legs)
	}
	if itinerary.Legs[0].From != "Adra" || itinerary.Legs[0].To != "Evati" {
		t.Errorf("leg = %s -> %s, want Adra -> Evati", itinerary.Legs[0].From, itinerary.Legs[0].To)
	}
	if len(itinerary.Warnings) != 1 || itinerary.Warnings[0].Kind != resolver.WarnUnknown {
		t.Errorf("warnings = %+v, want one unknown_system", itinerary.Warnings)
	}
}

func TestMultistop_DuplicateWarningsDeduped(t *testing.T) {
	e := testEngine(t)
	itinerary, err := e.Multistop([]string{"Adra", "Zzzzz", "Zzzzz", "Evati"}, Options{})
	if err != nil {
		t.Fatalf("Multistop: %v", err)
	}
	if len(itinerary.Warnings) != 1 {
		t.Errorf("warnings = %+v, want the duplicate collapsed", itinerary.Warnings)
	}
}

func TestMultistop_InsufficientStops(t *testing.T) {
	e := testEngine(t)
	cases := [][]string{
		{},
		{"Adra"},
		{"Zzzzz", "Qqqqq"},
		{"Adra", "Zzzzz"},
	}
	for _, stops := range cases {
		if _, err := e.Multistop(stops, Options{}); !errors.Is(err, ErrInsufficientStops) {
			t.Errorf("Multistop(%v) err = %v, want ErrInsufficientStops", stops, err)
		}
	}
}

func TestMultistop_TooManyStops(t *testing.T) {
	e := testEngine(t)
	stops := make([]string, 25)
	for i := range stops {
		stops[i] = "Adra"
	}
	if _, err := e.Multistop(stops, Options{}); !errors.Is(err, ErrTooManyStops) {
		t.Errorf("err = %v, want ErrTooManyStops", err)
	}
}

func TestMultistop_UnreachableLeg(t *testing.T) {
	e := testEngine(t)
	itinerary, err := e.Multistop([]string{"Adra", "N1", "N2"}, Options{})
	if err != nil {
		t.Fatalf("Multistop: %v", err)
	}
	if len(itinerary.Legs) != 2 {
		t.Fatalf("legs = %+v, want 2", itinerary.Legs)
	}
	if !itinerary.Legs[0].Unreachable {
		t.Error("Adra -> N1 leg not marked unreachable")
	}
	if itinerary.Legs[1].Unreachable {
		t.Error("N1 -> N2 leg wrongly marked unreachable")
	}
	// Unreachable legs contribute nothing to the totals.
	if itinerary.TotalJumps != itinerary.Legs[1].Jumps {
		t.Errorf("TotalJumps = %d, want %d", itinerary.TotalJumps, itinerary.Legs[1].Jumps)
	}
}

func TestMultistop_StitchedPathMarksStops(t *testing.T) {
	e := testEngine(t)
	itinerary, err := e.Multistop([]string{"Adra", "Ceru", "Evati"}, Options{IncludePath: true})
	if err != nil {
		t.Fatalf("Multistop: %v", err)
	}
	want := []string{"Adra", "Bela", "Ceru", "Doria", "Evati"}
	if len(itinerary.Hops) != len(want) {
		t.Fatalf("hops = %+v, want %v", itinerary.Hops, want)
	}
	for i, hop := range itinerary.Hops {
		if hop.System != want[i] {
			t.Fatalf("hop[%d] = %s, want %s", i, hop.System, want[i])
		}
	}
	for _, hop := range itinerary.Hops {
		wantStop := hop.System == "Ceru"
		if hop.Stop != wantStop {
			t.Errorf("hop %s Stop = %v, want %v", hop.System, hop.Stop, wantStop)
		}
	}
}
