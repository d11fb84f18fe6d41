package graph

import (
	"errors"
	"testing"
)

func TestShortestPath_Chain(t *testing.T) {
	u := chainUniverse(t)
	g := u.BuildGraph(false, 10000)

	path, err := g.ShortestPath("Adra", "Evati")
	if err != nil {
		t.Fatalf("ShortestPath: %v", err)
	}
	want := Path{"Adra", "Bela", "Ceru", "Doria", "Evati"}
	if len(path) != len(want) {
		t.Fatalf("path = %v, want %v", path, want)
	}
	for i := range want {
		if path[i] != want[i] {
			t.Fatalf("path = %v, want %v", path, want)
		}
	}
	if path.Jumps() != 4 {
		t.Errorf("Jumps() = %d, want 4", path.Jumps())
	}
}

func TestShortestPath_SymmetricJumpCount(t *testing.T) {
	u := bypassUniverse(t)
	g := u.BuildGraph(false, 10000)

	pairs := [][2]string{{"Adra", "Evati"}, {"Fol", "Ceru"}, {"Gila", "Adra"}}
	for _, pair := range pairs {
		forward, err := g.ShortestPath(pair[0], pair[1])
		if err != nil {
			t.Fatalf("ShortestPath(%s->%s): %v", pair[0], pair[1], err)
		}
		backward, err := g.ShortestPath(pair[1], pair[0])
		if err != nil {
			t.Fatalf("ShortestPath(%s->%s): %v", pair[1], pair[0], err)
		}
		if forward.Jumps() != backward.Jumps() {
			t.Errorf("%s<->%s jump counts differ: %d vs %d", pair[0], pair[1], forward.Jumps(), backward.Jumps())
		}
	}
}

func TestShortestPath_NullAvoidingDetour(t *testing.T) {
	u := bypassUniverse(t)
	def := u.BuildGraph(false, 10000)
	safe := u.BuildGraph(true, 10000)

	defPath, err := def.ShortestPath("Adra", "Evati")
	if err != nil {
		t.Fatalf("default ShortestPath: %v", err)
	}
	if defPath.Jumps() != 4 {
		t.Errorf("default Jumps() = %d, want 4", defPath.Jumps())
	}
	if u.TallySecurity(defPath).NullSec != 1 {
		t.Errorf("default route nullsec tally = %d, want 1", u.TallySecurity(defPath).NullSec)
	}

	safePath, err := safe.ShortestPath("Adra", "Evati")
	if err != nil {
		t.Fatalf("safe ShortestPath: %v", err)
	}
	if got := u.TallySecurity(safePath).NullSec; got != 0 {
		t.Errorf("safe route nullsec tally = %d, want 0 (path %v)", got, safePath)
	}
	if safePath.Jumps() != 5 {
		t.Errorf("safe Jumps() = %d, want 5", safePath.Jumps())
	}
}

func TestShortestPath_NoDetourExists(t *testing.T) {
	// On the plain chain the null-avoiding variant still has to cross Ceru.
	u := chainUniverse(t)
	safe := u.BuildGraph(true, 10000)

	path, err := safe.ShortestPath("Adra", "Evati")
	if err != nil {
		t.Fatalf("safe ShortestPath: %v", err)
	}
	if path.Jumps() != 4 {
		t.Errorf("Jumps() = %d, want 4", path.Jumps())
	}
	if u.TallySecurity(path).NullSec != 1 {
		t.Errorf("nullsec tally = %d, want 1", u.TallySecurity(path).NullSec)
	}
}

func TestShortestPath_SafeNeverMoreNullsec(t *testing.T) {
	u := bypassUniverse(t)
	def := u.BuildGraph(false, 10000)
	safe := u.BuildGraph(true, 10000)

	systems := []string{"Adra", "Bela", "Ceru", "Doria", "Evati", "Fol", "Gila"}
	for _, from := range systems {
		for _, to := range systems {
			if from == to {
				continue
			}
			defPath, err := def.ShortestPath(from, to)
			if err != nil {
				t.Fatalf("default %s->%s: %v", from, to, err)
			}
			safePath, err := safe.ShortestPath(from, to)
			if err != nil {
				t.Fatalf("safe %s->%s: %v", from, to, err)
			}
			if s, d := u.TallySecurity(safePath).NullSec, u.TallySecurity(defPath).NullSec; s > d {
				t.Errorf("%s->%s: safe route has %d nullsec hops, default %d", from, to, s, d)
			}
		}
	}
}

func TestShortestPath_Errors(t *testing.T) {
	u := chainUniverse(t)
	g := u.BuildGraph(false, 10000)

	if _, err := g.ShortestPath("Adra", "Zed"); !errors.Is(err, ErrUnknownSystem) {
		t.Errorf("unknown dest: err = %v, want ErrUnknownSystem", err)
	}
	if _, err := g.ShortestPath("Zed", "Adra"); !errors.Is(err, ErrUnknownSystem) {
		t.Errorf("unknown origin: err = %v, want ErrUnknownSystem", err)
	}

	// Disconnected component.
	u2 := NewUniverse()
	u2.SetSystem("Adra", "Heimatar", "Hed", 0.9)
	u2.SetSystem("Bela", "Heimatar", "Hed", 0.8)
	u2.SetSystem("Lone", "Heimatar", "Hed", 0.7)
	u2.AddGate("Adra", "Bela")
	u2.AddGate("Bela", "Adra")
	u2.Finalize()
	g2 := u2.BuildGraph(false, 10000)
	if _, err := g2.ShortestPath("Adra", "Lone"); !errors.Is(err, ErrNoPath) {
		t.Errorf("disconnected: err = %v, want ErrNoPath", err)
	}
}

func TestShortestPath_SameSystem(t *testing.T) {
	u := chainUniverse(t)
	g := u.BuildGraph(false, 10000)
	path, err := g.ShortestPath("Adra", "Adra")
	if err != nil {
		t.Fatalf("ShortestPath to self: %v", err)
	}
	if path.Jumps() != 0 || len(path) != 1 {
		t.Errorf("self path = %v, want [Adra]", path)
	}
}
