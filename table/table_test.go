package table

import "testing"

func TestNewSelfEntry(t *testing.T) {
	tb := New("A")
	r, ok := tb.Lookup("A")
	if !ok {
		t.Fatalf("self entry missing")
	}
	if r.Distance != 0 || r.NextHop != "A" {
		t.Errorf("self entry = %+v, want {0 A}", r)
	}
}

func TestApplyInstallsNewRoute(t *testing.T) {
	tb := New("A")
	if !tb.Apply("B", 3, "C") {
		t.Fatalf("Apply on empty table should report changed")
	}
	r, ok := tb.Lookup("B")
	if !ok || r.Distance != 3 || r.NextHop != "C" {
		t.Errorf("got %+v, ok=%v, want {3 C}, true", r, ok)
	}
}

func TestApplyIgnoresSelf(t *testing.T) {
	tb := New("A")
	if tb.Apply("A", 1, "X") {
		t.Errorf("Apply on self entry should never report changed")
	}
	r, _ := tb.Lookup("A")
	if r.Distance != 0 || r.NextHop != "A" {
		t.Errorf("self entry mutated: %+v", r)
	}
}

func TestApplyStrictlyBetterWins(t *testing.T) {
	tb := New("A")
	tb.Apply("B", 5, "C")
	if !tb.Apply("B", 2, "D") {
		t.Fatalf("strictly shorter route should be installed")
	}
	r, _ := tb.Lookup("B")
	if r.Distance != 2 || r.NextHop != "D" {
		t.Errorf("got %+v, want {2 D}", r)
	}
}

func TestApplyWorseFromOtherNextHopIgnored(t *testing.T) {
	tb := New("A")
	tb.Apply("B", 2, "C")
	if tb.Apply("B", 5, "D") {
		t.Errorf("worse route from a different next hop must not replace the current one")
	}
	r, _ := tb.Lookup("B")
	if r.Distance != 2 || r.NextHop != "C" {
		t.Errorf("got %+v, want {2 C}", r)
	}
}

func TestApplySameNextHopAccepted(t *testing.T) {
	tb := New("A")
	tb.Apply("B", 2, "C")
	if !tb.Apply("B", 9, "C") {
		t.Fatalf("re-advertisement from the current next hop at a higher cost must be accepted")
	}
	r, _ := tb.Lookup("B")
	if r.Distance != 9 {
		t.Errorf("got distance %d, want 9", r.Distance)
	}
}

func TestApplyIdempotentNoChange(t *testing.T) {
	tb := New("A")
	tb.Apply("B", 2, "C")
	if tb.Apply("B", 2, "C") {
		t.Errorf("repeating the same (distance, next hop) must report no change")
	}
}

func TestRemoveIfSkipsSelf(t *testing.T) {
	tb := New("A")
	tb.Apply("B", 2, "C")
	tb.RemoveIf(func(dest string, r Route) bool { return true })
	if _, ok := tb.Lookup("A"); !ok {
		t.Errorf("self entry must survive RemoveIf")
	}
	if _, ok := tb.Lookup("B"); ok {
		t.Errorf("B should have been removed")
	}
}

func TestSnapshotForNeighborSplitHorizon(t *testing.T) {
	tb := New("A")
	tb.Apply("B", 2, "C")
	tb.Apply("D", 4, "E")
	snap := tb.SnapshotForNeighbor("C")
	if _, ok := snap["B"]; ok {
		t.Errorf("route learned via C must not be advertised back to C")
	}
	if d, ok := snap["D"]; !ok || d != 4 {
		t.Errorf("route via E should be included unchanged, got %d, ok=%v", d, ok)
	}
	if d, ok := snap["A"]; !ok || d != 0 {
		t.Errorf("self route should be included, got %d, ok=%v", d, ok)
	}
}
