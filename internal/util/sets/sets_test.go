package sets

import "testing"

func TestSetBasics(t *testing.T) {
	s := New("a", "b")
	if !s.Has("a") || !s.Has("b") {
		t.Fatal("expected initial values present")
	}
	if s.Has("c") {
		t.Fatal("unexpected member c")
	}
	s.Add("c")
	if !s.Has("c") {
		t.Fatal("expected c after Add")
	}
	s.Delete("a")
	if s.Has("a") {
		t.Fatal("expected a removed")
	}
	if len(s) != 2 {
		t.Fatalf("expected 2 members, got %d", len(s))
	}
}
