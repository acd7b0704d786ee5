package lsd

import "testing"

func TestLevelSetGet(t *testing.T) {
	l := NewEmptyLevel()

	if inserted := l.Set("a", NewValue("1")); !inserted {
		t.Fatalf("expected first Set of %q to report inserted", "a")
	}
	if inserted := l.Set("a", NewValue("2")); inserted {
		t.Fatalf("expected overwriting Set of %q to report not inserted", "a")
	}

	got, ok := l.Get("a")
	if !ok {
		t.Fatalf("Get(%q) missing after Set", "a")
	}
	if v, _ := got.Value(); v != "2" {
		t.Fatalf("Get(%q) = %q, want %q", "a", v, "2")
	}

	if l.Has("b") {
		t.Fatalf("Has(%q) = true, want false", "b")
	}
}

func TestLevelKeysInsertionOrder(t *testing.T) {
	l := NewEmptyLevel()
	l.Set("z", NewValue("1"))
	l.Set("a", NewValue("2"))
	l.Set("m", NewValue("3"))

	want := []string{"z", "a", "m"}
	got := l.Keys()
	if len(got) != len(want) {
		t.Fatalf("Keys() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", got, want)
		}
	}
}

func TestLSDKindAccessors(t *testing.T) {
	v := NewValue("x")
	if !v.IsValue() || v.IsList() || v.IsLevel() {
		t.Fatalf("NewValue has wrong Kind: %v", v.Kind())
	}
	if _, ok := v.List(); ok {
		t.Fatalf("List() on a Value should report false")
	}

	lst := NewList([]*LSD{NewValue("a"), NewValue("b")})
	if !lst.IsList() {
		t.Fatalf("NewList has wrong Kind: %v", lst.Kind())
	}
	items, ok := lst.List()
	if !ok || len(items) != 2 {
		t.Fatalf("List() = %v, %v, want 2 items", items, ok)
	}

	lvl := NewLevel(nil)
	if !lvl.IsLevel() {
		t.Fatalf("NewLevel(nil) has wrong Kind: %v", lvl.Kind())
	}
	level, ok := lvl.Level()
	if !ok || level.Len() != 0 {
		t.Fatalf("Level() = %v, %v, want empty level", level, ok)
	}
}
