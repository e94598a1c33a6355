package theme

import "testing"

func TestLookupKnownKeys(t *testing.T) {
	for _, key := range Keys() {
		got := Lookup(key)
		if got.Key != key {
			t.Errorf("Lookup(%q).Key = %q, want %q", key, got.Key, key)
		}
	}
}

func TestLookupFallsBackToDefault(t *testing.T) {
	tests := []string{"", "unknown", "DEEP-SPACE", "nebula "}
	want := Lookup(DefaultKey)
	for _, key := range tests {
		if got := Lookup(key); got != want {
			t.Errorf("Lookup(%q) = %+v, want default theme", key, got)
		}
	}
}

func TestLookupRoundTrip(t *testing.T) {
	// A persisted key reloads to identical colors.
	for _, key := range Keys() {
		first := Lookup(key)
		second := Lookup(first.Key)
		if first != second {
			t.Errorf("round trip for %q: %+v != %+v", key, first, second)
		}
	}
}

func TestSecondaryColorConsistency(t *testing.T) {
	zero := Lookup(DefaultKey).Secondary
	zero.R, zero.G, zero.B, zero.A = 0, 0, 0, 0
	for _, key := range Keys() {
		th := Lookup(key)
		if !th.HasSecondary && th.Secondary != zero {
			t.Errorf("theme %q has a secondary color but HasSecondary is false", key)
		}
	}
}

func TestNextCycles(t *testing.T) {
	keys := Keys()
	seen := map[string]bool{}
	key := keys[0]
	for range keys {
		seen[key] = true
		key = Next(key)
	}
	if key != keys[0] {
		t.Errorf("Next did not wrap: ended on %q", key)
	}
	if len(seen) != len(keys) {
		t.Errorf("Next visited %d themes, want %d", len(seen), len(keys))
	}
}

func TestNextUnknownKey(t *testing.T) {
	if got := Next("bogus"); got != Keys()[0] {
		t.Errorf("Next(bogus) = %q, want first theme %q", got, Keys()[0])
	}
}
