package app

import (
	"testing"

	"github.com/dkeye/linkup/internal/core"
	"github.com/dkeye/linkup/internal/domain"
)

func TestRegistryUniquenessInvariant(t *testing.T) {
	r := NewRegistry()
	seq := []struct {
		user domain.UserID
		conn core.ConnID
	}{
		{"u1", "c1"},
		{"u2", "c2"},
		{"u1", "c3"},
		{"u3", "c4"},
		{"u2", "c5"},
		{"u1", "c6"},
	}
	for _, s := range seq {
		r.Register(s.user, s.conn)
	}
	r.Unregister("c4")
	r.Register("u3", "c7")

	seen := map[domain.UserID]int{}
	for _, e := range r.Snapshot() {
		seen[e.UserID]++
	}
	for u, n := range seen {
		if n != 1 {
			t.Fatalf("user %s has %d entries, want 1", u, n)
		}
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 users online, got %d", len(seen))
	}
}

func TestRegistryLastWriteWins(t *testing.T) {
	r := NewRegistry()
	r.Register("u1", "c1")
	r.Register("u1", "c2")

	got, ok := r.Lookup("u1")
	if !ok || got != "c2" {
		t.Fatalf("lookup(u1) = %q, %v; want c2, true", got, ok)
	}

	// The stale connection disconnecting must not evict the new mapping.
	if r.Unregister("c1") {
		t.Fatal("unregister of replaced connection should be a no-op")
	}
	got, ok = r.Lookup("u1")
	if !ok || got != "c2" {
		t.Fatalf("lookup(u1) after stale disconnect = %q, %v; want c2, true", got, ok)
	}
	if len(r.Snapshot()) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(r.Snapshot()))
	}
}

func TestRegistryUnregisterIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Register("u1", "c1")
	if !r.Unregister("c1") {
		t.Fatal("first unregister should report removal")
	}
	if r.Unregister("c1") {
		t.Fatal("second unregister should be a no-op")
	}
	if _, ok := r.Lookup("u1"); ok {
		t.Fatal("u1 should be gone")
	}
}

func TestRegistrySnapshotKeepsAnnounceOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("u1", "c1")
	r.Register("u2", "c2")
	r.Register("u3", "c3")

	// Re-announcing keeps the original position.
	r.Register("u1", "c9")

	snap := r.Snapshot()
	want := []domain.UserID{"u1", "u2", "u3"}
	if len(snap) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(snap))
	}
	for i, u := range want {
		if snap[i].UserID != u {
			t.Fatalf("entry %d = %s, want %s", i, snap[i].UserID, u)
		}
	}
	if snap[0].ConnID != "c9" {
		t.Fatalf("u1 should map to c9, got %s", snap[0].ConnID)
	}

	r.Unregister("c2")
	snap = r.Snapshot()
	if len(snap) != 2 || snap[0].UserID != "u1" || snap[1].UserID != "u3" {
		t.Fatalf("unexpected order after removal: %+v", snap)
	}
}

func TestRegistryConnReannounceAsDifferentUser(t *testing.T) {
	r := NewRegistry()
	r.Register("u1", "c1")
	r.Register("u2", "c1")

	if _, ok := r.Lookup("u1"); ok {
		t.Fatal("u1 should have been displaced by the re-announce")
	}
	got, ok := r.Lookup("u2")
	if !ok || got != "c1" {
		t.Fatalf("lookup(u2) = %q, %v; want c1, true", got, ok)
	}
	if len(r.Snapshot()) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(r.Snapshot()))
	}
}

func TestRegistryLookupAbsent(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Lookup("ghost"); ok {
		t.Fatal("lookup of unknown user should report absent")
	}
}
