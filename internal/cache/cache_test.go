package cache

import "testing"

func TestGetRefreshesRecency(t *testing.T) {
	c := NewPreviewCache(2)

	k1 := Key{NoteID: "n1", Revision: "r1"}
	k2 := Key{NoteID: "n2", Revision: "r1"}
	k3 := Key{NoteID: "n3", Revision: "r1"}

	c.Put(k1, "one")
	c.Put(k2, "two")

	// Touch k1 so k2 becomes the eviction candidate.
	if _, hit := c.Get(k1); !hit {
		t.Fatalf("expected k1 cached")
	}

	c.Put(k3, "three")

	if _, hit := c.Get(k2); hit {
		t.Fatalf("expected least recently used entry evicted")
	}
	if _, hit := c.Get(k1); !hit {
		t.Fatalf("expected recently used entry kept")
	}
}

func TestPutUpdatesExistingEntryWithoutGrowing(t *testing.T) {
	c := NewPreviewCache(2)
	key := Key{NoteID: "n1", Revision: "r1"}

	c.Put(key, "first render")
	c.Put(key, "second render")

	if c.Len() != 1 {
		t.Fatalf("expected single entry, got %d", c.Len())
	}
	if value, _ := c.Get(key); value != "second render" {
		t.Fatalf("expected updated value, got %q", value)
	}
}

func TestRevisionChangeMisses(t *testing.T) {
	c := NewPreviewCache(4)

	old := Key{NoteID: "n1", Revision: RevisionFor("2026-01-01T00:00:00Z", 80, "dracula")}
	c.Put(old, "rendered")

	fresh := Key{NoteID: "n1", Revision: RevisionFor("2026-01-02T00:00:00Z", 80, "dracula")}
	if _, hit := c.Get(fresh); hit {
		t.Fatalf("expected edited note to miss the cache")
	}
}

func TestInvalidateDropsAllRevisionsForNote(t *testing.T) {
	c := NewPreviewCache(4)

	c.Put(Key{NoteID: "n1", Revision: "r1"}, "a")
	c.Put(Key{NoteID: "n1", Revision: "r2"}, "b")
	c.Put(Key{NoteID: "n2", Revision: "r1"}, "c")

	c.Invalidate("n1")

	if c.Len() != 1 {
		t.Fatalf("expected only the other note's entry left, got %d", c.Len())
	}
	if _, hit := c.Get(Key{NoteID: "n2", Revision: "r1"}); !hit {
		t.Fatalf("expected other note untouched")
	}
}
