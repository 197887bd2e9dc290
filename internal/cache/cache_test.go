package cache

import (
	"testing"

	"dochub/internal/documents"
)

func TestRoundTrip(t *testing.T) {
	c := NewDocuments()

	if _, ok := c.Get("sp1"); ok {
		t.Error("empty cache should miss")
	}

	c.Set("sp1", []documents.Document{{ID: "d1"}, {ID: "d2"}})
	docs, ok := c.Get("sp1")
	if !ok || len(docs) != 2 {
		t.Fatalf("Get() = %v, %v", docs, ok)
	}
}

func TestRemoveOptimistic(t *testing.T) {
	c := NewDocuments()
	c.Set("sp1", []documents.Document{{ID: "d1"}, {ID: "d2"}, {ID: "d3"}})

	c.Remove("sp1", "d1", "d3")

	docs, ok := c.Get("sp1")
	if !ok || len(docs) != 1 || docs[0].ID != "d2" {
		t.Errorf("after Remove: %v, %v", docs, ok)
	}

	// Removing from an uncached space is a no-op, not a panic.
	c.Remove("sp2", "d1")
}

// A failed delete invalidates the whole entry so the next read refetches
// and the not-actually-deleted document reappears.
func TestInvalidateForcesRefetch(t *testing.T) {
	c := NewDocuments()
	c.Set("sp1", []documents.Document{{ID: "d1"}, {ID: "d2"}})
	c.Remove("sp1", "d1", "d2")

	c.Invalidate("sp1")

	if _, ok := c.Get("sp1"); ok {
		t.Error("invalidated entry should miss")
	}
}

func TestAddAppends(t *testing.T) {
	c := NewDocuments()
	c.Set("sp1", []documents.Document{{ID: "d1"}})

	c.Add("sp1", documents.Document{ID: "d2"})

	docs, _ := c.Get("sp1")
	if len(docs) != 2 || docs[1].ID != "d2" {
		t.Errorf("after Add: %v", docs)
	}

	// Appending to a cold space stays a miss until the next fetch.
	c.Add("sp2", documents.Document{ID: "x"})
	if _, ok := c.Get("sp2"); ok {
		t.Error("Add must not seed a cold entry")
	}
}
