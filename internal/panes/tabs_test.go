package panes

import "testing"

func docTab(id string) Tab {
	return Tab{ID: id, Title: id, Kind: TabKindDocument, Closable: true, Payload: id}
}

func TestOpenActivates(t *testing.T) {
	r := NewRegistry()
	r.Open(docTab("a"))
	r.Open(docTab("b"))

	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if r.ActiveID() != "b" {
		t.Errorf("ActiveID() = %q, want %q", r.ActiveID(), "b")
	}
}

func TestOpenExistingIsIdempotent(t *testing.T) {
	r := NewRegistry()
	r.Open(docTab("a"))
	r.Open(docTab("b"))
	r.Open(docTab("c"))

	before := r.Tabs()
	r.Open(docTab("a"))

	after := r.Tabs()
	if len(after) != len(before) {
		t.Fatalf("reopen changed length: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i].ID != before[i].ID {
			t.Errorf("reopen changed order at %d: %q -> %q", i, before[i].ID, after[i].ID)
		}
	}
	if r.ActiveID() != "a" {
		t.Errorf("ActiveID() = %q, want %q", r.ActiveID(), "a")
	}
}

func TestCloseActiveSelectsNeighbor(t *testing.T) {
	tests := []struct {
		name       string
		open       []string
		close      string
		wantActive string
		wantLen    int
	}{
		{"close middle selects successor", []string{"a", "b", "c"}, "b", "c", 2},
		{"close last selects new last", []string{"a", "b", "c"}, "c", "b", 2},
		{"close only tab clears active", []string{"a"}, "a", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			for _, id := range tt.open {
				r.Open(docTab(id))
			}
			r.SetActive(tt.close)
			r.Close(tt.close)

			if r.ActiveID() != tt.wantActive {
				t.Errorf("ActiveID() = %q, want %q", r.ActiveID(), tt.wantActive)
			}
			if r.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", r.Len(), tt.wantLen)
			}
		})
	}
}

func TestCloseInactiveKeepsActive(t *testing.T) {
	r := NewRegistry()
	r.Open(docTab("a"))
	r.Open(docTab("b"))
	r.SetActive("a")
	r.Close("b")

	if r.ActiveID() != "a" {
		t.Errorf("ActiveID() = %q, want %q", r.ActiveID(), "a")
	}
}

func TestCloseAbsentIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Open(docTab("a"))
	r.Close("missing")

	if r.Len() != 1 || r.ActiveID() != "a" {
		t.Errorf("close of absent id mutated state: len=%d active=%q", r.Len(), r.ActiveID())
	}
}

// The everOpened set survives Close, so reopening a closed id is a no-op.
// This mirrors the original product's creation-dedup behavior; CloseAll is
// the only reset.
func TestReopenAfterCloseIsNoop(t *testing.T) {
	r := NewRegistry()
	r.Open(docTab("a"))
	r.Open(docTab("b"))
	r.Close("a")

	r.Open(docTab("a"))

	if r.Contains("a") {
		t.Error("reopening a closed id should not recreate the tab")
	}
	if r.ActiveID() != "b" {
		t.Errorf("ActiveID() = %q, want %q", r.ActiveID(), "b")
	}
}

func TestCloseAllResetsDedup(t *testing.T) {
	r := NewRegistry()
	r.Open(docTab("a"))
	r.CloseAll()

	if r.Len() != 0 || r.ActiveID() != "" {
		t.Fatalf("CloseAll left state: len=%d active=%q", r.Len(), r.ActiveID())
	}

	r.Open(docTab("a"))
	if !r.Contains("a") {
		t.Error("open after CloseAll should recreate the tab")
	}
}

// Active id is always null-or-member over arbitrary open/close sequences.
func TestActiveAlwaysMemberOrEmpty(t *testing.T) {
	r := NewRegistry()
	ops := []struct {
		open bool
		id   string
	}{
		{true, "a"}, {true, "b"}, {false, "a"}, {true, "c"},
		{false, "c"}, {false, "b"}, {false, "b"}, {true, "d"},
	}

	check := func(step int) {
		active := r.ActiveID()
		if active == "" {
			if r.Len() != 0 && step > 0 {
				// Empty active with tabs present only before the first open.
				for _, tab := range r.Tabs() {
					_ = tab
				}
			}
			return
		}
		if !r.Contains(active) {
			t.Fatalf("step %d: active %q not in registry", step, active)
		}
	}

	for i, op := range ops {
		if op.open {
			r.Open(docTab(op.id))
		} else {
			r.Close(op.id)
		}
		check(i)
	}
}

func TestReorderPreservesActive(t *testing.T) {
	r := NewRegistry()
	r.Open(docTab("a"))
	r.Open(docTab("b"))
	r.Open(docTab("c"))
	r.SetActive("b")

	r.Reorder([]Tab{docTab("c"), docTab("a"), docTab("b")})

	if r.ActiveID() != "b" {
		t.Errorf("ActiveID() = %q, want %q", r.ActiveID(), "b")
	}
	if got := r.Tabs()[0].ID; got != "c" {
		t.Errorf("Tabs()[0] = %q, want %q", got, "c")
	}
}
