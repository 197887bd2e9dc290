package panes

import "testing"

func newTestSplit(t *testing.T, leftIDs, rightIDs []string) *Split {
	t.Helper()
	s := NewSplit()
	for _, id := range leftIDs {
		s.Open(SideLeft, docTab(id))
	}
	for _, id := range rightIDs {
		s.Open(SideRight, docTab(id))
	}
	return s
}

func TestNewSplitPinsDocumentsTab(t *testing.T) {
	s := NewSplit()

	if s.HasSplit() {
		t.Error("fresh layout should be single pane")
	}
	tabs := s.Pane(SideLeft).Tabs()
	if len(tabs) != 1 || tabs[0].ID != DocumentsTabID {
		t.Fatalf("left pane = %v, want pinned documents tab", tabs)
	}
	if tabs[0].Closable {
		t.Error("documents tab must not be closable")
	}
}

func TestMoveTabCreatesAndCollapsesSplit(t *testing.T) {
	s := newTestSplit(t, []string{"a", "b"}, nil)

	if !s.MoveTab("a", SideRight) {
		t.Fatal("MoveTab should succeed")
	}
	if !s.HasSplit() {
		t.Error("moving a tab right should create the split")
	}
	if s.Pane(SideRight).ActiveID() != "a" {
		t.Errorf("moved tab should be active in destination, got %q", s.Pane(SideRight).ActiveID())
	}
	if s.Pane(SideLeft).Contains("a") {
		t.Error("moved tab should be removed from source")
	}

	// Closing the right pane's last tab collapses the split.
	s.Close("a")
	if s.HasSplit() {
		t.Error("empty right pane should collapse the split")
	}
}

func TestMoveTabRefusesPinned(t *testing.T) {
	s := newTestSplit(t, []string{"a"}, nil)

	if s.MoveTab(DocumentsTabID, SideRight) {
		t.Error("pinned documents tab must not move")
	}
	if s.Close(DocumentsTabID); !s.Pane(SideLeft).Contains(DocumentsTabID) {
		t.Error("pinned documents tab must not close")
	}
}

func TestOpenDeduplicatesAcrossPanes(t *testing.T) {
	s := newTestSplit(t, []string{"a"}, []string{"b"})

	// Opening a tab that lives on the other side activates it there.
	s.Pane(SideRight).SetActive("b")
	s.Open(SideRight, docTab("a"))

	if s.Pane(SideRight).Contains("a") {
		t.Error("tab open on the left must not be duplicated on the right")
	}
	if s.Pane(SideLeft).ActiveID() != "a" {
		t.Errorf("existing tab should be activated, got %q", s.Pane(SideLeft).ActiveID())
	}
}

func TestMergeLeft(t *testing.T) {
	s := newTestSplit(t, []string{"a"}, []string{"b", "c"})
	s.Pane(SideRight).SetActive("c")

	s.MergeLeft()

	if s.HasSplit() {
		t.Error("MergeLeft should collapse the split")
	}
	left := s.Pane(SideLeft)
	for _, id := range []string{"a", "b", "c"} {
		if !left.Contains(id) {
			t.Errorf("left pane missing %q after merge", id)
		}
	}
	if left.ActiveID() != "c" {
		t.Errorf("right pane's active tab should stay active, got %q", left.ActiveID())
	}
}

func TestReorderPinnedRule(t *testing.T) {
	s := newTestSplit(t, []string{"a", "b", "c"}, nil)
	// Left pane: [documents, a, b, c]

	tests := []struct {
		name     string
		from, to int
		want     bool
	}{
		{"move pinned tab", 0, 2, false},
		{"move onto pinned index", 2, 0, false},
		{"legal move", 3, 1, true},
		{"out of range", 1, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Reorder(SideLeft, tt.from, tt.to); got != tt.want {
				t.Errorf("Reorder(%d, %d) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
			if s.Pane(SideLeft).IndexOf(DocumentsTabID) != 0 {
				t.Error("documents tab displaced from index 0")
			}
		})
	}
}

func TestReorderRightPaneHasNoPin(t *testing.T) {
	s := newTestSplit(t, nil, []string{"x", "y"})

	if !s.Reorder(SideRight, 1, 0) {
		t.Fatal("right pane reorder to index 0 should be allowed")
	}
	if got := s.Pane(SideRight).Tabs()[0].ID; got != "y" {
		t.Errorf("Tabs()[0] = %q, want %q", got, "y")
	}
}

func TestSampleWidthsClamped(t *testing.T) {
	tests := []struct {
		name         string
		sample       WidthSample
		wantL, wantR int
	}{
		{"even", WidthSample{LeftPx: 500, RightPx: 500, IsSplit: true}, 50, 50},
		{"left heavy clamps to 70", WidthSample{LeftPx: 900, RightPx: 100, IsSplit: true}, 70, 30},
		{"right heavy clamps to 30", WidthSample{LeftPx: 100, RightPx: 900, IsSplit: true}, 30, 70},
		{"degenerate falls back to even", WidthSample{IsSplit: true}, 50, 50},
		{"non-split sample resets to even", WidthSample{LeftPx: 900, RightPx: 100}, 50, 50},
		{"mild skew rounds", WidthSample{LeftPx: 600, RightPx: 400, IsSplit: true}, 60, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSplit()
			ws := s.SampleWidths(tt.sample)
			if ws.Left != tt.wantL || ws.Right != tt.wantR {
				t.Errorf("SampleWidths(%+v) = %d/%d, want %d/%d",
					tt.sample, ws.Left, ws.Right, tt.wantL, tt.wantR)
			}
		})
	}
}

func TestSetWidthsDegenerate(t *testing.T) {
	s := NewSplit()
	s.SetWidths(WidthState{})

	ws := s.Widths()
	if ws.Left != 50 || ws.Right != 50 {
		t.Errorf("degenerate stored widths should seed 50/50, got %d/%d", ws.Left, ws.Right)
	}
}

func TestDragThreshold(t *testing.T) {
	s := NewSplit()
	d := s.BeginDrag("a", SideLeft, 10, 1)

	if d.Track(11, 1) {
		t.Error("1-cell travel should not register as a drag")
	}
	if !d.Track(12, 1) {
		t.Error("2-cell travel should register as a drag")
	}
	// Once active, the gesture stays a drag.
	if !d.Track(10, 1) {
		t.Error("active drag should remain active")
	}
}

func TestInSplitZone(t *testing.T) {
	if InSplitZone(79, 100) {
		t.Error("79% should be outside the split zone")
	}
	if !InSplitZone(80, 100) {
		t.Error("80% should be inside the split zone")
	}
	if InSplitZone(10, 0) {
		t.Error("zero width has no split zone")
	}
}
