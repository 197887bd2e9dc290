package documents

import (
	"testing"
	"time"
)

func doc(id, name string, t Type, size int64, day int) Document {
	return Document{
		ID:      id,
		Name:    name,
		Type:    t,
		Size:    size,
		AddedAt: time.Date(2025, 5, day, 0, 0, 0, 0, time.UTC),
	}
}

func testDocs() []Document {
	return []Document{
		doc("1", "b.pdf", TypePDF, 300, 1),
		doc("2", "A.pdf", TypePDF, 100, 2),
		doc("3", "notes.txt", TypeText, 200, 3),
		doc("4", "example.com", TypeWeb, 0, 4),
	}
}

func visibleIDs(c *Controller) []string {
	var out []string
	for _, d := range c.Visible() {
		out = append(out, d.ID)
	}
	return out
}

func assertIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

func TestDefaultSortNewestFirst(t *testing.T) {
	c := NewController()
	c.SetDocuments(testDocs())

	assertIDs(t, visibleIDs(c), []string{"4", "3", "2", "1"})
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	c := NewController()
	c.SetDocuments(testDocs())

	c.SetSearch("PDF")
	assertIDs(t, visibleIDs(c), []string{"2", "1"})

	c.SetSearch("")
	if c.VisibleCount() != 4 {
		t.Errorf("clearing the search should restore all, got %d", c.VisibleCount())
	}
}

func TestTypeFilter(t *testing.T) {
	c := NewController()
	c.SetDocuments(testDocs())

	c.ToggleTypeFilter(TypeText)
	assertIDs(t, visibleIDs(c), []string{"3"})

	c.ToggleTypeFilter(TypePDF)
	assertIDs(t, visibleIDs(c), []string{"3", "2", "1"})

	// Empty set means no filtering.
	c.ClearTypeFilter()
	if c.VisibleCount() != 4 {
		t.Errorf("empty type filter should show all, got %d", c.VisibleCount())
	}
}

func TestSortByNameIgnoresCase(t *testing.T) {
	c := NewController()
	c.SetDocuments([]Document{
		doc("1", "b.pdf", TypePDF, 0, 1),
		doc("2", "A.pdf", TypePDF, 0, 2),
	})

	c.SetSort(SortByName, Ascending)
	got := c.Visible()
	if got[0].Name != "A.pdf" || got[1].Name != "b.pdf" {
		t.Errorf("ascending name sort = [%q, %q], want [A.pdf, b.pdf]", got[0].Name, got[1].Name)
	}

	c.SetSort(SortByName, Descending)
	if c.Visible()[0].Name != "b.pdf" {
		t.Errorf("descending name sort starts with %q, want b.pdf", c.Visible()[0].Name)
	}
}

func TestSortBySize(t *testing.T) {
	c := NewController()
	c.SetDocuments(testDocs())

	c.SetSort(SortBySize, Ascending)
	assertIDs(t, visibleIDs(c), []string{"4", "2", "3", "1"})
}

func TestSelectionPrunedOnFilterChange(t *testing.T) {
	c := NewController()
	c.SetDocuments([]Document{
		doc("1", "a.pdf", TypePDF, 0, 1),
		doc("2", "b.txt", TypeText, 0, 2),
		doc("3", "c.pdf", TypePDF, 0, 3),
	})
	c.ToggleSelect("1")
	c.ToggleSelect("2")
	c.ToggleSelect("3")

	// Filtering to PDFs removes id 2 from view, and so from the selection.
	c.ToggleTypeFilter(TypePDF)

	assertIDs(t, c.Selection(), []string{"1", "3"})
	if c.IsSelected("2") {
		t.Error("id 2 should have been pruned with the filter change")
	}

	// Widening the filter back does not resurrect the pruned id.
	c.ClearTypeFilter()
	assertIDs(t, c.Selection(), []string{"1", "3"})
}

func TestToggleSelectOnlyVisible(t *testing.T) {
	c := NewController()
	c.SetDocuments(testDocs())
	c.SetSearch("pdf")

	c.ToggleSelect("3")
	if c.IsSelected("3") {
		t.Error("a filtered-out document must not be selectable")
	}
}

func TestContextIDsEmptyMeansAll(t *testing.T) {
	c := NewController()
	c.SetDocuments(testDocs())

	if got := c.ContextIDs(); got != nil {
		t.Errorf("ContextIDs() = %v, want nil for the all-documents sentinel", got)
	}

	c.ToggleSelect("1")
	assertIDs(t, c.ContextIDs(), []string{"1"})
}

func TestSelectionSnapshotIndependent(t *testing.T) {
	c := NewController()
	c.SetDocuments(testDocs())
	c.ToggleSelect("1")

	snapshot := c.Selection()
	c.ClearSelection()

	assertIDs(t, snapshot, []string{"1"})
}

func TestRemoveOptimistic(t *testing.T) {
	c := NewController()
	c.SetDocuments(testDocs())
	c.ToggleSelect("1")
	c.ToggleSelect("3")

	c.Remove("1", "3")

	assertIDs(t, visibleIDs(c), []string{"4", "2"})
	if c.SelectionCount() != 0 {
		t.Errorf("removed documents should leave the selection, have %d", c.SelectionCount())
	}
}

func TestViewModeSwitch(t *testing.T) {
	c := NewController()
	c.SetViewMode(ViewList)
	if c.ViewMode() != ViewList {
		t.Errorf("ViewMode() = %q, want list", c.ViewMode())
	}
	c.SetViewMode(ViewMode("bogus"))
	if c.ViewMode() != ViewList {
		t.Error("an unknown view mode should be ignored")
	}
}
