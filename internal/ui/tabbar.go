package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"dochub/internal/panes"
)

// MaxTabTitleWidth is the widest a tab title may render before truncation.
const MaxTabTitleWidth = 20

// TabBar renders one pane's tab strip and maps pointer positions back to
// tabs for click, drag, and drop handling.
type TabBar struct {
	width   int
	side    panes.Side
	regions []tabRegion
}

// tabRegion records where one tab was rendered, in cells from the strip's
// left edge. End is exclusive.
type tabRegion struct {
	id    string
	start int
	end   int
}

// NewTabBar creates a tab bar for one pane side.
func NewTabBar(side panes.Side) *TabBar {
	return &TabBar{side: side}
}

// SetWidth sets the rendered strip width.
func (t *TabBar) SetWidth(width int) {
	t.width = width
}

// Side returns which pane this strip belongs to.
func (t *TabBar) Side() panes.Side {
	return t.side
}

// TabAt returns the id of the tab rendered at cell x, using the regions
// recorded by the last View call.
func (t *TabBar) TabAt(x int) (string, bool) {
	for _, r := range t.regions {
		if x >= r.start && x < r.end {
			return r.id, true
		}
	}
	return "", false
}

// IndexAt returns the position in the strip that a drop at cell x targets.
func (t *TabBar) IndexAt(x int) int {
	for i, r := range t.regions {
		if x < r.end {
			return i
		}
	}
	return len(t.regions)
}

// View renders the strip for the registry, highlighting the active tab and
// the one being dragged. Hit regions are recorded as a side effect.
func (t *TabBar) View(reg *panes.Registry, draggingID string) string {
	t.regions = t.regions[:0]

	var b strings.Builder
	used := 0
	for _, tab := range reg.Tabs() {
		title := runewidth.Truncate(tab.Title, MaxTabTitleWidth, "…")
		if tab.Closable {
			title += " ×"
		}

		var rendered string
		switch {
		case tab.ID == draggingID:
			rendered = TabDraggingStyle.Render(title)
		case tab.ID == reg.ActiveID():
			rendered = TabActiveStyle.Render(title)
		case tab.ID == panes.DocumentsTabID:
			rendered = TabPinnedStyle.Render(title)
		default:
			rendered = TabStyle.Render(title)
		}

		w := ansi.StringWidth(rendered)
		if used+w > t.width {
			break
		}
		t.regions = append(t.regions, tabRegion{id: tab.ID, start: used, end: used + w})
		b.WriteString(rendered)
		used += w
	}

	if used < t.width {
		b.WriteString(TabBarFillStyle.Render(strings.Repeat("─", t.width-used)))
	}
	return b.String()
}
