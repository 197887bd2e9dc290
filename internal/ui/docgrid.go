package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"dochub/internal/documents"
	"dochub/internal/keys"
	"dochub/internal/panes"
)

// DocGrid renders a space's document collection as a responsive card grid
// or a flat list, with a keyboard cursor and multi-select markers. The
// filter/sort state lives in the documents controller; this component only
// draws it and translates input into controller calls.
type DocGrid struct {
	ctrl *documents.Controller

	width   int
	height  int
	focused bool

	cursor       int
	scrollOffset int // rows in grid mode, lines in list mode

	searchMode  bool
	searchInput textinput.Model
}

// NewDocGrid creates a grid over the given controller.
func NewDocGrid(ctrl *documents.Controller) *DocGrid {
	ti := textinput.New()
	ti.Placeholder = "search documents..."
	ti.CharLimit = ModalInputCharLimit

	return &DocGrid{
		ctrl:        ctrl,
		searchInput: ti,
	}
}

// SetSize sets the rendered dimensions in cells.
func (g *DocGrid) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// SetFocused sets keyboard focus.
func (g *DocGrid) SetFocused(focused bool) {
	g.focused = focused
	if !focused {
		g.exitSearch()
	}
}

// Columns returns the grid column count for the current width.
func (g *DocGrid) Columns() int {
	return panes.GridColumnsForCells(g.width)
}

// CursorDocument returns the document under the cursor.
func (g *DocGrid) CursorDocument() (documents.Document, bool) {
	visible := g.ctrl.Visible()
	if g.cursor < 0 || g.cursor >= len(visible) {
		return documents.Document{}, false
	}
	return visible[g.cursor], true
}

// InSearchMode reports whether the search input is capturing keys.
func (g *DocGrid) InSearchMode() bool {
	return g.searchMode
}

func (g *DocGrid) exitSearch() {
	g.searchMode = false
	g.searchInput.Blur()
}

// Update handles input. Returns the document to open when enter confirms
// one, and any command from the embedded search input.
func (g *DocGrid) Update(msg tea.KeyPressMsg) (open *documents.Document, cmd tea.Cmd) {
	if g.searchMode {
		switch msg.String() {
		case keys.Escape:
			g.exitSearch()
			g.searchInput.SetValue("")
			g.ctrl.SetSearch("")
			return nil, nil
		case keys.Enter:
			g.exitSearch()
			return nil, nil
		default:
			g.searchInput, cmd = g.searchInput.Update(msg)
			g.ctrl.SetSearch(g.searchInput.Value())
			g.clampCursor()
			return nil, cmd
		}
	}

	cols := g.Columns()
	if g.ctrl.ViewMode() == documents.ViewList {
		cols = 1
	}

	switch msg.String() {
	case "/":
		g.searchMode = true
		return nil, g.searchInput.Focus()
	case keys.Up, "k":
		g.cursor -= cols
	case keys.Down, "j":
		g.cursor += cols
	case keys.Left, "h":
		g.cursor--
	case keys.Right, "l":
		g.cursor++
	case keys.Home:
		g.cursor = 0
	case keys.End:
		g.cursor = g.ctrl.VisibleCount() - 1
	case keys.Space:
		if doc, ok := g.CursorDocument(); ok {
			g.ctrl.ToggleSelect(doc.ID)
		}
	case "a":
		g.ctrl.SelectVisible()
	case keys.Escape:
		g.ctrl.ClearSelection()
	case "g":
		if g.ctrl.ViewMode() == documents.ViewGrid {
			g.ctrl.SetViewMode(documents.ViewList)
		} else {
			g.ctrl.SetViewMode(documents.ViewGrid)
		}
	case keys.Enter:
		if doc, ok := g.CursorDocument(); ok {
			return &doc, nil
		}
	}

	g.clampCursor()
	return nil, nil
}

func (g *DocGrid) clampCursor() {
	if max := g.ctrl.VisibleCount() - 1; g.cursor > max {
		g.cursor = max
	}
	if g.cursor < 0 {
		g.cursor = 0
	}
}

// View renders the collection.
func (g *DocGrid) View() string {
	var b strings.Builder

	if g.searchMode || g.ctrl.Search() != "" {
		b.WriteString(g.searchInput.View())
		b.WriteString("\n")
	}

	visible := g.ctrl.Visible()
	if len(visible) == 0 {
		b.WriteString(CardMetaStyle.Render("no documents"))
		return b.String()
	}

	if g.ctrl.ViewMode() == documents.ViewList {
		b.WriteString(g.viewList(visible))
	} else {
		b.WriteString(g.viewGrid(visible))
	}
	return b.String()
}

func (g *DocGrid) viewGrid(visible []documents.Document) string {
	cols := g.Columns()
	cardWidth := g.width/cols - BorderSize
	if cardWidth < 8 {
		cardWidth = 8
	}

	var rows []string
	for start := 0; start < len(visible); start += cols {
		end := start + cols
		if end > len(visible) {
			end = len(visible)
		}
		var cards []string
		for i := start; i < end; i++ {
			cards = append(cards, g.renderCard(visible[i], i, cardWidth))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	// Scroll whole card rows to keep the cursor on screen.
	rowHeight := CardHeight
	visibleRows := g.height / rowHeight
	if visibleRows < 1 {
		visibleRows = 1
	}
	cursorRow := g.cursor / cols
	if cursorRow < g.scrollOffset {
		g.scrollOffset = cursorRow
	}
	if cursorRow >= g.scrollOffset+visibleRows {
		g.scrollOffset = cursorRow - visibleRows + 1
	}
	end := g.scrollOffset + visibleRows
	if end > len(rows) {
		end = len(rows)
	}
	if g.scrollOffset > len(rows) {
		g.scrollOffset = 0
	}
	return strings.Join(rows[g.scrollOffset:end], "\n")
}

func (g *DocGrid) renderCard(doc documents.Document, idx, width int) string {
	nameWidth := width
	if nameWidth > MaxCardNameWidth {
		nameWidth = MaxCardNameWidth
	}
	name := runewidth.Truncate(doc.Name, nameWidth, "…")

	marker := " "
	if g.ctrl.IsSelected(doc.ID) {
		marker = "✓"
	}

	content := CardNameStyle.Render(name) + "\n" +
		CardMetaStyle.Render(fmt.Sprintf("%s %s %s", marker, typeIcon(doc.Type), humanSize(doc.Size)))

	style := CardStyle
	switch {
	case g.focused && idx == g.cursor:
		style = CardCursorStyle
	case g.ctrl.IsSelected(doc.ID):
		style = CardSelectedStyle
	}
	return style.Width(width).Render(content)
}

func (g *DocGrid) viewList(visible []documents.Document) string {
	visibleLines := g.height
	if visibleLines < 1 {
		visibleLines = 1
	}
	if g.cursor < g.scrollOffset {
		g.scrollOffset = g.cursor
	}
	if g.cursor >= g.scrollOffset+visibleLines {
		g.scrollOffset = g.cursor - visibleLines + 1
	}

	var b strings.Builder
	end := g.scrollOffset + visibleLines
	if end > len(visible) {
		end = len(visible)
	}
	for i := g.scrollOffset; i < end; i++ {
		doc := visible[i]
		marker := "  "
		if g.ctrl.IsSelected(doc.ID) {
			marker = "✓ "
		}
		name := runewidth.Truncate(doc.Name, g.width-20, "…")
		line := fmt.Sprintf("%s%s %s  %s", marker, typeIcon(doc.Type), name, humanSize(doc.Size))

		if g.focused && i == g.cursor {
			b.WriteString(ListRowSelectedStyle.Width(g.width).Render(line))
		} else {
			b.WriteString(ListRowStyle.Render(line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func typeIcon(t documents.Type) string {
	switch t {
	case documents.TypePDF:
		return "▤"
	case documents.TypeWeb:
		return "⌂"
	case documents.TypeVideo:
		return "▶"
	default:
		return "≡"
	}
}

// humanSize formats a byte count for card metadata.
func humanSize(n int64) string {
	if n <= 0 {
		return ""
	}
	return humanize.Bytes(uint64(n))
}
