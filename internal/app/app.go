package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"dochub/internal/api"
	"dochub/internal/cache"
	"dochub/internal/chatlayout"
	"dochub/internal/config"
	"dochub/internal/documents"
	"dochub/internal/feed"
	"dochub/internal/logger"
	"dochub/internal/panes"
	"dochub/internal/store"
	"dochub/internal/ui"
)

// Per-space store keys.
const (
	paneLayoutKey = "layout"
	viewModeKey   = "viewMode"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	store   *store.Store
	client  *api.Client
	cache   *cache.Documents
	version string

	header  *ui.Header
	footer  *ui.Footer
	sidebar *ui.Sidebar
	modal   *ui.Modal

	// Per-space state, rebuilt by openSpace
	split    *panes.Split
	layout   *chatlayout.Machine
	ctrl     *documents.Controller
	feed     *feed.Feed
	grid     *ui.DocGrid
	chat     *ui.Chat
	leftBar  *ui.TabBar
	rightBar *ui.TabBar
	docViews map[string]*ui.DocView

	width     int
	height    int
	focus     Focus
	focusSide panes.Side

	spaceID   string
	spaceName string

	// chatTabID is the id of the chat tab while the layout places the chat
	// in a pane. Each placement gets a fresh id because a registry refuses
	// to recreate a previously closed id.
	chatTabID  string
	chatTabGen int

	// In-flight mouse gestures
	drag            *panes.Drag
	paneDividerDrag bool
	chatDividerDrag bool

	downloading bool
	sendSeq     int

	// uploadCancel aborts the in-flight upload. Nil when none is pending.
	uploadCancel context.CancelFunc
}

// New creates a new app model
func New(cfg *config.Config, st *store.Store, client *api.Client, version string) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	f := feed.New(ui.MessagePageSize)
	ctrl := documents.NewController()

	m := &Model{
		config:   cfg,
		store:    st,
		client:   client,
		cache:    cache.NewDocuments(),
		version:  version,
		header:   ui.NewHeader(),
		footer:   ui.NewFooter(),
		sidebar:  ui.NewSidebar(),
		modal:    ui.NewModal(),
		split:    panes.NewSplit(),
		ctrl:     ctrl,
		feed:     f,
		grid:     ui.NewDocGrid(ctrl),
		chat:     ui.NewChat(f),
		leftBar:  ui.NewTabBar(panes.SideLeft),
		rightBar: ui.NewTabBar(panes.SideRight),
		docViews: make(map[string]*ui.DocView),
		focus:    FocusSidebar,
	}

	m.sidebar.SetFocused(true)
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return m.loadSpaces()
}

// SetUserName shows the logged-in user in the header.
func (m *Model) SetUserName(name string) {
	m.header.SetUserName(name)
}

// HasSpace reports whether a space is open.
func (m *Model) HasSpace() bool {
	return m.spaceID != ""
}

// openSpace switches the workspace to the given space: fresh tab layout,
// chat placement and feed, documents from cache when warm.
func (m *Model) openSpace(sp api.Space) tea.Cmd {
	m.spaceID = sp.ID
	m.spaceName = sp.Name
	m.header.SetSpaceName(sp.Name)
	logger.WithSpace(sp.ID).Info("space opened", "name", sp.Name)

	m.config.SetLastSpaceID(sp.ID)
	if err := m.config.Save(); err != nil {
		logger.Warn("App: saving last space failed: %v", err)
	}

	m.split = panes.NewSplit()
	var ws panes.WidthState
	if m.store.Get(sp.ID, paneLayoutKey, &ws) {
		m.split.SetWidths(ws)
	}

	m.layout = chatlayout.NewMachine(m.store, sp.ID)
	m.chatTabID = ""
	m.syncChatTab()

	m.feed.Reset()
	m.ctrl = documents.NewController()
	var vm documents.ViewMode
	if m.store.Get(sp.ID, viewModeKey, &vm) {
		m.ctrl.SetViewMode(vm) // refuses anything but grid/list
	}
	m.grid = ui.NewDocGrid(m.ctrl)
	m.docViews = make(map[string]*ui.DocView)

	m.chat.SetSpace(sp.Name)
	m.chat.SetShowHistory(m.layout.ShowHistory())
	m.chat.SetContextCount(0)

	m.focus = FocusPanes
	m.updateFocus()
	m.updateSizes()

	cmds := []tea.Cmd{m.loadMessages(sp.ID)}
	if docs, ok := m.cache.Get(sp.ID); ok {
		m.ctrl.SetDocuments(docs)
	} else {
		cmds = append(cmds, m.loadDocuments(sp.ID))
	}
	return tea.Batch(cmds...)
}

// syncChatTab reconciles the tab registries with the chat layout: a tab
// position keeps exactly one chat tab open in the right pane side, any other
// position closes it.
func (m *Model) syncChatTab() {
	if m.layout == nil {
		return
	}
	pos := m.layout.Position()
	if !pos.IsTab() {
		if m.chatTabID != "" {
			m.split.Close(m.chatTabID)
			m.chatTabID = ""
		}
		return
	}

	side := panes.SideLeft
	if pos == chatlayout.PositionTabRight {
		side = panes.SideRight
	}

	if m.chatTabID == "" {
		m.chatTabGen++
		m.chatTabID = fmt.Sprintf("ai-chat-%d", m.chatTabGen)
		m.split.Open(side, panes.Tab{
			ID:       m.chatTabID,
			Title:    "AI Chat",
			Kind:     panes.TabKindChat,
			Closable: true,
		})
		return
	}

	if current, ok := m.split.SideOf(m.chatTabID); ok && current != side {
		m.split.MoveTab(m.chatTabID, side)
	}
}

// openDocumentTab opens (or activates) a preview tab for the document. A
// previously closed document stays closed until the space is reopened; the
// registry's creation dedup enforces that.
func (m *Model) openDocumentTab(doc documents.Document) tea.Cmd {
	tabID := "doc:" + doc.ID
	m.split.Open(panes.SideLeft, panes.Tab{
		ID:       tabID,
		Title:    doc.Name,
		Kind:     panes.TabKindDocument,
		Closable: true,
		Payload:  doc.ID,
	})

	// The open may have been refused by the dedup rule.
	if _, ok := m.split.SideOf(tabID); !ok {
		return nil
	}
	if _, ok := m.docViews[tabID]; ok {
		return nil
	}
	m.docViews[tabID] = ui.NewDocView(doc)
	m.updateSizes()
	return m.loadDocumentContent(doc.ID)
}

// closeTab closes the tab and discards its preview state.
func (m *Model) closeTab(id string) {
	if id == "" || id == panes.DocumentsTabID {
		return
	}
	if id == m.chatTabID {
		// Closing the chat tab hides the chat rather than discarding it.
		m.layout.Hide()
		m.syncChatTab()
		m.updateSizes()
		return
	}
	m.split.Close(id)
	delete(m.docViews, id)
	m.updateSizes()
}

// activePane returns the pane side that holds keyboard focus within the
// content area. Without a split everything lives on the left.
func (m *Model) activePane() panes.Side {
	if m.split.HasSplit() {
		return m.focusSide
	}
	return panes.SideLeft
}

// chatFocused reports whether keystrokes should go to the chat composer.
func (m *Model) chatFocused() bool {
	if m.layout == nil {
		return false
	}
	if m.focus == FocusChat {
		return true
	}
	if m.focus == FocusPanes && m.layout.Position().IsTab() {
		if tab, ok := m.split.Pane(m.activePane()).Active(); ok {
			return tab.Kind == panes.TabKindChat
		}
	}
	return false
}

// documentsTabActive reports whether the focused pane shows the grid.
func (m *Model) documentsTabActive() bool {
	if m.focus != FocusPanes {
		return false
	}
	tab, ok := m.split.Pane(m.activePane()).Active()
	return ok && tab.Kind == panes.TabKindDocuments
}

// cycleFocus advances Tab-key focus through sidebar, panes, and the docked
// chat. The chat stop is skipped when the chat is hidden or rendered as a
// pane tab.
func (m *Model) cycleFocus(backward bool) {
	stops := []Focus{FocusSidebar, FocusPanes}
	if m.layout != nil {
		pos := m.layout.EffectivePosition()
		if pos.IsBottom() || pos == chatlayout.PositionFullscreen {
			stops = append(stops, FocusChat)
		}
	}

	idx := 0
	for i, s := range stops {
		if s == m.focus {
			idx = i
			break
		}
	}
	if backward {
		idx = (idx - 1 + len(stops)) % len(stops)
	} else {
		idx = (idx + 1) % len(stops)
	}
	m.focus = stops[idx]
	m.updateFocus()
}

// updateFocus pushes the focus state down into the components.
func (m *Model) updateFocus() {
	m.sidebar.SetFocused(m.focus == FocusSidebar)
	m.grid.SetFocused(m.documentsTabActive())
	m.chat.SetFocused(m.chatFocused())

	for id, dv := range m.docViews {
		focused := false
		if m.focus == FocusPanes {
			if tab, ok := m.split.Pane(m.activePane()).Active(); ok && tab.ID == id {
				focused = true
			}
		}
		dv.SetFocused(focused)
	}
}

// showFlash displays a transient footer message.
func (m *Model) showFlash(text string, kind ui.FlashType) tea.Cmd {
	return m.footer.SetFlash(text, kind)
}

// updateFooterContext updates the footer with current context for
// conditional bindings.
func (m *Model) updateFooterContext() {
	m.footer.SetContext(
		m.focus == FocusSidebar,
		m.chatFocused(),
		m.documentsTabActive(),
		m.ctrl.SelectionCount(),
	)
}

// paneWidths returns the rendered cell widths of the two panes.
func (m *Model) paneWidths() (left, right int) {
	ctx := ui.GetViewContext()
	ws := m.split.Widths()
	return ctx.PaneWidths(ws.Left, ws.Right, m.split.HasSplit())
}

// paneContentHeight is the pane area height after the tab bar and, for
// bottom chat placements, the docked chat strip.
func (m *Model) paneContentHeight() int {
	ctx := ui.GetViewContext()
	h := ctx.ContentHeight - ui.TabBarHeight
	if m.layout != nil && m.layout.EffectivePosition().IsBottom() {
		h -= ctx.BottomChatHeight()
	}
	return h
}

// updateSizes updates component sizes based on terminal dimensions
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.sidebar.SetSize(ctx.SidebarWidth, ctx.ContentHeight)

	leftW, rightW := m.paneWidths()
	m.leftBar.SetWidth(leftW)
	m.rightBar.SetWidth(rightW)

	paneH := m.paneContentHeight()
	gridW := leftW
	if side, ok := m.split.SideOf(panes.DocumentsTabID); ok && side == panes.SideRight {
		gridW = rightW
	}
	m.grid.SetSize(gridW, paneH)

	for id, dv := range m.docViews {
		w := leftW
		if side, ok := m.split.SideOf(id); ok && side == panes.SideRight {
			w = rightW
		}
		dv.SetSize(w, paneH)
	}

	m.sizeChat(leftW, rightW, paneH)

	// Sample the rendered widths back into the tracker while split, so the
	// persisted percentages follow what is actually on screen. Skipped
	// mid-drag; the release handler persists the final sample.
	if m.split.HasSplit() && !m.paneDividerDrag && m.spaceID != "" {
		sample := panes.WidthSample{
			LeftPx:  leftW * panes.CellPixelWidth,
			RightPx: rightW * panes.CellPixelWidth,
			IsSplit: true,
		}
		m.persistPaneWidths(m.split.SampleWidths(sample))
	}
}

func (m *Model) sizeChat(leftW, rightW, paneH int) {
	if m.layout == nil {
		return
	}
	ctx := ui.GetViewContext()
	switch pos := m.layout.EffectivePosition(); pos {
	case chatlayout.PositionBottomFull:
		m.chat.SetSize(ctx.ContentWidth, ctx.BottomChatHeight())
	case chatlayout.PositionBottomLeft:
		m.chat.SetSize(leftW, ctx.BottomChatHeight())
	case chatlayout.PositionBottomRight:
		w := rightW
		if w == 0 {
			w = ctx.ContentWidth
		}
		m.chat.SetSize(w, ctx.BottomChatHeight())
	case chatlayout.PositionTabLeft:
		m.chat.SetSize(leftW, paneH)
	case chatlayout.PositionTabRight:
		m.chat.SetSize(rightW, paneH)
	case chatlayout.PositionFullscreen:
		m.chat.SetSize(ctx.ContentWidth, ctx.ContentHeight)
	}
}

func (m *Model) persistPaneWidths(ws panes.WidthState) {
	if m.spaceID == "" {
		return
	}
	if err := m.store.Set(m.spaceID, paneLayoutKey, ws); err != nil {
		logger.Warn("App: persisting pane widths failed: %v", err)
	}
}
