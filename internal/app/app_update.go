package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"dochub/internal/chatlayout"
	"dochub/internal/clipboard"
	"dochub/internal/documents"
	"dochub/internal/feed"
	"dochub/internal/keys"
	"dochub/internal/logger"
	"dochub/internal/panes"
	"dochub/internal/ui"
)

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case ui.FlashTickMsg:
		m.footer.ExpireFlash(msg)
		return m, nil

	case ui.StopwatchTickMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	case spacesLoadedMsg:
		return m, m.handleSpacesLoaded(msg)

	case documentsLoadedMsg:
		return m, m.handleDocumentsLoaded(msg)

	case messagesLoadedMsg:
		return m, m.handleMessagesLoaded(msg)

	case olderMessagesMsg:
		return m, m.handleOlderMessages(msg)

	case messageSentMsg:
		return m, m.handleMessageSent(msg)

	case docContentMsg:
		if dv, ok := m.docViews["doc:"+msg.docID]; ok {
			if msg.err != nil {
				dv.SetError(msg.err.Error())
			} else {
				dv.SetContent(msg.content)
			}
		}
		return m, nil

	case bulkDeleteMsg:
		return m, m.handleBulkDelete(msg)

	case downloadsDoneMsg:
		m.downloading = false
		text := fmt.Sprintf("downloaded %d", msg.succeeded)
		kind := ui.FlashSuccess
		if msg.failed > 0 {
			text += fmt.Sprintf(", %d failed", msg.failed)
			kind = ui.FlashError
		}
		if msg.skipped > 0 {
			text += fmt.Sprintf(" (%d web documents skipped)", msg.skipped)
		}
		return m, m.showFlash(text, kind)

	case uploadDoneMsg:
		return m, m.handleUploadDone(msg)

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg, tea.MouseWheelMsg:
		return m, m.handleMouse(msg)
	}

	// Everything else (blink ticks and the like) flows to the composer.
	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return m, cmd
}

// handleKey routes key presses by modal state and focus.
func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if m.modal.IsVisible() {
		return m, m.handleModalKey(msg)
	}

	switch msg.String() {
	case keys.CtrlC:
		return m, tea.Quit
	case "q":
		if !m.chatFocused() && !m.grid.InSearchMode() {
			return m, tea.Quit
		}
	case keys.Tab:
		if !m.grid.InSearchMode() {
			m.cycleFocus(false)
			return m, nil
		}
	case keys.ShiftTab:
		if !m.grid.InSearchMode() {
			m.cycleFocus(true)
			return m, nil
		}
	case keys.Escape:
		if m.cancelUpload() {
			return m, m.showFlash("upload canceled", ui.FlashInfo)
		}
	}

	if m.focus == FocusSidebar {
		if m.sidebar.Update(msg) {
			if sp, ok := m.sidebar.Selected(); ok {
				return m, m.openSpace(sp)
			}
		}
		return m, nil
	}

	if !m.HasSpace() {
		return m, nil
	}

	if m.chatFocused() {
		return m, m.handleChatKey(msg)
	}

	return m, m.handlePaneKey(msg)
}

// handleChatKey handles keys while the composer has focus.
func (m *Model) handleChatKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Enter:
		return m.sendChatMessage()
	case keys.CtrlH:
		m.layout.ToggleHistory()
		m.chat.SetShowHistory(m.layout.ShowHistory())
		m.updateSizes()
		return nil
	case keys.CtrlL:
		m.modal.Show(ui.NewChatPositionState(m.layout.Position()))
		return nil
	case keys.CtrlY:
		return m.copyLastReply()
	}

	var cmd tea.Cmd
	m.chat, cmd = m.chat.Update(msg)
	return tea.Batch(cmd, m.maybeFetchOlder())
}

// sendChatMessage appends the prompt optimistically and posts it scoped to
// the current document selection.
func (m *Model) sendChatMessage() tea.Cmd {
	text := m.chat.InputValue()
	if text == "" || m.chat.IsWaiting() {
		return nil
	}

	m.sendSeq++
	localID := fmt.Sprintf("local-%d", m.sendSeq)
	m.feed.Append(feed.Record{ID: localID, Content: text, CreatedAt: time.Now()})
	m.chat.ResetInput()
	m.chat.Refresh()

	return tea.Batch(
		m.chat.SetWaiting(true),
		m.sendMessage(m.spaceID, localID, text, m.ctrl.ContextIDs()),
	)
}

// copyLastReply puts the newest assistant message on the system clipboard.
func (m *Model) copyLastReply() tea.Cmd {
	entries := m.feed.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Role != feed.RoleAssistant || entries[i].ID == feed.WelcomeID {
			continue
		}
		if err := clipboard.WriteText(entries[i].Content); err != nil {
			return nil
		}
		return m.showFlash("reply copied", ui.FlashSuccess)
	}
	return nil
}

// maybeFetchOlder starts an older-page fetch when the scrollback sits near
// the top and more history exists.
func (m *Model) maybeFetchOlder() tea.Cmd {
	if !m.chat.ShouldFetchMore() {
		return nil
	}
	limit, offset, ok := m.feed.BeginFetch()
	if !ok {
		return nil
	}
	return m.loadOlderMessages(m.spaceID, limit, offset)
}

// handlePaneKey handles keys scoped to the tabbed content area.
func (m *Model) handlePaneKey(msg tea.KeyPressMsg) tea.Cmd {
	side := m.activePane()
	reg := m.split.Pane(side)

	if m.documentsTabActive() {
		if cmd, handled := m.handleDocumentsKey(msg); handled {
			return cmd
		}
	}

	searching := m.grid.InSearchMode() && m.documentsTabActive()

	switch msg.String() {
	case "w":
		if !searching {
			m.closeTab(reg.ActiveID())
			return nil
		}
	case "]":
		if !searching {
			m.cycleTab(reg, 1)
			return nil
		}
	case "[":
		if !searching {
			m.cycleTab(reg, -1)
			return nil
		}
	case keys.CtrlRight:
		m.reorderActiveTab(side, 1)
		return nil
	case keys.CtrlLeft:
		m.reorderActiveTab(side, -1)
		return nil
	case keys.CtrlShiftRight:
		m.moveActiveTab(side, panes.SideRight)
		return nil
	case keys.CtrlShiftLeft:
		m.moveActiveTab(side, panes.SideLeft)
		return nil
	case keys.CtrlL:
		m.modal.Show(ui.NewChatPositionState(m.layout.Position()))
		return nil
	case "t":
		if !searching {
			m.modal.Show(ui.NewThemeState(ui.CurrentThemeName()))
			return nil
		}
	}

	if tab, ok := reg.Active(); ok {
		switch tab.Kind {
		case panes.TabKindDocuments:
			return m.updateGrid(msg)
		case panes.TabKindDocument:
			if dv, ok := m.docViews[tab.ID]; ok {
				var cmd tea.Cmd
				_, cmd = dv.Update(msg)
				return cmd
			}
		}
	}
	return nil
}

// handleDocumentsKey handles collection actions while the grid is focused
// and not capturing search input. Returns handled=false for keys the grid
// itself should see.
func (m *Model) handleDocumentsKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	if m.grid.InSearchMode() {
		return nil, false
	}

	switch msg.String() {
	case "u":
		m.modal.Show(ui.NewUploadState())
		return nil, true
	case "d":
		if n := m.ctrl.SelectionCount(); n > 0 {
			m.modal.Show(ui.NewConfirmDeleteState(n))
		}
		return nil, true
	case "s":
		return m.startBulkDownload(), true
	case "o":
		m.cycleSortKey()
		return nil, true
	case "r":
		m.reverseSort()
		return nil, true
	case "f":
		m.cycleTypeFilter()
		return nil, true
	case "F":
		m.ctrl.ClearTypeFilter()
		return nil, true
	}
	return nil, false
}

// updateGrid forwards a key to the document grid and reacts to what it did.
func (m *Model) updateGrid(msg tea.KeyPressMsg) tea.Cmd {
	prevMode := m.ctrl.ViewMode()
	open, cmd := m.grid.Update(msg)
	m.chat.SetContextCount(m.ctrl.SelectionCount())
	if mode := m.ctrl.ViewMode(); mode != prevMode {
		if err := m.store.Set(m.spaceID, viewModeKey, mode); err != nil {
			logger.Warn("App: persisting view mode failed: %v", err)
		}
	}
	if open != nil {
		return tea.Batch(cmd, m.openDocumentTab(*open))
	}
	return cmd
}

// startBulkDownload downloads the selected documents sequentially,
// excluding web-sourced ones.
func (m *Model) startBulkDownload() tea.Cmd {
	if m.downloading {
		return m.showFlash("a download is already running", ui.FlashInfo)
	}
	selected := m.ctrl.SelectedDocuments()
	if len(selected) == 0 {
		return nil
	}
	plan, skipped := documents.DownloadPlan(selected)
	if len(plan) == 0 {
		return m.showFlash("selection contains only web documents", ui.FlashInfo)
	}
	m.downloading = true
	return tea.Batch(
		m.showFlash(fmt.Sprintf("downloading %d documents...", len(plan)), ui.FlashInfo),
		m.downloadDocuments(plan, skipped),
	)
}

func (m *Model) cycleTab(reg *panes.Registry, delta int) {
	tabs := reg.Tabs()
	if len(tabs) < 2 {
		return
	}
	idx := reg.IndexOf(reg.ActiveID())
	idx = (idx + delta + len(tabs)) % len(tabs)
	reg.SetActive(tabs[idx].ID)
	m.updateFocus()
}

func (m *Model) reorderActiveTab(side panes.Side, delta int) {
	reg := m.split.Pane(side)
	from := reg.IndexOf(reg.ActiveID())
	if from < 0 {
		return
	}
	m.split.Reorder(side, from, from+delta)
}

func (m *Model) moveActiveTab(from, to panes.Side) {
	reg := m.split.Pane(from)
	id := reg.ActiveID()
	if id == "" || from == to {
		return
	}
	if m.split.MoveTab(id, to) {
		m.focusSide = to
		m.updateFocus()
		m.updateSizes()
	}
}

func (m *Model) cycleSortKey() {
	order := []documents.SortKey{documents.SortByDate, documents.SortByName, documents.SortBySize}
	key, dir := m.ctrl.Sort()
	for i, k := range order {
		if k == key {
			key = order[(i+1)%len(order)]
			break
		}
	}
	m.ctrl.SetSort(key, dir)
}

func (m *Model) reverseSort() {
	key, dir := m.ctrl.Sort()
	if dir == documents.Ascending {
		dir = documents.Descending
	} else {
		dir = documents.Ascending
	}
	m.ctrl.SetSort(key, dir)
}

// cycleTypeFilter steps through single-type filters and back to unfiltered.
func (m *Model) cycleTypeFilter() {
	order := []documents.Type{
		documents.TypePDF, documents.TypeDocx, documents.TypeText,
		documents.TypeWeb, documents.TypeVideo,
	}
	current := m.ctrl.TypeFilter()
	if len(current) == 0 {
		m.ctrl.ToggleTypeFilter(order[0])
		return
	}
	m.ctrl.ClearTypeFilter()
	for i, t := range order {
		if current[0] == t {
			if i+1 < len(order) {
				m.ctrl.ToggleTypeFilter(order[i+1])
			}
			return
		}
	}
}

// handleModalKey handles keys while a modal is open.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case keys.Escape:
		m.modal.Hide()
		return nil
	case keys.Enter:
		return m.confirmModal()
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return cmd
}

// confirmModal applies the open modal's result.
func (m *Model) confirmModal() tea.Cmd {
	switch state := m.modal.State.(type) {
	case *ui.UploadState:
		source, value := state.GetValues()
		if value == "" {
			m.modal.SetError("enter a path or URL")
			return nil
		}
		m.modal.Hide()
		return m.startUpload(source, value)

	case *ui.ConfirmDeleteState:
		confirmed := state.Confirmed()
		m.modal.Hide()
		if !confirmed {
			return nil
		}
		return m.performBulkDelete()

	case *ui.ThemeState:
		name := state.GetSelectedTheme()
		ui.SetTheme(name)
		m.config.SetTheme(string(name))
		if err := m.config.Save(); err != nil {
			logger.Warn("App: saving theme failed: %v", err)
		}
		m.modal.Hide()
		return m.showFlash("theme applied", ui.FlashSuccess)

	case *ui.ChatPositionState:
		pos := state.GetSelectedPosition()
		m.modal.Hide()
		m.applyChatPosition(pos)
		return nil
	}

	m.modal.Hide()
	return nil
}

// startUpload kicks off the upload under a cancelable context so esc can
// abort it while it is in flight.
func (m *Model) startUpload(source ui.UploadSource, value string) tea.Cmd {
	if m.uploadCancel != nil {
		m.uploadCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.uploadCancel = cancel
	return tea.Batch(
		m.showFlash("adding document... (esc cancels)", ui.FlashInfo),
		m.uploadDocument(ctx, m.spaceID, source, value),
	)
}

// cancelUpload aborts the pending upload, if any.
func (m *Model) cancelUpload() bool {
	if m.uploadCancel == nil {
		return false
	}
	m.uploadCancel()
	m.uploadCancel = nil
	return true
}

// performBulkDelete removes the selection optimistically and fires the
// server deletes. Failures are reconciled when the batch settles.
func (m *Model) performBulkDelete() tea.Cmd {
	ids := m.ctrl.Selection()
	if len(ids) == 0 {
		return nil
	}
	m.ctrl.Remove(ids...)
	m.ctrl.ClearSelection()
	m.cache.Remove(m.spaceID, ids...)
	m.chat.SetContextCount(0)
	return m.deleteDocuments(m.spaceID, ids)
}

// applyChatPosition moves the chat and repairs focus when the old focus
// target no longer renders.
func (m *Model) applyChatPosition(pos chatlayout.Position) {
	if !m.layout.MoveTo(pos) {
		return
	}
	m.syncChatTab()
	m.chat.SetShowHistory(m.layout.ShowHistory())

	if m.focus == FocusChat && !pos.IsBottom() {
		m.focus = FocusPanes
	}
	m.updateFocus()
	m.updateSizes()
}

func (m *Model) handleSpacesLoaded(msg spacesLoadedMsg) tea.Cmd {
	if msg.err != nil {
		m.sidebar.SetSpaces(nil)
		return m.showFlash("loading spaces failed: "+msg.err.Error(), ui.FlashError)
	}
	m.sidebar.SetSpaces(msg.spaces)

	// Reopen the space from the previous run.
	if m.spaceID == "" {
		if last := m.config.GetLastSpaceID(); last != "" {
			for _, sp := range msg.spaces {
				if sp.ID == last {
					m.sidebar.SelectID(last)
					return m.openSpace(sp)
				}
			}
		}
	}
	return nil
}

func (m *Model) handleDocumentsLoaded(msg documentsLoadedMsg) tea.Cmd {
	if msg.err != nil {
		return m.showFlash("loading documents failed: "+msg.err.Error(), ui.FlashError)
	}
	m.cache.Set(msg.spaceID, msg.docs)
	if msg.spaceID == m.spaceID {
		m.ctrl.SetDocuments(msg.docs)
	}
	return nil
}

func (m *Model) handleMessagesLoaded(msg messagesLoadedMsg) tea.Cmd {
	if msg.spaceID != m.spaceID {
		return nil
	}
	if msg.err != nil {
		return m.showFlash("loading messages failed: "+msg.err.Error(), ui.FlashError)
	}
	m.feed.SetInitial(msg.records)
	m.chat.Refresh()
	return nil
}

func (m *Model) handleOlderMessages(msg olderMessagesMsg) tea.Cmd {
	if msg.spaceID != m.spaceID {
		return nil
	}
	if msg.err != nil {
		m.feed.FailFetch()
		m.chat.Refresh()
		return m.showFlash("loading history failed: "+msg.err.Error(), ui.FlashError)
	}
	m.feed.PrependPage(msg.records)
	m.chat.PrependOlder()
	return nil
}

func (m *Model) handleMessageSent(msg messageSentMsg) tea.Cmd {
	if msg.spaceID != m.spaceID {
		return nil
	}
	m.chat.SetWaiting(false)
	if msg.err != nil {
		return m.showFlash("sending failed: "+msg.err.Error(), ui.FlashError)
	}
	if msg.record != nil {
		m.feed.SetResponse(msg.localID, msg.record.Response)
	}
	m.chat.Refresh()
	return nil
}

func (m *Model) handleBulkDelete(msg bulkDeleteMsg) tea.Cmd {
	if msg.result.Outcome() == documents.AllSucceeded {
		return m.showFlash(fmt.Sprintf("%d documents deleted", msg.result.Succeeded), ui.FlashSuccess)
	}

	// Some deletes failed after the optimistic removal; drop the cache and
	// refetch so the grid converges on what the server kept.
	m.cache.Invalidate(msg.spaceID)
	cmds := []tea.Cmd{
		m.showFlash(fmt.Sprintf("%d of %d deletes failed",
			msg.result.Failed, msg.result.Succeeded+msg.result.Failed), ui.FlashError),
	}
	if msg.spaceID == m.spaceID {
		cmds = append(cmds, m.loadDocuments(msg.spaceID))
	}
	return tea.Batch(cmds...)
}

func (m *Model) handleUploadDone(msg uploadDoneMsg) tea.Cmd {
	if m.uploadCancel != nil {
		m.uploadCancel()
		m.uploadCancel = nil
	}
	if msg.err != nil {
		// A cancelled upload is a deliberate user action, not a failure.
		if errors.Is(msg.err, context.Canceled) {
			return nil
		}
		return m.showFlash("adding document failed: "+msg.err.Error(), ui.FlashError)
	}
	if msg.doc == nil {
		return nil
	}
	m.cache.Add(msg.spaceID, *msg.doc)
	if msg.spaceID == m.spaceID {
		m.ctrl.SetDocuments(append(m.ctrl.Documents(), *msg.doc))
	}
	return m.showFlash(fmt.Sprintf("added %q", msg.doc.Name), ui.FlashSuccess)
}
