package app

import (
	tea "charm.land/bubbletea/v2"

	"dochub/internal/chatlayout"
	"dochub/internal/panes"
	"dochub/internal/ui"
)

// handleMouse routes pointer events: tab clicks and drags, the pane and
// chat dividers, focus-by-click, and wheel scrolling.
func (m *Model) handleMouse(msg tea.Msg) tea.Cmd {
	if m.modal.IsVisible() {
		return nil
	}

	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		return m.handleMouseClick(msg)
	case tea.MouseMotionMsg:
		return m.handleMouseMotion(msg)
	case tea.MouseReleaseMsg:
		return m.handleMouseRelease(msg)
	case tea.MouseWheelMsg:
		return m.handleMouseWheel(msg)
	}
	return nil
}

func (m *Model) handleMouseClick(msg tea.MouseClickMsg) tea.Cmd {
	if msg.Button != tea.MouseLeft {
		return nil
	}

	ctx := ui.GetViewContext()
	contentTop := ctx.HeaderHeight
	contentBottom := contentTop + ctx.ContentHeight
	if msg.Y < contentTop || msg.Y >= contentBottom {
		return nil
	}

	if msg.X < ctx.SidebarWidth {
		m.focus = FocusSidebar
		m.updateFocus()
		return nil
	}
	if !m.HasSpace() {
		return nil
	}

	if m.layout.EffectivePosition() == chatlayout.PositionFullscreen {
		m.focus = FocusChat
		m.updateFocus()
		return nil
	}

	relX := msg.X - ctx.SidebarWidth
	leftW, _ := m.paneWidths()

	// Chat divider: the top edge of the bottom strip.
	if m.layout.EffectivePosition().IsBottom() {
		chatTop := contentBottom - ctx.BottomChatHeight()
		if msg.Y == chatTop {
			m.chatDividerDrag = true
			return nil
		}
		if msg.Y > chatTop {
			m.focus = FocusChat
			m.updateFocus()
			return nil
		}
	}

	// Pane divider: the boundary column between the two panes.
	if m.split.HasSplit() && (relX == leftW || relX == leftW-1) && msg.Y > contentTop {
		m.paneDividerDrag = true
		return nil
	}

	// Tab strip row: activate the tab under the pointer and arm a drag.
	if msg.Y == contentTop {
		m.clickTabStrip(relX, msg.X, msg.Y, leftW)
		return nil
	}

	// Pane body: focus the pane under the pointer.
	m.focus = FocusPanes
	if m.split.HasSplit() && relX >= leftW {
		m.focusSide = panes.SideRight
	} else {
		m.focusSide = panes.SideLeft
	}
	m.updateFocus()
	return nil
}

// clickTabStrip activates the tab at strip cell relX and records the press
// as a potential drag gesture.
func (m *Model) clickTabStrip(relX, absX, absY, leftW int) {
	side := panes.SideLeft
	bar := m.leftBar
	barX := relX
	if m.split.HasSplit() && relX >= leftW {
		side = panes.SideRight
		bar = m.rightBar
		barX = relX - leftW
	}

	id, ok := bar.TabAt(barX)
	if !ok {
		return
	}
	m.split.Pane(side).SetActive(id)
	m.focus = FocusPanes
	m.focusSide = side
	m.drag = m.split.BeginDrag(id, side, absX, absY)
	m.updateFocus()
}

func (m *Model) handleMouseMotion(msg tea.MouseMotionMsg) tea.Cmd {
	ctx := ui.GetViewContext()

	if m.drag != nil {
		m.drag.Track(msg.X, msg.Y)
		return nil
	}

	if m.paneDividerDrag {
		relX := msg.X - ctx.SidebarWidth
		if relX < 1 {
			relX = 1
		}
		if relX > ctx.ContentWidth-1 {
			relX = ctx.ContentWidth - 1
		}
		m.split.SampleWidths(panes.WidthSample{
			LeftPx:  relX * panes.CellPixelWidth,
			RightPx: (ctx.ContentWidth - relX) * panes.CellPixelWidth,
			IsSplit: true,
		})
		m.updateSizes()
		return nil
	}

	if m.chatDividerDrag {
		contentBottom := ctx.HeaderHeight + ctx.ContentHeight
		share := 0
		if ctx.ContentHeight > 0 {
			share = (contentBottom - msg.Y) * 100 / ctx.ContentHeight
		}
		if share < 0 {
			share = 0
		}
		if share > 100 {
			share = 100
		}
		m.layout.TrackSplit(share)
		m.updateSizes()
		return nil
	}

	return nil
}

func (m *Model) handleMouseRelease(msg tea.MouseReleaseMsg) tea.Cmd {
	if m.paneDividerDrag {
		m.paneDividerDrag = false
		m.persistPaneWidths(m.split.Widths())
		m.updateSizes()
		return nil
	}

	if m.chatDividerDrag {
		m.chatDividerDrag = false
		m.updateFocus()
		m.updateSizes()
		return nil
	}

	if m.drag != nil {
		m.finishTabDrag(msg)
	}
	return nil
}

// finishTabDrag resolves a tab drop: reorder within a strip, move across
// panes, or split the window when released in the right-edge zone. A press
// that never crossed the drag threshold was just a click and is done.
func (m *Model) finishTabDrag(msg tea.MouseReleaseMsg) {
	d := m.drag
	m.drag = nil
	if !d.Active() {
		return
	}

	ctx := ui.GetViewContext()
	relX := msg.X - ctx.SidebarWidth
	leftW, _ := m.paneWidths()

	if msg.Y == ctx.HeaderHeight {
		m.dropOnTabStrip(d, relX, leftW)
		return
	}

	if !m.split.HasSplit() && panes.InSplitZone(relX, ctx.ContentWidth) {
		if m.split.SplitRight(d.TabID) {
			m.focusSide = panes.SideRight
			m.updateFocus()
			m.updateSizes()
		}
	}
}

func (m *Model) dropOnTabStrip(d *panes.Drag, relX, leftW int) {
	side := panes.SideLeft
	bar := m.leftBar
	barX := relX
	if m.split.HasSplit() && relX >= leftW {
		side = panes.SideRight
		bar = m.rightBar
		barX = relX - leftW
	}
	toIdx := bar.IndexAt(barX)

	if side == d.Origin {
		from := m.split.Pane(side).IndexOf(d.TabID)
		if from < 0 {
			return
		}
		if toIdx > from {
			toIdx--
		}
		m.split.Reorder(side, from, toIdx)
	} else if m.split.MoveTab(d.TabID, side) {
		reg := m.split.Pane(side)
		from := reg.IndexOf(d.TabID)
		if toIdx > reg.Len()-1 {
			toIdx = reg.Len() - 1
		}
		if from >= 0 && toIdx >= 0 && from != toIdx {
			m.split.Reorder(side, from, toIdx)
		}
		m.focusSide = side
	}

	m.updateFocus()
	m.updateSizes()
}

// handleMouseWheel scrolls whichever scrollable region sits under the
// pointer.
func (m *Model) handleMouseWheel(msg tea.MouseWheelMsg) tea.Cmd {
	ctx := ui.GetViewContext()
	if msg.X < ctx.SidebarWidth || !m.HasSpace() {
		return nil
	}

	pos := m.layout.EffectivePosition()
	if pos == chatlayout.PositionFullscreen {
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return cmd
	}

	if pos.IsBottom() {
		chatTop := ctx.HeaderHeight + ctx.ContentHeight - ctx.BottomChatHeight()
		if msg.Y >= chatTop {
			var cmd tea.Cmd
			m.chat, cmd = m.chat.Update(msg)
			return cmd
		}
	}

	relX := msg.X - ctx.SidebarWidth
	leftW, _ := m.paneWidths()
	side := panes.SideLeft
	if m.split.HasSplit() && relX >= leftW {
		side = panes.SideRight
	}

	tab, ok := m.split.Pane(side).Active()
	if !ok {
		return nil
	}
	switch tab.Kind {
	case panes.TabKindChat:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return cmd
	case panes.TabKindDocument:
		if dv, ok := m.docViews[tab.ID]; ok {
			var cmd tea.Cmd
			_, cmd = dv.Update(msg)
			return cmd
		}
	}
	return nil
}
