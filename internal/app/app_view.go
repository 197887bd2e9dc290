package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"dochub/internal/chatlayout"
	"dochub/internal/panes"
	"dochub/internal/ui"
)

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	m.updateFooterContext()

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.sidebar.View(),
			m.renderContentArea(),
		),
		m.footer.View(),
	)

	if m.modal.IsVisible() {
		v.SetContent(m.modal.View(m.width, m.height))
		return v
	}

	v.SetContent(content)
	return v
}

// renderContentArea renders everything right of the sidebar: the tabbed
// panes plus the chat panel wherever the layout puts it.
func (m *Model) renderContentArea() string {
	ctx := ui.GetViewContext()

	if !m.HasSpace() {
		return ui.PanelStyle.
			Width(ctx.ContentWidth).
			Height(ctx.ContentHeight).
			Render(ui.CardMetaStyle.Render("Select a space to get started."))
	}

	pos := m.layout.EffectivePosition()
	if pos == chatlayout.PositionFullscreen {
		return m.chat.View()
	}

	panesBlock := m.renderPanes()
	if !pos.IsBottom() {
		return panesBlock
	}

	leftW, rightW := m.paneWidths()
	var strip string
	switch pos {
	case chatlayout.PositionBottomLeft:
		strip = m.chat.View()
		if rightW > 0 {
			strip = lipgloss.JoinHorizontal(lipgloss.Top, strip,
				lipgloss.NewStyle().Width(rightW).Render(""))
		}
	case chatlayout.PositionBottomRight:
		strip = m.chat.View()
		if rightW > 0 {
			strip = lipgloss.JoinHorizontal(lipgloss.Top,
				lipgloss.NewStyle().Width(leftW).Render(""), strip)
		}
	default:
		strip = m.chat.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, panesBlock, strip)
}

// renderPanes renders the tab strips and pane bodies, side by side when
// split.
func (m *Model) renderPanes() string {
	dragID := ""
	if m.drag != nil && m.drag.Active() {
		dragID = m.drag.TabID
	}

	left := lipgloss.JoinVertical(
		lipgloss.Left,
		m.leftBar.View(m.split.Pane(panes.SideLeft), dragID),
		m.renderPaneBody(panes.SideLeft),
	)
	if !m.split.HasSplit() {
		return left
	}

	right := lipgloss.JoinVertical(
		lipgloss.Left,
		m.rightBar.View(m.split.Pane(panes.SideRight), dragID),
		m.renderPaneBody(panes.SideRight),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m *Model) renderPaneBody(side panes.Side) string {
	tab, ok := m.split.Pane(side).Active()
	if !ok {
		leftW, rightW := m.paneWidths()
		w := leftW
		if side == panes.SideRight {
			w = rightW
		}
		return ui.PanelStyle.
			Width(w).
			Height(m.paneContentHeight()).
			Render("")
	}

	switch tab.Kind {
	case panes.TabKindDocuments:
		return m.grid.View()
	case panes.TabKindChat:
		return m.chat.View()
	case panes.TabKindDocument:
		if dv, ok := m.docViews[tab.ID]; ok {
			return dv.View()
		}
	}
	return ""
}
