package ui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"dochub/internal/api"
	"dochub/internal/keys"
)

// Sidebar represents the left panel with the user's spaces.
type Sidebar struct {
	spaces       []api.Space
	selectedIdx  int
	width        int
	height       int
	focused      bool
	scrollOffset int
	loading      bool
}

// NewSidebar creates a new sidebar
func NewSidebar() *Sidebar {
	return &Sidebar{loading: true}
}

// SetSize sets the sidebar dimensions
func (s *Sidebar) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// SetFocused sets whether the sidebar has focus
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// Focused reports whether the sidebar has focus
func (s *Sidebar) Focused() bool {
	return s.focused
}

// SetSpaces replaces the space list, keeping the selection on the same
// space id when it survives the refresh.
func (s *Sidebar) SetSpaces(spaces []api.Space) {
	selectedID := ""
	if sp, ok := s.Selected(); ok {
		selectedID = sp.ID
	}

	s.spaces = spaces
	s.loading = false

	s.selectedIdx = 0
	for i, sp := range spaces {
		if sp.ID == selectedID {
			s.selectedIdx = i
			break
		}
	}
	s.clampScroll()
}

// SelectID moves the selection to the space with the given id.
func (s *Sidebar) SelectID(id string) bool {
	for i, sp := range s.spaces {
		if sp.ID == id {
			s.selectedIdx = i
			s.clampScroll()
			return true
		}
	}
	return false
}

// Selected returns the currently selected space.
func (s *Sidebar) Selected() (api.Space, bool) {
	if s.selectedIdx < 0 || s.selectedIdx >= len(s.spaces) {
		return api.Space{}, false
	}
	return s.spaces[s.selectedIdx], true
}

// Update handles navigation keys. Returns true when the selection was
// confirmed with enter.
func (s *Sidebar) Update(msg tea.KeyPressMsg) (confirmed bool) {
	switch msg.String() {
	case keys.Up, "k":
		if s.selectedIdx > 0 {
			s.selectedIdx--
		}
	case keys.Down, "j":
		if s.selectedIdx < len(s.spaces)-1 {
			s.selectedIdx++
		}
	case keys.Enter:
		return len(s.spaces) > 0
	}
	s.clampScroll()
	return false
}

func (s *Sidebar) clampScroll() {
	visible := s.height - BorderSize - TitleHeight
	if visible < 1 {
		visible = 1
	}
	if s.selectedIdx < s.scrollOffset {
		s.scrollOffset = s.selectedIdx
	}
	if s.selectedIdx >= s.scrollOffset+visible {
		s.scrollOffset = s.selectedIdx - visible + 1
	}
}

// View renders the sidebar
func (s *Sidebar) View() string {
	var b strings.Builder
	b.WriteString(PanelTitleStyle.Render("Spaces"))
	b.WriteString("\n")

	innerWidth := s.width - BorderSize
	visible := s.height - BorderSize - TitleHeight

	switch {
	case s.loading:
		b.WriteString(StatusLoadingStyle.Render(" loading..."))
	case len(s.spaces) == 0:
		b.WriteString(SidebarItemStyle.Render("no spaces"))
	default:
		end := s.scrollOffset + visible
		if end > len(s.spaces) {
			end = len(s.spaces)
		}
		for i := s.scrollOffset; i < end; i++ {
			sp := s.spaces[i]
			label := sp.Name
			count := SidebarCountStyle.Render(fmt.Sprintf(" %d", sp.DocumentCount))

			maxName := innerWidth - len(count) - 2
			if maxName > 0 && len(label) > maxName {
				label = label[:maxName-1] + "…"
			}

			line := label + count
			if i == s.selectedIdx {
				b.WriteString(SidebarSelectedStyle.Width(innerWidth).Render(line))
			} else {
				b.WriteString(SidebarItemStyle.Render(line))
			}
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}
	return style.Width(s.width - BorderSize).Height(s.height - BorderSize).Render(b.String())
}
