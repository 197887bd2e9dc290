package ui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"dochub/internal/chatlayout"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// =============================================================================
// UploadState - State for the Add Document modal
// =============================================================================

// UploadSource identifies where a new document comes from.
type UploadSource string

const (
	UploadSourceFile  UploadSource = "file"
	UploadSourceURL   UploadSource = "url"
	UploadSourceVideo UploadSource = "video"
)

type UploadState struct {
	// Bound form values
	source string
	path   string
	url    string

	form *huh.Form
}

func (*UploadState) modalState() {}

func (s *UploadState) Title() string { return "Add Document" }

func (s *UploadState) Help() string {
	return "Tab: next  Enter: add  Esc: cancel"
}

func (s *UploadState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *UploadState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetValues returns the chosen source and its file path or URL.
func (s *UploadState) GetValues() (UploadSource, string) {
	src := UploadSource(s.source)
	if src == UploadSourceFile {
		return src, s.path
	}
	return src, s.url
}

// NewUploadState creates a new UploadState
func NewUploadState() *UploadState {
	s := &UploadState{source: string(UploadSourceFile)}

	pathGroup := huh.NewGroup(
		huh.NewInput().
			Title("File path").
			Placeholder("/path/to/document.pdf").
			CharLimit(ModalInputCharLimit).
			Value(&s.path),
	).WithHideFunc(func() bool {
		return s.source != string(UploadSourceFile)
	})

	urlGroup := huh.NewGroup(
		huh.NewInput().
			Title("URL").
			Placeholder("https://example.com/page").
			CharLimit(ModalInputCharLimit).
			Value(&s.url),
	).WithHideFunc(func() bool {
		return s.source == string(UploadSourceFile)
	})

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Source").
				Options(
					huh.NewOption("Upload a file", string(UploadSourceFile)),
					huh.NewOption("Save a web page", string(UploadSourceURL)),
					huh.NewOption("Transcribe a video", string(UploadSourceVideo)),
				).
				Value(&s.source),
		),
		pathGroup,
		urlGroup,
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}

// =============================================================================
// ConfirmDeleteState - State for the bulk delete confirmation modal
// =============================================================================

type ConfirmDeleteState struct {
	Count         int
	Options       []string
	SelectedIndex int
}

func (*ConfirmDeleteState) modalState() {}

func (s *ConfirmDeleteState) Title() string { return "Delete Documents?" }

func (s *ConfirmDeleteState) Help() string {
	return "↑/↓ to select, Enter to confirm, Esc to cancel"
}

func (s *ConfirmDeleteState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	noun := "documents"
	if s.Count == 1 {
		noun = "document"
	}
	message := ModalDangerStyle.
		MarginBottom(1).
		Render(fmt.Sprintf("This will permanently delete %d %s.", s.Count, noun))

	var optionList string
	for i, opt := range s.Options {
		style := SidebarItemStyle
		prefix := "  "
		if i == s.SelectedIndex {
			style = SidebarSelectedStyle
			prefix = "> "
		}
		optionList += style.Render(prefix+opt) + "\n"
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, message, optionList, help)
}

func (s *ConfirmDeleteState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case "down", "j":
			if s.SelectedIndex < len(s.Options)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// Confirmed returns true if the user selected the delete option
func (s *ConfirmDeleteState) Confirmed() bool {
	return s.SelectedIndex == 1
}

// NewConfirmDeleteState creates a new ConfirmDeleteState
func NewConfirmDeleteState(count int) *ConfirmDeleteState {
	return &ConfirmDeleteState{
		Count:         count,
		Options:       []string{"Cancel", "Delete"},
		SelectedIndex: 0,
	}
}

// =============================================================================
// ThemeState - State for the Theme picker modal
// =============================================================================

type ThemeState struct {
	Themes        []ThemeName
	SelectedIndex int
	CurrentTheme  ThemeName
}

func (*ThemeState) modalState() {}

func (s *ThemeState) Title() string { return "Select Theme" }

func (s *ThemeState) Help() string {
	return "↑/↓ to select, Enter to apply, Esc to cancel"
}

func (s *ThemeState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var content string
	for i, themeName := range s.Themes {
		theme := GetTheme(themeName)
		style := SidebarItemStyle
		prefix := "  "
		suffix := ""

		if i == s.SelectedIndex {
			style = SidebarSelectedStyle
			prefix = "> "
		}

		if themeName == s.CurrentTheme {
			suffix = " (current)"
		}

		content += style.Render(prefix+theme.Name+suffix) + "\n"
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *ThemeState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case "down", "j":
			if s.SelectedIndex < len(s.Themes)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// GetSelectedTheme returns the selected theme name
func (s *ThemeState) GetSelectedTheme() ThemeName {
	if len(s.Themes) == 0 || s.SelectedIndex >= len(s.Themes) {
		return DefaultTheme
	}
	return s.Themes[s.SelectedIndex]
}

// NewThemeState creates a new ThemeState
func NewThemeState(currentTheme ThemeName) *ThemeState {
	themes := ThemeNames()

	selectedIndex := 0
	for i, t := range themes {
		if t == currentTheme {
			selectedIndex = i
			break
		}
	}

	return &ThemeState{
		Themes:        themes,
		SelectedIndex: selectedIndex,
		CurrentTheme:  currentTheme,
	}
}

// =============================================================================
// ChatPositionState - State for the Move Chat modal
// =============================================================================

// chatPositionOptions lists the selectable chat placements in display order.
var chatPositionOptions = []struct {
	Position chatlayout.Position
	Label    string
}{
	{chatlayout.PositionBottomFull, "Bottom, full width"},
	{chatlayout.PositionBottomLeft, "Bottom, under left pane"},
	{chatlayout.PositionBottomRight, "Bottom, under right pane"},
	{chatlayout.PositionTabLeft, "Tab in left pane"},
	{chatlayout.PositionTabRight, "Tab in right pane"},
	{chatlayout.PositionHidden, "Hidden"},
}

type ChatPositionState struct {
	Current       chatlayout.Position
	SelectedIndex int
}

func (*ChatPositionState) modalState() {}

func (s *ChatPositionState) Title() string { return "Move Chat" }

func (s *ChatPositionState) Help() string {
	return "↑/↓ to select, Enter to apply, Esc to cancel"
}

func (s *ChatPositionState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var content string
	for i, opt := range chatPositionOptions {
		style := SidebarItemStyle
		prefix := "  "
		suffix := ""

		if i == s.SelectedIndex {
			style = SidebarSelectedStyle
			prefix = "> "
		}
		if opt.Position == s.Current {
			suffix = " (current)"
		}

		content += style.Render(prefix+opt.Label+suffix) + "\n"
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *ChatPositionState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case "down", "j":
			if s.SelectedIndex < len(chatPositionOptions)-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

// GetSelectedPosition returns the chosen chat placement
func (s *ChatPositionState) GetSelectedPosition() chatlayout.Position {
	return chatPositionOptions[s.SelectedIndex].Position
}

// NewChatPositionState creates a new ChatPositionState
func NewChatPositionState(current chatlayout.Position) *ChatPositionState {
	selectedIndex := 0
	for i, opt := range chatPositionOptions {
		if opt.Position == current {
			selectedIndex = i
			break
		}
	}
	return &ChatPositionState{
		Current:       current,
		SelectedIndex: selectedIndex,
	}
}
