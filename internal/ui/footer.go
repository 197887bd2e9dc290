package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType classifies a transient footer message.
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashError
)

// FlashDuration is how long a flash message stays visible.
const FlashDuration = 3 * time.Second

// FlashTickMsg expires the flash message with the matching sequence number.
type FlashTickMsg struct {
	Seq int
}

// Footer represents the bottom footer bar with keybindings and transient
// flash messages. A visible flash replaces the keybinding hints until it
// expires.
type Footer struct {
	width int

	sidebarFocused bool
	chatFocused    bool
	documentsTab   bool
	selectionCount int

	flash     string
	flashType FlashType
	flashSeq  int
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(sidebarFocused, chatFocused, documentsTab bool, selectionCount int) {
	f.sidebarFocused = sidebarFocused
	f.chatFocused = chatFocused
	f.documentsTab = documentsTab
	f.selectionCount = selectionCount
}

// SetFlash shows a transient message and returns the command that expires
// it. A newer flash invalidates the pending expiry of an older one.
func (f *Footer) SetFlash(msg string, kind FlashType) tea.Cmd {
	f.flash = msg
	f.flashType = kind
	f.flashSeq++

	seq := f.flashSeq
	return tea.Tick(FlashDuration, func(time.Time) tea.Msg {
		return FlashTickMsg{Seq: seq}
	})
}

// ExpireFlash clears the flash if the tick matches the latest one shown.
func (f *Footer) ExpireFlash(msg FlashTickMsg) {
	if msg.Seq == f.flashSeq {
		f.flash = ""
	}
}

// bindings returns the hints for the current focus context.
func (f *Footer) bindingsForContext() []KeyBinding {
	switch {
	case f.sidebarFocused:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "select space"},
			{Key: "enter", Desc: "open"},
			{Key: "tab", Desc: "switch focus"},
			{Key: "q", Desc: "quit"},
		}
	case f.chatFocused:
		return []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "ctrl+h", Desc: "history"},
			{Key: "ctrl+l", Desc: "move chat"},
			{Key: "tab", Desc: "switch focus"},
			{Key: "pgup/dn", Desc: "scroll"},
		}
	case f.documentsTab && f.selectionCount > 0:
		return []KeyBinding{
			{Key: "space", Desc: "select"},
			{Key: "d", Desc: "delete selected"},
			{Key: "s", Desc: "download selected"},
			{Key: "esc", Desc: "clear selection"},
		}
	case f.documentsTab:
		return []KeyBinding{
			{Key: "/", Desc: "search"},
			{Key: "space", Desc: "select"},
			{Key: "enter", Desc: "open"},
			{Key: "u", Desc: "upload"},
			{Key: "g", Desc: "grid/list"},
			{Key: "q", Desc: "quit"},
		}
	default:
		return []KeyBinding{
			{Key: "w", Desc: "close tab"},
			{Key: "ctrl+←/→", Desc: "reorder tab"},
			{Key: "ctrl+shift+←/→", Desc: "move pane"},
			{Key: "tab", Desc: "switch focus"},
			{Key: "q", Desc: "quit"},
		}
	}
}

// View renders the footer
func (f *Footer) View() string {
	if f.flash != "" {
		var style lipgloss.Style
		switch f.flashType {
		case FlashSuccess:
			style = FlashSuccessStyle
		case FlashError:
			style = FlashErrorStyle
		default:
			style = FlashInfoStyle
		}
		return FooterStyle.Width(f.width).Render(style.Render(f.flash))
	}

	var parts []string
	for _, b := range f.bindingsForContext() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	sep := "  " + lipgloss.NewStyle().Foreground(ColorBorder).Render("|") + "  "
	content := ""
	for i, p := range parts {
		if i > 0 {
			content += sep
		}
		content += p
	}

	return FooterStyle.Width(f.width).Render(content)
}
