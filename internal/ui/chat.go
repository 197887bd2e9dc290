package ui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"dochub/internal/feed"
)

// StopwatchTickMsg is sent to update the waiting stopwatch display
type StopwatchTickMsg time.Time

// StopwatchTick schedules the next stopwatch update
func StopwatchTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return StopwatchTickMsg(t)
	})
}

// thinkingVerbs cycle while waiting for the assistant's answer
var thinkingVerbs = []string{
	"Thinking",
	"Reading",
	"Searching",
	"Digesting",
	"Skimming",
	"Cross-referencing",
	"Summarizing",
	"Considering",
}

func randomThinkingVerb() string {
	return thinkingVerbs[rand.Intn(len(thinkingVerbs))]
}

// historyMaxEntries caps the recent-prompts overlay.
const historyMaxEntries = 5

// Chat is the conversation panel: scrollback viewport over the message
// feed, a textarea for composing, a context-scope line, and an optional
// recent-prompts overlay.
type Chat struct {
	viewport viewport.Model
	input    textarea.Model
	feed     *feed.Feed

	width   int
	height  int
	focused bool

	spaceName string
	hasSpace  bool

	showHistory  bool
	contextCount int // selected documents scoping the conversation; 0 means all

	waiting       bool
	waitStartTime time.Time
	waitingVerb   string
}

// NewChat creates a chat panel over the given feed.
func NewChat(f *feed.Feed) *Chat {
	ti := textarea.New()
	ti.Placeholder = "Ask about your documents..."
	ti.CharLimit = 0
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	c := &Chat{
		viewport: vp,
		input:    ti,
		feed:     f,
	}
	c.updateContent()
	return c
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.resize()
}

func (c *Chat) resize() {
	ctx := GetViewContext()

	viewportHeight := ctx.InnerHeight(c.scrollbackHeight())
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(ctx.InnerWidth(c.width))
	c.viewport.SetHeight(viewportHeight)
	c.input.SetWidth(ctx.InnerWidth(c.width))
}

// scrollbackHeight is the outer height left for the message panel after the
// input area, the context line, and any history overlay take theirs.
func (c *Chat) scrollbackHeight() int {
	h := c.height - InputTotalHeight - 1 // context line
	if c.showHistory {
		h -= c.historyHeight()
	}
	return h
}

func (c *Chat) historyHeight() int {
	n := len(c.recentPrompts())
	if n == 0 {
		n = 1 // placeholder line
	}
	return n + BorderSize
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	if focused {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// IsFocused returns the focus state
func (c *Chat) IsFocused() bool {
	return c.focused
}

// SetSpace points the panel at a space. The feed itself is reset by the
// caller when switching.
func (c *Chat) SetSpace(name string) {
	c.spaceName = name
	c.hasSpace = true
	c.waiting = false
	c.updateContent()
	c.viewport.GotoBottom()
}

// ClearSpace returns the panel to its no-space placeholder.
func (c *Chat) ClearSpace() {
	c.spaceName = ""
	c.hasSpace = false
	c.waiting = false
	c.updateContent()
}

// SetShowHistory toggles the recent-prompts overlay.
func (c *Chat) SetShowHistory(visible bool) {
	c.showHistory = visible
	c.resize()
}

// SetContextCount records how many documents scope the conversation.
// Zero means the whole space.
func (c *Chat) SetContextCount(n int) {
	c.contextCount = n
}

// SetWaiting marks a sent message as awaiting its response and starts the
// stopwatch. Returns the tick command when waiting begins.
func (c *Chat) SetWaiting(waiting bool) tea.Cmd {
	if waiting == c.waiting {
		return nil
	}
	c.waiting = waiting
	if waiting {
		c.waitStartTime = time.Now()
		c.waitingVerb = randomThinkingVerb()
		c.updateContent()
		c.viewport.GotoBottom()
		return StopwatchTick()
	}
	c.updateContent()
	return nil
}

// IsWaiting reports whether a response is pending.
func (c *Chat) IsWaiting() bool {
	return c.waiting
}

// InputValue returns the composed message.
func (c *Chat) InputValue() string {
	return strings.TrimSpace(c.input.Value())
}

// ResetInput clears the textarea after a send.
func (c *Chat) ResetInput() {
	c.input.Reset()
}

// Refresh re-renders the feed and scrolls to the newest message.
func (c *Chat) Refresh() {
	c.updateContent()
	c.viewport.GotoBottom()
}

// ShouldFetchMore reports whether the scroll position warrants loading an
// older history page.
func (c *Chat) ShouldFetchMore() bool {
	return c.feed.ShouldFetchMore(c.viewport.YOffset())
}

// PrependOlder re-renders after an older page was prepended and restores the
// scroll position so the previously visible messages stay put.
func (c *Chat) PrependOlder() {
	oldOffset := c.viewport.YOffset()
	oldLines := c.viewport.TotalLineCount()
	c.updateContent()
	delta := c.viewport.TotalLineCount() - oldLines
	if delta < 0 {
		delta = 0
	}
	c.viewport.SetYOffset(oldOffset + delta)
}

// formatElapsed renders a m:ss stopwatch value.
func formatElapsed(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func (c *Chat) updateContent() {
	var sb strings.Builder

	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	if !c.hasSpace {
		sb.WriteString(c.renderNoSpaceMessage())
		c.viewport.SetContent(sb.String())
		return
	}

	if c.feed.InFlight() {
		sb.WriteString(StatusLoadingStyle.Render("loading older messages..."))
		sb.WriteString("\n\n")
	}

	for i, entry := range c.feed.Entries() {
		if i > 0 {
			sb.WriteString("\n\n")
		}

		if entry.ID == feed.WelcomeID {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Italic(true).
				Render(entry.Content))
			continue
		}

		var roleStyle lipgloss.Style
		var roleName string
		if entry.Role == feed.RoleUser {
			roleStyle = ChatUserStyle
			roleName = "You"
		} else {
			roleStyle = ChatAssistantStyle
			roleName = "Assistant"
		}

		sb.WriteString(roleStyle.Render(roleName + ":"))
		sb.WriteString("\n")
		sb.WriteString(renderMarkdown(strings.TrimSpace(entry.Content), wrapWidth))
	}

	if c.waiting {
		if c.feed.Len() > 0 {
			sb.WriteString("\n\n")
		}
		elapsed := time.Since(c.waitStartTime)
		stopwatchStyle := lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
		sb.WriteString(ChatAssistantStyle.Render("Assistant:"))
		sb.WriteString("\n")
		sb.WriteString(StatusLoadingStyle.Render(c.waitingVerb + "... "))
		sb.WriteString(stopwatchStyle.Render(formatElapsed(elapsed)))
	}

	c.viewport.SetContent(sb.String())
}

func (c *Chat) renderNoSpaceMessage() string {
	return lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Render("Select a space to start chatting.")
}

// recentPrompts returns the newest user prompts for the history overlay,
// most recent first.
func (c *Chat) recentPrompts() []string {
	entries := c.feed.Entries()
	var prompts []string
	for i := len(entries) - 1; i >= 0 && len(prompts) < historyMaxEntries; i-- {
		e := entries[i]
		if e.Role == feed.RoleUser && e.ID != feed.WelcomeID {
			prompts = append(prompts, e.Content)
		}
	}
	return prompts
}

func (c *Chat) contextLine() string {
	scope := "all documents"
	if c.contextCount > 0 {
		noun := "documents"
		if c.contextCount == 1 {
			noun = "document"
		}
		scope = fmt.Sprintf("%d selected %s", c.contextCount, noun)
	}
	return ChatContextStyle.Render(" chatting with " + scope)
}

func (c *Chat) renderHistory() string {
	var sb strings.Builder
	sb.WriteString(PanelTitleStyle.Render("Recent prompts"))

	prompts := c.recentPrompts()
	if len(prompts) == 0 {
		sb.WriteString("\n")
		sb.WriteString(CardMetaStyle.Render("no messages yet"))
	}
	innerWidth := GetViewContext().InnerWidth(c.width)
	for _, p := range prompts {
		sb.WriteString("\n")
		line := strings.ReplaceAll(p, "\n", " ")
		if innerWidth > 4 {
			line = runewidth.Truncate(line, innerWidth-2, "…")
		}
		sb.WriteString(SidebarItemStyle.Render(line))
	}
	return PanelStyle.Width(c.width).Render(sb.String())
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg.(type) {
	case StopwatchTickMsg:
		if c.waiting {
			c.updateContent()
			cmds = append(cmds, StopwatchTick())
		}
		return c, tea.Batch(cmds...)
	}

	if c.focused && c.hasSpace {
		// Scroll keys go to the viewport even while composing.
		if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
			switch keyMsg.String() {
			case "pgup", "pgdown", "ctrl+up", "ctrl+down", "home", "end",
				"ctrl+u", "ctrl+d":
				var cmd tea.Cmd
				c.viewport, cmd = c.viewport.Update(msg)
				cmds = append(cmds, cmd)
				return c, tea.Batch(cmds...)
			}
		}

		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		cmds = append(cmds, cmd)

		// Keep remaining key events out of the viewport so typing does
		// not also scroll.
		if _, isKey := msg.(tea.KeyPressMsg); isKey {
			return c, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return c, tea.Batch(cmds...)
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	if !c.hasSpace {
		return panelStyle.Width(c.width).Height(c.height).Render(c.renderNoSpaceMessage())
	}

	parts := []string{
		panelStyle.Width(c.width).Height(c.scrollbackHeight()).Render(c.viewport.View()),
	}

	if c.showHistory {
		parts = append(parts, c.renderHistory())
	}

	parts = append(parts, c.contextLine())

	inputStyle := ChatInputStyle
	if c.focused {
		inputStyle = ChatInputFocusedStyle
	}
	parts = append(parts, inputStyle.Width(c.width).Render(c.input.View()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
