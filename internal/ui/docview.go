package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/dustin/go-humanize"

	"dochub/internal/documents"
)

// DocView is a read-only preview of one document: a metadata line over a
// scrollable body. Markdown gets the markdown renderer, source files get
// chroma highlighting, everything else is wrapped plain text.
type DocView struct {
	viewport viewport.Model
	doc      documents.Document

	width   int
	height  int
	focused bool
	loading bool
	loadErr string
}

// NewDocView creates a preview for the given document. Content arrives later
// via SetContent once fetched.
func NewDocView(doc documents.Document) *DocView {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &DocView{
		viewport: vp,
		doc:      doc,
		loading:  true,
	}
}

// Document returns the document being previewed.
func (v *DocView) Document() documents.Document {
	return v.doc
}

// SetSize sets the rendered dimensions.
func (v *DocView) SetSize(width, height int) {
	v.width = width
	v.height = height

	ctx := GetViewContext()
	bodyHeight := ctx.InnerHeight(height - TitleHeight)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	v.viewport.SetWidth(ctx.InnerWidth(width))
	v.viewport.SetHeight(bodyHeight)
}

// SetFocused sets keyboard focus.
func (v *DocView) SetFocused(focused bool) {
	v.focused = focused
}

// SetContent renders the fetched document body.
func (v *DocView) SetContent(raw string) {
	v.loading = false
	v.loadErr = ""

	wrapWidth := v.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	ext := strings.ToLower(filepath.Ext(v.doc.Name))
	switch {
	case ext == ".md" || ext == ".markdown" || v.doc.Type == documents.TypeWeb:
		v.viewport.SetContent(renderMarkdown(raw, wrapWidth))
	case lexers.Match(v.doc.Name) != nil:
		v.viewport.SetContent(highlightCode(raw, strings.TrimPrefix(ext, ".")))
	default:
		v.viewport.SetContent(wrapText(raw, wrapWidth))
	}
	v.viewport.GotoTop()
}

// SetError shows a fetch failure in place of the body.
func (v *DocView) SetError(msg string) {
	v.loading = false
	v.loadErr = msg
}

// Update handles scrolling.
func (v *DocView) Update(msg tea.Msg) (*DocView, tea.Cmd) {
	var cmd tea.Cmd
	v.viewport, cmd = v.viewport.Update(msg)
	return v, cmd
}

func (v *DocView) metaLine() string {
	meta := string(v.doc.Type)
	if v.doc.Size > 0 {
		meta += "  " + humanize.Bytes(uint64(v.doc.Size))
	}
	if !v.doc.AddedAt.IsZero() {
		meta += "  added " + humanize.Time(v.doc.AddedAt)
	}
	return CardMetaStyle.Render(fmt.Sprintf(" %s %s", typeIcon(v.doc.Type), meta))
}

// View renders the preview panel.
func (v *DocView) View() string {
	panelStyle := PanelStyle
	if v.focused {
		panelStyle = PanelFocusedStyle
	}

	var body string
	switch {
	case v.loading:
		body = StatusLoadingStyle.Render("loading document...")
	case v.loadErr != "":
		body = StatusErrorStyle.Render(v.loadErr)
	default:
		body = v.viewport.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		v.metaLine(),
		panelStyle.Width(v.width).Height(v.height-TitleHeight).Render(body),
	)
}
