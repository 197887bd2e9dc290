package ui

import (
	"sync"

	"dochub/internal/logger"
)

// ViewContext holds centralized layout calculations and provides debug logging.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight  int
	FooterHeight  int
	ContentHeight int
	SidebarWidth  int
	ContentWidth  int

	mu sync.Mutex
}

// Global view context instance
var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight: HeaderHeight,
			FooterHeight: FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// This method is thread-safe and should be called from the main event loop
// when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	// Validate dimensions to prevent negative layout values
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height

	v.HeaderHeight = HeaderHeight
	v.FooterHeight = FooterHeight

	// Content area is everything between header and footer
	v.ContentHeight = height - v.HeaderHeight - v.FooterHeight

	// Sidebar gets a fixed share, the pane area the rest
	v.SidebarWidth = width / SidebarWidthRatio
	v.ContentWidth = width - v.SidebarWidth

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"sidebarWidth", v.SidebarWidth,
		"contentWidth", v.ContentWidth,
	)
}

// PaneWidths splits the content width between the two panes using the
// persisted percentages. The left pane absorbs rounding.
func (v *ViewContext) PaneWidths(leftPct, rightPct int, hasSplit bool) (left, right int) {
	if !hasSplit {
		return v.ContentWidth, 0
	}
	total := leftPct + rightPct
	if total <= 0 {
		leftPct, total = 50, 100
	}
	right = v.ContentWidth * (total - leftPct) / total
	left = v.ContentWidth - right
	return left, right
}

// BottomChatHeight returns the height of the docked chat panel.
func (v *ViewContext) BottomChatHeight() int {
	h := v.ContentHeight / BottomChatRatio
	if h < InputTotalHeight+1 {
		h = InputTotalHeight + 1
	}
	return h
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
