// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// TabBarHeight is the height of a pane's tab strip in lines
	TabBarHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// SidebarWidthRatio is the denominator for sidebar width (1/4 of total width)
	SidebarWidthRatio = 4

	// TextareaHeight is the number of lines for the chat input textarea
	TextareaHeight = 3

	// TextareaBorderHeight is the border size around the textarea
	TextareaBorderHeight = 2

	// InputTotalHeight is the total height of the input area (textarea + borders)
	InputTotalHeight = TextareaHeight + TextareaBorderHeight

	// BottomChatRatio is the denominator for the bottom chat panel height
	// (chat takes 1/BottomChatRatio of the content area when docked).
	BottomChatRatio = 3

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MinTerminalWidth is the smallest width the layout is computed for
	MinTerminalWidth = 40

	// MinTerminalHeight is the smallest height the layout is computed for
	MinTerminalHeight = 10
)

// Document grid rendering
const (
	// CardHeight is the rendered height of one document card in lines
	CardHeight = 4

	// MaxCardNameWidth is the widest a card's file name may render
	MaxCardNameWidth = 24
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256
)

// MessagePageSize is how many chat records each history page requests.
const MessagePageSize = 20

// DocumentPageSize is how many documents each listing page requests.
const DocumentPageSize = 100
