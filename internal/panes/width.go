package panes

// Document grid geometry, in pixels. Terminal panes measure in cells; the
// UI converts with CellPixelWidth before deriving a column count, which
// keeps the grid math identical to the web client's.
const (
	// CardMinWidth is the minimum width of one document card.
	CardMinWidth = 200
	// GridGap is the gutter between adjacent cards.
	GridGap = 16
	// GridPadding is the total horizontal padding inside a pane.
	GridPadding = 48

	MinGridColumns = 1
	MaxGridColumns = 4

	// CellPixelWidth approximates one terminal cell in pixels.
	CellPixelWidth = 8
)

// WidthSample is one observed measurement of the rendered pane widths.
// Samples are ephemeral; only percentages derived from them are persisted.
type WidthSample struct {
	LeftPx  int
	RightPx int
	IsSplit bool
}

// GridColumns derives the document grid column count from a pane's pixel
// width: as many cards of at least CardMinWidth (separated by GridGap,
// inside GridPadding) as fit, clamped to [MinGridColumns, MaxGridColumns].
func GridColumns(panePx int) int {
	usable := panePx - GridPadding + GridGap
	cols := usable / (CardMinWidth + GridGap)
	if cols < MinGridColumns {
		return MinGridColumns
	}
	if cols > MaxGridColumns {
		return MaxGridColumns
	}
	return cols
}

// GridColumnsForCells derives the column count from a pane width in
// terminal cells.
func GridColumnsForCells(cells int) int {
	return GridColumns(cells * CellPixelWidth)
}
