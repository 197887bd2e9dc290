package panes

// Side identifies one pane of the optionally split content area.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Width persistence bounds: each pane's share is clamped to [30,70] percent
// when persisted, so neither pane can be collapsed past usability.
const (
	MinPanePercent = 30
	MaxPanePercent = 70
)

// Drag gesture constants. Pointer travel below MinDragCells is a click, not
// a drag; releasing past SplitZonePercent of the content width on the
// tab-bar row splits the pane.
const (
	MinDragCells     = 2
	SplitZonePercent = 80
)

// WidthState is the persisted pane width split, in percent.
type WidthState struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

// Split coordinates two tab registries with pane width tracking.
type Split struct {
	left  *Registry
	right *Registry

	leftPct  int
	rightPct int
}

// NewSplit creates a single-pane layout with the pinned documents tab open
// on the left.
func NewSplit() *Split {
	s := &Split{
		left:     NewRegistry(),
		right:    NewRegistry(),
		leftPct:  50,
		rightPct: 50,
	}
	s.left.Open(Tab{
		ID:       DocumentsTabID,
		Title:    "Documents",
		Kind:     TabKindDocuments,
		Closable: false,
	})
	return s
}

// Pane returns the registry for the given side.
func (s *Split) Pane(side Side) *Registry {
	if side == SideRight {
		return s.right
	}
	return s.left
}

// HasSplit reports whether the right pane is populated.
func (s *Split) HasSplit() bool {
	return s.right.Len() > 0
}

// SideOf returns the pane holding the tab with the given id.
func (s *Split) SideOf(id string) (Side, bool) {
	if s.left.Contains(id) {
		return SideLeft, true
	}
	if s.right.Contains(id) {
		return SideRight, true
	}
	return SideLeft, false
}

// Open opens (or activates) a tab on the given side. If the tab is already
// open on the other side, it is activated there instead of duplicated.
func (s *Split) Open(side Side, tab Tab) {
	if existing, ok := s.SideOf(tab.ID); ok {
		s.Pane(existing).SetActive(tab.ID)
		return
	}
	s.Pane(side).Open(tab)
}

// Close closes the tab with the given id wherever it lives. The pinned
// documents tab cannot be closed. Closing the right pane's last tab
// collapses the layout back to a single pane (HasSplit turns false).
func (s *Split) Close(id string) {
	if id == DocumentsTabID {
		return
	}
	side, ok := s.SideOf(id)
	if !ok {
		return
	}
	s.Pane(side).Close(id)
}

// MoveTab moves the tab to the other pane: a transactional remove from the
// source plus append to the destination, where it becomes active. Moving
// the pinned documents tab is refused. Returns false when nothing moved.
func (s *Split) MoveTab(id string, to Side) bool {
	if id == DocumentsTabID {
		return false
	}
	from, ok := s.SideOf(id)
	if !ok || from == to {
		return false
	}
	tab, ok := s.Pane(from).take(id)
	if !ok {
		return false
	}
	s.Pane(to).insert(tab)
	return true
}

// SplitRight moves the tab from the left pane into the right pane, creating
// the split when the right pane was empty.
func (s *Split) SplitRight(id string) bool {
	return s.MoveTab(id, SideRight)
}

// MergeLeft moves every right-pane tab back to the left, collapsing the
// split. The right pane's active tab becomes active on the left.
func (s *Split) MergeLeft() {
	activeID := s.right.ActiveID()
	for _, tab := range s.right.Tabs() {
		if t, ok := s.right.take(tab.ID); ok {
			s.left.insert(t)
		}
	}
	if activeID != "" {
		s.left.SetActive(activeID)
	}
}

// Reorder moves the tab at fromIdx to toIdx within one pane, the standard
// array-move. On the left pane the pinned documents tab occupies index 0:
// it may never be displaced, and no tab may move to an index at or before
// it. Returns false when the move violates the pinned rule or is out of
// range.
func (s *Split) Reorder(side Side, fromIdx, toIdx int) bool {
	reg := s.Pane(side)
	tabs := reg.Tabs()
	if fromIdx < 0 || fromIdx >= len(tabs) || toIdx < 0 || toIdx >= len(tabs) || fromIdx == toIdx {
		return false
	}
	if side == SideLeft {
		pinned := reg.IndexOf(DocumentsTabID)
		if pinned >= 0 && (fromIdx <= pinned || toIdx <= pinned) {
			return false
		}
	}
	tab := tabs[fromIdx]
	tabs = append(tabs[:fromIdx], tabs[fromIdx+1:]...)
	rest := make([]Tab, 0, len(tabs)+1)
	rest = append(rest, tabs[:toIdx]...)
	rest = append(rest, tab)
	rest = append(rest, tabs[toIdx:]...)
	reg.Reorder(rest)
	return true
}

// Widths returns the persisted-form pane widths in percent.
func (s *Split) Widths() WidthState {
	return WidthState{Left: s.leftPct, Right: s.rightPct}
}

// SetWidths restores pane widths from a persisted state. Absent or
// degenerate values (non-positive total) fall back to an even split.
func (s *Split) SetWidths(ws WidthState) {
	if ws.Left+ws.Right <= 0 {
		s.leftPct, s.rightPct = 50, 50
		return
	}
	s.leftPct = clampPercent(ws.Left * 100 / (ws.Left + ws.Right))
	s.rightPct = 100 - s.leftPct
}

// SampleWidths converts one measured pane width sample into clamped
// percentages. Non-split or degenerate samples (zero total) leave the
// split at 50/50.
func (s *Split) SampleWidths(sample WidthSample) WidthState {
	total := sample.LeftPx + sample.RightPx
	if !sample.IsSplit || total <= 0 {
		s.leftPct, s.rightPct = 50, 50
	} else {
		s.leftPct = clampPercent((sample.LeftPx*100 + total/2) / total)
		s.rightPct = 100 - s.leftPct
	}
	return s.Widths()
}

func clampPercent(p int) int {
	if p < MinPanePercent {
		return MinPanePercent
	}
	if p > MaxPanePercent {
		return MaxPanePercent
	}
	return p
}

// Drag tracks an in-flight tab drag gesture. A press becomes a drag only
// after the pointer travels MinDragCells; releasing without a valid drop
// target leaves all tab state unchanged.
type Drag struct {
	TabID  string
	Origin Side

	startX, startY int
	active         bool
}

// BeginDrag records a press on a tab. The gesture is not yet a drag.
func (s *Split) BeginDrag(tabID string, origin Side, x, y int) *Drag {
	return &Drag{TabID: tabID, Origin: origin, startX: x, startY: y}
}

// Track updates the gesture with pointer motion and reports whether the
// press has crossed the drag threshold.
func (d *Drag) Track(x, y int) bool {
	if d.active {
		return true
	}
	dx := x - d.startX
	if dx < 0 {
		dx = -dx
	}
	dy := y - d.startY
	if dy < 0 {
		dy = -dy
	}
	if dx >= MinDragCells || dy >= MinDragCells {
		d.active = true
	}
	return d.active
}

// Active reports whether the gesture is a recognized drag.
func (d *Drag) Active() bool {
	return d.active
}

// InSplitZone reports whether a release at column x (within a content area
// of the given width) falls in the split drop zone.
func InSplitZone(x, width int) bool {
	if width <= 0 {
		return false
	}
	return x*100 >= width*SplitZonePercent
}
