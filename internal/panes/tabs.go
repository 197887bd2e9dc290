// Package panes manages the split content area: per-pane tab registries,
// the split-pane coordinator, and pane width tracking for the document grid.
package panes

// TabKind identifies what a tab displays.
type TabKind string

const (
	// TabKindDocuments is the pinned document-grid tab.
	TabKindDocuments TabKind = "documents"
	// TabKindDocument is a single opened document.
	TabKindDocument TabKind = "document"
	// TabKindChat is the AI chat rendered as a tab.
	TabKindChat TabKind = "ai-chat"
)

// DocumentsTabID is the id of the pinned documents tab. It always sits at
// index 0 of the left pane and cannot be closed, moved, or displaced.
const DocumentsTabID = "documents"

// Tab is a handle referencing an open document, chat session, or the
// documents grid within one pane.
type Tab struct {
	ID       string
	Title    string
	Kind     TabKind
	Closable bool
	Payload  string // opaque, e.g. the document ID for TabKindDocument
}

// Registry is an ordered list of tabs with active-tab tracking for one pane.
//
// The everOpened set survives Close so that rapid double-opens of the same
// id never duplicate creation side effects. A consequence is that opening a
// previously closed id is a no-op until CloseAll resets the set; this
// mirrors the original product's behavior and is covered by a test.
type Registry struct {
	tabs       []Tab
	activeID   string
	everOpened map[string]bool
}

// NewRegistry creates an empty tab registry.
func NewRegistry() *Registry {
	return &Registry{
		everOpened: make(map[string]bool),
	}
}

// Open adds the tab and activates it. If a tab with the same id is already
// open, it is just activated; the list is not modified. Idempotent under
// repeated identical calls.
func (r *Registry) Open(tab Tab) {
	if r.indexOf(tab.ID) >= 0 {
		r.activeID = tab.ID
		return
	}
	if r.everOpened[tab.ID] {
		return
	}
	r.tabs = append(r.tabs, tab)
	r.activeID = tab.ID
	r.everOpened[tab.ID] = true
}

// Close removes the tab with the given id. When the active tab closes, the
// neighbor at min(closedIndex, newLength-1) becomes active, or none if the
// pane is now empty. No-op if the id is absent.
func (r *Registry) Close(id string) {
	idx := r.indexOf(id)
	if idx < 0 {
		return
	}
	r.tabs = append(r.tabs[:idx], r.tabs[idx+1:]...)

	if r.activeID != id {
		return
	}
	if len(r.tabs) == 0 {
		r.activeID = ""
		return
	}
	next := idx
	if next > len(r.tabs)-1 {
		next = len(r.tabs) - 1
	}
	r.activeID = r.tabs[next].ID
}

// CloseAll empties the registry and resets the creation-dedup set.
func (r *Registry) CloseAll() {
	r.tabs = nil
	r.activeID = ""
	r.everOpened = make(map[string]bool)
}

// Reorder replaces the tab sequence wholesale. The caller is responsible
// for invariant preservation (the pinned-first-tab rule is enforced by the
// split coordinator). Tabs not present before are ignored rather than
// created; the active id is preserved when still present.
func (r *Registry) Reorder(newOrder []Tab) {
	r.tabs = make([]Tab, len(newOrder))
	copy(r.tabs, newOrder)
	if r.indexOf(r.activeID) < 0 {
		if len(r.tabs) > 0 {
			r.activeID = r.tabs[0].ID
		} else {
			r.activeID = ""
		}
	}
}

// Active returns the active tab, or false when the pane is empty.
func (r *Registry) Active() (Tab, bool) {
	idx := r.indexOf(r.activeID)
	if idx < 0 {
		return Tab{}, false
	}
	return r.tabs[idx], true
}

// ActiveID returns the active tab id, or "" when the pane is empty.
func (r *Registry) ActiveID() string {
	return r.activeID
}

// SetActive activates the tab with the given id. Returns false if absent.
func (r *Registry) SetActive(id string) bool {
	if r.indexOf(id) < 0 {
		return false
	}
	r.activeID = id
	return true
}

// Tabs returns a copy of the tab sequence.
func (r *Registry) Tabs() []Tab {
	tabs := make([]Tab, len(r.tabs))
	copy(tabs, r.tabs)
	return tabs
}

// Len returns the number of open tabs.
func (r *Registry) Len() int {
	return len(r.tabs)
}

// Contains reports whether a tab with the given id is open.
func (r *Registry) Contains(id string) bool {
	return r.indexOf(id) >= 0
}

// IndexOf returns the position of the tab with the given id, or -1.
func (r *Registry) IndexOf(id string) int {
	return r.indexOf(id)
}

// Get returns the tab with the given id.
func (r *Registry) Get(id string) (Tab, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Tab{}, false
	}
	return r.tabs[idx], true
}

// take removes and returns the tab with the given id without touching the
// everOpened set, for moves between panes.
func (r *Registry) take(id string) (Tab, bool) {
	idx := r.indexOf(id)
	if idx < 0 {
		return Tab{}, false
	}
	tab := r.tabs[idx]
	r.Close(id)
	delete(r.everOpened, id)
	return tab, true
}

// insert appends a tab and activates it, marking it as created here.
func (r *Registry) insert(tab Tab) {
	r.tabs = append(r.tabs, tab)
	r.activeID = tab.ID
	r.everOpened[tab.ID] = true
}

func (r *Registry) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, t := range r.tabs {
		if t.ID == id {
			return i
		}
	}
	return -1
}
