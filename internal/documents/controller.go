// Package documents implements the client-side view over a space's document
// list: search, type filtering, sorting, multi-select, and the bulk-action
// bookkeeping built on top of the selection.
package documents

import (
	"sort"
	"strings"
	"time"
)

// Type tags a document's source format.
type Type string

const (
	TypePDF   Type = "pdf"
	TypeDocx  Type = "docx"
	TypeText  Type = "text"
	TypeWeb   Type = "web"
	TypeVideo Type = "video"
)

// Document is one entry of a space's document list.
type Document struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Type    Type      `json:"type"`
	Size    int64     `json:"size"`
	AddedAt time.Time `json:"created_at"`
}

// Downloadable reports whether the document has a fetchable file. Web
// sources are links, not files, and are excluded from bulk download.
func (d Document) Downloadable() bool {
	return d.Type != TypeWeb
}

// SortKey selects the sort column.
type SortKey int

const (
	SortByDate SortKey = iota
	SortByName
	SortBySize
)

// SortDir selects the sort direction.
type SortDir int

const (
	Ascending SortDir = iota
	Descending
)

// ViewMode is how the document collection renders.
type ViewMode string

const (
	ViewGrid ViewMode = "grid"
	ViewList ViewMode = "list"
)

// Controller owns the filter/sort/search pipeline and the selection set for
// one space's document list. All mutation is synchronous; the visible list
// is recomputed (and the selection pruned against it) on every change.
type Controller struct {
	docs    []Document
	visible []Document

	search     string
	typeFilter map[Type]bool
	sortKey    SortKey
	sortDir    SortDir

	selection map[string]bool
	viewMode  ViewMode
}

// NewController creates an empty controller sorted newest-first in grid view.
func NewController() *Controller {
	return &Controller{
		typeFilter: make(map[Type]bool),
		sortKey:    SortByDate,
		sortDir:    Descending,
		selection:  make(map[string]bool),
		viewMode:   ViewGrid,
	}
}

// SetDocuments replaces the raw list, e.g. after a fetch.
func (c *Controller) SetDocuments(docs []Document) {
	c.docs = make([]Document, len(docs))
	copy(c.docs, docs)
	c.recompute()
}

// Documents returns the unfiltered list.
func (c *Controller) Documents() []Document {
	out := make([]Document, len(c.docs))
	copy(out, c.docs)
	return out
}

// SetSearch sets the filename substring filter, case-insensitive.
func (c *Controller) SetSearch(query string) {
	c.search = query
	c.recompute()
}

// Search returns the current search query.
func (c *Controller) Search() string {
	return c.search
}

// ToggleTypeFilter flips one type tag in the allowed set. An empty set
// means no type filtering.
func (c *Controller) ToggleTypeFilter(t Type) {
	if c.typeFilter[t] {
		delete(c.typeFilter, t)
	} else {
		c.typeFilter[t] = true
	}
	c.recompute()
}

// ClearTypeFilter removes all type restrictions.
func (c *Controller) ClearTypeFilter() {
	c.typeFilter = make(map[Type]bool)
	c.recompute()
}

// TypeFilter returns the active type restrictions, empty when unfiltered.
func (c *Controller) TypeFilter() []Type {
	out := make([]Type, 0, len(c.typeFilter))
	for t := range c.typeFilter {
		out = append(out, t)
	}
	return out
}

// SetSort sets the sort key and direction.
func (c *Controller) SetSort(key SortKey, dir SortDir) {
	c.sortKey = key
	c.sortDir = dir
	c.recompute()
}

// Sort returns the current sort key and direction.
func (c *Controller) Sort() (SortKey, SortDir) {
	return c.sortKey, c.sortDir
}

// Visible returns the rendered list: search filter, then type filter, then
// sort.
func (c *Controller) Visible() []Document {
	out := make([]Document, len(c.visible))
	copy(out, c.visible)
	return out
}

// VisibleCount returns the size of the rendered list.
func (c *Controller) VisibleCount() int {
	return len(c.visible)
}

// ViewMode returns the current rendering mode.
func (c *Controller) ViewMode() ViewMode {
	return c.viewMode
}

// SetViewMode switches between grid and list rendering.
func (c *Controller) SetViewMode(m ViewMode) {
	if m == ViewGrid || m == ViewList {
		c.viewMode = m
	}
}

func (c *Controller) recompute() {
	needle := strings.ToLower(c.search)
	c.visible = c.visible[:0]
	for _, d := range c.docs {
		if needle != "" && !strings.Contains(strings.ToLower(d.Name), needle) {
			continue
		}
		if len(c.typeFilter) > 0 && !c.typeFilter[d.Type] {
			continue
		}
		c.visible = append(c.visible, d)
	}

	sort.SliceStable(c.visible, func(i, j int) bool {
		a, b := c.visible[i], c.visible[j]
		if c.sortDir == Descending {
			a, b = b, a
		}
		switch c.sortKey {
		case SortByName:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		case SortBySize:
			return a.Size < b.Size
		default:
			return a.AddedAt.Before(b.AddedAt)
		}
	})

	// Prune selected ids that fell out of the visible list.
	if len(c.selection) > 0 {
		keep := make(map[string]bool, len(c.selection))
		for _, d := range c.visible {
			if c.selection[d.ID] {
				keep[d.ID] = true
			}
		}
		c.selection = keep
	}
}

// ToggleSelect flips one document's membership in the selection. Only
// visible documents can be selected.
func (c *Controller) ToggleSelect(id string) {
	if c.selection[id] {
		delete(c.selection, id)
		return
	}
	for _, d := range c.visible {
		if d.ID == id {
			c.selection[id] = true
			return
		}
	}
}

// SelectVisible selects every document in the rendered list.
func (c *Controller) SelectVisible() {
	for _, d := range c.visible {
		c.selection[d.ID] = true
	}
}

// ClearSelection empties the selection.
func (c *Controller) ClearSelection() {
	c.selection = make(map[string]bool)
}

// IsSelected reports whether the document is selected.
func (c *Controller) IsSelected(id string) bool {
	return c.selection[id]
}

// SelectionCount returns the number of selected documents.
func (c *Controller) SelectionCount() int {
	return len(c.selection)
}

// Selection returns a sorted snapshot of the selected ids. Bulk operations
// take this snapshot at invocation time and are unaffected by later
// selection changes.
func (c *Controller) Selection() []string {
	ids := make([]string, 0, len(c.selection))
	for id := range c.selection {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SelectedDocuments returns the selected documents in visible order.
func (c *Controller) SelectedDocuments() []Document {
	var out []Document
	for _, d := range c.visible {
		if c.selection[d.ID] {
			out = append(out, d)
		}
	}
	return out
}

// ContextIDs returns the document ids to scope the chat context to. An
// empty selection is the "all documents" sentinel, reported as nil.
func (c *Controller) ContextIDs() []string {
	if len(c.selection) == 0 {
		return nil
	}
	return c.Selection()
}

// Remove drops documents by id from the raw list, the optimistic path for
// delete. Unknown ids are ignored.
func (c *Controller) Remove(ids ...string) {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := c.docs[:0]
	for _, d := range c.docs {
		if !drop[d.ID] {
			kept = append(kept, d)
		}
	}
	c.docs = kept
	c.recompute()
}
