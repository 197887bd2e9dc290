// Package feed turns reverse-paginated chat history into a flat,
// oldest-first display list. Pages arrive newest-page-first from the API;
// each record holds the user's prompt and, once answered, the assistant's
// response, which the feed expands into separate display entries.
package feed

import "time"

// Role identifies who authored a display entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Record is one raw message as returned by the history API: the user's
// content plus an optional assistant response sharing the same id.
type Record struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Response  string    `json:"response"`
	CreatedAt time.Time `json:"created_at"`
}

// Entry is one rendered line item of the feed.
type Entry struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

// WelcomeID marks the synthetic entry shown when a space has no messages.
const WelcomeID = "welcome"

const welcomeText = "Ask anything about the documents in this space."

// FetchThreshold is how close to the top (in viewport lines) the scroll
// position must be before another history page is requested.
const FetchThreshold = 3

// Expand converts one record into its display entries: the user prompt,
// then the assistant response when present. The entries share the record id
// with role suffixes so optimistic updates can address either half.
func Expand(rec Record) []Entry {
	entries := []Entry{{
		ID:        rec.ID + "-user",
		Role:      RoleUser,
		Content:   rec.Content,
		Timestamp: rec.CreatedAt,
	}}
	if rec.Response != "" {
		entries = append(entries, Entry{
			ID:        rec.ID + "-assistant",
			Role:      RoleAssistant,
			Content:   rec.Response,
			Timestamp: rec.CreatedAt,
		})
	}
	return entries
}

// Flatten merges pages into a single oldest-first entry list. Pages arrive
// newest-page-first while each page runs oldest to newest internally, so
// the page order is reversed before expanding.
func Flatten(pages [][]Record) []Entry {
	var entries []Entry
	for i := len(pages) - 1; i >= 0; i-- {
		for _, rec := range pages[i] {
			entries = append(entries, Expand(rec)...)
		}
	}
	return entries
}

// Feed accumulates history pages for one space and gates infinite-scroll
// fetches.
type Feed struct {
	entries  []Entry
	pageSize int
	offset   int
	hasMore  bool
	inFlight bool
}

// New creates an empty feed that paginates with the given page size.
func New(pageSize int) *Feed {
	return &Feed{pageSize: pageSize}
}

// Entries returns the display list, oldest first. An empty feed yields a
// single synthetic welcome entry rather than nothing.
func (f *Feed) Entries() []Entry {
	if len(f.entries) == 0 {
		return []Entry{{ID: WelcomeID, Role: RoleAssistant, Content: welcomeText}}
	}
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}

// Empty reports whether no real messages are loaded.
func (f *Feed) Empty() bool {
	return len(f.entries) == 0
}

// Len returns the number of real display entries.
func (f *Feed) Len() int {
	return len(f.entries)
}

// Reset discards all loaded history, e.g. on space switch.
func (f *Feed) Reset() {
	f.entries = nil
	f.offset = 0
	f.hasMore = false
	f.inFlight = false
}

// SetInitial loads the newest page, replacing any prior content. A full
// page implies more history exists.
func (f *Feed) SetInitial(page []Record) {
	f.entries = Flatten([][]Record{page})
	f.offset = len(page)
	f.hasMore = len(page) >= f.pageSize
	f.inFlight = false
}

// PrependPage inserts an older page above the current entries and returns
// how many display lines were added, so the caller can offset the viewport
// by the exact delta and keep the visible content anchored.
func (f *Feed) PrependPage(page []Record) int {
	added := Flatten([][]Record{page})
	f.entries = append(added, f.entries...)
	f.offset += len(page)
	f.hasMore = len(page) >= f.pageSize
	f.inFlight = false
	return len(added)
}

// ShouldFetchMore reports whether scrolling to topOffset (lines from the
// top of the scrollback) should trigger loading the next page: the viewport
// is near the top, another page is known to exist, and no fetch is already
// in flight.
func (f *Feed) ShouldFetchMore(topOffset int) bool {
	return topOffset <= FetchThreshold && f.hasMore && !f.inFlight
}

// BeginFetch marks a page request in flight and returns the limit/offset
// for the next page. Returns ok=false when no fetch should start.
func (f *Feed) BeginFetch() (limit, offset int, ok bool) {
	if !f.hasMore || f.inFlight {
		return 0, 0, false
	}
	f.inFlight = true
	return f.pageSize, f.offset, true
}

// FailFetch clears the in-flight flag after a failed page request so the
// user can scroll to retry.
func (f *Feed) FailFetch() {
	f.inFlight = false
}

// InFlight reports whether a page request is pending.
func (f *Feed) InFlight() bool {
	return f.inFlight
}

// HasMore reports whether older history is known to exist.
func (f *Feed) HasMore() bool {
	return f.hasMore
}

// Append adds a freshly sent or received record at the bottom of the feed,
// the optimistic path for new messages.
func (f *Feed) Append(rec Record) {
	f.entries = append(f.entries, Expand(rec)...)
}

// SetResponse fills in the assistant response for the record with the given
// id, inserting the assistant entry after its user half. Used when the
// reply to an optimistic send arrives. Returns false if the id is unknown.
func (f *Feed) SetResponse(recordID, response string) bool {
	userID := recordID + "-user"
	for i, e := range f.entries {
		if e.ID != userID {
			continue
		}
		assistant := Entry{
			ID:        recordID + "-assistant",
			Role:      RoleAssistant,
			Content:   response,
			Timestamp: e.Timestamp,
		}
		if i+1 < len(f.entries) && f.entries[i+1].ID == assistant.ID {
			f.entries[i+1] = assistant
			return true
		}
		f.entries = append(f.entries[:i+1], append([]Entry{assistant}, f.entries[i+1:]...)...)
		return true
	}
	return false
}
