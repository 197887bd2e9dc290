package app

import (
	"dochub/internal/api"
	"dochub/internal/documents"
	"dochub/internal/feed"
)

// Focus represents which panel is focused
type Focus int

const (
	FocusSidebar Focus = iota
	FocusPanes
	FocusChat
)

// spacesLoadedMsg carries the user's space list.
type spacesLoadedMsg struct {
	spaces []api.Space
	err    error
}

// documentsLoadedMsg carries one space's document collection.
type documentsLoadedMsg struct {
	spaceID string
	docs    []documents.Document
	err     error
}

// messagesLoadedMsg carries the newest chat history page for a space.
type messagesLoadedMsg struct {
	spaceID string
	records []feed.Record
	err     error
}

// olderMessagesMsg carries an older history page fetched on scroll.
type olderMessagesMsg struct {
	spaceID string
	records []feed.Record
	err     error
}

// messageSentMsg carries the server's answer to a sent chat message.
// localID addresses the optimistic feed entry created at send time.
type messageSentMsg struct {
	spaceID string
	localID string
	record  *feed.Record
	err     error
}

// docContentMsg carries a document body fetched for a preview tab.
type docContentMsg struct {
	docID   string
	content string
	err     error
}

// bulkDeleteMsg carries the settled outcome of a bulk delete.
type bulkDeleteMsg struct {
	spaceID string
	result  documents.BulkResult
}

// downloadsDoneMsg carries the outcome of a sequential bulk download.
type downloadsDoneMsg struct {
	succeeded int
	failed    int
	skipped   int
}

// uploadDoneMsg carries a freshly created document.
type uploadDoneMsg struct {
	spaceID string
	doc     *documents.Document
	err     error
}
