package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	tea "charm.land/bubbletea/v2"

	"dochub/internal/documents"
	"dochub/internal/logger"
	"dochub/internal/notification"
	"dochub/internal/ui"
)

// loadSpaces fetches the user's space list.
func (m *Model) loadSpaces() tea.Cmd {
	return func() tea.Msg {
		spaces, err := m.client.GetSpaces(context.Background())
		return spacesLoadedMsg{spaces: spaces, err: err}
	}
}

// loadDocuments fetches a space's document collection.
func (m *Model) loadDocuments(spaceID string) tea.Cmd {
	return func() tea.Msg {
		page, err := m.client.GetSpaceDocuments(context.Background(), spaceID, ui.DocumentPageSize, 0)
		if err != nil {
			return documentsLoadedMsg{spaceID: spaceID, err: err}
		}
		return documentsLoadedMsg{spaceID: spaceID, docs: page.Documents}
	}
}

// loadMessages fetches the newest chat history page.
func (m *Model) loadMessages(spaceID string) tea.Cmd {
	return func() tea.Msg {
		records, err := m.client.GetMessages(context.Background(), spaceID, ui.MessagePageSize, 0)
		return messagesLoadedMsg{spaceID: spaceID, records: records, err: err}
	}
}

// loadOlderMessages fetches the next history page above the loaded ones.
func (m *Model) loadOlderMessages(spaceID string, limit, offset int) tea.Cmd {
	return func() tea.Msg {
		records, err := m.client.GetMessages(context.Background(), spaceID, limit, offset)
		return olderMessagesMsg{spaceID: spaceID, records: records, err: err}
	}
}

// sendMessage posts a chat message scoped to the given document ids.
func (m *Model) sendMessage(spaceID, localID, content string, documentIDs []string) tea.Cmd {
	return func() tea.Msg {
		record, err := m.client.SendMessage(context.Background(), spaceID, content, documentIDs)
		return messageSentMsg{spaceID: spaceID, localID: localID, record: record, err: err}
	}
}

// loadDocumentContent fetches a document body for its preview tab.
func (m *Model) loadDocumentContent(docID string) tea.Cmd {
	return func() tea.Msg {
		content, err := m.client.GetDocumentContent(context.Background(), docID)
		return docContentMsg{docID: docID, content: content, err: err}
	}
}

// deleteDocuments deletes the batch one by one and settles the outcome.
// The UI has already removed the documents optimistically; failures are
// reconciled by the bulkDeleteMsg handler.
func (m *Model) deleteDocuments(spaceID string, ids []string) tea.Cmd {
	return func() tea.Msg {
		results := make(map[string]error, len(ids))
		for _, id := range ids {
			results[id] = m.client.DeleteDocument(context.Background(), id)
		}
		return bulkDeleteMsg{spaceID: spaceID, result: documents.Settle(results)}
	}
}

// downloadDocuments saves the batch to the download directory sequentially,
// pausing between files so the server is not hammered. Web-sourced documents
// were already excluded by the caller via DownloadPlan.
func (m *Model) downloadDocuments(docs []documents.Document, skipped int) tea.Cmd {
	dir := m.config.GetDownloadDir()
	return func() tea.Msg {
		succeeded, failed := 0, 0
		for i, doc := range docs {
			if i > 0 {
				time.Sleep(documents.DownloadDelay)
			}
			if _, err := m.client.DownloadDocument(context.Background(), doc.ID, doc.Name, dir); err != nil {
				logger.Warn("App: download failed for %s: %v", doc.ID, err)
				failed++
			} else {
				succeeded++
			}
		}
		if m.config.GetNotificationsEnabled() {
			if err := notification.DownloadsFinished(succeeded, failed); err != nil {
				logger.Debug("App: download notification failed: %v", err)
			}
		}
		return downloadsDoneMsg{succeeded: succeeded, failed: failed, skipped: skipped}
	}
}

// uploadDocument creates a document from a local file, a web page URL, or a
// video URL. The context comes from startUpload so the user can abort a slow
// upload; a canceled context surfaces as context.Canceled in the done message.
func (m *Model) uploadDocument(ctx context.Context, spaceID string, source ui.UploadSource, value string) tea.Cmd {
	return func() tea.Msg {
		switch source {
		case ui.UploadSourceURL:
			doc, err := m.client.UploadURL(ctx, spaceID, value)
			return uploadDoneMsg{spaceID: spaceID, doc: doc, err: err}
		case ui.UploadSourceVideo:
			doc, err := m.client.UploadVideo(ctx, spaceID, value)
			return uploadDoneMsg{spaceID: spaceID, doc: doc, err: err}
		default:
			f, err := os.Open(value)
			if err != nil {
				return uploadDoneMsg{spaceID: spaceID, err: err}
			}
			defer f.Close()
			doc, err := m.client.UploadFile(ctx, spaceID, filepath.Base(value), f)
			return uploadDoneMsg{spaceID: spaceID, doc: doc, err: err}
		}
	}
}
