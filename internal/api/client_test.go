package api

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"

	"dochub/internal/config"
	"dochub/internal/errors"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatalf("LoadFrom() error: %v", err)
	}
	cfg.SetToken(&oauth2.Token{AccessToken: "test-token"})
	return NewWithClient(cfg, srv.Client(), srv.URL)
}

func jsonDecode(r *http.Request, out interface{}) error {
	return json.NewDecoder(r.Body).Decode(out)
}

func TestGetSpaceDocuments(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/spaces/sp1/documents" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("limit"); got != "20" {
			t.Errorf("limit = %q, want 20", got)
		}
		if got := r.URL.Query().Get("offset"); got != "40" {
			t.Errorf("offset = %q, want 40", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		w.Write([]byte(`{
			"documents": [{"id": "d1", "name": "a.pdf", "type": "pdf", "size": 42}],
			"pagination": {"total_count": 61}
		}`))
	})

	page, err := c.GetSpaceDocuments(context.Background(), "sp1", 20, 40)
	if err != nil {
		t.Fatalf("GetSpaceDocuments() error: %v", err)
	}
	if len(page.Documents) != 1 || page.Documents[0].ID != "d1" {
		t.Errorf("documents = %+v", page.Documents)
	}
	if page.Pagination.TotalCount != 61 {
		t.Errorf("total_count = %d, want 61", page.Pagination.TotalCount)
	}
}

func TestGetSpaceDocumentsAuthFailure(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := c.GetSpaceDocuments(context.Background(), "sp1", 20, 0)
	if !errors.Is(err, errors.KindAuth) {
		t.Errorf("error kind = %v, want KindAuth (err: %v)", errors.GetKind(err), err)
	}
}

func TestDeleteDocumentTreats404AsSuccess(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("method = %q", r.Method)
		}
		w.WriteHeader(http.StatusNotFound)
	})

	if err := c.DeleteDocument(context.Background(), "gone"); err != nil {
		t.Errorf("repeat delete should be a soft success, got %v", err)
	}
}

func TestDeleteDocumentServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := c.DeleteDocument(context.Background(), "d1")
	if !errors.Is(err, errors.KindNetwork) {
		t.Errorf("error kind = %v, want KindNetwork", errors.GetKind(err))
	}
}

func TestGetDocumentContentMissingDocument(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.GetDocumentContent(context.Background(), "gone")
	if !errors.Is(err, errors.KindNotFound) {
		t.Errorf("error kind = %v, want KindNotFound", errors.GetKind(err))
	}
	if !strings.Contains(err.Error(), "gone") {
		t.Errorf("error should name the document, got %v", err)
	}
}

func TestGetMessages(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/spaces/sp1/messages" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"messages": [
			{"id": "m1", "content": "hi", "response": "hello", "created_at": "2025-06-01T12:00:00Z"}
		]}`))
	})

	msgs, err := c.GetMessages(context.Background(), "sp1", 20, 0)
	if err != nil {
		t.Fatalf("GetMessages() error: %v", err)
	}
	if len(msgs) != 1 || msgs[0].ID != "m1" || msgs[0].Response != "hello" {
		t.Errorf("messages = %+v", msgs)
	}
}

func TestSendMessageScopesToDocuments(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req sendMessageRequest
		if err := jsonDecode(r, &req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Content != "summarize" || len(req.DocumentIDs) != 2 {
			t.Errorf("request = %+v", req)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "m9", "content": "summarize", "response": "done"}`))
	})

	rec, err := c.SendMessage(context.Background(), "sp1", "summarize", []string{"d1", "d2"})
	if err != nil {
		t.Fatalf("SendMessage() error: %v", err)
	}
	if rec.ID != "m9" || rec.Response != "done" {
		t.Errorf("record = %+v", rec)
	}
}

func TestUploadFileAbortIsSilent(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id": "d1"}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.UploadFile(ctx, "sp1", "a.txt", strings.NewReader("content"))
	if !stderrors.Is(err, context.Canceled) {
		t.Errorf("aborted upload should surface context.Canceled, got %v", err)
	}
}

func TestDownloadDocumentWritesFile(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("file body"))
	})

	dir := t.TempDir()
	path, err := c.DownloadDocument(context.Background(), "d1", "report.pdf", dir)
	if err != nil {
		t.Fatalf("DownloadDocument() error: %v", err)
	}
	if filepath.Base(path) != "report.pdf" {
		t.Errorf("path = %q, want report.pdf in %q", path, dir)
	}
}
