// Package api is the HTTP client for the Doc Hub backend: spaces, document
// listing and lifecycle, and the paginated chat history.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"dochub/internal/config"
	"dochub/internal/documents"
	"dochub/internal/errors"
	"dochub/internal/feed"
	"dochub/internal/logger"
)

const httpTimeout = 30 * time.Second

// Client talks to the Doc Hub backend.
type Client struct {
	config     *config.Config
	httpClient *http.Client
	apiBase    string // Override for testing; defaults to the configured server URL
}

// New creates an API client for the configured server.
func New(cfg *config.Config) *Client {
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
		apiBase: cfg.GetServerURL(),
	}
}

// NewWithClient creates an API client with a custom HTTP client and base URL (for testing).
func NewWithClient(cfg *config.Config, client *http.Client, apiBase string) *Client {
	if apiBase == "" {
		apiBase = cfg.GetServerURL()
	}
	return &Client{
		config:     cfg,
		httpClient: client,
		apiBase:    apiBase,
	}
}

// newRequest builds an authenticated request. Every request carries a
// unique id so server logs can be correlated with client ones.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, body)
	if err != nil {
		return nil, err
	}
	if token := c.config.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// statusError maps a non-2xx response to a typed error.
func statusError(op errors.Op, resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.AuthRequired()
	case http.StatusNotFound:
		return errors.E(op, errors.KindNotFound, fmt.Errorf("server returned status %d", resp.StatusCode))
	default:
		return errors.RequestFailed(op, resp.StatusCode)
	}
}

// Space is one document collection the user belongs to.
type Space struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	DocumentCount int    `json:"document_count"`
}

type spacesResponse struct {
	Spaces []Space `json:"spaces"`
}

// GetSpaces lists the user's spaces.
func (c *Client) GetSpaces(ctx context.Context) ([]Space, error) {
	const op errors.Op = "api.GetSpaces"

	req, err := c.newRequest(ctx, http.MethodGet, "/spaces", nil)
	if err != nil {
		return nil, errors.E(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.E(op, errors.KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(op, resp)
	}

	var sr spacesResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, errors.E(op, errors.KindDecode, err)
	}
	return sr.Spaces, nil
}

// Pagination reports the server-side total for a paged listing.
type Pagination struct {
	TotalCount int `json:"total_count"`
}

// DocumentsPage is one page of a space's document list.
type DocumentsPage struct {
	Documents  []documents.Document `json:"documents"`
	Pagination Pagination           `json:"pagination"`
}

// GetSpaceDocuments fetches one page of a space's documents.
func (c *Client) GetSpaceDocuments(ctx context.Context, spaceID string, limit, offset int) (*DocumentsPage, error) {
	const op errors.Op = "api.GetSpaceDocuments"

	path := fmt.Sprintf("/spaces/%s/documents?limit=%d&offset=%d", url.PathEscape(spaceID), limit, offset)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, errors.E(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.E(op, errors.KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(op, resp)
	}

	var page DocumentsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, errors.E(op, errors.KindDecode, err)
	}
	return &page, nil
}

// DeleteDocument deletes a document. A 404 is treated as success so that
// repeating a delete (or racing another client) stays a soft failure.
func (c *Client) DeleteDocument(ctx context.Context, id string) error {
	const op errors.Op = "api.DeleteDocument"

	req, err := c.newRequest(ctx, http.MethodDelete, "/documents/"+url.PathEscape(id), nil)
	if err != nil {
		return errors.E(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.E(op, errors.KindNetwork, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNoContent:
		return nil
	case http.StatusNotFound:
		logger.Debug("API: delete of %s returned 404, treating as already deleted", id)
		return nil
	default:
		return statusError(op, resp)
	}
}

type messagesResponse struct {
	Messages []feed.Record `json:"messages"`
}

// GetMessages fetches one page of a space's chat history. Pages are
// newest-first: offset 0 is the most recent page.
func (c *Client) GetMessages(ctx context.Context, spaceID string, limit, offset int) ([]feed.Record, error) {
	const op errors.Op = "api.GetMessages"

	path := fmt.Sprintf("/spaces/%s/messages?limit=%d&offset=%d", url.PathEscape(spaceID), limit, offset)
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, errors.E(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.E(op, errors.KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(op, resp)
	}

	var mr messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&mr); err != nil {
		return nil, errors.E(op, errors.KindDecode, err)
	}
	return mr.Messages, nil
}

type sendMessageRequest struct {
	Content     string   `json:"content"`
	DocumentIDs []string `json:"document_ids,omitempty"`
}

// SendMessage posts a chat message scoped to the given document ids (nil
// means all documents in the space) and returns the answered record.
func (c *Client) SendMessage(ctx context.Context, spaceID, content string, documentIDs []string) (*feed.Record, error) {
	const op errors.Op = "api.SendMessage"

	body, err := json.Marshal(sendMessageRequest{Content: content, DocumentIDs: documentIDs})
	if err != nil {
		return nil, errors.E(op, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/spaces/"+url.PathEscape(spaceID)+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, errors.E(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.E(op, errors.KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, statusError(op, resp)
	}

	var rec feed.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, errors.E(op, errors.KindDecode, err)
	}
	return &rec, nil
}

// UploadFile uploads a local file into the space and returns the created
// document. The context doubles as the abort signal: callers cancel it to
// abandon an upload, and should treat context.Canceled as a silent outcome.
func (c *Client) UploadFile(ctx context.Context, spaceID, name string, content io.Reader) (*documents.Document, error) {
	const op errors.Op = "api.UploadFile"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return nil, errors.E(op, err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return nil, errors.E(op, errors.KindIO, err)
	}
	if err := mw.Close(); err != nil {
		return nil, errors.E(op, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/spaces/"+url.PathEscape(spaceID)+"/documents", &buf)
	if err != nil {
		return nil, errors.E(op, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.doCreateDocument(op, req)
}

type uploadURLRequest struct {
	URL string `json:"url"`
}

// UploadURL registers a web source as a document in the space.
func (c *Client) UploadURL(ctx context.Context, spaceID, sourceURL string) (*documents.Document, error) {
	const op errors.Op = "api.UploadURL"

	body, err := json.Marshal(uploadURLRequest{URL: sourceURL})
	if err != nil {
		return nil, errors.E(op, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/spaces/"+url.PathEscape(spaceID)+"/documents/url", bytes.NewReader(body))
	if err != nil {
		return nil, errors.E(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doCreateDocument(op, req)
}

// UploadVideo registers a video source as a document in the space.
func (c *Client) UploadVideo(ctx context.Context, spaceID, sourceURL string) (*documents.Document, error) {
	const op errors.Op = "api.UploadVideo"

	body, err := json.Marshal(uploadURLRequest{URL: sourceURL})
	if err != nil {
		return nil, errors.E(op, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/spaces/"+url.PathEscape(spaceID)+"/documents/video", bytes.NewReader(body))
	if err != nil {
		return nil, errors.E(op, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doCreateDocument(op, req)
}

func (c *Client) doCreateDocument(op errors.Op, req *http.Request) (*documents.Document, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Preserve cancellation so callers can treat an aborted upload as
		// a non-error.
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, errors.E(op, errors.KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, statusError(op, resp)
	}

	var doc documents.Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.E(op, errors.KindDecode, err)
	}
	return &doc, nil
}

// GetDocumentContent fetches a document's rendered text content for the
// in-pane preview.
func (c *Client) GetDocumentContent(ctx context.Context, id string) (string, error) {
	const op errors.Op = "api.GetDocumentContent"

	req, err := c.newRequest(ctx, http.MethodGet, "/documents/"+url.PathEscape(id)+"/content", nil)
	if err != nil {
		return "", errors.E(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.E(op, errors.KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", errors.DocumentNotFound(id)
	}
	if resp.StatusCode != http.StatusOK {
		return "", statusError(op, resp)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.E(op, errors.KindIO, err)
	}
	return string(raw), nil
}

// DownloadDocument streams a document's file into dir, returning the path
// it was written to.
func (c *Client) DownloadDocument(ctx context.Context, id, name, dir string) (string, error) {
	const op errors.Op = "api.DownloadDocument"

	req, err := c.newRequest(ctx, http.MethodGet, "/documents/"+url.PathEscape(id)+"/download", nil)
	if err != nil {
		return "", errors.E(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.E(op, errors.KindNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", errors.DocumentNotFound(id)
	}
	if resp.StatusCode != http.StatusOK {
		return "", statusError(op, resp)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.E(op, errors.KindIO, err)
	}
	target := filepath.Join(dir, filepath.Base(name))
	out, err := os.Create(target)
	if err != nil {
		return "", errors.E(op, errors.KindIO, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(target)
		return "", errors.E(op, errors.KindIO, err)
	}

	logger.Debug("API: downloaded %s to %s", id, target)
	return target, nil
}
