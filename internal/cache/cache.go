// Package cache holds the per-space document lists fetched from the server.
// Bulk delete removes entries optimistically; a failed delete invalidates
// the space's entry outright so the next read refetches, rather than trying
// to roll back precisely.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"dochub/internal/documents"
	"dochub/internal/logger"
)

const (
	defaultTTL      = 5 * time.Minute
	cleanupInterval = 10 * time.Minute
)

// Documents caches document lists keyed by space ID.
type Documents struct {
	c *gocache.Cache
}

// NewDocuments creates an empty document cache.
func NewDocuments() *Documents {
	return &Documents{
		c: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get returns the cached list for a space, or false on a miss.
func (d *Documents) Get(spaceID string) ([]documents.Document, bool) {
	v, ok := d.c.Get(spaceID)
	if !ok {
		return nil, false
	}
	docs, ok := v.([]documents.Document)
	return docs, ok
}

// Set replaces the cached list for a space.
func (d *Documents) Set(spaceID string, docs []documents.Document) {
	d.c.Set(spaceID, docs, gocache.DefaultExpiration)
}

// Remove optimistically drops documents from a space's cached list. A miss
// is a no-op; the next fetch will be consistent anyway.
func (d *Documents) Remove(spaceID string, ids ...string) {
	docs, ok := d.Get(spaceID)
	if !ok {
		return
	}
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := make([]documents.Document, 0, len(docs))
	for _, doc := range docs {
		if !drop[doc.ID] {
			kept = append(kept, doc)
		}
	}
	d.c.Set(spaceID, kept, gocache.DefaultExpiration)
}

// Add appends a freshly created document to a space's cached list.
func (d *Documents) Add(spaceID string, doc documents.Document) {
	docs, ok := d.Get(spaceID)
	if !ok {
		return
	}
	d.c.Set(spaceID, append(docs, doc), gocache.DefaultExpiration)
}

// Invalidate evicts a space's entry, forcing the next read to refetch.
func (d *Documents) Invalidate(spaceID string) {
	logger.Debug("Cache: invalidating documents for space %s", spaceID)
	d.c.Delete(spaceID)
}
