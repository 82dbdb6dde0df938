// Package mem provides an in-process implementation of naverbook.CoverCache.
// Entries live for the lifetime of the process; there is no eviction.
package mem

import (
	"context"
	"sync"

	"github.com/hkjin/naverbook"
)

// Ensure Cache implements naverbook.CoverCache at compile time.
var _ naverbook.CoverCache = (*Cache)(nil)

// Cache is a mutex-guarded in-memory cover cache. The zero value is ready
// to use.
type Cache struct {
	mu         sync.Mutex
	catalogIDs map[string]string // isbn -> catalog id
	coverURLs  map[string]string // catalog id -> cover URL
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{}
}

// CatalogID returns the catalog id cached for an ISBN.
// Returns ENOTFOUND on a miss.
func (c *Cache) CatalogID(_ context.Context, isbn string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok := c.catalogIDs[isbn]
	if !ok {
		return "", naverbook.Errorf(naverbook.ENOTFOUND, "no catalog id cached for isbn %q", isbn)
	}
	return id, nil
}

// CoverURL returns the cover URL cached for a catalog id.
// Returns ENOTFOUND on a miss.
func (c *Cache) CoverURL(_ context.Context, catalogID string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	url, ok := c.coverURLs[catalogID]
	if !ok {
		return "", naverbook.Errorf(naverbook.ENOTFOUND, "no cover url cached for catalog id %q", catalogID)
	}
	return url, nil
}

// SetCatalogID records an isbn→catalog-id mapping. Writes are idempotent.
func (c *Cache) SetCatalogID(_ context.Context, isbn, catalogID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.catalogIDs == nil {
		c.catalogIDs = make(map[string]string)
	}
	c.catalogIDs[isbn] = catalogID
	return nil
}

// SetCoverURL records a catalog-id→cover-url mapping. Writes are idempotent.
func (c *Cache) SetCoverURL(_ context.Context, catalogID, url string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.coverURLs == nil {
		c.coverURLs = make(map[string]string)
	}
	c.coverURLs[catalogID] = url
	return nil
}
