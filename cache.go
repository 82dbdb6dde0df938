package naverbook

import "context"

// CoverCache stores the isbn→catalog-id and catalog-id→cover-url mappings
// populated opportunistically by detail workers. Writes are idempotent:
// the same key always maps to the same value, so implementations need no
// coordination beyond mutual exclusion on the underlying storage.
//
// Lookups return ENOTFOUND on a miss. Implementations may be backed by an
// in-process map (mem/) or the host's persistent store (sqlite/).
type CoverCache interface {
	// CatalogID returns the catalog id previously resolved for an ISBN.
	CatalogID(ctx context.Context, isbn string) (string, error)

	// CoverURL returns the cover image URL previously resolved for a
	// catalog id.
	CoverURL(ctx context.Context, catalogID string) (string, error)

	SetCatalogID(ctx context.Context, isbn, catalogID string) error
	SetCoverURL(ctx context.Context, catalogID, url string) error
}
