package sqlite

import (
	"context"
	"database/sql"

	"github.com/hkjin/naverbook"
)

// Compile-time interface verification.
var _ naverbook.CoverCache = (*Cache)(nil)

// Cache implements naverbook.CoverCache using SQLite.
type Cache struct {
	db *DB
}

// NewCache creates a new Cache backed by db.
func NewCache(db *DB) *Cache {
	return &Cache{db: db}
}

// CatalogID returns the catalog id stored for an ISBN.
// Returns ENOTFOUND on a miss.
func (c *Cache) CatalogID(ctx context.Context, isbn string) (string, error) {
	var id string
	err := c.db.QueryRowContext(ctx, `
		SELECT catalog_id FROM catalog_ids WHERE isbn = ?
	`, isbn).Scan(&id)

	if err == sql.ErrNoRows {
		return "", naverbook.Errorf(naverbook.ENOTFOUND, "no catalog id cached for isbn %q", isbn)
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

// CoverURL returns the cover URL stored for a catalog id.
// Returns ENOTFOUND on a miss.
func (c *Cache) CoverURL(ctx context.Context, catalogID string) (string, error) {
	var url string
	err := c.db.QueryRowContext(ctx, `
		SELECT url FROM cover_urls WHERE catalog_id = ?
	`, catalogID).Scan(&url)

	if err == sql.ErrNoRows {
		return "", naverbook.Errorf(naverbook.ENOTFOUND, "no cover url cached for catalog id %q", catalogID)
	}
	if err != nil {
		return "", err
	}
	return url, nil
}

// SetCatalogID stores an isbn→catalog-id mapping. Re-writing a key is
// idempotent.
func (c *Cache) SetCatalogID(ctx context.Context, isbn, catalogID string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO catalog_ids (isbn, catalog_id) VALUES (?, ?)
		ON CONFLICT(isbn) DO UPDATE SET catalog_id = excluded.catalog_id
	`, isbn, catalogID)
	return err
}

// SetCoverURL stores a catalog-id→cover-url mapping. Re-writing a key is
// idempotent.
func (c *Cache) SetCoverURL(ctx context.Context, catalogID, url string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO cover_urls (catalog_id, url) VALUES (?, ?)
		ON CONFLICT(catalog_id) DO UPDATE SET url = excluded.url
	`, catalogID, url)
	return err
}
