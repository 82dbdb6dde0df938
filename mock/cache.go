package mock

import (
	"context"

	"github.com/hkjin/naverbook"
)

var _ naverbook.CoverCache = (*CoverCache)(nil)

// CoverCache is a mock implementation of naverbook.CoverCache.
type CoverCache struct {
	CatalogIDFn    func(ctx context.Context, isbn string) (string, error)
	CoverURLFn     func(ctx context.Context, catalogID string) (string, error)
	SetCatalogIDFn func(ctx context.Context, isbn, catalogID string) error
	SetCoverURLFn  func(ctx context.Context, catalogID, url string) error
}

func (c *CoverCache) CatalogID(ctx context.Context, isbn string) (string, error) {
	return c.CatalogIDFn(ctx, isbn)
}

func (c *CoverCache) CoverURL(ctx context.Context, catalogID string) (string, error) {
	return c.CoverURLFn(ctx, catalogID)
}

func (c *CoverCache) SetCatalogID(ctx context.Context, isbn, catalogID string) error {
	return c.SetCatalogIDFn(ctx, isbn, catalogID)
}

func (c *CoverCache) SetCoverURL(ctx context.Context, catalogID, url string) error {
	return c.SetCoverURLFn(ctx, catalogID, url)
}
