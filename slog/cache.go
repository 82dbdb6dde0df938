package slog

import (
	"context"
	"log/slog"

	"github.com/hkjin/naverbook"
)

// Ensure LoggingCache implements naverbook.CoverCache.
var _ naverbook.CoverCache = (*LoggingCache)(nil)

// LoggingCache wraps a CoverCache with debug logging for hits and misses.
type LoggingCache struct {
	next   naverbook.CoverCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next naverbook.CoverCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

func (c *LoggingCache) CatalogID(ctx context.Context, isbn string) (string, error) {
	id, err := c.next.CatalogID(ctx, isbn)
	c.logger.Debug("cache catalog id lookup", "isbn", isbn, "hit", err == nil)
	return id, err
}

func (c *LoggingCache) CoverURL(ctx context.Context, catalogID string) (string, error) {
	url, err := c.next.CoverURL(ctx, catalogID)
	c.logger.Debug("cache cover url lookup", "catalog_id", catalogID, "hit", err == nil)
	return url, err
}

func (c *LoggingCache) SetCatalogID(ctx context.Context, isbn, catalogID string) error {
	err := c.next.SetCatalogID(ctx, isbn, catalogID)
	if err != nil {
		c.logger.Error("cache catalog id write", "isbn", isbn, "err", err)
	}
	return err
}

func (c *LoggingCache) SetCoverURL(ctx context.Context, catalogID, url string) error {
	err := c.next.SetCoverURL(ctx, catalogID, url)
	if err != nil {
		c.logger.Error("cache cover url write", "catalog_id", catalogID, "err", err)
	}
	return err
}
