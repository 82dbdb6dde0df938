// Package slog provides logging decorators for the naverbook interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/hkjin/naverbook"
)

// Ensure LoggingFetcher implements naverbook.Fetcher.
var _ naverbook.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs every request with its outcome
// and duration.
type LoggingFetcher struct {
	next   naverbook.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next naverbook.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the result.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (*naverbook.Page, error) {
	begin := time.Now()
	page, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch",
			"url", url,
			"err", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	f.logger.Info("fetch",
		"url", url,
		"bytes", len(page.Body),
		"duration", time.Since(begin),
	)
	return page, nil
}

// ContentLength delegates to the wrapped fetcher and logs the result.
func (f *LoggingFetcher) ContentLength(ctx context.Context, url string) (int64, error) {
	begin := time.Now()
	length, err := f.next.ContentLength(ctx, url)
	if err != nil {
		f.logger.Error("content length",
			"url", url,
			"err", err,
			"duration", time.Since(begin),
		)
		return 0, err
	}
	f.logger.Info("content length",
		"url", url,
		"bytes", length,
		"duration", time.Since(begin),
	)
	return length, nil
}
