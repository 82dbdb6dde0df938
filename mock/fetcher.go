// Package mock provides function-field mock implementations of the
// naverbook interfaces for testing.
package mock

import (
	"context"

	"github.com/hkjin/naverbook"
)

var _ naverbook.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of naverbook.Fetcher.
type Fetcher struct {
	FetchFn         func(ctx context.Context, url string) (*naverbook.Page, error)
	ContentLengthFn func(ctx context.Context, url string) (int64, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*naverbook.Page, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) ContentLength(ctx context.Context, url string) (int64, error) {
	return f.ContentLengthFn(ctx, url)
}
