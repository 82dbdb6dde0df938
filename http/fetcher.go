// Package http provides an HTTP-based implementation of naverbook.Fetcher
// for retrieving search listings, detail pages, and cover images from the
// catalog site.
package http

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/hkjin/naverbook"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 20 * time.Second

// defaultUserAgent mimics a desktop browser; the catalog serves reduced
// markup to unknown agents.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// Ensure Fetcher implements naverbook.Fetcher at compile time.
var _ naverbook.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves catalog content over HTTP. Redirects are followed and
// the final URL is reported on the returned Page: the ISBN exact-match
// search resolves to a detail page only through its redirect target.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultFetchTimeout,
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the content at url. HTTP 404 maps to ENOTFOUND and
// timeouts to ETIMEOUT so callers can treat both as soft failures.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*naverbook.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, naverbook.Errorf(naverbook.EINVALID, "invalid fetch URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if os.IsTimeout(err) || ctx.Err() == context.DeadlineExceeded {
			return nil, naverbook.Errorf(naverbook.ETIMEOUT, "fetch %s timed out", url)
		}
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, naverbook.Errorf(naverbook.ENOTFOUND, "HTTP 404 for %s", url)
	case resp.StatusCode != http.StatusOK:
		return nil, naverbook.Errorf(naverbook.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &naverbook.Page{
		URL:  resp.Request.URL.String(),
		Body: body,
	}, nil
}

// ContentLength reports the declared size of the resource at url via a
// HEAD request. Returns -1 if the server does not declare a length.
func (f *Fetcher) ContentLength(ctx context.Context, url string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return 0, naverbook.Errorf(naverbook.EINVALID, "invalid fetch URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return 0, err
	}
	resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, naverbook.Errorf(naverbook.ENOTFOUND, "HTTP 404 for %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		return 0, naverbook.Errorf(naverbook.EINTERNAL, "HTTP %d for %s", resp.StatusCode, url)
	}

	return resp.ContentLength, nil
}
