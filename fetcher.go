package naverbook

import "context"

// Page is the result of fetching a URL. URL is the final location after
// redirects: the ISBN exact-match search redirects to the detail page, and
// the catalog id is only recoverable from the redirect target.
type Page struct {
	URL  string
	Body []byte
}

// Fetcher retrieves raw content from catalog URLs.
type Fetcher interface {
	// Fetch retrieves the page at url. Returns ENOTFOUND for HTTP 404;
	// other transport failures return EINTERNAL or ETIMEOUT.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*Page, error)

	// ContentLength reports the declared size of the resource at url
	// without downloading it, used to detect broken cover placeholders.
	ContentLength(ctx context.Context, url string) (int64, error)
}

// DetailParser extracts a metadata record from a fetched detail page.
// Implementations must be fault-isolated per field: a failure extracting
// one optional field leaves that field absent without aborting the rest.
type DetailParser interface {
	// ParseDetail returns EINVALID when the page is not a genuine detail
	// page or when a required field (title, authors, catalog id) cannot
	// be extracted.
	ParseDetail(page *Page) (*Book, error)
}

// ResultMatcher selects candidate detail-page URLs from a search-results
// listing. An empty result is "no match", not an error.
type ResultMatcher interface {
	MatchResults(page *Page, title string, authors []string) ([]string, error)
}
