package naverbook

import (
	"sync"
	"time"
)

// Identifier kinds recognized in SearchCriteria and Book identifiers.
const (
	IdentifierISBN    = "isbn"
	IdentifierCatalog = "naverbook"
)

// SearchCriteria describes one identify request. It is immutable input:
// the orchestrator copies it before mutating (e.g., for the
// identifier-dropping retry).
type SearchCriteria struct {
	Title       string
	Authors     []string
	Identifiers map[string]string
}

// ISBN returns the ISBN identifier if present and checksum-valid.
func (c SearchCriteria) ISBN() string {
	return ValidateISBN(c.Identifiers[IdentifierISBN])
}

// CatalogID returns the catalog id identifier, if present.
func (c SearchCriteria) CatalogID() string {
	return c.Identifiers[IdentifierCatalog]
}

// WithoutIdentifiers returns a copy of the criteria with identifiers
// cleared, used for the single title/author fallback retry.
func (c SearchCriteria) WithoutIdentifiers() SearchCriteria {
	return SearchCriteria{Title: c.Title, Authors: c.Authors}
}

// Book is a metadata record extracted from one catalog detail page.
// Every field beyond Title, Authors, and CatalogID is best-effort and may
// be absent.
type Book struct {
	Title       string
	Authors     []string
	Series      string
	SeriesIndex float64
	CatalogID   string
	ISBN        string
	Rating      float64 // 0-5 scale, 0 means unrated
	Publisher   string
	PubDate     time.Time // UTC, zero means unknown
	Comments    string    // sanitized HTML fragment
	Tags        []string
	Language    string
	CoverURL    string
	Relevance   int // position in the original search-result ordering
	HasCover    bool
}

// Validate returns an error if the record is missing a required field.
// Records failing validation are discarded, never emitted to a sink.
func (b *Book) Validate() error {
	if b.Title == "" {
		return Errorf(EINVALID, "book title required")
	}
	if len(b.Authors) == 0 {
		return Errorf(EINVALID, "book authors required")
	}
	if b.CatalogID == "" {
		return Errorf(EINVALID, "book catalog id required")
	}
	return nil
}

// ResultSink accepts completed metadata records. Implementations must be
// safe for concurrent use; detail workers push records in completion
// order, relying on Book.Relevance for downstream re-ordering.
type ResultSink interface {
	Put(book *Book)
}

// CoverSink accepts downloaded cover image bytes.
type CoverSink interface {
	Put(data []byte)
}

// Ensure BookCollector implements ResultSink at compile time.
var _ ResultSink = (*BookCollector)(nil)

// BookCollector is a mutex-guarded ResultSink that accumulates records
// in arrival order.
type BookCollector struct {
	mu    sync.Mutex
	books []*Book
}

// Put appends a record to the collector.
func (c *BookCollector) Put(book *Book) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.books = append(c.books, book)
}

// Books returns a snapshot of the collected records.
func (c *BookCollector) Books() []*Book {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Book, len(c.books))
	copy(out, c.books)
	return out
}
