package lookup

import (
	"context"
	"log/slog"

	"github.com/hkjin/naverbook"
)

// worker fetches a single detail page, parses it and emits the record.
type worker struct {
	url           string
	relevance     int
	fetcher       naverbook.Fetcher
	parser        naverbook.DetailParser
	cache         naverbook.CoverCache
	sink          naverbook.ResultSink
	minCoverBytes int64
	logger        *slog.Logger
}

func (w *worker) run(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	logger := w.logger.With("url", w.url)

	page, err := w.fetcher.Fetch(ctx, w.url)
	if err != nil {
		switch naverbook.ErrorCode(err) {
		case naverbook.ENOTFOUND:
			logger.Error("detail page not found")
		case naverbook.ETIMEOUT:
			logger.Error("catalog timed out, try again later")
		default:
			logger.Error("failed to fetch detail page", "error", err)
		}
		return
	}

	book, err := w.parser.ParseDetail(page)
	if err != nil {
		logger.Error("failed to parse detail page", "error", err)
		return
	}
	book.Relevance = w.relevance

	if book.CoverURL != "" && !w.coverExists(ctx, book.CoverURL) {
		logger.Warn("dropping broken cover image", "cover", book.CoverURL)
		book.CoverURL = ""
	}
	book.HasCover = book.CoverURL != ""

	w.cacheBook(ctx, book, logger)
	w.sink.Put(book)
}

// coverExists verifies the cover URL points at a non-placeholder image by
// checking its declared Content-Length.
func (w *worker) coverExists(ctx context.Context, url string) bool {
	length, err := w.fetcher.ContentLength(ctx, url)
	if err != nil {
		return false
	}
	return length > w.minCoverBytes
}

func (w *worker) cacheBook(ctx context.Context, book *naverbook.Book, logger *slog.Logger) {
	if w.cache == nil || book.CatalogID == "" {
		return
	}
	if book.ISBN != "" {
		if err := w.cache.SetCatalogID(ctx, book.ISBN, book.CatalogID); err != nil {
			logger.Warn("failed to cache catalog id", "error", err)
		}
	}
	if book.CoverURL != "" {
		if err := w.cache.SetCoverURL(ctx, book.CatalogID, book.CoverURL); err != nil {
			logger.Warn("failed to cache cover url", "error", err)
		}
	}
}
