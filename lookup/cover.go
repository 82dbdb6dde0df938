package lookup

import (
	"context"
	"sort"

	"github.com/hkjin/naverbook"
)

// FetchCover downloads the cover image for the book matching the criteria
// and emits the raw image bytes to sink. Cached identifier mappings are
// consulted first; on a miss a full Identify pass runs and its results are
// scanned in comparator order for a cached cover URL. A nil less comparator
// defaults to RankByCriteria. Absence of a cover is not an error.
func (s *Service) FetchCover(ctx context.Context, criteria naverbook.SearchCriteria, sink naverbook.CoverSink, less func(a, b *naverbook.Book) bool) error {
	logger := s.logger()

	coverURL := s.cachedCoverURL(ctx, criteria)
	if coverURL == "" {
		logger.Info("no cached cover url, running identify")
		var collector naverbook.BookCollector
		if err := s.Identify(ctx, criteria, &collector); err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		books := collector.Books()
		if less == nil {
			less = RankByCriteria(criteria)
		}
		sort.SliceStable(books, func(i, j int) bool { return less(books[i], books[j]) })

		for _, book := range books {
			if url := s.coverURLForCatalogID(ctx, book.CatalogID); url != "" {
				coverURL = url
				break
			}
		}
	}
	if coverURL == "" {
		logger.Info("no cover found", "title", criteria.Title)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	logger.Info("downloading cover", "url", coverURL)
	page, err := s.Fetcher.Fetch(ctx, coverURL)
	if err != nil {
		logger.Error("failed to download cover", "url", coverURL, "error", err)
		return nil
	}
	sink.Put(page.Body)
	return nil
}

// cachedCoverURL resolves a cover URL from the criteria's identifiers alone,
// following the isbn to catalog id mapping when needed.
func (s *Service) cachedCoverURL(ctx context.Context, criteria naverbook.SearchCriteria) string {
	if s.Cache == nil {
		return ""
	}
	id := criteria.CatalogID()
	if id == "" {
		if isbn := criteria.ISBN(); isbn != "" {
			if v, err := s.Cache.CatalogID(ctx, isbn); err == nil {
				id = v
			}
		}
	}
	return s.coverURLForCatalogID(ctx, id)
}

func (s *Service) coverURLForCatalogID(ctx context.Context, id string) string {
	if s.Cache == nil || id == "" {
		return ""
	}
	url, err := s.Cache.CoverURL(ctx, id)
	if err != nil {
		return ""
	}
	return url
}
