// Package lookup orchestrates catalog searches and concurrent detail-page
// retrieval against the Naver Book service.
package lookup

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hkjin/naverbook"
)

// DefaultStagger is the delay between consecutive detail worker launches.
const DefaultStagger = 100 * time.Millisecond

// defaultMinCoverBytes is the smallest Content-Length a cover image may
// declare before it is considered broken.
const defaultMinCoverBytes = 1000

// Service coordinates search, candidate matching and detail retrieval.
// Fetcher, Parser and Matcher are required; Cache and Logger are optional.
type Service struct {
	Fetcher naverbook.Fetcher
	Parser  naverbook.DetailParser
	Matcher naverbook.ResultMatcher
	Cache   naverbook.CoverCache
	Logger  *slog.Logger

	// Stagger is the delay between detail worker launches. Defaults to
	// DefaultStagger when zero.
	Stagger time.Duration

	// MinCoverBytes overrides the minimum declared cover size. Defaults
	// to 1000 bytes when zero.
	MinCoverBytes int64
}

// Identify resolves the criteria to zero or more metadata records, emitting
// each completed record to sink as it becomes available. Records for
// candidates that fail to fetch or parse are skipped with a log entry rather
// than failing the whole operation. When an identifier-based search yields no
// candidates and the criteria also carry a title and authors, the search is
// retried once with the identifiers cleared.
func (s *Service) Identify(ctx context.Context, criteria naverbook.SearchCriteria, sink naverbook.ResultSink) error {
	return s.identify(ctx, criteria, sink, true)
}

func (s *Service) identify(ctx context.Context, criteria naverbook.SearchCriteria, sink naverbook.ResultSink, allowRetry bool) error {
	logger := s.logger()

	var candidates []string
	if id := criteria.CatalogID(); id != "" {
		candidates = []string{naverbook.DetailURL(id)}
	} else {
		query, err := BuildQuery(criteria)
		if err != nil {
			return err
		}
		logger.Info("querying catalog", "url", query)

		page, err := s.Fetcher.Fetch(ctx, query)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return naverbook.Errorf(naverbook.EINTERNAL, "search query failed: %s", naverbook.ErrorMessage(err))
		}

		if criteria.ISBN() != "" {
			// An exact-match ISBN search redirects straight to the
			// detail page; the final URL carries the catalog id.
			if _, ok := naverbook.CatalogIDFromURL(page.URL); ok {
				candidates = []string{page.URL}
			}
		} else {
			candidates, err = s.Matcher.MatchResults(page, criteria.Title, criteria.Authors)
			if err != nil {
				return err
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if len(candidates) == 0 {
		if allowRetry && len(criteria.Identifiers) > 0 && criteria.Title != "" && len(criteria.Authors) > 0 {
			logger.Info("no candidates with identifiers, retrying with title and authors only")
			return s.identify(ctx, criteria.WithoutIdentifiers(), sink, false)
		}
		logger.Info("no candidates found", "title", criteria.Title)
		return nil
	}

	stagger := s.Stagger
	if stagger <= 0 {
		stagger = DefaultStagger
	}
	limiter := rate.NewLimiter(rate.Every(stagger), 1)

	g, gctx := errgroup.WithContext(ctx)
	for i, candidate := range candidates {
		if err := limiter.Wait(ctx); err != nil {
			break
		}
		w := &worker{
			url:           candidate,
			relevance:     i,
			fetcher:       s.Fetcher,
			parser:        s.Parser,
			cache:         s.Cache,
			sink:          sink,
			minCoverBytes: s.minCoverBytes(),
			logger:        logger,
		}
		g.Go(func() error {
			w.run(gctx)
			return nil
		})
	}
	return g.Wait()
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *Service) minCoverBytes() int64 {
	if s.MinCoverBytes > 0 {
		return s.MinCoverBytes
	}
	return defaultMinCoverBytes
}
