package lookup_test

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hkjin/naverbook"
	"github.com/hkjin/naverbook/lookup"
	"github.com/hkjin/naverbook/mem"
	"github.com/hkjin/naverbook/mock"
)

func TestService_FetchCover(t *testing.T) {
	t.Parallel()

	t.Run("CachedByCatalogID", func(t *testing.T) {
		t.Parallel()
		cache := mem.NewCache()
		require.NoError(t, cache.SetCoverURL(context.Background(), "8059585", "https://bookthumb.naver.com/8059585.jpg"))

		var fetches int64
		svc := &lookup.Service{
			Cache: cache,
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (*naverbook.Page, error) {
					atomic.AddInt64(&fetches, 1)
					assert.Equal(t, "https://bookthumb.naver.com/8059585.jpg", url)
					return &naverbook.Page{URL: url, Body: []byte("image-bytes")}, nil
				},
			},
			Parser:  &mock.DetailParser{},
			Matcher: &mock.ResultMatcher{},
		}

		var got []byte
		sink := &mock.CoverSink{PutFn: func(data []byte) { got = data }}
		require.NoError(t, svc.FetchCover(context.Background(), naverbook.SearchCriteria{
			Identifiers: map[string]string{naverbook.IdentifierCatalog: "8059585"},
		}, sink, nil))

		assert.Equal(t, []byte("image-bytes"), got)
		assert.Equal(t, int64(1), atomic.LoadInt64(&fetches))
	})

	t.Run("CachedByISBNChain", func(t *testing.T) {
		t.Parallel()
		cache := mem.NewCache()
		require.NoError(t, cache.SetCatalogID(context.Background(), "9780385340588", "8059585"))
		require.NoError(t, cache.SetCoverURL(context.Background(), "8059585", "https://bookthumb.naver.com/8059585.jpg"))

		svc := &lookup.Service{
			Cache: cache,
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (*naverbook.Page, error) {
					return &naverbook.Page{URL: url, Body: []byte("image-bytes")}, nil
				},
			},
			Parser:  &mock.DetailParser{},
			Matcher: &mock.ResultMatcher{},
		}

		var got []byte
		sink := &mock.CoverSink{PutFn: func(data []byte) { got = data }}
		require.NoError(t, svc.FetchCover(context.Background(), naverbook.SearchCriteria{
			Identifiers: map[string]string{naverbook.IdentifierISBN: "978-0-385-34058-8"},
		}, sink, nil))
		assert.Equal(t, []byte("image-bytes"), got)
	})

	t.Run("IdentifyOnCacheMiss", func(t *testing.T) {
		t.Parallel()
		cache := mem.NewCache()
		svc := &lookup.Service{
			Stagger: time.Nanosecond,
			Cache:   cache,
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (*naverbook.Page, error) {
					switch {
					case strings.Contains(url, "search.nhn"):
						return &naverbook.Page{URL: url, Body: []byte("listing")}, nil
					case strings.Contains(url, "bookthumb"):
						return &naverbook.Page{URL: url, Body: []byte("image-bytes")}, nil
					default:
						return &naverbook.Page{URL: url, Body: []byte("detail")}, nil
					}
				},
				ContentLengthFn: func(ctx context.Context, url string) (int64, error) {
					return 52000, nil
				},
			},
			Parser: &mock.DetailParser{
				ParseDetailFn: func(page *naverbook.Page) (*naverbook.Book, error) {
					return &naverbook.Book{
						Title:     "61 Hours",
						Authors:   []string{"Lee Child"},
						CatalogID: "8059585",
						CoverURL:  "https://bookthumb.naver.com/8059585.jpg",
					}, nil
				},
			},
			Matcher: &mock.ResultMatcher{
				MatchResultsFn: func(page *naverbook.Page, title string, authors []string) ([]string, error) {
					return []string{naverbook.DetailURL("8059585")}, nil
				},
			},
		}

		var got []byte
		sink := &mock.CoverSink{PutFn: func(data []byte) { got = data }}
		require.NoError(t, svc.FetchCover(context.Background(), naverbook.SearchCriteria{
			Title:   "61 Hours",
			Authors: []string{"Lee Child"},
		}, sink, nil))
		assert.Equal(t, []byte("image-bytes"), got)
	})

	t.Run("NoCoverFound", func(t *testing.T) {
		t.Parallel()
		svc := &lookup.Service{
			Stagger: time.Nanosecond,
			Cache:   mem.NewCache(),
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (*naverbook.Page, error) {
					return &naverbook.Page{URL: url, Body: []byte("listing")}, nil
				},
			},
			Parser: &mock.DetailParser{},
			Matcher: &mock.ResultMatcher{
				MatchResultsFn: func(page *naverbook.Page, title string, authors []string) ([]string, error) {
					return nil, nil
				},
			},
		}

		sink := &mock.CoverSink{PutFn: func(data []byte) {
			t.Fatal("sink must not receive data when no cover exists")
		}}
		require.NoError(t, svc.FetchCover(context.Background(), naverbook.SearchCriteria{
			Title:   "61 Hours",
			Authors: []string{"Lee Child"},
		}, sink, nil))
	})

	t.Run("Cancelled", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var fetches int64
		svc := &lookup.Service{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (*naverbook.Page, error) {
					atomic.AddInt64(&fetches, 1)
					return &naverbook.Page{URL: url, Body: nil}, nil
				},
			},
			Parser:  &mock.DetailParser{},
			Matcher: &mock.ResultMatcher{},
		}

		sink := &mock.CoverSink{PutFn: func(data []byte) { t.Fatal("sink must not run") }}
		err := svc.FetchCover(ctx, naverbook.SearchCriteria{
			Identifiers: map[string]string{naverbook.IdentifierCatalog: "8059585"},
		}, sink, nil)
		require.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, atomic.LoadInt64(&fetches))
	})
}

func TestRankByCriteria(t *testing.T) {
	t.Parallel()

	t.Run("TitleMatchBeatsMismatch", func(t *testing.T) {
		t.Parallel()
		criteria := naverbook.SearchCriteria{Title: "61 Hours", Authors: []string{"Lee Child"}}
		less := lookup.RankByCriteria(criteria)
		match := &naverbook.Book{Title: "61 Hours", Authors: []string{"Lee Child"}, Relevance: 1}
		miss := &naverbook.Book{Title: "Gone Tomorrow", Authors: []string{"Someone"}, Relevance: 0}
		assert.True(t, less(match, miss))
		assert.False(t, less(miss, match))
	})

	t.Run("ISBNMatchWins", func(t *testing.T) {
		t.Parallel()
		criteria := naverbook.SearchCriteria{
			Title:       "61 Hours",
			Identifiers: map[string]string{naverbook.IdentifierISBN: "9780385340588"},
		}
		less := lookup.RankByCriteria(criteria)
		exact := &naverbook.Book{Title: "Different Title", ISBN: "9780385340588", Relevance: 3}
		titleOnly := &naverbook.Book{Title: "61 Hours", Relevance: 0}
		assert.True(t, less(exact, titleOnly))
	})

	t.Run("TiesBreakOnSearchOrder", func(t *testing.T) {
		t.Parallel()
		less := lookup.RankByCriteria(naverbook.SearchCriteria{})
		first := &naverbook.Book{Title: "A", Relevance: 0}
		second := &naverbook.Book{Title: "B", Relevance: 1}
		assert.True(t, less(first, second))
		assert.False(t, less(second, first))
	})
}
