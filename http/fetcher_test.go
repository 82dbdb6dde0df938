package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hkjin/naverbook"
	nbhttp "github.com/hkjin/naverbook/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns body and final URL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>detail</body></html>"))
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher()

		page, err := fetcher.Fetch(context.Background(), server.URL+"/bookdb/book_detail.nhn?bid=123")
		require.NoError(t, err)
		assert.Equal(t, []byte("<html><body>detail</body></html>"), page.Body)
		assert.Equal(t, server.URL+"/bookdb/book_detail.nhn?bid=123", page.URL)
	})

	t.Run("reports redirect target as final URL", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/bookdb/book_detail.nhn?bid=6853473", http.StatusFound)
		})
		mux.HandleFunc("/bookdb/book_detail.nhn", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("detail page"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		fetcher := nbhttp.NewFetcher()

		page, err := fetcher.Fetch(context.Background(), server.URL+"/search")
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/bookdb/book_detail.nhn?bid=6853473", page.URL)

		id, ok := naverbook.CatalogIDFromURL(page.URL)
		require.True(t, ok)
		assert.Equal(t, "6853473", id)
	})

	t.Run("maps 404 to ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, naverbook.ENOTFOUND, naverbook.ErrorCode(err))
	})

	t.Run("non-200 status is an internal error", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher()

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, naverbook.EINTERNAL, naverbook.ErrorCode(err))
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(100 * time.Millisecond)
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fetcher.Fetch(ctx, server.URL)
		require.Error(t, err)
	})

	t.Run("sends the configured user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("ok"))
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher(nbhttp.WithUserAgent("test-agent"))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "test-agent", gotUA)
	})
}

func TestFetcher_ContentLength(t *testing.T) {
	t.Parallel()

	t.Run("reports declared length without downloading", func(t *testing.T) {
		t.Parallel()

		var sawHead bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sawHead = r.Method == http.MethodHead
			w.Header().Set("Content-Length", "4242")
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher()

		length, err := fetcher.ContentLength(context.Background(), server.URL+"/cover.jpg")
		require.NoError(t, err)
		assert.True(t, sawHead)
		assert.Equal(t, int64(4242), length)
	})

	t.Run("maps 404 to ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		fetcher := nbhttp.NewFetcher()

		_, err := fetcher.ContentLength(context.Background(), server.URL)
		require.Error(t, err)
		assert.Equal(t, naverbook.ENOTFOUND, naverbook.ErrorCode(err))
	})
}
