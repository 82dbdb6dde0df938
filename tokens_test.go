package naverbook_test

import (
	"testing"

	"github.com/hkjin/naverbook"
	"github.com/stretchr/testify/assert"
)

func TestTitleTokens(t *testing.T) {
	t.Parallel()

	t.Run("splits on whitespace and punctuation", func(t *testing.T) {
		t.Parallel()

		tokens := naverbook.TitleTokens("61 Hours", naverbook.TokenizeOptions{})
		assert.Equal(t, []string{"61", "Hours"}, tokens)
	})

	t.Run("strips subtitle after separator", func(t *testing.T) {
		t.Parallel()

		tokens := naverbook.TitleTokens("61 Hours: A Jack Reacher Novel",
			naverbook.TokenizeOptions{StripSubtitle: true})
		assert.Equal(t, []string{"61", "Hours"}, tokens)
	})

	t.Run("strips bracketed qualifiers", func(t *testing.T) {
		t.Parallel()

		tokens := naverbook.TitleTokens("Dune (Deluxe Edition)",
			naverbook.TokenizeOptions{StripSubtitle: true})
		assert.Equal(t, []string{"Dune"}, tokens)
	})

	t.Run("strips joining words when requested", func(t *testing.T) {
		t.Parallel()

		tokens := naverbook.TitleTokens("The Girl and the Hunters",
			naverbook.TokenizeOptions{StripJoiners: true})
		assert.Equal(t, []string{"Girl", "Hunters"}, tokens)
	})

	t.Run("empty title yields no tokens", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, naverbook.TitleTokens("", naverbook.TokenizeOptions{}))
	})
}

func TestAuthorTokens(t *testing.T) {
	t.Parallel()

	t.Run("tokenizes only the first author when requested", func(t *testing.T) {
		t.Parallel()

		tokens := naverbook.AuthorTokens([]string{"Lee Child", "Mickey Spillane"}, true)
		assert.Equal(t, []string{"Lee", "Child"}, tokens)
	})

	t.Run("tokenizes all authors", func(t *testing.T) {
		t.Parallel()

		tokens := naverbook.AuthorTokens([]string{"Lee Child", "Mickey Spillane"}, false)
		assert.Equal(t, []string{"Lee", "Child", "Mickey", "Spillane"}, tokens)
	})

	t.Run("drops contribution qualifiers", func(t *testing.T) {
		t.Parallel()

		tokens := naverbook.AuthorTokens([]string{"김영하(역자)"}, false)
		assert.Equal(t, []string{"김영하"}, tokens)
	})
}

func TestCatalogIDFromURL(t *testing.T) {
	t.Parallel()

	t.Run("extracts bid from detail URL", func(t *testing.T) {
		t.Parallel()

		id, ok := naverbook.CatalogIDFromURL("https://book.naver.com/bookdb/book_detail.nhn?bid=6853473")
		assert.True(t, ok)
		assert.Equal(t, "6853473", id)
	})

	t.Run("rejects non-detail URLs", func(t *testing.T) {
		t.Parallel()

		_, ok := naverbook.CatalogIDFromURL("https://book.naver.com/search/search.nhn?query=61+Hours")
		assert.False(t, ok)
	})

	t.Run("round-trips through DetailURL", func(t *testing.T) {
		t.Parallel()

		id, ok := naverbook.CatalogIDFromURL(naverbook.DetailURL("12345"))
		assert.True(t, ok)
		assert.Equal(t, "12345", id)
	})
}
