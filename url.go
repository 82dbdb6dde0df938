package naverbook

import "regexp"

// BaseURL is the root of the Naver Book catalog.
const BaseURL = "https://book.naver.com"

// detailURLPattern is the parsing contract with the catalog site: every
// detail page URL carries the numeric catalog id as a bid parameter.
var detailURLPattern = regexp.MustCompile(`book_detail\.nhn\?bid=(\d+)`)

// DetailURL returns the detail page URL for a catalog id.
func DetailURL(catalogID string) string {
	return BaseURL + "/bookdb/book_detail.nhn?bid=" + catalogID
}

// CatalogIDFromURL extracts the numeric catalog id from a detail page URL.
// The second return is false when the URL is not a detail page.
func CatalogIDFromURL(rawURL string) (string, bool) {
	m := detailURLPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}
