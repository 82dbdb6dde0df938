package mock

import "github.com/hkjin/naverbook"

var _ naverbook.DetailParser = (*DetailParser)(nil)

// DetailParser is a mock implementation of naverbook.DetailParser.
type DetailParser struct {
	ParseDetailFn func(page *naverbook.Page) (*naverbook.Book, error)
}

func (p *DetailParser) ParseDetail(page *naverbook.Page) (*naverbook.Book, error) {
	return p.ParseDetailFn(page)
}

var _ naverbook.ResultMatcher = (*ResultMatcher)(nil)

// ResultMatcher is a mock implementation of naverbook.ResultMatcher.
type ResultMatcher struct {
	MatchResultsFn func(page *naverbook.Page, title string, authors []string) ([]string, error)
}

func (m *ResultMatcher) MatchResults(page *naverbook.Page, title string, authors []string) ([]string, error) {
	return m.MatchResultsFn(page, title, authors)
}
