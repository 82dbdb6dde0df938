package lookup

import (
	"net/url"
	"strings"

	"github.com/hkjin/naverbook"
)

// BuildQuery builds the catalog search URL for the given criteria. A
// checksum-valid ISBN identifier produces the advanced-search exact-match
// form; otherwise title and author tokens are combined into a keyword query.
// Returns EINVALID when the criteria carry neither.
func BuildQuery(criteria naverbook.SearchCriteria) (string, error) {
	if isbn := criteria.ISBN(); isbn != "" {
		return naverbook.BaseURL + "/search/search.nhn?serviceSm=advbook.basic&ic=service.summary&isbn=" + isbn, nil
	}

	tokens := naverbook.TitleTokens(criteria.Title, naverbook.TokenizeOptions{StripSubtitle: true})
	tokens = append(tokens, naverbook.AuthorTokens(criteria.Authors, true)...)
	if len(tokens) == 0 {
		return "", naverbook.Errorf(naverbook.EINVALID, "insufficient search terms to build a query")
	}

	escaped := make([]string, len(tokens))
	for i, token := range tokens {
		escaped[i] = url.QueryEscape(token)
	}
	return naverbook.BaseURL + "/search/search.nhn?sm=sta_hty.book&query=" + strings.Join(escaped, "+"), nil
}
