package goquery

import (
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/hkjin/naverbook"
)

// Ensure ResultMatcher implements naverbook.ResultMatcher at compile time.
var _ naverbook.ResultMatcher = (*ResultMatcher)(nil)

// ResultMatcher selects the best candidate from a search-results listing
// using token-containment matching. First match wins, in listing order,
// which keeps candidate selection stable and deterministic.
type ResultMatcher struct {
	Logger *slog.Logger
}

// NewResultMatcher creates a ResultMatcher. A nil logger discards match
// tracing.
func NewResultMatcher(logger *slog.Logger) *ResultMatcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ResultMatcher{Logger: logger}
}

// MatchResults parses a results listing and returns the detail URL of the
// first entry whose title and authors both contain at least one query
// token (vacuously true for an empty token set). An empty result means
// "no match", not an error.
func (m *ResultMatcher) MatchResults(page *naverbook.Page, title string, authors []string) ([]string, error) {
	doc, err := parseDocument(page.Body)
	if err != nil {
		return nil, naverbook.Errorf(naverbook.EINVALID, "failed to parse results page %s: %v", page.URL, err)
	}

	titleTokens := lowerAll(naverbook.TitleTokens(title, naverbook.TokenizeOptions{StripJoiners: true}))
	authorTokens := lowerAll(naverbook.AuthorTokens(authors, false))

	base, err := url.Parse(page.URL)
	if err != nil {
		return nil, naverbook.Errorf(naverbook.EINVALID, "invalid results page URL %q: %v", page.URL, err)
	}

	var matched string
	doc.Find("ul#searchBiblioList > li dl").EachWithBreak(func(_ int, entry *goquery.Selection) bool {
		link := entry.Find("dt a").First()
		entryTitle := strings.TrimSpace(link.Text())

		var entryAuthors []string
		entry.Find("dd.txt_block a").Each(func(_ int, a *goquery.Selection) {
			entryAuthors = append(entryAuthors, strings.TrimSpace(a.Text()))
		})

		m.Logger.Debug("considering search result", "title", entryTitle, "authors", entryAuthors)
		if !tokensMatch(entryTitle, entryAuthors, titleTokens, authorTokens) {
			return true
		}

		href, ok := link.Attr("href")
		if !ok || href == "" {
			return true
		}
		ref, err := url.Parse(href)
		if err != nil {
			return true
		}
		matched = base.ResolveReference(ref).String()
		return false
	})

	if matched == "" {
		m.Logger.Info("no search result matched", "title", title, "authors", authors)
		return nil, nil
	}
	return []string{matched}, nil
}

// tokensMatch checks both conditions of the match: any title token is a
// substring of the entry title AND any author token is a substring of the
// joined entry authors, case-insensitively. An empty token set matches
// everything.
func tokensMatch(title string, authors []string, titleTokens, authorTokens []string) bool {
	entryTitle := strings.ToLower(title)
	entryAuthors := strings.ToLower(strings.Join(authors, " "))

	match := len(titleTokens) == 0
	for _, tok := range titleTokens {
		if strings.Contains(entryTitle, tok) {
			match = true
			break
		}
	}

	amatch := len(authorTokens) == 0
	for _, tok := range authorTokens {
		if strings.Contains(entryAuthors, tok) {
			amatch = true
			break
		}
	}

	return match && amatch
}

func lowerAll(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = strings.ToLower(tok)
	}
	return out
}
