package naverbook

import (
	"regexp"
	"strings"
	"unicode"
)

// subtitlePattern strips bracketed qualifiers and anything after a
// subtitle separator, e.g. "61 Hours: A Novel" -> "61 Hours".
var subtitlePattern = regexp.MustCompile(`([\(\[\{].*?[\)\]\}]|[/:\\].*$)`)

// parenPattern strips parenthesized author qualifiers like "(역자)".
var parenPattern = regexp.MustCompile(`\(.*?\)`)

var joinerWords = map[string]bool{
	"a":   true,
	"and": true,
	"the": true,
	"&":   true,
}

// TokenizeOptions controls title tokenization.
type TokenizeOptions struct {
	// StripJoiners drops joining words (a, and, the, &).
	StripJoiners bool
	// StripSubtitle drops bracketed qualifiers and text after a
	// subtitle separator.
	StripSubtitle bool
}

// TitleTokens splits a title into search tokens.
func TitleTokens(title string, opts TokenizeOptions) []string {
	if title == "" {
		return nil
	}
	if opts.StripSubtitle {
		title = subtitlePattern.ReplaceAllString(title, "")
	}
	var tokens []string
	for _, tok := range splitWords(title) {
		if opts.StripJoiners && joinerWords[strings.ToLower(tok)] {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// AuthorTokens splits author names into search tokens. When onlyFirst is
// set, only the first author is tokenized. Parenthesized contribution
// qualifiers are dropped.
func AuthorTokens(authors []string, onlyFirst bool) []string {
	if onlyFirst && len(authors) > 1 {
		authors = authors[:1]
	}
	var tokens []string
	for _, author := range authors {
		author = parenPattern.ReplaceAllString(author, "")
		tokens = append(tokens, splitWords(author)...)
	}
	return tokens
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(`.,:;!?"'`+"`", r)
	})
}
