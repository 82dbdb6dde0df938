// Package goquery provides goquery-based HTML parsing for the catalog's
// detail pages and search-results listings.
//
// Detail-page extraction is best-effort per field: a failure extracting one
// optional field logs and leaves that field absent without aborting the
// rest. Only the title, authors, and catalog id are required.
package goquery

import (
	"bytes"
	"io"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/hkjin/naverbook"
)

// Ensure DetailParser implements naverbook.DetailParser at compile time.
var _ naverbook.DetailParser = (*DetailParser)(nil)

// DetailParser extracts a metadata record from one detail page.
type DetailParser struct {
	Config naverbook.Config
	Logger *slog.Logger
}

// NewDetailParser creates a DetailParser with the given configuration.
// A nil logger discards field-level extraction warnings.
func NewDetailParser(cfg naverbook.Config, logger *slog.Logger) *DetailParser {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &DetailParser{Config: cfg, Logger: logger}
}

var (
	authorPrefixPattern     = regexp.MustCompile(`저자\s*`)
	translatorPrefixPattern = regexp.MustCompile(`^역자\s*`)
	isbnPattern             = regexp.MustCompile(`([0-9A-Z]{10,})`)
)

// ParseDetail parses a detail page into a metadata record.
// Returns EINVALID when the page is not a genuine detail page or when a
// required field cannot be extracted.
func (p *DetailParser) ParseDetail(page *naverbook.Page) (*naverbook.Book, error) {
	doc, err := parseDocument(page.Body)
	if err != nil {
		return nil, naverbook.Errorf(naverbook.EINVALID, "failed to parse detail page %s: %v", page.URL, err)
	}

	// An invalid identifier sends the catalog to a plain search page with
	// no og:title meta; an expired id renders an error node instead.
	rawTitle, ok := metaContent(doc, "og:title")
	if !ok {
		return nil, naverbook.Errorf(naverbook.EINVALID, "not a detail page (missing title meta): %s", page.URL)
	}
	if errMsg := doc.Find("#errorMessage"); errMsg.Length() > 0 {
		return nil, naverbook.Errorf(naverbook.EINVALID, "catalog error page for %s: %s",
			page.URL, strings.TrimSpace(errMsg.First().Text()))
	}

	// A record without a catalog id is unusable.
	catalogID, ok := naverbook.CatalogIDFromURL(page.URL)
	if !ok {
		return nil, naverbook.Errorf(naverbook.EINVALID, "no catalog id in URL %s", page.URL)
	}

	title, series, seriesIndex := SplitTitleSeries(rawTitle)
	authors, err := p.parseAuthors(doc)
	if err != nil {
		p.warn(page.URL, "authors", err)
	}

	book := &naverbook.Book{
		Title:       title,
		Authors:     authors,
		Series:      series,
		SeriesIndex: seriesIndex,
		CatalogID:   catalogID,
		Language:    parseLanguage(doc),
	}
	if err := book.Validate(); err != nil {
		return nil, err
	}

	// Optional fields, each independently fault-isolated.
	if isbn, err := parseISBN(doc); err != nil {
		p.warn(page.URL, "isbn", err)
	} else {
		book.ISBN = naverbook.ValidateISBN(isbn)
	}

	if rating, err := parseRating(doc); err != nil {
		p.warn(page.URL, "rating", err)
	} else {
		book.Rating = rating
	}

	if publisher, pubDate, err := parsePublisherDate(doc); err != nil {
		p.warn(page.URL, "publisher/date", err)
	} else {
		book.Publisher = publisher
		book.PubDate = pubDate
	}

	if comments, err := parseComments(doc); err != nil {
		p.warn(page.URL, "comments", err)
	} else {
		book.Comments = comments
	}

	if coverURL, ok := metaContent(doc, "og:image"); ok {
		book.CoverURL = coverURL
	}

	if tags, err := p.parseTags(doc); err != nil {
		p.warn(page.URL, "tags", err)
	} else {
		book.Tags = tags
	}

	return book, nil
}

func (p *DetailParser) warn(url, field string, err error) {
	p.Logger.Warn("field extraction failed", "url", url, "field", field, "err", err)
}

// SplitTitleSeries splits raw title text into title, series name, and
// series index. Values currently handled:
//
//	"Some title (Omnibus)"
//	"Some title (#1-3)"
//	"Some title (Series #1)"
//	"Some title (Series (digital) #1)"
//	"Some title (Series #1-5)"
//	"Some title (Omnibus) (Series (digital) #1-5)"
//
// A parenthetical without a '#' (or with '#' at position 0) is not series
// notation; range indexes like "1-5" collapse to their start. When the
// index does not parse as a number the whole text is returned as the title.
func SplitTitleSeries(text string) (title, series string, index float64) {
	text = strings.TrimSpace(text)
	open := strings.LastIndex(text, "(")
	if open < 0 {
		return text, "", 0
	}

	title = text[:open]
	seriesInfo := text[open+1:]
	if hash := strings.Index(seriesInfo, "#"); hash <= 0 {
		return text, "", 0
	}
	seriesInfo = strings.TrimSuffix(seriesInfo, ")")

	// Re-absorb preceding parenthesized groups until balanced, so
	// "Series (digital) #1" survives the last-paren split.
	for strings.Count(seriesInfo, ")") != strings.Count(seriesInfo, "(") {
		prev := strings.LastIndex(title, "(")
		if prev < 0 {
			return text, "", 0
		}
		seriesInfo = title[prev+1:] + "(" + seriesInfo
		title = strings.TrimSpace(title[:prev])
	}

	hash := strings.LastIndex(seriesInfo, "#")
	series = strings.TrimSuffix(strings.TrimSpace(seriesInfo[:hash]), ",")
	indexText := strings.TrimSpace(seriesInfo[hash+1:])
	if dash := strings.Index(indexText, "-"); dash >= 0 {
		indexText = strings.TrimSpace(indexText[:dash])
	}
	index, err := strconv.ParseFloat(indexText, 64)
	if err != nil {
		return text, "", 0
	}
	return strings.TrimSpace(title), series, index
}

// infoLine returns the pipe-delimited metadata line below the title:
// authors | [translators |] publisher | publication date.
func infoLine(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("div.book_info_inner > div").Eq(1).Text())
}

func (p *DetailParser) parseAuthors(doc *goquery.Document) ([]string, error) {
	line := authorPrefixPattern.ReplaceAllString(infoLine(doc), "")
	if line == "" {
		return nil, naverbook.Errorf(naverbook.ENOTFOUND, "no author metadata line")
	}
	parts := strings.Split(line, "|")

	var authors []string
	for _, name := range strings.Split(parts[0], ",") {
		if name = strings.TrimSpace(name); name != "" {
			authors = append(authors, name)
		}
	}

	if p.Config.AllContributors && len(parts) > 1 {
		second := strings.TrimSpace(parts[1])
		if translatorPrefixPattern.MatchString(second) {
			names := translatorPrefixPattern.ReplaceAllString(second, "")
			for _, name := range strings.Split(names, ",") {
				if name = strings.TrimSpace(name); name != "" {
					authors = append(authors, name+"(역자)")
				}
			}
		}
	}

	return authors, nil
}

func parsePublisherDate(doc *goquery.Document) (string, time.Time, error) {
	line := infoLine(doc)
	if line == "" {
		return "", time.Time{}, naverbook.Errorf(naverbook.ENOTFOUND, "no publisher metadata line")
	}
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return "", time.Time{}, naverbook.Errorf(naverbook.EINVALID, "metadata line has %d segments, want >= 2", len(parts))
	}

	publisher := strings.TrimSpace(parts[len(parts)-2])
	dateText := strings.TrimSpace(parts[len(parts)-1])
	if len(dateText) < len("2006.01.02") {
		return "", time.Time{}, naverbook.Errorf(naverbook.EINVALID, "publication date %q too short", dateText)
	}
	pubDate, err := time.ParseInLocation("2006.01.02", dateText[:len("2006.01.02")], time.UTC)
	if err != nil {
		return "", time.Time{}, naverbook.Errorf(naverbook.EINVALID, "publication date %q: %v", dateText, err)
	}
	return publisher, pubDate, nil
}

// parseRating converts the catalog's 0-10 rating ("8.5점") to a 0-5 scale.
func parseRating(doc *goquery.Document) (float64, error) {
	node := doc.Find("a#txt_desc_point strong").First()
	if node.Length() == 0 {
		return 0, nil
	}
	text := strings.TrimSpace(strings.ReplaceAll(node.Text(), "점", ""))
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, naverbook.Errorf(naverbook.EINVALID, "rating %q: %v", text, err)
	}
	rating := value / 2
	if rating < 0 || rating > 5 {
		return 0, naverbook.Errorf(naverbook.EINVALID, "rating %v out of range", rating)
	}
	return rating, nil
}

// parseISBN scans the metadata-line nodes for the first alphanumeric run of
// 10+ characters, keeping the last node's match. Zero matches is an explicit
// error rather than a silent empty ISBN.
func parseISBN(doc *goquery.Document) (string, error) {
	var isbn string
	doc.Find("div.book_info_inner > div").Each(func(_ int, sel *goquery.Selection) {
		if m := isbnPattern.FindStringSubmatch(strings.TrimSpace(sel.Text())); m != nil {
			isbn = m[1]
		}
	})
	if isbn == "" {
		return "", naverbook.Errorf(naverbook.ENOTFOUND, "no ISBN on page")
	}
	return isbn, nil
}

// parseComments extracts the book introduction as a sanitized HTML
// fragment. The catalog renders a collapsed and an expanded copy; the
// expanded one is preferred and its "show more" control stripped.
func parseComments(doc *goquery.Document) (string, error) {
	nodes := doc.Find("div#bookIntroContent")
	if nodes.Length() == 0 {
		return "", nil
	}
	desc := nodes.Eq(0)
	if nodes.Length() > 1 {
		desc = nodes.Eq(1)
	}
	desc.Find("div.section_open.more_btn_t2").Remove()

	raw, err := goquery.OuterHtml(desc)
	if err != nil {
		return "", naverbook.Errorf(naverbook.EINTERNAL, "failed to render comments: %v", err)
	}
	for strings.Contains(raw, "  ") {
		raw = strings.ReplaceAll(raw, "  ", " ")
	}
	return SanitizeHTML(raw)
}

// parseTags maps genre breadcrumbs through the configured lookup table.
// Breadcrumbs with no mapping are dropped silently.
func (p *DetailParser) parseTags(doc *goquery.Document) ([]string, error) {
	lookup := make(map[string][]string, len(p.Config.GenreTags))
	for genre, tags := range p.Config.GenreTags {
		lookup[strings.ToLower(genre)] = tags
	}

	var tags []string
	seen := make(map[string]bool)
	doc.Find("div.stacked div.bigBoxContent div.left").Each(func(_ int, genre *goquery.Selection) {
		var labels []string
		genre.Find("a").Each(func(_ int, a *goquery.Selection) {
			if label := strings.TrimSpace(a.Text()); label != "" {
				labels = append(labels, label)
			}
		})
		if len(labels) == 0 {
			return
		}
		breadcrumb := strings.ToLower(strings.Join(labels, " > "))
		for _, tag := range lookup[breadcrumb] {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	})
	return tags, nil
}

// parseLanguage reports the record language. The catalog exposes no
// language field; everything it lists is treated as Korean.
func parseLanguage(_ *goquery.Document) string {
	return "Korean"
}

// metaContent returns the content attribute of a meta tag by property.
func metaContent(doc *goquery.Document, property string) (string, bool) {
	content, ok := doc.Find(`meta[property="` + property + `"]`).First().Attr("content")
	content = strings.TrimSpace(content)
	return content, ok && content != ""
}

// parseDocument parses raw page bytes, coercing them to valid UTF-8 with
// replacement first.
func parseDocument(body []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(bytes.ToValidUTF8(body, []byte("�"))))
}
