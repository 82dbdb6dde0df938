package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/hkjin/naverbook"
)

// Run executes the identify command.
func (c *IdentifyCmd) Run(deps *Dependencies) error {
	ctx, cancel := context.WithTimeout(deps.Ctx, c.Timeout)
	defer cancel()

	criteria := buildCriteria(c.Title, c.Author, c.ISBN, c.BID)

	sink := &printSink{w: deps.Stdout}
	if err := deps.Service.Identify(ctx, criteria, sink); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", naverbook.ErrorMessage(err))
		return err
	}

	if sink.count == 0 {
		fmt.Fprintln(deps.Stdout, "No records found.")
	}
	return nil
}

// printSink writes each record to the output as it arrives.
type printSink struct {
	mu    sync.Mutex
	w     io.Writer
	count int
}

func (s *printSink) Put(book *naverbook.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++

	fmt.Fprintf(s.w, "Title:     %s\n", book.Title)
	fmt.Fprintf(s.w, "Authors:   %s\n", strings.Join(book.Authors, ", "))
	if book.Series != "" {
		fmt.Fprintf(s.w, "Series:    %s #%g\n", book.Series, book.SeriesIndex)
	}
	fmt.Fprintf(s.w, "Catalog:   %s\n", book.CatalogID)
	if book.ISBN != "" {
		fmt.Fprintf(s.w, "ISBN:      %s\n", book.ISBN)
	}
	if book.Publisher != "" {
		fmt.Fprintf(s.w, "Publisher: %s\n", book.Publisher)
	}
	if !book.PubDate.IsZero() {
		fmt.Fprintf(s.w, "Published: %s\n", book.PubDate.Format("2006-01-02"))
	}
	if book.Rating > 0 {
		fmt.Fprintf(s.w, "Rating:    %.1f/5\n", book.Rating)
	}
	if len(book.Tags) > 0 {
		fmt.Fprintf(s.w, "Tags:      %s\n", strings.Join(book.Tags, ", "))
	}
	if book.CoverURL != "" {
		fmt.Fprintf(s.w, "Cover:     %s\n", book.CoverURL)
	}
	fmt.Fprintln(s.w)
}
