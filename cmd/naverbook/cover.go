package main

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/hkjin/naverbook"
)

// Run executes the cover command.
func (c *CoverCmd) Run(deps *Dependencies) error {
	ctx, cancel := context.WithTimeout(deps.Ctx, c.Timeout)
	defer cancel()

	criteria := buildCriteria(c.Title, c.Author, c.ISBN, c.BID)

	sink := &bufferSink{}
	if err := deps.Service.FetchCover(ctx, criteria, sink, nil); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", naverbook.ErrorMessage(err))
		return err
	}

	data := sink.bytes()
	if len(data) == 0 {
		fmt.Fprintln(deps.Stdout, "No cover found.")
		return nil
	}

	if err := os.WriteFile(c.Output, data, 0644); err != nil {
		return fmt.Errorf("failed to write cover to %q: %w", c.Output, err)
	}
	fmt.Fprintf(deps.Stdout, "Wrote %d bytes to %s\n", len(data), c.Output)
	return nil
}

// bufferSink collects the downloaded cover image.
type bufferSink struct {
	mu   sync.Mutex
	data []byte
}

func (s *bufferSink) Put(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}

func (s *bufferSink) bytes() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data
}
