package main

import (
	"context"
	"io"
	"time"

	"github.com/hkjin/naverbook"
	"github.com/hkjin/naverbook/lookup"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Service *lookup.Service
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	DB      string `help:"Cover cache database path (default: $NAVERBOOK_DB or ~/.naverbook/naverbook.db)"`

	Identify IdentifyCmd `cmd:"" help:"Look up metadata records for a book"`
	Cover    CoverCmd    `cmd:"" help:"Download the cover image for a book"`
}

// IdentifyCmd is the "identify" subcommand.
type IdentifyCmd struct {
	Title           string        `short:"t" help:"Book title"`
	Author          []string      `short:"a" name:"author" help:"Author name (repeatable)"`
	ISBN            string        `help:"ISBN-10 or ISBN-13"`
	BID             string        `name:"bid" help:"Naver Book catalog id"`
	AllContributors bool          `help:"Include translators in the author list"`
	Timeout         time.Duration `default:"30s" help:"Overall operation timeout"`
}

// CoverCmd is the "cover" subcommand.
type CoverCmd struct {
	Title   string        `short:"t" help:"Book title"`
	Author  []string      `short:"a" name:"author" help:"Author name (repeatable)"`
	ISBN    string        `help:"ISBN-10 or ISBN-13"`
	BID     string        `name:"bid" help:"Naver Book catalog id"`
	Output  string        `short:"o" default:"cover.jpg" help:"Output file path"`
	Timeout time.Duration `default:"30s" help:"Overall operation timeout"`
}

// buildCriteria assembles search criteria from command-line flags.
func buildCriteria(title string, authors []string, isbn, bid string) naverbook.SearchCriteria {
	criteria := naverbook.SearchCriteria{
		Title:   title,
		Authors: authors,
	}
	if isbn != "" || bid != "" {
		criteria.Identifiers = make(map[string]string)
		if isbn != "" {
			criteria.Identifiers[naverbook.IdentifierISBN] = isbn
		}
		if bid != "" {
			criteria.Identifiers[naverbook.IdentifierCatalog] = bid
		}
	}
	return criteria
}
