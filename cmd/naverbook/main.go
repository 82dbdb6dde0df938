package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/hkjin/naverbook"
	"github.com/hkjin/naverbook/goquery"
	nbhttp "github.com/hkjin/naverbook/http"
	"github.com/hkjin/naverbook/lookup"
	nbslog "github.com/hkjin/naverbook/slog"
	"github.com/hkjin/naverbook/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database backing the cover cache.
	DB *sqlite.DB

	// Service for end-to-end testing.
	Service *lookup.Service
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("naverbook"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'naverbook --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NAVERBOOK_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg := naverbook.DefaultConfig()
	if cmd == "identify" {
		cfg.AllContributors = cli.Identify.AllContributors
	}

	cache := nbslog.NewLoggingCache(sqlite.NewCache(m.DB), logger)
	fetcher := nbslog.NewLoggingFetcher(nbhttp.NewFetcher(), logger)

	m.Service = &lookup.Service{
		Fetcher: fetcher,
		Parser:  goquery.NewDetailParser(cfg, logger),
		Matcher: goquery.NewResultMatcher(logger),
		Cache:   cache,
		Logger:  logger,
	}
	deps.Service = m.Service

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("NAVERBOOK_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "naverbook.db"
	}
	dir := filepath.Join(home, ".naverbook")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "naverbook.db")
}
