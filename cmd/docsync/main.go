package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docsync"
	"github.com/fwojciec/docsync/crawl"
	"github.com/fwojciec/docsync/fs"
	dshttp "github.com/fwojciec/docsync/http"
	dsslog "github.com/fwojciec/docsync/slog"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Host application identity used to namespace the default cache directory.
const (
	hostApp    = "opencode"
	hostPlugin = "opencode-architect"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by the MCP server. Set before calling Run().
	Stdin io.Reader
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docsync"),
		kong.Description("Sync OpenCode documentation into a local markdown cache"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"sitemap":    docsync.DefaultSitemapURL,
			"prefix":     docsync.DefaultPrefix,
			"user_agent": docsync.DefaultUserAgent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docsync --help' to see available commands")
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

	deps := m.wire(ctx, &cli.Globals, stdout, stderr)
	return kongCtx.Run(deps)
}

// wire builds the sync engine from the global flags.
// Logs always go to stderr; in serve mode stdout carries the MCP protocol.
func (m *Main) wire(ctx context.Context, g *Globals, stdout, stderr io.Writer) *Dependencies {
	level := slog.LevelInfo
	if g.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	dir := g.Dir
	if dir == "" {
		dir = fs.DefaultDir(hostApp, hostPlugin)
	}

	var fetcher docsync.Fetcher = dshttp.NewFetcher(
		dshttp.WithTimeout(g.Timeout),
		dshttp.WithUserAgent(g.UserAgent),
	)
	fetcher = dsslog.NewLoggingFetcher(fetcher, logger)
	sitemaps := dsslog.NewLoggingSitemapService(dshttp.NewSitemapService(fetcher), logger)

	external := docsync.DefaultExternalDocs()
	if g.NoExternal {
		external = nil
	}

	crawler := &crawl.Crawler{
		Site: docsync.Site{
			SitemapURL: g.Sitemap,
			Prefix:     g.Prefix,
		},
		ExternalDocs: external,
		Sitemaps:     sitemaps,
		Fetcher:      fetcher,
		Store:        fs.NewStore(dir),
		Logger:       dsslog.NewLogger(logger),
		Dir:          dir,
		Concurrency:  g.Concurrency,
	}

	return &Dependencies{
		Ctx:     ctx,
		Stdin:   m.Stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  logger,
		Syncer:  crawler,
		Verbose: g.Verbose,
	}
}
