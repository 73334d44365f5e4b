package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docsync"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Syncer docsync.Syncer

	// Verbose lists every outcome, not only batch summaries.
	Verbose bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals

	Sync  SyncCmd  `cmd:"" help:"Fetch the latest docs into the cache directory"`
	Serve ServeCmd `cmd:"" help:"Run an MCP server that syncs docs at startup and on demand"`
}

// Globals are flags shared by every command.
type Globals struct {
	Dir         string        `short:"d" env:"DOCSYNC_DIR" help:"Docs cache directory (default: user cache dir)"`
	Sitemap     string        `env:"DOCSYNC_SITEMAP" default:"${sitemap}" help:"Sitemap URL"`
	Prefix      string        `env:"DOCSYNC_PREFIX" default:"${prefix}" help:"Documentation path prefix"`
	UserAgent   string        `name:"user-agent" default:"${user_agent}" help:"User-Agent sent with every request"`
	Concurrency int           `short:"c" default:"1" help:"Concurrent fetches per batch"`
	Timeout     time.Duration `short:"t" default:"0s" help:"Per-request timeout (0 uses transport defaults)"`
	Verbose     bool          `short:"v" help:"Log every request and list every file"`
	NoExternal  bool          `name:"no-external" hidden:"" help:"Skip the built-in external reference documents"`
}

// SyncCmd is the "sync" subcommand.
type SyncCmd struct{}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	NoStartupSync bool `name:"no-startup-sync" help:"Skip the background sync at startup"`
}
