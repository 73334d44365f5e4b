package main

import (
	"log"

	"github.com/fwojciec/docsync/crawl"
	dsmcp "github.com/fwojciec/docsync/mcp"
	dsslog "github.com/fwojciec/docsync/slog"
	"github.com/mark3labs/mcp-go/server"
)

// Run executes the serve command. It starts a background sync, then serves
// MCP over stdin/stdout until the input closes or the context is canceled.
// A failed background sync is reported to the client as a log notification
// once the client has completed its handshake.
func (c *ServeCmd) Run(deps *Dependencies) error {
	logger := dsslog.NewLogger(deps.Logger)
	s, notifier := dsmcp.NewServer(deps.Syncer, Version, logger)

	if !c.NoStartupSync {
		crawl.Start(deps.Ctx, deps.Syncer, notifier, logger)
	}

	deps.Logger.Info("serving MCP over stdio", "version", Version, "startup_sync", !c.NoStartupSync)

	stdio := server.NewStdioServer(s)
	stdio.SetErrorLogger(log.New(deps.Stderr, "", log.LstdFlags))
	return stdio.Listen(deps.Ctx, deps.Stdin, deps.Stdout)
}
