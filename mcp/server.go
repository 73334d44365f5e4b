// Package mcp exposes docsync to MCP clients over mark3labs/mcp-go.
// It registers the sync_docs tool and reports background failures as MCP
// log notifications.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/fwojciec/docsync"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName is the name reported to MCP clients.
const ServerName = "docsync"

// SyncDocsToolName is the name of the on-demand sync tool.
const SyncDocsToolName = "sync_docs"

// NewServer creates an MCP server with the sync_docs tool registered. The
// returned Notifier reaches the server's client sessions once they have
// completed the initialize handshake.
func NewServer(syncer docsync.Syncer, version string, logger docsync.Logger) (*server.MCPServer, *Notifier) {
	hooks := &server.Hooks{}
	s := server.NewMCPServer(
		ServerName,
		version,
		server.WithToolCapabilities(false),
		server.WithLogging(),
		server.WithRecovery(),
		server.WithHooks(hooks),
	)

	notifier := NewNotifier(s)
	notifier.Logger = logger
	s.AddNotificationHandler(methodInitialized, func(ctx context.Context, _ mcp.JSONRPCNotification) {
		if session := server.ClientSessionFromContext(ctx); session != nil {
			notifier.SessionReady(session.SessionID())
		}
	})
	hooks.AddOnUnregisterSession(func(ctx context.Context, session server.ClientSession) {
		notifier.SessionClosed(session.SessionID())
	})

	h := NewSyncDocsHandler(syncer)
	s.AddTool(h.Definition(), h.Handle)

	return s, notifier
}

// SyncDocsHandler runs a sync when the sync_docs tool is called.
type SyncDocsHandler struct {
	syncer docsync.Syncer
}

// NewSyncDocsHandler creates a new SyncDocsHandler.
func NewSyncDocsHandler(syncer docsync.Syncer) *SyncDocsHandler {
	return &SyncDocsHandler{syncer: syncer}
}

// Definition returns the tool definition. The tool takes no arguments.
func (h *SyncDocsHandler) Definition() mcp.Tool {
	return mcp.NewTool(SyncDocsToolName,
		mcp.WithDescription("Sync OpenCode documentation by fetching the latest docs from opencode.ai"),
	)
}

// Handle runs the sync and reports the outcome as the tool result.
// A failed run is a tool error result, not a protocol error.
func (h *SyncDocsHandler) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := h.syncer.Run(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to sync docs: %s", docsync.ErrorMessage(err))), nil
	}
	return mcp.NewToolResultText(formatResult(result)), nil
}

func formatResult(result *docsync.Result) string {
	var b strings.Builder
	b.WriteString("Successfully synced OpenCode documentation.")
	if result == nil {
		return b.String()
	}
	for _, batch := range []*docsync.BatchResult{result.Docs, result.External} {
		if batch == nil {
			continue
		}
		b.WriteString("\n")
		b.WriteString(batch.Summary())
		if err := batch.Err(); err != nil {
			b.WriteString("\n")
			b.WriteString(strings.TrimSpace(err.Error()))
		}
	}
	if result.Dir != "" {
		b.WriteString("\nDocs directory: ")
		b.WriteString(result.Dir)
	}
	return b.String()
}
