package mcp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/docsync"
	dsmcp "github.com/fwojciec/docsync/mcp"
	"github.com/fwojciec/docsync/mock"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok)
	return text.Text
}

func TestSyncDocsHandler_Definition(t *testing.T) {
	t.Parallel()

	tool := dsmcp.NewSyncDocsHandler(nil).Definition()

	assert.Equal(t, "sync_docs", tool.Name)
	assert.Contains(t, tool.Description, "OpenCode documentation")
}

func TestSyncDocsHandler_Handle(t *testing.T) {
	t.Parallel()

	t.Run("reports summaries on success", func(t *testing.T) {
		t.Parallel()

		syncer := &mock.Syncer{
			RunFn: func(ctx context.Context) (*docsync.Result, error) {
				return &docsync.Result{
					Dir:      "/tmp/docs",
					Docs:     &docsync.BatchResult{Name: "OpenCode docs", Tally: docsync.Tally{Succeeded: 3, Failed: 1}},
					External: &docsync.BatchResult{Name: "External docs", Tally: docsync.Tally{Succeeded: 2}},
				}, nil
			},
		}

		result, err := dsmcp.NewSyncDocsHandler(syncer).Handle(context.Background(), mcp.CallToolRequest{})

		require.NoError(t, err)
		assert.False(t, result.IsError)
		text := resultText(t, result)
		assert.Contains(t, text, "Successfully synced OpenCode documentation.")
		assert.Contains(t, text, "OpenCode docs fetch complete. Success: 3, Failed: 1.")
		assert.Contains(t, text, "External docs fetch complete. Success: 2, Failed: 0.")
		assert.Contains(t, text, "/tmp/docs")
	})

	t.Run("lists failed resources", func(t *testing.T) {
		t.Parallel()

		syncer := &mock.Syncer{
			RunFn: func(ctx context.Context) (*docsync.Result, error) {
				return &docsync.Result{
					Docs: &docsync.BatchResult{
						Name: "OpenCode docs",
						Outcomes: []docsync.Outcome{
							{URL: "https://opencode.ai/docs/intro.md", Filename: "intro.md"},
							{URL: "https://opencode.ai/docs/gone.md", Filename: "gone.md", Err: errors.New("request failed (404)")},
						},
						Tally: docsync.Tally{Succeeded: 1, Failed: 1},
					},
				}, nil
			},
		}

		result, err := dsmcp.NewSyncDocsHandler(syncer).Handle(context.Background(), mcp.CallToolRequest{})

		require.NoError(t, err)
		assert.False(t, result.IsError)
		text := resultText(t, result)
		assert.Contains(t, text, "OpenCode docs fetch complete. Success: 1, Failed: 1.")
		assert.Contains(t, text, "https://opencode.ai/docs/gone.md: request failed (404)")
		assert.NotContains(t, text, "intro.md")
	})

	t.Run("reports tool error on failed run", func(t *testing.T) {
		t.Parallel()

		syncer := &mock.Syncer{
			RunFn: func(ctx context.Context) (*docsync.Result, error) {
				return nil, errors.New("creating docs directory: permission denied")
			},
		}

		result, err := dsmcp.NewSyncDocsHandler(syncer).Handle(context.Background(), mcp.CallToolRequest{})

		require.NoError(t, err)
		assert.True(t, result.IsError)
		assert.Equal(t, "Failed to sync docs: creating docs directory: permission denied", resultText(t, result))
	})
}

func TestNewServer(t *testing.T) {
	t.Parallel()

	s, notifier := dsmcp.NewServer(&mock.Syncer{}, "test", nil)

	assert.NotNil(t, s)
	assert.NotNil(t, notifier)
}
