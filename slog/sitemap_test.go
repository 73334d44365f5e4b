package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docsync"
	"github.com/fwojciec/docsync/mock"
	dsslog "github.com/fwojciec/docsync/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDebugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingSitemapService_DocURLs(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SitemapService{
			DocURLsFn: func(ctx context.Context, site docsync.Site) ([]string, error) {
				return []string{"https://example.com/docs/a", "https://example.com/docs/b"}, nil
			},
		}

		svc := dsslog.NewLoggingSitemapService(inner, newDebugLogger(&buf))
		urls, err := svc.DocURLs(context.Background(), docsync.Site{
			SitemapURL: "https://example.com/sitemap.xml",
			Prefix:     "/docs/",
		})

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "sitemap discovery")
		assert.Contains(t, output, "url=https://example.com/sitemap.xml")
		assert.Contains(t, output, "prefix=/docs/")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.SitemapService{
			DocURLsFn: func(ctx context.Context, site docsync.Site) ([]string, error) {
				return nil, errors.New("connection failed")
			},
		}

		svc := dsslog.NewLoggingSitemapService(inner, newDebugLogger(&buf))
		_, err := svc.DocURLs(context.Background(), docsync.DefaultSite())

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "sitemap discovery")
		assert.Contains(t, output, "err=\"connection failed\"")
	})

	t.Run("is silent above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapService{
			DocURLsFn: func(ctx context.Context, site docsync.Site) ([]string, error) {
				return nil, nil
			},
		}

		svc := dsslog.NewLoggingSitemapService(inner, logger)
		_, err := svc.DocURLs(context.Background(), docsync.DefaultSite())

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}
