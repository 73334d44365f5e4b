package http_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/docsync"
	dshttp "github.com/fwojciec/docsync/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_DocURLs(t *testing.T) {
	t.Parallel()

	t.Run("returns documentation URLs only", func(t *testing.T) {
		t.Parallel()

		sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/docs/intro/</loc></url>
  <url><loc>{{BASE}}/blog/post1</loc></url>
  <url><loc>{{BASE}}/docs/guide/setup/</loc></url>
  <url><loc>{{BASE}}/docs/intro/</loc></url>
</urlset>`

		srv := newTestServer(t, map[string]string{"/sitemap.xml": sitemapXML})
		defer srv.Close()

		svc := dshttp.NewSitemapService(dshttp.NewFetcher(dshttp.WithClient(srv.Client())))
		urls, err := svc.DocURLs(context.Background(), docsync.Site{
			SitemapURL: srv.URL + "/sitemap.xml",
			Prefix:     "/docs/",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{
			srv.URL + "/docs/intro/",
			srv.URL + "/docs/guide/setup/",
		}, urls)
	})

	t.Run("sends user agent", func(t *testing.T) {
		t.Parallel()

		got := make(chan string, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got <- r.Header.Get("User-Agent")
			_, _ = w.Write([]byte("<urlset></urlset>"))
		}))
		defer srv.Close()

		svc := dshttp.NewSitemapService(nil)
		urls, err := svc.DocURLs(context.Background(), docsync.Site{
			SitemapURL: srv.URL + "/sitemap.xml",
			Prefix:     "/docs/",
		})

		require.NoError(t, err)
		assert.Empty(t, urls)
		assert.Equal(t, docsync.DefaultUserAgent, <-got)
	})

	t.Run("returns FetchError on non-2xx status", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{})
		defer srv.Close()

		svc := dshttp.NewSitemapService(nil)
		_, err := svc.DocURLs(context.Background(), docsync.Site{
			SitemapURL: srv.URL + "/sitemap.xml",
			Prefix:     "/docs/",
		})

		var fe *docsync.FetchError
		require.True(t, errors.As(err, &fe))
		assert.Equal(t, http.StatusNotFound, fe.StatusCode)
		assert.Equal(t, srv.URL+"/sitemap.xml", fe.URL)
	})

	t.Run("tolerates non-sitemap structure", func(t *testing.T) {
		t.Parallel()

		body := `not xml at all <loc>{{BASE}}/docs/a</loc> trailing <broken <loc>{{BASE}}/docs/b</loc>`

		srv := newTestServer(t, map[string]string{"/sitemap.xml": body})
		defer srv.Close()

		svc := dshttp.NewSitemapService(nil)
		urls, err := svc.DocURLs(context.Background(), docsync.Site{
			SitemapURL: srv.URL + "/sitemap.xml",
			Prefix:     "/docs/",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/docs/a", srv.URL + "/docs/b"}, urls)
	})

	t.Run("rejects invalid site", func(t *testing.T) {
		t.Parallel()

		svc := dshttp.NewSitemapService(nil)
		_, err := svc.DocURLs(context.Background(), docsync.Site{})

		assert.Equal(t, docsync.EINVALID, docsync.ErrorCode(err))
	})
}

// newTestServer serves the given paths, replacing {{BASE}} with the server URL.
// Unknown paths return 404.
func newTestServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()

	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{BASE}}", srv.URL)))
	}))
	return srv
}
