package http

import (
	"context"
	"fmt"

	"github.com/fwojciec/docsync"
)

// Ensure SitemapService implements docsync.SitemapService.
var _ docsync.SitemapService = (*SitemapService)(nil)

// SitemapService resolves documentation URLs from a single sitemap document.
type SitemapService struct {
	fetcher docsync.Fetcher
}

// NewSitemapService creates a new SitemapService that downloads sitemaps
// with the given fetcher. If fetcher is nil, a default Fetcher is used.
func NewSitemapService(fetcher docsync.Fetcher) *SitemapService {
	if fetcher == nil {
		fetcher = NewFetcher()
	}
	return &SitemapService{fetcher: fetcher}
}

// DocURLs fetches the site's sitemap and returns the distinct URLs whose
// path starts with the site's prefix. Sitemap indexes are not followed.
func (s *SitemapService) DocURLs(ctx context.Context, site docsync.Site) ([]string, error) {
	if err := site.Validate(); err != nil {
		return nil, err
	}

	body, err := s.fetcher.Fetch(ctx, site.SitemapURL)
	if err != nil {
		return nil, fmt.Errorf("fetching sitemap: %w", err)
	}

	return docsync.DocURLs(docsync.ExtractLocs(body), site.Prefix), nil
}
