package mock

import (
	"context"

	"github.com/fwojciec/docsync"
)

var _ docsync.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docsync.SitemapService.
type SitemapService struct {
	DocURLsFn func(ctx context.Context, site docsync.Site) ([]string, error)
}

func (s *SitemapService) DocURLs(ctx context.Context, site docsync.Site) ([]string, error) {
	return s.DocURLsFn(ctx, site)
}
