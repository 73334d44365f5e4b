// Package crawl provides documentation sync orchestration.
// It coordinates sitemap resolution, markdown URL derivation, fetching,
// and storage of documentation pages and external reference documents.
package crawl

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/fwojciec/docsync"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Ensure Crawler implements docsync.Syncer.
var _ docsync.Syncer = (*Crawler)(nil)

// Batch names used in summaries.
const (
	DocsBatch     = "OpenCode docs"
	ExternalBatch = "External docs"
)

// Crawler syncs a documentation site and a list of external documents
// into a DocStore.
type Crawler struct {
	Site         docsync.Site
	ExternalDocs []docsync.ExternalDoc
	Sitemaps     docsync.SitemapService
	Fetcher      docsync.Fetcher
	Store        docsync.DocStore
	Logger       docsync.Logger

	// Dir is reported in results and logs only; Store decides where files go.
	Dir string

	// Concurrency bounds parallel fetches within a batch. Values below 1
	// mean one at a time, in input order.
	Concurrency int
}

// task is a single resource to fetch and the name to save it under.
type task struct {
	url      string
	filename string
}

// Run performs one sync. Failures of individual resources are counted in
// the result; the returned error is non-nil only when the run could not
// proceed, i.e. the directory could not be created or the sitemap could
// not be fetched.
func (c *Crawler) Run(ctx context.Context) (*docsync.Result, error) {
	result := &docsync.Result{
		RunID: uuid.NewString(),
		Dir:   c.Dir,
	}

	if err := c.run(ctx, result); err != nil {
		c.logger().Error(fmt.Sprintf("Failed to fetch OpenCode docs: %s", docsync.ErrorMessage(err)))
		return result, err
	}
	return result, nil
}

func (c *Crawler) run(ctx context.Context, result *docsync.Result) error {
	if c.Dir != "" {
		c.logger().Info(fmt.Sprintf("Syncing docs into %s (run %s)", c.Dir, result.RunID))
	}

	if err := c.Store.EnsureDir(ctx); err != nil {
		return fmt.Errorf("creating docs directory: %w", err)
	}

	pages, err := c.Sitemaps.DocURLs(ctx, c.Site)
	if err != nil {
		return err
	}

	markdownURLs := docsync.MarkdownURLs(pages, c.Site.Prefix)
	docs := make([]task, 0, len(markdownURLs))
	for _, u := range markdownURLs {
		docs = append(docs, task{url: u, filename: docsync.Filename(u, c.Site.Prefix)})
	}
	result.Docs = c.fetchBatch(ctx, DocsBatch, docs)

	external := make([]task, 0, len(c.ExternalDocs))
	for _, d := range c.ExternalDocs {
		external = append(external, task{url: d.URL, filename: d.Filename})
	}
	result.External = c.fetchBatch(ctx, ExternalBatch, external)

	return nil
}

// fetchBatch fetches and saves every task, isolating failures per task.
// It never returns an error: each failure is logged and counted.
func (c *Crawler) fetchBatch(ctx context.Context, name string, tasks []task) *docsync.BatchResult {
	concurrency := c.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	outcomes := make([]docsync.Outcome, len(tasks))
	var succeeded, failed atomic.Int64

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, t := range tasks {
		g.Go(func() error {
			o := c.fetchOne(ctx, t)
			outcomes[i] = o
			if o.OK() {
				succeeded.Add(1)
			} else {
				failed.Add(1)
				c.logger().Error(fmt.Sprintf("Failed to fetch %s: %s", t.url, o.Err))
			}
			return nil
		})
	}
	_ = g.Wait()

	batch := &docsync.BatchResult{
		Name:     name,
		Outcomes: outcomes,
		Tally: docsync.Tally{
			Succeeded: int(succeeded.Load()),
			Failed:    int(failed.Load()),
		},
	}
	c.logger().Info(batch.Summary())
	return batch
}

func (c *Crawler) fetchOne(ctx context.Context, t task) docsync.Outcome {
	o := docsync.Outcome{URL: t.url, Filename: t.filename}

	content, err := c.Fetcher.Fetch(ctx, t.url)
	if err != nil {
		o.Err = err
		return o
	}

	if err := c.Store.Save(ctx, t.filename, content); err != nil {
		o.Err = err
		return o
	}

	o.Bytes = len(content)
	o.Hash = ComputeHash(content)
	return o
}

func (c *Crawler) logger() docsync.Logger {
	if c.Logger == nil {
		return docsync.NopLogger{}
	}
	return c.Logger
}
