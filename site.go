package docsync

import (
	"context"
	"strings"
)

// Defaults for the OpenCode documentation site.
const (
	DefaultSitemapURL = "https://opencode.ai/sitemap.xml"
	DefaultPrefix     = "/docs/"
	DefaultUserAgent  = "opencode-docs-fetcher"
)

// MarkdownExt is appended to a documentation page path to address its
// markdown rendering.
const MarkdownExt = ".md"

// IndexFilename is the local name of the documentation root.
const IndexFilename = "index.md"

// Site identifies the sitemap to read and the path prefix under which
// documentation pages live.
type Site struct {
	SitemapURL string
	Prefix     string
}

// DefaultSite returns the OpenCode documentation site.
func DefaultSite() Site {
	return Site{
		SitemapURL: DefaultSitemapURL,
		Prefix:     DefaultPrefix,
	}
}

// Validate returns an error if the site is missing required fields.
func (s Site) Validate() error {
	if s.SitemapURL == "" {
		return Errorf(EINVALID, "sitemap URL required")
	}
	if strings.Trim(s.Prefix, "/") == "" {
		return Errorf(EINVALID, "documentation prefix required")
	}
	return nil
}

// ExternalDoc is a document hosted outside the site, fetched from a fixed
// URL into a fixed filename.
type ExternalDoc struct {
	URL      string
	Filename string
}

// DefaultExternalDocs returns the compiled-in reference documents.
func DefaultExternalDocs() []ExternalDoc {
	return []ExternalDoc{
		{
			URL:      "https://platform.claude.com/docs/en/agents-and-tools/agent-skills/best-practices.md",
			Filename: "claude-skill-best-practices.md",
		},
		{
			URL:      "https://platform.claude.com/docs/en/build-with-claude/prompt-engineering/claude-4-best-practices.md",
			Filename: "claude-4-best-practices.md",
		},
	}
}

// SitemapService resolves a site's sitemap into documentation page URLs.
type SitemapService interface {
	// DocURLs returns the distinct page URLs under the site's prefix.
	DocURLs(ctx context.Context, site Site) ([]string, error)
}

// DocStore persists fetched documents into a flat directory.
type DocStore interface {
	// EnsureDir creates the directory if it does not exist.
	EnsureDir(ctx context.Context) error

	// Save writes content to filename, replacing any existing file.
	Save(ctx context.Context, filename, content string) error
}

// Syncer runs a full documentation sync.
type Syncer interface {
	Run(ctx context.Context) (*Result, error)
}
