// Package docsync keeps a local, markdown-only mirror of a documentation site.
// It reads the site's sitemap, derives the markdown rendering of every
// documentation page, and writes each one into a flat cache directory
// together with a fixed list of external reference documents.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, fs/, slog/, mcp/).
package docsync
