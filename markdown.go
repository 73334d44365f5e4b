package docsync

import (
	"net/url"
	"strings"
)

// MarkdownURLs maps documentation page URLs to the URLs of their markdown
// renderings. For each URL under prefix, one trailing slash is removed from
// the path and MarkdownExt is appended, keeping scheme and host. The
// documentation root itself is skipped. Paths that already end in
// MarkdownExt are kept as they are, so the mapping can be applied to its own
// output. Duplicates are dropped; first-seen order is kept.
func MarkdownURLs(urls []string, prefix string) []string {
	prefix = normalizePrefix(prefix)
	root := strings.TrimSuffix(prefix, "/")

	seen := make(map[string]bool)
	out := []string{}
	for _, raw := range urls {
		u, ok := ParseLoc(raw)
		if !ok {
			continue
		}
		path := u.EscapedPath()
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		path = strings.TrimSuffix(path, "/")
		if path == root {
			continue
		}
		if !strings.HasSuffix(path, MarkdownExt) {
			path += MarkdownExt
		}

		md := u.Scheme + "://" + u.Host + path
		if seen[md] {
			continue
		}
		seen[md] = true
		out = append(out, md)
	}
	return out
}

// Filename derives a flat local filename from a markdown URL under prefix.
// The prefix is stripped, remaining slashes become hyphens, and MarkdownExt
// is appended when missing. The documentation root maps to IndexFilename.
// Filename never fails and never returns an empty name.
func Filename(markdownURL, prefix string) string {
	prefix = normalizePrefix(prefix)
	root := strings.TrimSuffix(prefix, "/")

	path := markdownURL
	if u, err := url.Parse(markdownURL); err == nil {
		path = u.EscapedPath()
	}

	if path == root+MarkdownExt || path == prefix+MarkdownExt {
		return IndexFilename
	}

	switch {
	case strings.HasPrefix(path, prefix):
		path = path[len(prefix):]
	case strings.HasPrefix(path, root):
		path = path[len(root):]
	}
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return IndexFilename
	}

	name := strings.ReplaceAll(path, "/", "-")
	if strings.HasSuffix(name, MarkdownExt) {
		return name
	}
	return name + MarkdownExt
}
