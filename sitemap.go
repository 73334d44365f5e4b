package docsync

import (
	"net/url"
	"regexp"
	"strings"
)

// locPattern matches <loc> elements anywhere in the document. The sitemap is
// scanned as text so that any structure around the tags is ignored.
var locPattern = regexp.MustCompile(`<loc>([^<]+)</loc>`)

// ExtractLocs returns every <loc> value in the sitemap, in document order.
func ExtractLocs(sitemap string) []string {
	matches := locPattern.FindAllStringSubmatch(sitemap, -1)
	locs := make([]string, 0, len(matches))
	for _, m := range matches {
		locs = append(locs, m[1])
	}
	return locs
}

// ParseLoc parses a sitemap location as an absolute URL.
// It reports false for anything that is not an absolute URL with a host;
// such locations are noise in the source data and callers skip them
// without logging or counting.
func ParseLoc(raw string) (*url.URL, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, false
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, false
	}
	return u, true
}

// DocURLs filters sitemap locations to absolute URLs whose path starts with
// prefix. Duplicates are dropped; first-seen order is kept.
func DocURLs(locs []string, prefix string) []string {
	prefix = normalizePrefix(prefix)

	seen := make(map[string]bool)
	urls := []string{}
	for _, loc := range locs {
		u, ok := ParseLoc(loc)
		if !ok {
			continue
		}
		if !strings.HasPrefix(u.EscapedPath(), prefix) {
			continue
		}
		s := strings.TrimSpace(loc)
		if seen[s] {
			continue
		}
		seen[s] = true
		urls = append(urls, s)
	}
	return urls
}

// normalizePrefix returns prefix with exactly one leading and one trailing slash.
func normalizePrefix(prefix string) string {
	return "/" + strings.Trim(prefix, "/") + "/"
}
