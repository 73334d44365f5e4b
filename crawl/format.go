package crawl

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docsync"
)

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatOutcome renders one outcome as a single line for listings.
func FormatOutcome(o docsync.Outcome) string {
	if o.OK() {
		return fmt.Sprintf("ok    %s (%s, %s)", o.Filename, FormatBytes(o.Bytes), o.Hash)
	}
	return fmt.Sprintf("fail  %s: %v", o.URL, o.Err)
}
