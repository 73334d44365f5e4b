package docsync

import "context"

// Fetcher retrieves the body of a URL as text.
// Implementations make exactly one attempt per call.
type Fetcher interface {
	// Fetch issues a single GET and returns the response body.
	// A non-2xx status is returned as *FetchError.
	// The context controls cancellation; no timeout is implied.
	Fetch(ctx context.Context, url string) (body string, err error)
}
