package docsync

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Outcome is the result of fetching and saving a single resource.
// A nil Err means the content was written to Filename.
type Outcome struct {
	URL      string
	Filename string
	Bytes    int
	Hash     string
	Err      error
}

// OK reports whether the resource was written.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Tally counts outcomes within one batch.
type Tally struct {
	Succeeded int
	Failed    int
}

// Total returns the number of resources attempted.
func (t Tally) Total() int {
	return t.Succeeded + t.Failed
}

// BatchResult holds the outcomes of one batch of resources.
// Sitemap-derived docs and external docs are always separate batches.
type BatchResult struct {
	Name     string
	Outcomes []Outcome
	Tally    Tally
}

// Summary returns the one-line completion message for the batch.
func (b *BatchResult) Summary() string {
	return fmt.Sprintf("%s fetch complete. Success: %d, Failed: %d.", b.Name, b.Tally.Succeeded, b.Tally.Failed)
}

// Err combines the failure reasons of the batch, or returns nil if every
// resource succeeded.
func (b *BatchResult) Err() error {
	var result *multierror.Error
	for _, o := range b.Outcomes {
		if o.Err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", o.URL, o.Err))
		}
	}
	return result.ErrorOrNil()
}

// Result is the outcome of a complete sync run.
type Result struct {
	RunID    string
	Dir      string
	Docs     *BatchResult
	External *BatchResult
}
