package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docsync"
	"github.com/fwojciec/docsync/crawl"
)

// Run executes the sync command.
func (c *SyncCmd) Run(deps *Dependencies) error {
	result, err := deps.Syncer.Run(deps.Ctx)
	if err != nil {
		return err
	}

	for _, batch := range []*docsync.BatchResult{result.Docs, result.External} {
		if deps.Verbose {
			for _, o := range batch.Outcomes {
				fmt.Fprintln(deps.Stdout, crawl.FormatOutcome(o))
			}
		}
		fmt.Fprintln(deps.Stdout, batch.Summary())
		if err := batch.Err(); err != nil && !deps.Verbose {
			fmt.Fprintln(deps.Stdout, strings.TrimSpace(err.Error()))
		}
	}
	if result.Dir != "" {
		fmt.Fprintf(deps.Stdout, "Docs directory: %s\n", result.Dir)
	}

	return nil
}
