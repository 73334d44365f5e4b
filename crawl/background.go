package crawl

import (
	"context"
	"fmt"

	"github.com/fwojciec/docsync"
)

// Start runs the sync in a new goroutine and returns immediately.
// If the run fails, the failure is delivered to notifier instead of being
// returned to the caller; a notifier that cannot deliver it is logged to
// logger. The returned channel receives the run's error (nil on success)
// and is then closed; callers that do not care about completion may
// ignore it.
func Start(ctx context.Context, syncer docsync.Syncer, notifier docsync.Notifier, logger docsync.Logger) <-chan error {
	if logger == nil {
		logger = docsync.NopLogger{}
	}

	done := make(chan error, 1)
	go func() {
		defer close(done)
		_, err := syncer.Run(ctx)
		if err != nil && notifier != nil {
			if nerr := notifier.Notify(ctx, docsync.Notification{
				Level:   docsync.NotifyError,
				Message: fmt.Sprintf("Failed to sync docs: %s", docsync.ErrorMessage(err)),
			}); nerr != nil {
				logger.Error(fmt.Sprintf("Failed to deliver notification: %s", nerr))
			}
		}
		done <- err
	}()
	return done
}
