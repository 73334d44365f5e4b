package mock

import (
	"context"
	"sync"

	"github.com/fwojciec/docsync"
)

// Compile-time interface verification.
var (
	_ docsync.Logger   = (*Logger)(nil)
	_ docsync.Notifier = (*Notifier)(nil)
	_ docsync.Syncer   = (*Syncer)(nil)
)

// Logger is a docsync.Logger that records messages.
// It is safe for concurrent use.
type Logger struct {
	mu     sync.Mutex
	infos  []string
	errors []string
}

func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, msg)
}

// Infos returns the recorded info messages.
func (l *Logger) Infos() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.infos...)
}

// Errors returns the recorded error messages.
func (l *Logger) Errors() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.errors...)
}

// Notifier is a mock implementation of docsync.Notifier.
type Notifier struct {
	NotifyFn func(ctx context.Context, n docsync.Notification) error
}

func (n *Notifier) Notify(ctx context.Context, notification docsync.Notification) error {
	return n.NotifyFn(ctx, notification)
}

// Syncer is a mock implementation of docsync.Syncer.
type Syncer struct {
	RunFn func(ctx context.Context) (*docsync.Result, error)
}

func (s *Syncer) Run(ctx context.Context) (*docsync.Result, error) {
	return s.RunFn(ctx)
}
