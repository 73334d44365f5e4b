package docsync

import "context"

// Logger receives progress and failure messages from a sync.
// Messages are fully composed strings.
type Logger interface {
	Info(msg string)
	Error(msg string)
}

// NotifyLevel tags a notification with a severity.
type NotifyLevel string

// Notification levels.
const (
	NotifyInfo    NotifyLevel = "info"
	NotifyWarning NotifyLevel = "warning"
	NotifyError   NotifyLevel = "error"
)

// Notification is a transient user-facing message.
type Notification struct {
	Level   NotifyLevel
	Message string
}

// Notifier displays notifications to the user of the host application.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// NopLogger discards all messages.
type NopLogger struct{}

func (NopLogger) Info(string)  {}
func (NopLogger) Error(string) {}
