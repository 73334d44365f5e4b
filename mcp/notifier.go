package mcp

import (
	"context"
	"fmt"
	"sync"

	"github.com/fwojciec/docsync"
	"github.com/hashicorp/go-multierror"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	// methodLogMessage is the MCP notification method for log messages.
	methodLogMessage = "notifications/message"

	// methodInitialized is sent by a client once it has finished the
	// initialize handshake and is ready to receive notifications.
	methodInitialized = "notifications/initialized"
)

// NotificationSender delivers a notification to one client session.
// *server.MCPServer implements it.
type NotificationSender interface {
	SendNotificationToSpecificClient(sessionID string, method string, params map[string]any) error
}

// Compile-time interface verification.
var (
	_ docsync.Notifier   = (*Notifier)(nil)
	_ NotificationSender = (*server.MCPServer)(nil)
)

// Notifier delivers docsync notifications as MCP log messages to every
// ready client session. Notifications raised while no session is ready are
// held and delivered to the next session that becomes ready.
type Notifier struct {
	sender NotificationSender

	// Logger receives failures to deliver held notifications.
	Logger docsync.Logger

	mu       sync.Mutex
	sessions map[string]struct{}
	pending  []docsync.Notification
}

// NewNotifier creates a new Notifier.
func NewNotifier(sender NotificationSender) *Notifier {
	return &Notifier{
		sender:   sender,
		sessions: make(map[string]struct{}),
	}
}

// Notify sends notification to every ready session, or holds it until one
// is ready.
func (n *Notifier) Notify(ctx context.Context, notification docsync.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.sessions) == 0 {
		n.pending = append(n.pending, notification)
		return nil
	}

	var result *multierror.Error
	for id := range n.sessions {
		if err := n.send(id, notification); err != nil {
			result = multierror.Append(result, fmt.Errorf("session %s: %w", id, err))
		}
	}
	return result.ErrorOrNil()
}

// SessionReady marks a session as ready and delivers held notifications
// to it.
func (n *Notifier) SessionReady(sessionID string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.sessions[sessionID] = struct{}{}

	pending := n.pending
	n.pending = nil
	for _, notification := range pending {
		if err := n.send(sessionID, notification); err != nil {
			n.logger().Error(fmt.Sprintf("Failed to deliver notification: %s", err))
		}
	}
}

// SessionClosed stops delivery to a session.
func (n *Notifier) SessionClosed(sessionID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.sessions, sessionID)
}

func (n *Notifier) send(sessionID string, notification docsync.Notification) error {
	return n.sender.SendNotificationToSpecificClient(sessionID, methodLogMessage, map[string]any{
		"level":  loggingLevel(notification.Level),
		"logger": ServerName,
		"data":   notification.Message,
	})
}

func (n *Notifier) logger() docsync.Logger {
	if n.Logger == nil {
		return docsync.NopLogger{}
	}
	return n.Logger
}

func loggingLevel(level docsync.NotifyLevel) mcp.LoggingLevel {
	switch level {
	case docsync.NotifyError:
		return mcp.LoggingLevelError
	case docsync.NotifyWarning:
		return mcp.LoggingLevelWarning
	default:
		return mcp.LoggingLevelInfo
	}
}
