// Package slog adapts log/slog to the docsync collaborator interfaces and
// provides logging decorators for docsync services.
package slog

import (
	"log/slog"

	"github.com/fwojciec/docsync"
)

// Ensure Logger implements docsync.Logger.
var _ docsync.Logger = (*Logger)(nil)

// Logger forwards docsync log messages to a slog.Logger.
type Logger struct {
	logger *slog.Logger
}

// NewLogger creates a new Logger. If logger is nil, slog.Default is used.
func NewLogger(logger *slog.Logger) *Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Logger{logger: logger}
}

func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

func (l *Logger) Error(msg string) {
	l.logger.Error(msg)
}
