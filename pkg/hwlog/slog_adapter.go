package hwlog

import (
	"context"
	"log/slog"
)

// SlogAdapter writes lifecycle events to an slog.Logger.
// Useful for development when you want to see lifecycle events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("category", event.Category.String()),
	}

	if event.DeviceID != "" {
		attrs = append(attrs, slog.String("device_id", event.DeviceID))
	}

	// Add type-specific attributes
	switch {
	case event.BootAttempt != nil:
		attrs = append(attrs,
			slog.Int("attempt", event.BootAttempt.Attempt),
			slog.Int("polls", event.BootAttempt.Polls),
			slog.Bool("ready", event.BootAttempt.Ready),
		)
		if event.BootAttempt.Error != "" {
			attrs = append(attrs, slog.String("error", event.BootAttempt.Error))
		}
	case event.Poll != nil:
		attrs = append(attrs,
			slog.Int("attempt", event.Poll.Attempt),
			slog.Int("poll", event.Poll.Poll),
			slog.String("status", event.Poll.Status),
		)
	case event.Command != nil:
		attrs = append(attrs, slog.String("command", event.Command.Command))
		if event.Command.Response != "" {
			attrs = append(attrs, slog.String("response", event.Command.Response))
		}
		if event.Command.Error != "" {
			attrs = append(attrs, slog.String("error", event.Command.Error))
		}
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("from", event.StateChange.From.String()),
			slog.String("to", event.StateChange.To.String()),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Error != nil:
		attrs = append(attrs, slog.String("message", event.Error.Message))
		if event.Error.Operation != "" {
			attrs = append(attrs, slog.String("operation", event.Error.Operation))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "lifecycle event", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
