// Package commands implements the hwctl-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/hwctl-project/hwctl-go/pkg/hwlog"
)

// ParseViewFilter builds an hwlog.Filter from view flag values.
func ParseViewFilter(category, session, device string) (hwlog.Filter, error) {
	filter := hwlog.Filter{
		SessionID: session,
		DeviceID:  device,
	}

	if category != "" {
		cat, err := parseCategory(category)
		if err != nil {
			return hwlog.Filter{}, err
		}
		filter.Category = &cat
	}

	return filter, nil
}

func parseCategory(s string) (hwlog.Category, error) {
	switch strings.ToLower(s) {
	case "boot_attempt", "boot":
		return hwlog.CategoryBootAttempt, nil
	case "poll":
		return hwlog.CategoryPoll, nil
	case "command":
		return hwlog.CategoryCommand, nil
	case "state", "state_change":
		return hwlog.CategoryStateChange, nil
	case "error":
		return hwlog.CategoryError, nil
	default:
		return 0, fmt.Errorf("unknown category %q", s)
	}
}

// RunView reads the log file and writes matching events to output in
// human-readable format.
func RunView(path string, filter hwlog.Filter, output io.Writer) error {
	reader, err := hwlog.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event hwlog.Event) {
	// Header line: timestamp [session:id] [device] CATEGORY
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := shortenID(event.SessionID)

	if event.DeviceID != "" {
		fmt.Fprintf(w, "%s [session:%s] [%s] %s\n", ts, session, event.DeviceID, event.Category)
	} else {
		fmt.Fprintf(w, "%s [session:%s] %s\n", ts, session, event.Category)
	}

	// Type-specific details
	switch {
	case event.BootAttempt != nil:
		formatBootAttemptDetails(w, event.BootAttempt)
	case event.Poll != nil:
		formatPollDetails(w, event.Poll)
	case event.Command != nil:
		formatCommandDetails(w, event.Command)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatBootAttemptDetails(w io.Writer, ba *hwlog.BootAttemptEvent) {
	outcome := "not ready"
	if ba.Ready {
		outcome = "ready"
	}
	fmt.Fprintf(w, "  Attempt: %d  Polls: %d  Outcome: %s\n", ba.Attempt, ba.Polls, outcome)
	if ba.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", ba.Error)
	}
}

func formatPollDetails(w io.Writer, p *hwlog.PollEvent) {
	fmt.Fprintf(w, "  Attempt: %d  Poll: %d  Status: %s\n", p.Attempt, p.Poll, p.Status)
}

func formatCommandDetails(w io.Writer, c *hwlog.CommandEvent) {
	fmt.Fprintf(w, "  Command: %s\n", c.Command)
	if c.Response != "" {
		fmt.Fprintf(w, "  Response: %s\n", c.Response)
	}
	if c.Error != "" {
		fmt.Fprintf(w, "  Error: %s\n", c.Error)
	}
}

func formatStateChangeDetails(w io.Writer, sc *hwlog.StateChangeEvent) {
	fmt.Fprintf(w, "  %s -> %s\n", sc.From, sc.To)
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

func formatErrorDetails(w io.Writer, e *hwlog.ErrorEventData) {
	fmt.Fprintf(w, "  Message: %s\n", e.Message)
	if e.Operation != "" {
		fmt.Fprintf(w, "  Operation: %s\n", e.Operation)
	}
}
