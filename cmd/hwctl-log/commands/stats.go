package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/hwctl-project/hwctl-go/pkg/hwlog"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[hwlog.Category]int
	Sessions         map[string]*SessionStats
	Errors           int
	FailedAttempts   int
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single controller session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	DeviceID  string
	Boots     int
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := hwlog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[hwlog.Category]int),
		Sessions:         make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++
		if event.Category == hwlog.CategoryError {
			stats.Errors++
		}
		if event.BootAttempt != nil && !event.BootAttempt.Ready {
			stats.FailedAttempts++
		}

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track session stats
		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		if event.DeviceID != "" && sess.DeviceID == "" {
			sess.DeviceID = event.DeviceID
		}
		if event.StateChange != nil && event.StateChange.To == hwlog.StateReady {
			sess.Boots++
		}
	}

	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintf(w, "Total events: %d\n", stats.TotalEvents)

	if !stats.TimeRange.Start.IsZero() {
		fmt.Fprintf(w, "Time range:   %s - %s (%s)\n",
			stats.TimeRange.Start.UTC().Format(time.RFC3339),
			stats.TimeRange.End.UTC().Format(time.RFC3339),
			stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
	}

	fmt.Fprintln(w, "\nEvents by category:")
	for _, cat := range []hwlog.Category{
		hwlog.CategoryBootAttempt,
		hwlog.CategoryPoll,
		hwlog.CategoryCommand,
		hwlog.CategoryStateChange,
		hwlog.CategoryError,
	} {
		if n := stats.EventsByCategory[cat]; n > 0 {
			fmt.Fprintf(w, "  %-13s %d\n", cat.String(), n)
		}
	}

	fmt.Fprintf(w, "\nFailed boot attempts: %d\n", stats.FailedAttempts)
	fmt.Fprintf(w, "Hardware errors:      %d\n", stats.Errors)

	fmt.Fprintf(w, "\nSessions: %d\n", len(stats.Sessions))
	ids := make([]string, 0, len(stats.Sessions))
	for id := range stats.Sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		sess := stats.Sessions[id]
		fmt.Fprintf(w, "  %s", shortenID(id))
		if sess.DeviceID != "" {
			fmt.Fprintf(w, " (%s)", sess.DeviceID)
		}
		fmt.Fprintf(w, ": %d events, %d boot(s), %s\n",
			sess.Events, sess.Boots,
			sess.LastSeen.Sub(sess.FirstSeen).Round(time.Millisecond))
	}
}
