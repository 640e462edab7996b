package hwlog

import (
	"io"
	"path/filepath"
	"testing"
	"time"
)

// writeTestLog writes a small log file with events across two sessions.
func writeTestLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.hlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	events := []Event{
		{
			Timestamp:   base,
			SessionID:   "sess-a",
			DeviceID:    "dev-1",
			Category:    CategoryBootAttempt,
			BootAttempt: &BootAttemptEvent{Attempt: 1, Polls: 1, Ready: true},
		},
		{
			Timestamp:   base.Add(time.Second),
			SessionID:   "sess-a",
			DeviceID:    "dev-1",
			Category:    CategoryStateChange,
			StateChange: &StateChangeEvent{From: StateNotReady, To: StateReady, Reason: "boot"},
		},
		{
			Timestamp: base.Add(2 * time.Second),
			SessionID: "sess-b",
			DeviceID:  "dev-2",
			Category:  CategoryCommand,
			Command:   &CommandEvent{Command: "PING", Response: "ACK:PING"},
		},
	}
	for _, ev := range events {
		logger.Log(ev)
	}
	return path
}

func readAll(t *testing.T, reader *Reader) []Event {
	t.Helper()
	var events []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			return events
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		events = append(events, event)
	}
}

func TestReaderReadsAll(t *testing.T) {
	path := writeTestLog(t)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	events := readAll(t, reader)
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
}

func TestReaderFilterBySession(t *testing.T) {
	path := writeTestLog(t)

	reader, err := NewFilteredReader(path, Filter{SessionID: "sess-a"})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	events := readAll(t, reader)
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, ev := range events {
		if ev.SessionID != "sess-a" {
			t.Errorf("unexpected session: %s", ev.SessionID)
		}
	}
}

func TestReaderFilterByCategory(t *testing.T) {
	path := writeTestLog(t)

	cat := CategoryCommand
	reader, err := NewFilteredReader(path, Filter{Category: &cat})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	events := readAll(t, reader)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Command == nil || events[0].Command.Command != "PING" {
		t.Errorf("unexpected event: %+v", events[0])
	}
}

func TestReaderFilterByTimeRange(t *testing.T) {
	path := writeTestLog(t)

	start := time.Date(2026, 3, 14, 12, 0, 1, 0, time.UTC)
	end := time.Date(2026, 3, 14, 12, 0, 2, 0, time.UTC)
	reader, err := NewFilteredReader(path, Filter{TimeStart: &start, TimeEnd: &end})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	events := readAll(t, reader)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].StateChange == nil {
		t.Errorf("expected the state change event, got %+v", events[0])
	}
}

func TestReaderFilterByDevice(t *testing.T) {
	path := writeTestLog(t)

	reader, err := NewFilteredReader(path, Filter{DeviceID: "dev-2"})
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	events := readAll(t, reader)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
}

func TestReaderMissingFile(t *testing.T) {
	if _, err := NewReader(filepath.Join(t.TempDir(), "missing.hlog")); err == nil {
		t.Error("expected error for missing file")
	}
}
