package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EventsFile is the name of the JSONL file written by EventLogger.
const EventsFile = "events.jsonl"

// EventLogger writes structured simulation events (country completions and
// run summaries) as JSONL. Child loggers created with With share the same
// file. A nil EventLogger is safe to use; all methods are no-ops on nil
// receiver.
type EventLogger struct {
	sink   *eventSink
	fields map[string]any
}

type eventSink struct {
	mu   sync.Mutex
	file *os.File
}

// NewEventLogger creates an event logger appending to dir/events.jsonl.
// At "info" level (the default) it returns nil and no file is created.
// It also returns nil when dir is empty or the file cannot be opened.
func NewEventLogger(dir string, level string) *EventLogger {
	if dir == "" || ParseLevel(level) == slog.LevelInfo {
		return nil
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil
	}

	f, err := os.OpenFile(filepath.Join(dir, EventsFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil
	}

	return &EventLogger{sink: &eventSink{file: f}}
}

// With returns a child logger that adds fields to every event it writes.
// Fields given here override fields inherited from the parent.
func (el *EventLogger) With(fields map[string]any) *EventLogger {
	if el == nil {
		return nil
	}
	merged := make(map[string]any, len(el.fields)+len(fields))
	for k, v := range el.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &EventLogger{sink: el.sink, fields: merged}
}

// Log writes one event line. The entry holds the logger's fields, the
// caller's fields, "event" and "time". The caller's map is not mutated.
func (el *EventLogger) Log(event string, fields map[string]any) {
	if el == nil {
		return
	}

	entry := make(map[string]any, len(el.fields)+len(fields)+2)
	for k, v := range el.fields {
		entry[k] = v
	}
	for k, v := range fields {
		entry[k] = v
	}
	entry["event"] = event
	entry["time"] = time.Now().UTC().Format(time.RFC3339Nano)

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')

	el.sink.mu.Lock()
	defer el.sink.mu.Unlock()
	if el.sink.file == nil {
		return
	}
	_, _ = el.sink.file.Write(data)
}

// Close closes the shared file. Closing any child closes them all.
func (el *EventLogger) Close() {
	if el == nil {
		return
	}

	el.sink.mu.Lock()
	defer el.sink.mu.Unlock()

	if el.sink.file != nil {
		el.sink.file.Close()
		el.sink.file = nil
	}
}
