package logger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// TestLogBuffer is a thread-safe buffer for capturing log output in tests.
type TestLogBuffer struct {
	buf bytes.Buffer
	mu  sync.Mutex
}

// Write implements io.Writer for TestLogBuffer.
func (b *TestLogBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

// String returns the buffer contents as a string.
func (b *TestLogBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// GetLogEntries parses the buffer contents as JSON log entries.
// Each line is assumed to be a separate JSON log entry.
func (b *TestLogBuffer) GetLogEntries() ([]map[string]interface{}, error) {
	lines := strings.Split(b.String(), "\n")
	entries := make([]map[string]interface{}, 0, len(lines))

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// NewTestLogger creates a JSON logger at level that writes to a buffer.
func NewTestLogger(t *testing.T, level slog.Level) (*TestLogBuffer, *slog.Logger) {
	t.Helper()
	buf := &TestLogBuffer{}
	return buf, slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level}))
}

// AssertLogField fails the test unless some entry with msg carries field
// with the expected value. Values are compared by their printed form since
// JSON numbers decode as float64.
func AssertLogField(t *testing.T, buf *TestLogBuffer, msg, field string, expected interface{}) {
	t.Helper()

	entries, err := buf.GetLogEntries()
	if err != nil {
		t.Errorf("failed to parse log entries: %v", err)
		return
	}

	want := fmt.Sprint(expected)
	for _, entry := range entries {
		if entry["msg"] != msg {
			continue
		}
		if value, ok := entry[field]; ok && fmt.Sprint(value) == want {
			return
		}
	}
	t.Errorf("no %q log entry has %s=%v in:\n%s", msg, field, expected, buf.String())
}
