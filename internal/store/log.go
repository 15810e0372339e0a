package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	logFileName   = "activity.jsonl"
	logFileMode   = 0o600
	maxLogEntries = 10000 // oldest rows drop past this
)

// LogEntry is one row of the activity history: a mutation verb
// (add, toggle, delete, reorder, settings, clear), the task or
// session id it touched (0 for collection-wide actions), and a
// free-form detail string.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	EntityID  int       `json:"entity_id"`
	Detail    string    `json:"detail"`
}

// AppendLog appends a row to `activity.jsonl` in the data directory,
// dropping the oldest rows once the file passes maxLogEntries.
func AppendLog(dataDir string, entry LogEntry) error {
	path := filepath.Join(dataDir, logFileName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode) //nolint:gosec // log path from trusted data dir
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling log entry: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing log entry: %w", err)
	}

	// Best-effort trim; a failed trim never fails the append.
	_ = truncateLogIfNeeded(path)

	return nil
}

// truncateLogIfNeeded rewrites the file keeping only the newest
// maxLogEntries rows once it grows past that count.
func truncateLogIfNeeded(path string) error {
	f, err := os.Open(path) //nolint:gosec // trusted path
	if err != nil {
		return err
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	_ = f.Close()

	if err := scanner.Err(); err != nil {
		return err
	}

	if len(lines) <= maxLogEntries {
		return nil
	}

	lines = lines[len(lines)-maxLogEntries:]

	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(buf.String()), logFileMode)
}

// LogMutation records a store mutation in the activity history.
// Errors are swallowed: the history is an audit convenience and must
// never fail the mutation that triggered it.
func LogMutation(dataDir, action string, entityID int, detail string) {
	entry := LogEntry{
		Timestamp: time.Now(),
		Action:    action,
		EntityID:  entityID,
		Detail:    detail,
	}
	_ = AppendLog(dataDir, entry)
}
