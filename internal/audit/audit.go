// Package audit appends timestamped records of filesystem actions to the
// audit log.
package audit

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// TimeLayout formats audit timestamps as DD-MM-YYYY HH:MM:SS.
const TimeLayout = "02-01-2006 15:04:05"

// Log appends "<timestamp>: <description>" lines to a file.
// The file is opened per record so each action is on disk before the next
// one starts.
type Log struct {
	mu   sync.Mutex
	path string
	now  func() time.Time
}

// New creates an audit log writing to path.
func New(path string) *Log {
	return &Log{path: path, now: time.Now}
}

// WithClock replaces the time source (for testing).
func (l *Log) WithClock(now func() time.Time) *Log {
	l.now = now
	return l
}

// Path returns the file the log writes to.
func (l *Log) Path() string {
	return l.path
}

// Record appends one formatted line.
func (l *Log) Record(format string, args ...any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open audit log: %w", err)
	}
	line := l.now().Format(TimeLayout) + ": " + fmt.Sprintf(format, args...) + "\n"
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return fmt.Errorf("write audit log: %w", err)
	}
	return f.Close()
}
