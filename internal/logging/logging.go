// Package logging appends operation events to the todo log file.
//
// The log is an append-only observability sink: every command writes at
// least one line, and nothing in the tool ever reads it back. A nil
// *Logger is valid and discards everything, so a broken or unwritable
// sink never blocks an operation.
package logging

import (
	"fmt"
	"os"
	"time"
)

// Level marks the severity of a log line.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelError Level = "ERROR"
)

// timeFormat matches the conventional "2006-01-02 15:04:05" log prefix.
const timeFormat = "2006-01-02 15:04:05"

// Logger writes timestamped lines to a single append-only file.
type Logger struct {
	path string
	file *os.File
}

// Open opens (creating if necessary) the log file at path for appending.
func Open(path string) (*Logger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return &Logger{path: path, file: file}, nil
}

// Path returns the log file path, or "" for a nil logger.
func (l *Logger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.write(LevelInfo, fmt.Sprintf(format, args...))
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.write(LevelError, fmt.Sprintf(format, args...))
}

// write emits one "timestamp - LEVEL - message" line. Write failures
// are discarded; the sink is best-effort.
func (l *Logger) write(level Level, msg string) {
	if l == nil || l.file == nil {
		return
	}
	fmt.Fprintf(l.file, "%s - %s - %s\n", time.Now().Format(timeFormat), level, msg)
}

// Close closes the log file.
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	return l.file.Close()
}
