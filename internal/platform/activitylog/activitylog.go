// Package activitylog writes the append-only service activity log.
//
// Every line is "[2006-01-02 15:04:05] message". The logger is safe for
// concurrent use by many sessions.
package activitylog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// DefaultPath is where services write activity when no path is configured.
const DefaultPath = "logs/analytics.log"

const timestampLayout = "2006-01-02 15:04:05"

// Logger appends timestamped lines to an io.Writer.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	closer io.Closer
	clock  func() time.Time
}

// New returns a Logger writing to out. A nil out discards everything.
func New(out io.Writer) *Logger {
	if out == nil {
		out = io.Discard
	}
	return &Logger{out: out, clock: time.Now}
}

// Discard returns a Logger that drops all lines.
func Discard() *Logger {
	return New(io.Discard)
}

// Open opens path for appending, creating its directory when absent.
func Open(path string) (*Logger, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create activity log dir: %w", err)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open activity log: %w", err)
	}
	logger := New(file)
	logger.closer = file
	return logger, nil
}

// Printf appends one formatted line. Write failures are reported on stderr
// and never surface to callers.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil {
		return
	}
	message := strings.TrimRight(fmt.Sprintf(format, args...), "\n")

	l.mu.Lock()
	defer l.mu.Unlock()
	line := "[" + l.clock().Format(timestampLayout) + "] " + message + "\n"
	if _, err := io.WriteString(l.out, line); err != nil {
		fmt.Fprintf(os.Stderr, "write activity log: %v\n", err)
	}
}

// Close releases the underlying file, if any.
func (l *Logger) Close() error {
	if l == nil || l.closer == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	err := l.closer.Close()
	l.closer = nil
	l.out = io.Discard
	return err
}
