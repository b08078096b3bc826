package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
	"unicode/utf8"
)

// DefaultPath is where diagnostics are appended, relative to the working
// directory (project root when run via go run ./cmd/viewer).
const DefaultPath = "logs/dreamscene.txt"

// Logger collects pipeline diagnostics (dropped objects, anchor fallbacks,
// degraded framing) in memory and appends them to a file on disk. Malformed
// scene input is expected noise, so nothing here is ever fatal: the log is
// the only place a user sees what was salvaged.
type Logger struct {
	mu    sync.Mutex
	path  string
	lines []string
}

// New returns a Logger writing to DefaultPath and ensures the log directory
// exists.
func New() *Logger {
	return NewAt(DefaultPath)
}

// NewAt returns a Logger writing to the given path. An empty path keeps the
// log in memory only (used by tests).
func NewAt(path string) *Logger {
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
	}
	return &Logger{path: path}
}

// Warnf records a warning: something was degraded but the scene still renders.
func (l *Logger) Warnf(format string, args ...any) {
	l.log("WARN", fmt.Sprintf(format, args...))
}

// Debugf records detail useful when inspecting a generation, e.g. which
// objects were dropped as non-objects.
func (l *Logger) Debugf(format string, args ...any) {
	l.log("DEBUG", fmt.Sprintf(format, args...))
}

// Infof records normal progress (scene built, exported, etc.).
func (l *Logger) Infof(format string, args ...any) {
	l.log("INFO", fmt.Sprintf(format, args...))
}

func (l *Logger) log(level, msg string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	stamped := "[" + ts + "] " + level + " " + msg

	l.mu.Lock()
	l.lines = append(l.lines, stamped)
	path := l.path
	l.mu.Unlock()

	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	_, _ = f.WriteString(stamped + "\n")
	_ = f.Close()
}

// Truncate shortens s to at most max bytes for single-line display, ending
// in "..." and never cutting through a multi-byte rune.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max - 3
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// Lines returns a copy of all recorded lines.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}
