package logger

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// LogFilePath is the default log file, relative to the working directory (project root when run via go run ./cmd/markers).
const LogFilePath = "logs/markers.log"

// maxLines caps the in-memory history shown by the console.
const maxLines = 500

// Logger writes structured JSON entries to a file and keeps a console-formatted copy of each entry
// in memory so the on-screen console can show recent history.
type Logger struct {
	zl    zerolog.Logger
	file  *os.File
	mu    sync.Mutex
	lines []string
}

// New opens (or creates) the log file at path and returns a Logger at the given level.
// If the file cannot be opened, entries still reach the in-memory history.
func New(path, level string) *Logger {
	if path == "" {
		path = LogFilePath
	}
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		l := NewWriter(io.Discard, level)
		l.Warn().Err(err).Str("path", path).Msg("log file unavailable")
		return l
	}
	l := NewWriter(f, level)
	l.file = f
	return l
}

// NewWriter returns a Logger that writes JSON entries to w. Used by tests and by New.
func NewWriter(w io.Writer, level string) *Logger {
	l := &Logger{lines: make([]string, 0)}
	console := zerolog.ConsoleWriter{Out: lineSink{l}, NoColor: true, TimeFormat: "15:04:05"}
	l.zl = zerolog.New(zerolog.MultiLevelWriter(w, console)).
		Level(parseLevel(level)).
		With().Timestamp().Logger()
	return l
}

func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Log records a plain info line (e.g. console input).
func (l *Logger) Log(line string) {
	l.zl.Info().Msg(line)
}

// Debug starts a debug-level entry.
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }

// Info starts an info-level entry.
func (l *Logger) Info() *zerolog.Event { return l.zl.Info() }

// Warn starts a warn-level entry.
func (l *Logger) Warn() *zerolog.Event { return l.zl.Warn() }

// Error starts an error-level entry.
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }

// Lines returns a copy of the stored history, oldest first.
func (l *Logger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.lines))
	copy(out, l.lines)
	return out
}

// Close closes the underlying log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func (l *Logger) appendLine(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	if over := len(l.lines) - maxLines; over > 0 {
		l.lines = append(l.lines[:0], l.lines[over:]...)
	}
}

// lineSink receives one formatted entry per Write from zerolog.ConsoleWriter.
type lineSink struct{ l *Logger }

func (s lineSink) Write(p []byte) (int, error) {
	s.l.appendLine(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}
