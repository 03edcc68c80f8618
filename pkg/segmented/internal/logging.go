package internal

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Two JSON loggers share one sink. The application logger is for code that
// embeds the control; the internal logger carries layout, selection and
// device events from this module. Their levels are independent.

type logSink struct {
	once sync.Once
	path string
	file *os.File
	out  io.Writer
}

func (s *logSink) writer() io.Writer {
	s.once.Do(func() {
		s.out = os.Stdout
		if s.path == "" {
			return
		}

		f, err := openLogFile(s.path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "segmented: logging to stdout only, %s: %v\n", s.path, err)
			return
		}
		s.file = f
		s.out = io.MultiWriter(os.Stdout, f)
	})
	return s.out
}

func (s *logSink) close() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// openLogFile opens path for appending, creating its directory.
func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

type scopedLogger struct {
	once   sync.Once
	scope  string
	level  slog.LevelVar
	logger *slog.Logger
}

func (l *scopedLogger) get() *slog.Logger {
	l.once.Do(func() {
		handler := slog.NewJSONHandler(sink.writer(), &slog.HandlerOptions{Level: &l.level})
		l.logger = slog.New(handler).With("logger", l.scope)
	})
	return l.logger
}

var (
	sink        logSink
	appLog      = scopedLogger{scope: "app"}
	internalLog = scopedLogger{scope: "segmented"}
)

// SetLogPath adds a log file next to stdout. It only takes effect before
// the first log line is written.
func SetLogPath(path string) {
	sink.path = path
}

func GetLogger() *slog.Logger {
	return appLog.get()
}

func GetInternalLogger() *slog.Logger {
	return internalLog.get()
}

func SetLogLevel(level slog.Level) {
	appLog.level.Set(level)
}

func SetInternalLogLevel(level slog.Level) {
	internalLog.level.Set(level)
}

// ParseLogLevel maps "debug", "info", "warn" and "error" to a level.
// Anything else is info.
func ParseLogLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetRawLogLevel sets the application logger level from a config string.
func SetRawLogLevel(raw string) {
	SetLogLevel(ParseLogLevel(raw))
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	sink.close()
}
