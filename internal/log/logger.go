// Package log is the session's file-backed logger. The TUI owns the
// terminal, so nothing here ever writes to stdout or stderr; without a
// configured file, logging is a no-op.
package log

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var logger = newDisabled()

func newDisabled() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// Setup directs log output to path at debug level. An empty path leaves
// logging disabled. The file stays open for the process lifetime.
func Setup(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", path, err)
	}
	logger.SetOutput(f)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Errorf(format string, args ...any) {
	logger.Errorf(format, args...)
}

// WithField tags subsequent entries, mirroring logrus chaining for callers
// that log several related lines.
func WithField(key string, value any) *logrus.Entry {
	return logger.WithField(key, value)
}
