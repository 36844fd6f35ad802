// Package logger provides the small logging interface shared by every
// stateful component of the router.
package logger

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// DebugLogger is the logging contract every router component depends on.
// Components never call the global log package directly.
type DebugLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// NullLogger discards everything. It is the default for tests and for any
// caller that hands the router a nil logger.
type NullLogger struct{}

func (NullLogger) Debugf(format string, args ...interface{}) {}
func (NullLogger) Infof(format string, args ...interface{})  {}
func (NullLogger) Errorf(format string, args ...interface{}) {}

// SlogLogger adapts a *slog.Logger to DebugLogger. New wires it to a
// tint handler writing to stderr, which gives colored, timestamped lines
// on an interactive terminal without pulling in a heavier logging
// framework.
type SlogLogger struct {
	l *slog.Logger
}

// New returns a DebugLogger backed by log/slog and tint. level controls
// which of Debugf/Infof/Errorf actually produce output.
func New(level slog.Level) *SlogLogger {
	h := tint.NewHandler(os.Stderr, &tint.Options{Level: level})
	return &SlogLogger{l: slog.New(h)}
}

func (s *SlogLogger) Debugf(format string, args ...interface{}) {
	s.l.Debug(fmt.Sprintf(format, args...))
}

func (s *SlogLogger) Infof(format string, args ...interface{}) {
	s.l.Info(fmt.Sprintf(format, args...))
}

func (s *SlogLogger) Errorf(format string, args ...interface{}) {
	s.l.Error(fmt.Sprintf(format, args...))
}
