// Package logger provides the logging interface used by sysgraph's outer
// layers. The graph core never logs; the scheduler and CLI do, through a
// Logger that writes via the standard log package. While the TUI owns the
// terminal, Redirect points that package at a log file or discards it.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// DebugEnv enables debug messages when set to any non-empty value.
const DebugEnv = "SYSGRAPH_DEBUG"

// Sources tag each line with the part of sysgraph that wrote it.
const (
	SourceTick   = "[tick]"
	SourceConfig = "[config]"
)

// filePrefix starts every line written to a --log-file.
const filePrefix = "sysgraph"

// Level is the severity of a message.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// DebugEnabled reports whether DebugEnv is set.
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// stdLogger writes "<source> [LEVEL: ]message" lines through the standard
// log package. Warnings and errors carry their level; info does not.
type stdLogger struct {
	source string
}

// New creates a logger for source, usually one of the Source constants.
func New(source string) Logger {
	return &stdLogger{source: source}
}

func (l *stdLogger) Debug(format string, args ...interface{}) {
	if DebugEnabled() {
		l.print(LevelDebug, format, args)
	}
}

func (l *stdLogger) Info(format string, args ...interface{}) {
	l.print(LevelInfo, format, args)
}

func (l *stdLogger) Warn(format string, args ...interface{}) {
	l.print(LevelWarn, format, args)
}

func (l *stdLogger) Error(format string, args ...interface{}) {
	l.print(LevelError, format, args)
}

func (l *stdLogger) print(level Level, format string, args []interface{}) {
	msg := fmt.Sprintf(format, args...)
	if level >= LevelWarn {
		msg = strings.ToUpper(level.String()) + ": " + msg
	}
	if l.source != "" {
		msg = l.source + " " + msg
	}
	log.Print(msg)
}

// Redirect sends standard log output to path, or discards it when path is
// empty, so nothing writes over the alternate screen. The returned function
// restores the previous output and prefix and closes the file.
func Redirect(path string) (restore func(), err error) {
	prevOut, prevPrefix := log.Writer(), log.Prefix()
	reset := func() {
		log.SetOutput(prevOut)
		log.SetPrefix(prevPrefix)
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return reset, nil
	}

	f, err := tea.LogToFile(path, filePrefix)
	if err != nil {
		reset()
		return nil, err
	}
	return func() {
		reset()
		f.Close()
	}, nil
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   Level
	Message string
}

// BufferLogger captures messages so tests can check what the scheduler
// reported.
type BufferLogger struct {
	Messages []LogMessage
}

// NewBufferLogger creates an empty BufferLogger.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{}
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.add(LevelDebug, format, args)
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.add(LevelInfo, format, args)
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.add(LevelWarn, format, args)
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.add(LevelError, format, args)
}

func (l *BufferLogger) add(level Level, format string, args []interface{}) {
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level Level) bool {
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}
